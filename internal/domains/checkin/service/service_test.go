package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	s3Mocks "frontdesk/infras/s3/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/checkin/model/dto"
	"frontdesk/internal/domains/checkin/service"
	guestModel "frontdesk/internal/domains/guest/model"
	roomModel "frontdesk/internal/domains/room/model"
	settingModel "frontdesk/internal/domains/setting/model"
	settingMocks "frontdesk/internal/domains/setting/mocks"
	stayMocks "frontdesk/internal/domains/stay/mocks"
	"frontdesk/internal/domains/stay/state"
	"frontdesk/shared/failure"
)

const aadhar = "data:image/jpeg;base64,/9j/4AAQSkZJRg=="

func snapshot() state.State {
	return state.State{
		Rooms: []roomModel.Room{
			{ID: "A101", Number: "101", Block: "AYODHYA", Type: "DELUXE ROOM", Price: 3500, Status: roomModel.StatusVacant},
			{ID: "A102", Number: "102", Block: "AYODHYA", Type: "DELUXE ROOM", Price: 3500, Status: roomModel.StatusVacant},
		},
		Guests: []guestModel.Guest{
			{ID: "G-1", Name: "Ravi Kumar", Phone: "9876543210", Documents: map[string]string{"aadharFront": "https://cdn.example.com/guests/G-1/aadharfront.jpg"}},
		},
	}
}

func request() dto.CheckInRequest {
	return dto.CheckInRequest{
		Guest: dto.GuestRequest{
			Name:      "Anita Desai",
			Phone:     "9000000001",
			Adults:    1,
			Documents: map[string]string{"aadharFront": aadhar},
		},
		Rooms:   []dto.RoomAssignmentRequest{{RoomID: "A101"}, {RoomID: "A102"}},
		Advance: 1000,
	}
}

func echoAdmit(_ context.Context, admission state.Admission) ([]bookingModel.Booking, error) {
	return admission.Bookings, nil
}

func TestCheckInService_CheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStay := stayMocks.NewMockStay(ctrl)
	mockSetting := settingMocks.NewMockSetting(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.External.S3.BucketName = "frontdesk"

	svc := service.New(mockStay, mockSetting, mockS3, cfg, mocks.NewOtel())

	tests := []struct {
		name      string
		req       func() dto.CheckInRequest
		setupMock func()
		wantCode  int
		check     func(t *testing.T, res dto.CheckInResponse)
	}{
		{
			name: "walk-in over two rooms",
			req:  request,
			setupMock: func() {
				mockSetting.EXPECT().Get(gomock.Any()).Return(settingModel.Settings{TaxRate: 12}, nil)
				mockStay.EXPECT().Snapshot().Return(snapshot())
				mockS3.EXPECT().
					UploadDataURL(gomock.Any(), "", gomock.Any(), "aadharFront", aadhar).
					DoAndReturn(func(_ context.Context, _, directory, _, _ string) (string, error) {
						assert.True(t, strings.HasPrefix(directory, "guests/G-"))

						return "https://cdn.example.com/" + directory + "/aadharfront.jpg", nil
					})
				mockStay.EXPECT().
					Admit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, admission state.Admission) ([]bookingModel.Booking, error) {
						assert.True(t, strings.HasPrefix(admission.Guest.Documents["aadharFront"], "https://"))

						for _, booking := range admission.Bookings {
							assert.Equal(t, bookingModel.StatusActive, booking.Status)
						}

						return echoAdmit(ctx, admission)
					})
			},
			check: func(t *testing.T, res dto.CheckInResponse) {
				require.Len(t, res.Bookings, 2)
				assert.NotEmpty(t, res.GroupID)
				assert.Equal(t, 7000.0, res.Totals.RoomRent)
				assert.Equal(t, 1000.0, res.Totals.Payments)
				assert.Equal(t, 6840.0, res.Totals.Balance)
			},
		},
		{
			name: "validation failure uploads nothing",
			req: func() dto.CheckInRequest {
				req := request()
				req.Guest.Phone = ""

				return req
			},
			setupMock: func() {
				mockSetting.EXPECT().Get(gomock.Any()).Return(settingModel.Settings{}, nil)
				mockStay.EXPECT().Snapshot().Return(snapshot())
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "upload failure admits nothing",
			req:  request,
			setupMock: func() {
				mockSetting.EXPECT().Get(gomock.Any()).Return(settingModel.Settings{}, nil)
				mockStay.EXPECT().Snapshot().Return(snapshot())
				mockS3.EXPECT().UploadDataURL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "settings failure",
			req:  request,
			setupMock: func() {
				mockSetting.EXPECT().Get(gomock.Any()).Return(settingModel.Settings{}, errors.New("database is locked"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.CheckIn(context.Background(), tt.req())
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestCheckInService_ReserveKeepsDocumentsInlineWithoutBucket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStay := stayMocks.NewMockStay(ctrl)
	mockSetting := settingMocks.NewMockSetting(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	svc := service.New(mockStay, mockSetting, mockS3, &config.Config{}, mocks.NewOtel())

	mockSetting.EXPECT().Get(gomock.Any()).Return(settingModel.Settings{}, nil)
	mockStay.EXPECT().Snapshot().Return(snapshot())
	mockStay.EXPECT().Admit(gomock.Any(), gomock.Any()).DoAndReturn(echoAdmit)

	req := request()
	req.Rooms = req.Rooms[:1]
	req.CheckInDate = "2030-01-10"
	req.CheckOutDate = "2030-01-12"

	res, err := svc.Reserve(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Bookings, 1)
	assert.Equal(t, bookingModel.StatusReserved, res.Bookings[0].Status)
	assert.Empty(t, res.GroupID)
	assert.Equal(t, aadhar, res.Guest.Documents["aadharFront"])
}

func TestCheckInService_UploadGuestDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStay := stayMocks.NewMockStay(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	svc := service.New(mockStay, settingMocks.NewMockSetting(ctrl), mockS3, &config.Config{}, mocks.NewOtel())

	header := &multipart.FileHeader{
		Filename: "front.jpg",
		Header:   textproto.MIMEHeader{"Content-Type": {"image/jpeg"}},
	}

	const (
		previous = "https://cdn.example.com/guests/G-1/aadharfront.jpg"
		uploaded = "https://cdn.example.com/guests/G-1/aadharfront-v2.jpg"
	)

	tests := []struct {
		name      string
		guestID   string
		document  string
		setupMock func()
		wantCode  int
	}{
		{
			name:     "replaces and deletes the previous object",
			guestID:  "G-1",
			document: "aadharFront",
			setupMock: func() {
				mockStay.EXPECT().Snapshot().Return(snapshot())
				mockS3.EXPECT().UploadFile(gomock.Any(), "", "guests/G-1", gomock.Any(), header, "aadharfront.jpg").Return(uploaded, nil)
				mockStay.EXPECT().
					AttachGuestDocument(gomock.Any(), "G-1", "aadharFront", uploaded).
					Return(guestModel.Guest{ID: "G-1", Documents: map[string]string{"aadharFront": uploaded}}, nil)
				mockS3.EXPECT().GetObjectNameFromURL("", previous).Return("guests/G-1/aadharfront.jpg")
				mockS3.EXPECT().DeleteFile(gomock.Any(), "", "", "guests/G-1/aadharfront.jpg").Return(nil)
			},
		},
		{
			name:     "new document",
			guestID:  "G-1",
			document: "visa",
			setupMock: func() {
				mockStay.EXPECT().Snapshot().Return(snapshot())
				mockS3.EXPECT().UploadFile(gomock.Any(), "", "guests/G-1", gomock.Any(), header, "visa.jpg").Return(uploaded, nil)
				mockStay.EXPECT().AttachGuestDocument(gomock.Any(), "G-1", "visa", uploaded).Return(guestModel.Guest{ID: "G-1"}, nil)
			},
		},
		{
			name:     "unknown guest",
			guestID:  "G-404",
			document: "visa",
			setupMock: func() {
				mockStay.EXPECT().Snapshot().Return(snapshot())
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "missing document name",
			guestID:   "G-1",
			document:  " ",
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.UploadGuestDocument(context.Background(), tt.guestID, tt.document, nil, header)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

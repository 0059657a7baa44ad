package service_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/helper"
	"frontdesk/infras/kafka"
	kafkaMocks "frontdesk/infras/kafka/mocks"
	"frontdesk/infras/otel/mocks"
	"frontdesk/infras/sqlite"
	"frontdesk/internal/domains/allocation"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	groupRepo "frontdesk/internal/domains/group/repository"
	guestModel "frontdesk/internal/domains/guest/model"
	guestRepo "frontdesk/internal/domains/guest/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	settingModel "frontdesk/internal/domains/setting/model"
	settingMocks "frontdesk/internal/domains/setting/mocks"
	"frontdesk/internal/domains/stay/model/dto"
	"frontdesk/internal/domains/stay/service"
	"frontdesk/internal/domains/stay/state"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	repoMocks "frontdesk/shared/repository/mocks"
	"frontdesk/shared/timezone"
)

type fixture struct {
	svc      service.Stay
	rooms    roomRepo.Room
	guests   guestRepo.Guest
	bookings bookingRepo.Booking
	kafka    *kafkaMocks.MockClient
}

func newConnection(t *testing.T) *sqlite.Connection {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, helper.MigrateLocalInstance(db.DB, "schema_migrations"))

	return &sqlite.Connection{Read: db, Write: db}
}

func seedRooms() []roomModel.Room {
	return []roomModel.Room{
		{ID: "A101", Number: "101", Floor: 0, Block: "AYODHYA", Type: "DELUXE ROOM", Price: 3500, Status: roomModel.StatusVacant},
		{ID: "A102", Number: "102", Floor: 0, Block: "AYODHYA", Type: "DELUXE ROOM", Price: 3500, Status: roomModel.StatusVacant},
		{ID: "M101", Number: "101", Floor: 0, Block: "MITHILA", Type: "STANDARD ROOM", Price: 2500, Status: roomModel.StatusDirty},
	}
}

func newFixture(t *testing.T, cfg *config.Config, bookings bookingRepo.Booking) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	conn := newConnection(t)
	otel := mocks.NewOtel()

	f := fixture{
		rooms:  roomRepo.New(conn, otel),
		guests: guestRepo.New(conn, otel),
		kafka:  kafkaMocks.NewMockClient(ctrl),
	}

	f.bookings = bookings
	if f.bookings == nil {
		f.bookings = bookingRepo.New(conn, otel)
	}

	mockSetting := settingMocks.NewMockSetting(ctrl)
	mockSetting.EXPECT().
		Get(gomock.Any()).
		Return(settingModel.Settings{ID: settingModel.PrimaryID, Name: "Hotel Ayodhya Palace", TaxRate: 12}, nil).
		AnyTimes()

	require.NoError(t, f.rooms.BulkPut(context.Background(), seedRooms()))

	f.svc = service.New(f.rooms, f.guests, f.bookings, groupRepo.New(conn, otel), mockSetting, f.kafka, cfg, otel)
	t.Cleanup(f.svc.Close)

	require.NoError(t, f.svc.Reload(context.Background()))

	return f
}

func tomorrow() string {
	return timezone.Now().AddDate(0, 0, 1).Format(constant.DayFormat)
}

func walkIn(id, roomID string) state.Admission {
	return state.Admission{
		Guest: guestModel.Guest{ID: "G-100", Name: "Ravi Kumar", Phone: "9876543210"},
		Bookings: []bookingModel.Booking{{
			ID:           id,
			BookingNo:    "BK-" + id[2:],
			RoomID:       roomID,
			Status:       bookingModel.StatusActive,
			CheckInDate:  timezone.Today(),
			CheckOutDate: tomorrow(),
			BasePrice:    2000,
		}},
	}
}

func TestStayService_WalkInLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &config.Config{}, nil)

	admitted, err := f.svc.Admit(ctx, walkIn("B-walk1", "A101"))
	require.NoError(t, err)
	require.Len(t, admitted, 1)
	assert.Equal(t, "G-100", admitted[0].GuestID)

	res, err := f.svc.PostCharge(ctx, "B-walk1", dto.ChargeRequest{Description: "Laundry", Amount: 500})
	require.NoError(t, err)
	assert.Len(t, res.Booking.Charges, 1)

	res, err = f.svc.PostPayment(ctx, "B-walk1", dto.PaymentRequest{Amount: 1000})
	require.NoError(t, err)
	assert.Equal(t, state.DefaultPaymentMethod, res.Booking.Payments[0].Method)
	assert.Equal(t, 1800.0, res.Totals.Balance)

	_, err = f.svc.Checkout(ctx, "B-walk1", dto.CheckoutRequest{})
	require.Error(t, err)
	assert.Equal(t, http.StatusPreconditionRequired, failure.GetCode(err))

	booking, err := f.svc.GetBooking(ctx, "B-walk1")
	require.NoError(t, err)
	assert.Equal(t, bookingModel.StatusActive, booking.Booking.Status)

	out, err := f.svc.Checkout(ctx, "B-walk1", dto.CheckoutRequest{Confirmed: true})
	require.NoError(t, err)
	require.Len(t, out.Bookings, 1)
	assert.Equal(t, bookingModel.StatusCompleted, out.Bookings[0].Status)
	assert.Equal(t, 1800.0, out.Totals.Balance)

	f.svc.Wait()

	room, err := f.rooms.Get(ctx, "A101")
	require.NoError(t, err)
	assert.Equal(t, roomModel.StatusDirty, room.Status)
	assert.Empty(t, room.CurrentBookingID)

	stored, err := f.bookings.Get(ctx, "B-walk1")
	require.NoError(t, err)
	assert.Equal(t, bookingModel.StatusCompleted, stored.Status)
	assert.Len(t, stored.Charges, 1)
	assert.Len(t, stored.Payments, 1)

	guest, err := f.guests.Get(ctx, "G-100")
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", guest.Name)
}

func TestStayService_ReloadRestoresPersistedState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &config.Config{}, nil)

	_, err := f.svc.Admit(ctx, walkIn("B-walk1", "A102"))
	require.NoError(t, err)

	before := f.svc.Snapshot()

	require.NoError(t, f.svc.Reload(ctx))

	after := f.svc.Snapshot()
	assert.ElementsMatch(t, before.Rooms, after.Rooms)
	assert.ElementsMatch(t, before.Bookings, after.Bookings)
	assert.ElementsMatch(t, before.Guests, after.Guests)
}

func TestStayService_ReservationFlow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &config.Config{}, nil)

	reservation := walkIn("B-resv1", "A102")
	reservation.Bookings[0].Status = bookingModel.StatusReserved

	_, err := f.svc.Admit(ctx, reservation)
	require.NoError(t, err)

	views, err := f.svc.Rooms(ctx, allocation.Filter{Status: roomModel.StatusReserved})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "A102", views[0].ID)

	require.NoError(t, f.svc.CancelReservation(ctx, "B-resv1"))

	f.svc.Wait()

	stored, err := f.bookings.Get(ctx, "B-resv1")
	require.NoError(t, err)
	assert.Empty(t, stored.ID)

	_, err = f.svc.CheckIn(ctx, "B-resv1")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestStayService_CheckInReservation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &config.Config{}, nil)

	reservation := walkIn("B-resv2", "A102")
	reservation.Bookings[0].Status = bookingModel.StatusReserved

	_, err := f.svc.Admit(ctx, reservation)
	require.NoError(t, err)

	res, err := f.svc.CheckIn(ctx, "B-resv2")
	require.NoError(t, err)
	assert.Equal(t, bookingModel.StatusActive, res.Booking.Status)
	assert.Equal(t, timezone.Today(), res.Booking.CheckInDate)

	board, err := f.svc.Board(ctx, allocation.Filter{Block: "AYODHYA"})
	require.NoError(t, err)
	assert.Equal(t, 1, board.Counts[roomModel.StatusOccupied])
	assert.Equal(t, 1, board.Counts[roomModel.StatusVacant])
}

func TestStayService_ShiftAndExtend(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &config.Config{}, nil)

	_, err := f.svc.Admit(ctx, walkIn("B-walk1", "A101"))
	require.NoError(t, err)

	_, err = f.svc.ShiftRoom(ctx, "B-walk1", dto.ShiftRoomRequest{RoomID: "M101"})
	assert.Equal(t, http.StatusConflict, failure.GetCode(err), "dirty room is not a shift target")

	res, err := f.svc.ShiftRoom(ctx, "B-walk1", dto.ShiftRoomRequest{RoomID: "A102"})
	require.NoError(t, err)
	assert.Equal(t, "A102", res.Booking.RoomID)

	extended := timezone.Now().AddDate(0, 0, 3).Format(constant.DayFormat)

	res, err = f.svc.ExtendStay(ctx, "B-walk1", dto.ExtendStayRequest{CheckOutDate: extended})
	require.NoError(t, err)
	assert.Equal(t, extended, res.Booking.CheckOutDate)
	assert.Equal(t, 6000.0+720.0, res.Totals.GrandTotal)

	f.svc.Wait()

	oldRoom, err := f.rooms.Get(ctx, "A101")
	require.NoError(t, err)
	assert.Equal(t, roomModel.StatusDirty, oldRoom.Status)

	newRoom, err := f.rooms.Get(ctx, "A102")
	require.NoError(t, err)
	assert.Equal(t, roomModel.StatusOccupied, newRoom.Status)
	assert.Equal(t, "B-walk1", newRoom.CurrentBookingID)
}

func TestStayService_HousekeepingAndGuests(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &config.Config{}, nil)

	room, err := f.svc.SetRoomStatus(ctx, "M101", dto.RoomStatusRequest{Status: roomModel.StatusVacant})
	require.NoError(t, err)
	assert.Equal(t, roomModel.StatusVacant, room.Status)

	_, err = f.svc.SetRoomStatus(ctx, "M101", dto.RoomStatusRequest{Status: roomModel.StatusOccupied})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = f.svc.Admit(ctx, walkIn("B-walk1", "A101"))
	require.NoError(t, err)

	history, err := f.svc.GuestHistory(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "G-100", history.Guest.ID)
	require.Len(t, history.Bookings, 1)

	_, err = f.svc.GuestHistory(ctx, "0000000000")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	guest, err := f.svc.UpdateGuest(ctx, "G-100", dto.UpdateGuestRequest{Name: "Ravi K. Sharma", Phone: "9876543210", City: "Ayodhya"})
	require.NoError(t, err)
	assert.Equal(t, "Ravi K. Sharma", guest.Name)
	assert.Equal(t, "Ayodhya", guest.City)

	_, err = f.svc.UpdateGuest(ctx, "G-404", dto.UpdateGuestRequest{Name: "Nobody", Phone: "1"})
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	f.svc.Wait()

	stored, err := f.rooms.Get(ctx, "M101")
	require.NoError(t, err)
	assert.Equal(t, roomModel.StatusVacant, stored.Status)
}

func TestStayService_FolioExport(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &config.Config{}, nil)

	_, err := f.svc.Admit(ctx, walkIn("B-walk1", "A101"))
	require.NoError(t, err)

	folio, err := f.svc.Folio(ctx, "B-walk1", false)
	require.NoError(t, err)
	assert.Equal(t, 2240.0, folio.Totals.GrandTotal)

	var buf bytes.Buffer
	require.NoError(t, f.svc.ExportFolio(ctx, &buf, "B-walk1", false))

	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)

	defer book.Close()

	assert.Contains(t, book.GetSheetList(), "Folio")

	_, err = f.svc.Folio(ctx, "B-nope", false)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestStayService_PublishesEvents(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.Topic.StayEvents = "frontdesk.stay.events"

	f := newFixture(t, cfg, nil)

	var published []kafka.Message

	f.kafka.EXPECT().
		SendMessages(gomock.Any(), "frontdesk.stay.events", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			published = append(published, messages...)

			return nil
		})

	_, err := f.svc.Admit(context.Background(), walkIn("B-walk1", "A101"))
	require.NoError(t, err)

	f.svc.Wait()

	require.Len(t, published, 1)
	assert.Equal(t, "B-walk1", published[0].Key)

	event, ok := published[0].Value.(state.Event)
	require.True(t, ok)
	assert.Equal(t, state.EventAdmitted, event.Type)
}

func TestStayService_PersistFailureKeepsMemoryState(t *testing.T) {
	ctrl := gomock.NewController(t)
	bookings := repoMocks.NewMockTable[bookingModel.Booking](ctrl)

	bookings.EXPECT().ToArray(gomock.Any()).Return([]bookingModel.Booking{}, nil)
	bookings.EXPECT().BulkPut(gomock.Any(), gomock.Any()).Return(errors.New("disk I/O error"))

	f := newFixture(t, &config.Config{}, bookings)

	_, err := f.svc.Admit(context.Background(), walkIn("B-walk1", "A101"))
	require.NoError(t, err)

	f.svc.Wait()

	booking, ok := f.svc.Snapshot().Booking("B-walk1")
	require.True(t, ok)
	assert.Equal(t, bookingModel.StatusActive, booking.Status)

	room, err := f.rooms.Get(context.Background(), "A101")
	require.NoError(t, err)
	assert.Equal(t, roomModel.StatusOccupied, room.Status, "other tables of the mutation are still written")
}

func TestStayService_RejectsAfterClose(t *testing.T) {
	f := newFixture(t, &config.Config{}, nil)

	f.svc.Close()

	_, err := f.svc.Admit(context.Background(), walkIn("B-walk1", "A101"))
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

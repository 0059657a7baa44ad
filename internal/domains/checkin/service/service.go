package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/infras/s3"
	"frontdesk/internal/domains/billing"
	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/checkin"
	"frontdesk/internal/domains/checkin/model/dto"
	guestModel "frontdesk/internal/domains/guest/model"
	settingService "frontdesk/internal/domains/setting/service"
	stayService "frontdesk/internal/domains/stay/service"
	"frontdesk/shared/base64"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	documentDirectory = "guests"
)

type CheckIn interface {
	// CheckIn registers a walk-in: one ACTIVE booking per room, rooms occupied at once.
	CheckIn(ctx context.Context, req dto.CheckInRequest) (dto.CheckInResponse, error)
	// Reserve registers future bookings without touching the rooms.
	Reserve(ctx context.Context, req dto.CheckInRequest) (dto.CheckInResponse, error)
	UploadGuestDocument(ctx context.Context, guestID, name string, file multipart.File, fileHeader *multipart.FileHeader) (guestModel.Guest, error)
}

type serviceImpl struct {
	stay    stayService.Stay
	setting settingService.Setting
	s3      s3.S3
	cfg     *config.Config
	otel    otel.Otel
}

func New(stay stayService.Stay, setting settingService.Setting, s3 s3.S3, cfg *config.Config, otel otel.Otel) CheckIn {
	return &serviceImpl{
		stay:    stay,
		setting: setting,
		s3:      s3,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) CheckIn(ctx context.Context, req dto.CheckInRequest) (res dto.CheckInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return s.admit(ctx, req, bookingModel.StatusActive)
}

func (s *serviceImpl) Reserve(ctx context.Context, req dto.CheckInRequest) (res dto.CheckInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return s.admit(ctx, req, bookingModel.StatusReserved)
}

func (s *serviceImpl) admit(ctx context.Context, req dto.CheckInRequest, status bookingModel.Status) (res dto.CheckInResponse, err error) {
	settings, err := s.setting.Get(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to get settings: %w", err)
	}

	admission, err := checkin.Assemble(s.stay.Snapshot(), settings, req.ToInput(status), timezone.Now())
	if err != nil {
		return res, err
	}

	if admission.Guest.Documents, err = s.storeDocuments(ctx, admission.Guest.ID, admission.Guest.Documents); err != nil {
		return res, err
	}

	bookings, err := s.stay.Admit(ctx, admission)
	if err != nil {
		return res, err
	}

	res = dto.CheckInResponse{
		Guest:    admission.Guest,
		Bookings: bookings,
	}

	if len(bookings) > 0 {
		res.GroupID = bookings[0].GroupID
		res.Totals = billing.ComputeFolioTotals(bookings[0], bookings, len(bookings) > 1, settings.TaxRate).Rounded()
	}

	log.Info().
		Str("guestId", admission.Guest.ID).
		Str("status", string(status)).
		Int("rooms", len(bookings)).
		Msg("registration completed")

	return res, nil
}

// storeDocuments moves inline data URL documents to object storage. Without a bucket the
// documents are kept inline.
func (s *serviceImpl) storeDocuments(ctx context.Context, guestID string, documents map[string]string) (map[string]string, error) {
	if s.cfg.External.S3.BucketName == constant.Empty || len(documents) == 0 {
		return documents, nil
	}

	stored := make(map[string]string, len(documents))

	for name, value := range documents {
		if !base64.IsDataURL(value) {
			stored[name] = value

			continue
		}

		url, err := s.s3.UploadDataURL(ctx, constant.Empty, path.Join(documentDirectory, guestID), name, value)
		if err != nil {
			log.Error().Err(err).Str("guestId", guestID).Str("document", name).Msg("failed to store guest document")

			return nil, fmt.Errorf("failed to store document %s: %w", name, err)
		}

		stored[name] = url
	}

	return stored, nil
}

func (s *serviceImpl) UploadGuestDocument(ctx context.Context, guestID, name string, file multipart.File, fileHeader *multipart.FileHeader) (res guestModel.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadGuestDocument")
	defer scope.End()
	defer scope.TraceIfError(&err)

	name = strings.TrimSpace(name)
	if name == constant.Empty {
		return res, failure.BadRequestFromString("document name is required")
	}

	guest, ok := s.stay.Snapshot().Guest(guestID)
	if !ok {
		return res, failure.NotFound(fmt.Sprintf("guest %s not found", guestID))
	}

	contentType := fileHeader.Header.Get(constant.RequestHeaderContentType)
	fileName := fmt.Sprintf("%s.%s", strings.ToLower(name), base64.Extension(contentType))

	url, err := s.s3.UploadFile(ctx, constant.Empty, path.Join(documentDirectory, guestID), file, fileHeader, fileName)
	if err != nil {
		return res, fmt.Errorf("failed to upload document: %w", err)
	}

	res, err = s.stay.AttachGuestDocument(ctx, guestID, name, url)
	if err != nil {
		return res, err
	}

	previous := guest.Documents[name]
	if previous == constant.Empty || previous == url || base64.IsDataURL(previous) {
		return res, nil
	}

	if objectName := s.s3.GetObjectNameFromURL(constant.Empty, previous); objectName != constant.Empty {
		if deleteErr := s.s3.DeleteFile(ctx, constant.Empty, constant.Empty, objectName); deleteErr != nil {
			log.Warn().Err(deleteErr).Str("object", objectName).Msg("failed to delete replaced guest document")
		}
	}

	return res, nil
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/metrics"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/allocation"
	"frontdesk/internal/domains/billing"
	"frontdesk/internal/domains/billing/export"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	groupModel "frontdesk/internal/domains/group/model"
	groupRepo "frontdesk/internal/domains/group/repository"
	guestModel "frontdesk/internal/domains/guest/model"
	guestRepo "frontdesk/internal/domains/guest/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	settingService "frontdesk/internal/domains/setting/service"
	"frontdesk/internal/domains/stay/model/dto"
	"frontdesk/internal/domains/stay/state"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	persistQueueSize = 256
)

var (
	errClosed = failure.Conflict("front desk is shutting down")
)

type Stay interface {
	// Reload replaces the in-memory state with the contents of the local store.
	Reload(ctx context.Context) error
	Snapshot() state.State
	// Wait blocks until every queued mutation has been persisted.
	Wait()
	Close()

	Rooms(ctx context.Context, filter allocation.Filter) ([]allocation.View, error)
	Board(ctx context.Context, filter allocation.Filter) (allocation.Board, error)
	GetBooking(ctx context.Context, bookingID string) (dto.StayResponse, error)
	Folio(ctx context.Context, bookingID string, consolidated bool) (billing.Folio, error)
	ExportFolio(ctx context.Context, w io.Writer, bookingID string, consolidated bool) error
	GuestHistory(ctx context.Context, phone string) (dto.GuestHistoryResponse, error)

	Admit(ctx context.Context, admission state.Admission) ([]bookingModel.Booking, error)
	CheckIn(ctx context.Context, bookingID string) (dto.StayResponse, error)
	Checkout(ctx context.Context, bookingID string, req dto.CheckoutRequest) (dto.CheckoutResponse, error)
	CancelReservation(ctx context.Context, bookingID string) error
	ShiftRoom(ctx context.Context, bookingID string, req dto.ShiftRoomRequest) (dto.StayResponse, error)
	ExtendStay(ctx context.Context, bookingID string, req dto.ExtendStayRequest) (dto.StayResponse, error)
	PostCharge(ctx context.Context, bookingID string, req dto.ChargeRequest) (dto.StayResponse, error)
	PostPayment(ctx context.Context, bookingID string, req dto.PaymentRequest) (dto.StayResponse, error)
	SetRoomStatus(ctx context.Context, roomID string, req dto.RoomStatusRequest) (roomModel.Room, error)
	UpdateGuest(ctx context.Context, guestID string, req dto.UpdateGuestRequest) (guestModel.Guest, error)
	AttachGuestDocument(ctx context.Context, guestID, name, location string) (guestModel.Guest, error)
}

type job struct {
	ctx      context.Context
	mutation state.Mutation
}

type serviceImpl struct {
	mu     sync.Mutex
	state  state.State
	closed bool

	jobs    chan job
	pending sync.WaitGroup
	stopped chan struct{}

	rooms    roomRepo.Room
	guests   guestRepo.Guest
	bookings bookingRepo.Booking
	groups   groupRepo.GroupProfile
	setting  settingService.Setting
	kafka    kafka.Client
	cfg      *config.Config
	otel     otel.Otel
}

func New(
	rooms roomRepo.Room,
	guests guestRepo.Guest,
	bookings bookingRepo.Booking,
	groups groupRepo.GroupProfile,
	setting settingService.Setting,
	kafka kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Stay {
	svc := &serviceImpl{
		jobs:     make(chan job, persistQueueSize),
		stopped:  make(chan struct{}),
		rooms:    rooms,
		guests:   guests,
		bookings: bookings,
		groups:   groups,
		setting:  setting,
		kafka:    kafka,
		cfg:      cfg,
		otel:     otel,
	}

	go svc.run()

	return svc
}

func (s *serviceImpl) Reload(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReloadStay")
	defer scope.End()
	defer scope.TraceIfError(&err)

	s.pending.Wait()

	var next state.State

	if next.Rooms, err = s.rooms.ToArray(ctx); err != nil {
		return fmt.Errorf("failed to load rooms: %w", err)
	}

	if next.Guests, err = s.guests.ToArray(ctx); err != nil {
		return fmt.Errorf("failed to load guests: %w", err)
	}

	if next.Bookings, err = s.bookings.ToArray(ctx); err != nil {
		return fmt.Errorf("failed to load bookings: %w", err)
	}

	if next.Groups, err = s.groups.ToArray(ctx); err != nil {
		return fmt.Errorf("failed to load groups: %w", err)
	}

	s.mu.Lock()
	s.state = next
	s.mu.Unlock()

	log.Info().
		Int("rooms", len(next.Rooms)).
		Int("guests", len(next.Guests)).
		Int("bookings", len(next.Bookings)).
		Int("groups", len(next.Groups)).
		Msg("front desk state loaded")

	return nil
}

func (s *serviceImpl) Snapshot() state.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}

func (s *serviceImpl) Wait() {
	s.pending.Wait()
}

// Close drains the persistence queue and stops the worker. Transitions after Close are
// rejected.
func (s *serviceImpl) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return
	}

	s.closed = true
	close(s.jobs)
	s.mu.Unlock()

	<-s.stopped
}

func (s *serviceImpl) taxRate(ctx context.Context) (float64, error) {
	settings, err := s.setting.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get tax rate: %w", err)
	}

	return settings.TaxRate, nil
}

type reducer func(current state.State, now time.Time) (state.State, state.Mutation, error)

// apply runs reduce against the current state and queues the resulting mutation for
// persistence. The in-memory state only changes when reduce succeeds.
func (s *serviceImpl) apply(ctx context.Context, operation string, reduce reducer) (state.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.state, errClosed
	}

	next, mutation, err := reduce(s.state, timezone.Now())
	if err != nil {
		metrics.IncTransitionRejected(operation, strconv.Itoa(failure.GetCode(err)))
		log.Debug().Err(err).Str("operation", operation).Msg("transition rejected")

		return s.state, err
	}

	s.state = next

	if mutation.Empty() && len(mutation.Events) == 0 {
		return next, nil
	}

	s.pending.Add(1)
	metrics.IncPersistQueue()

	s.jobs <- job{ctx: context.WithoutCancel(ctx), mutation: mutation}

	return next, nil
}

func (s *serviceImpl) run() {
	defer close(s.stopped)

	for j := range s.jobs {
		s.persist(j.ctx, j.mutation)
		s.publish(j.ctx, j.mutation.Events)

		metrics.DecPersistQueue()
		s.pending.Done()
	}
}

// persist writes a mutation to the local store. Failures are logged and counted; the
// in-memory state is kept as is.
func (s *serviceImpl) persist(ctx context.Context, mutation state.Mutation) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PersistMutation")
	defer scope.End()

	if len(mutation.Rooms) > 0 {
		if err := s.rooms.BulkPut(ctx, mutation.Rooms); err != nil {
			s.persistFailed(scope, roomModel.TableName, err)
		}
	}

	if len(mutation.Guests) > 0 {
		if err := s.guests.BulkPut(ctx, mutation.Guests); err != nil {
			s.persistFailed(scope, guestModel.TableName, err)
		}
	}

	if len(mutation.Groups) > 0 {
		if err := s.groups.BulkPut(ctx, mutation.Groups); err != nil {
			s.persistFailed(scope, groupModel.TableName, err)
		}
	}

	if len(mutation.Bookings) > 0 {
		if err := s.bookings.BulkPut(ctx, mutation.Bookings); err != nil {
			s.persistFailed(scope, bookingModel.TableName, err)
		}
	}

	for _, id := range mutation.DeletedBookings {
		if err := s.bookings.Delete(ctx, id); err != nil {
			s.persistFailed(scope, bookingModel.TableName, err)
		}
	}
}

func (s *serviceImpl) persistFailed(scope otel.Scope, table string, err error) {
	scope.TraceError(err)
	metrics.IncPersistFailure(table)
	log.Error().Err(err).Str("table", table).Msg("failed to persist front desk change")
}

func (s *serviceImpl) publish(ctx context.Context, events []state.Event) {
	for _, event := range events {
		metrics.IncStayTransition(string(event.Type))
	}

	if len(events) == 0 || s.kafka == nil || !s.cfg.Kafka.Enable {
		return
	}

	messages := make([]kafka.Message, 0, len(events))

	for _, event := range events {
		key := event.BookingID
		if key == constant.Empty {
			key = event.RoomID
		}

		messages = append(messages, kafka.Message{Key: key, Value: event})
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic.StayEvents, messages...); err != nil {
		log.Error().Err(err).Int("events", len(events)).Msg("failed to publish stay events")
	}
}

func (s *serviceImpl) stayResponse(ctx context.Context, current state.State, bookingID string) (dto.StayResponse, error) {
	booking, ok := current.Booking(bookingID)
	if !ok {
		return dto.StayResponse{}, failure.NotFound(fmt.Sprintf("booking %s not found", bookingID))
	}

	rate, err := s.taxRate(ctx)
	if err != nil {
		return dto.StayResponse{}, err
	}

	return dto.StayResponse{
		Booking: booking,
		Totals:  billing.ComputeFolioTotals(booking, current.Bookings, false, rate).Rounded(),
	}, nil
}

func (s *serviceImpl) Rooms(ctx context.Context, filter allocation.Filter) ([]allocation.View, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRooms")
	defer scope.End()

	current := s.Snapshot()
	views := []allocation.View{}

	for _, view := range allocation.Views(current.Rooms, current.Bookings, timezone.Today()) {
		if filter.Match(view) {
			views = append(views, view)
		}
	}

	return views, nil
}

func (s *serviceImpl) Board(ctx context.Context, filter allocation.Filter) (allocation.Board, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBoard")
	defer scope.End()

	current := s.Snapshot()

	return allocation.BuildBoard(current.Rooms, current.Bookings, timezone.Today(), filter), nil
}

func (s *serviceImpl) GetBooking(ctx context.Context, bookingID string) (res dto.StayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return s.stayResponse(ctx, s.Snapshot(), bookingID)
}

func (s *serviceImpl) Folio(ctx context.Context, bookingID string, consolidated bool) (res billing.Folio, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetFolio")
	defer scope.End()
	defer scope.TraceIfError(&err)

	current := s.Snapshot()

	primary, ok := current.Booking(bookingID)
	if !ok {
		return res, failure.NotFound(fmt.Sprintf("booking %s not found", bookingID))
	}

	rate, err := s.taxRate(ctx)
	if err != nil {
		return res, err
	}

	return billing.BuildFolio(primary, current.Bookings, consolidated, rate), nil
}

func (s *serviceImpl) ExportFolio(ctx context.Context, w io.Writer, bookingID string, consolidated bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportFolio")
	defer scope.End()
	defer scope.TraceIfError(&err)

	folio, err := s.Folio(ctx, bookingID, consolidated)
	if err != nil {
		return err
	}

	settings, err := s.setting.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	header := export.Header{
		PropertyName: settings.Name,
		GSTNumber:    settings.GSTNumber,
	}

	current := s.Snapshot()

	primary, _ := current.Booking(bookingID)
	if guest, ok := current.Guest(primary.GuestID); ok {
		header.GuestName = guest.Name
		header.GuestPhone = guest.Phone
	}

	if err = export.Write(w, folio, header); err != nil {
		log.Error().Err(err).Str("bookingId", bookingID).Msg("failed to export folio")

		return fmt.Errorf("failed to export folio: %w", err)
	}

	return nil
}

func (s *serviceImpl) GuestHistory(ctx context.Context, phone string) (res dto.GuestHistoryResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetGuestHistory")
	defer scope.End()
	defer scope.TraceIfError(&err)

	current := s.Snapshot()

	guest, ok := current.GuestByPhone(phone)
	if !ok {
		return res, failure.NotFound("no guest registered under this phone")
	}

	return dto.GuestHistoryResponse{
		Guest:    guest,
		Bookings: current.BookingsOfGuest(guest.ID),
	}, nil
}

func (s *serviceImpl) Admit(ctx context.Context, admission state.Admission) (res []bookingModel.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Admit")
	defer scope.End()
	defer scope.TraceIfError(&err)

	next, err := s.apply(ctx, "admit", func(current state.State, now time.Time) (state.State, state.Mutation, error) {
		return state.Admit(current, admission, now)
	})
	if err != nil {
		return nil, err
	}

	for _, booking := range admission.Bookings {
		if admitted, ok := next.Booking(booking.ID); ok {
			res = append(res, admitted)
		}
	}

	log.Info().Str("guestId", admission.Guest.ID).Int("bookings", len(res)).Msg("guest admitted")

	return res, nil
}

func (s *serviceImpl) CheckIn(ctx context.Context, bookingID string) (res dto.StayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(&err)

	next, err := s.apply(ctx, "check_in", func(current state.State, now time.Time) (state.State, state.Mutation, error) {
		return state.CheckIn(current, bookingID, now)
	})
	if err != nil {
		return res, err
	}

	return s.stayResponse(ctx, next, bookingID)
}

func (s *serviceImpl) Checkout(ctx context.Context, bookingID string, req dto.CheckoutRequest) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Checkout")
	defer scope.End()
	defer scope.TraceIfError(&err)

	rate, err := s.taxRate(ctx)
	if err != nil {
		return res, err
	}

	opts := state.CheckoutOptions{
		Consolidated: req.Consolidated,
		Confirmed:    req.Confirmed,
		TaxRate:      rate,
	}

	var mutation state.Mutation

	_, err = s.apply(ctx, "checkout", func(current state.State, now time.Time) (state.State, state.Mutation, error) {
		if totals, ok := state.CheckoutTotals(current, bookingID, opts); ok {
			res.Totals = totals.Rounded()
		}

		next, m, rejected := state.Checkout(current, bookingID, opts, now)
		mutation = m

		return next, m, rejected
	})
	if err != nil {
		return dto.CheckoutResponse{}, err
	}

	res.Bookings = mutation.Bookings
	metrics.ObserveCheckoutBalance(res.Totals.Balance)

	log.Info().
		Str("bookingId", bookingID).
		Int("bookings", len(res.Bookings)).
		Float64("balance", res.Totals.Balance).
		Msg("guest checked out")

	return res, nil
}

func (s *serviceImpl) CancelReservation(ctx context.Context, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelReservation")
	defer scope.End()
	defer scope.TraceIfError(&err)

	_, err = s.apply(ctx, "cancel_reservation", func(current state.State, now time.Time) (state.State, state.Mutation, error) {
		return state.CancelReservation(current, bookingID, now)
	})

	return err
}

func (s *serviceImpl) ShiftRoom(ctx context.Context, bookingID string, req dto.ShiftRoomRequest) (res dto.StayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ShiftRoom")
	defer scope.End()
	defer scope.TraceIfError(&err)

	next, err := s.apply(ctx, "shift_room", func(current state.State, now time.Time) (state.State, state.Mutation, error) {
		return state.ShiftRoom(current, bookingID, req.RoomID, now)
	})
	if err != nil {
		return res, err
	}

	return s.stayResponse(ctx, next, bookingID)
}

func (s *serviceImpl) ExtendStay(ctx context.Context, bookingID string, req dto.ExtendStayRequest) (res dto.StayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExtendStay")
	defer scope.End()
	defer scope.TraceIfError(&err)

	next, err := s.apply(ctx, "extend_stay", func(current state.State, now time.Time) (state.State, state.Mutation, error) {
		return state.ExtendStay(current, bookingID, req.CheckOutDate, now)
	})
	if err != nil {
		return res, err
	}

	return s.stayResponse(ctx, next, bookingID)
}

func (s *serviceImpl) PostCharge(ctx context.Context, bookingID string, req dto.ChargeRequest) (res dto.StayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PostCharge")
	defer scope.End()
	defer scope.TraceIfError(&err)

	next, err := s.apply(ctx, "post_charge", func(current state.State, now time.Time) (state.State, state.Mutation, error) {
		return state.PostCharge(current, bookingID, req.ToInput(), now)
	})
	if err != nil {
		return res, err
	}

	return s.stayResponse(ctx, next, bookingID)
}

func (s *serviceImpl) PostPayment(ctx context.Context, bookingID string, req dto.PaymentRequest) (res dto.StayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PostPayment")
	defer scope.End()
	defer scope.TraceIfError(&err)

	next, err := s.apply(ctx, "post_payment", func(current state.State, now time.Time) (state.State, state.Mutation, error) {
		return state.PostPayment(current, bookingID, req.ToInput(), now)
	})
	if err != nil {
		return res, err
	}

	return s.stayResponse(ctx, next, bookingID)
}

func (s *serviceImpl) SetRoomStatus(ctx context.Context, roomID string, req dto.RoomStatusRequest) (res roomModel.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetRoomStatus")
	defer scope.End()
	defer scope.TraceIfError(&err)

	next, err := s.apply(ctx, "set_room_status", func(current state.State, now time.Time) (state.State, state.Mutation, error) {
		return state.SetRoomStatus(current, roomID, req.Status, now)
	})
	if err != nil {
		return res, err
	}

	res, _ = next.Room(roomID)

	return res, nil
}

func (s *serviceImpl) UpdateGuest(ctx context.Context, guestID string, req dto.UpdateGuestRequest) (res guestModel.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateGuest")
	defer scope.End()
	defer scope.TraceIfError(&err)

	next, err := s.apply(ctx, "update_guest", func(current state.State, now time.Time) (state.State, state.Mutation, error) {
		guest, ok := current.Guest(guestID)
		if !ok {
			return current, state.Mutation{}, failure.NotFound(fmt.Sprintf("guest %s not found", guestID))
		}

		return state.UpdateGuest(current, req.Apply(guest), now)
	})
	if err != nil {
		return res, err
	}

	res, _ = next.Guest(guestID)

	return res, nil
}

// AttachGuestDocument records location under the document name, replacing any previous
// entry.
func (s *serviceImpl) AttachGuestDocument(ctx context.Context, guestID, name, location string) (res guestModel.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AttachGuestDocument")
	defer scope.End()
	defer scope.TraceIfError(&err)

	next, err := s.apply(ctx, "attach_guest_document", func(current state.State, now time.Time) (state.State, state.Mutation, error) {
		guest, ok := current.Guest(guestID)
		if !ok {
			return current, state.Mutation{}, failure.NotFound(fmt.Sprintf("guest %s not found", guestID))
		}

		documents := make(map[string]string, len(guest.Documents)+1)
		for key, value := range guest.Documents {
			documents[key] = value
		}

		documents[name] = location
		guest.Documents = documents

		return state.UpdateGuest(current, guest, now)
	})
	if err != nil {
		return res, err
	}

	res, _ = next.Guest(guestID)

	return res, nil
}

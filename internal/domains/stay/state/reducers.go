package state

import (
	"fmt"
	"strings"
	"time"

	"frontdesk/internal/domains/allocation"
	"frontdesk/internal/domains/billing"
	bookingModel "frontdesk/internal/domains/booking/model"
	groupModel "frontdesk/internal/domains/group/model"
	guestModel "frontdesk/internal/domains/guest/model"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/identifier"
)

const (
	DefaultPaymentMethod = "Cash"

	hoursPerDay = 24
)

type CheckoutOptions struct {
	Consolidated bool
	Confirmed    bool
	TaxRate      float64
}

type ChargeInput struct {
	Description string
	Amount      float64
}

type PaymentInput struct {
	Amount  float64
	Method  string
	Remarks string
}

// Admission registers one guest against one or more new bookings. Bookings must carry
// their ids; ACTIVE bookings occupy their room immediately, RESERVED ones do not.
type Admission struct {
	Guest    guestModel.Guest
	// NewGuest is set when Guest was registered by this admission rather than found.
	NewGuest bool
	Group    *groupModel.GroupProfile
	Bookings []bookingModel.Booking
}

func day(at time.Time) string {
	return at.Format(constant.DayFormat)
}

func clock(at time.Time) string {
	return at.Format(constant.ClockFormat)
}

func mustBooking(s State, id string) (bookingModel.Booking, error) {
	booking, ok := s.Booking(id)
	if !ok {
		return booking, failure.NotFound(fmt.Sprintf("booking %s not found", id))
	}

	return booking.Clone(), nil
}

func mustRoom(s State, id string) (roomModel.Room, error) {
	room, ok := s.Room(id)
	if !ok {
		return room, failure.NotFound(fmt.Sprintf("room %s not found", id))
	}

	return room, nil
}

func occupy(room roomModel.Room, bookingID string) roomModel.Room {
	room.Status = roomModel.StatusOccupied
	room.CurrentBookingID = bookingID

	return room
}

func vacate(room roomModel.Room) roomModel.Room {
	room.Status = roomModel.StatusDirty
	room.CurrentBookingID = constant.Empty

	return room
}

func event(eventType EventType, booking bookingModel.Booking, at time.Time) Event {
	return Event{
		Type:      eventType,
		BookingID: booking.ID,
		BookingNo: booking.BookingNo,
		GroupID:   booking.GroupID,
		GuestID:   booking.GuestID,
		RoomID:    booking.RoomID,
		Status:    string(booking.Status),
		At:        at,
	}
}

// CheckIn turns a reservation into a live stay stamped with the actual arrival time.
func CheckIn(s State, bookingID string, now time.Time) (State, Mutation, error) {
	booking, err := mustBooking(s, bookingID)
	if err != nil {
		return s, Mutation{}, err
	}

	if booking.Status != bookingModel.StatusReserved {
		return s, Mutation{}, failure.Conflict(fmt.Sprintf("booking %s is %s, only reservations can be checked in", booking.ID, booking.Status))
	}

	room, err := mustRoom(s, booking.RoomID)
	if err != nil {
		return s, Mutation{}, err
	}

	if holder, ok := allocation.ActiveBooking(room.ID, s.Bookings); ok {
		return s, Mutation{}, failure.Conflict(fmt.Sprintf("room %s is occupied by booking %s", room.Number, holder.ID))
	}

	booking.Status = bookingModel.StatusActive
	booking.CheckInDate = day(now)
	booking.CheckInTime = clock(now)

	if booking.CheckOutDate <= booking.CheckInDate {
		booking.CheckOutDate = day(now.Add(hoursPerDay * time.Hour))
	}

	room = occupy(room, booking.ID)

	next := s.Clone()
	next.putBooking(booking)
	next.putRoom(room)

	return next, Mutation{
		Rooms:    []roomModel.Room{room},
		Bookings: []bookingModel.Booking{booking},
		Events:   []Event{event(EventCheckedIn, booking, now)},
	}, nil
}

// Checkout completes a live stay, or every live stay of its group when consolidated.
// An outstanding balance on a non VIP folio needs opts.Confirmed.
func Checkout(s State, bookingID string, opts CheckoutOptions, now time.Time) (State, Mutation, error) {
	primary, err := mustBooking(s, bookingID)
	if err != nil {
		return s, Mutation{}, err
	}

	if primary.Status != bookingModel.StatusActive {
		return s, Mutation{}, failure.Conflict(fmt.Sprintf("booking %s is %s, only active stays can be checked out", primary.ID, primary.Status))
	}

	targets := checkoutTargets(s, primary, opts.Consolidated)

	totals := billing.ComputeFolioTotals(primary, targets, opts.Consolidated, opts.TaxRate)
	if !primary.IsVIP && billing.Outstanding(totals) && !opts.Confirmed {
		return s, Mutation{}, failure.ConfirmationRequired(fmt.Sprintf("pending balance of %.2f, confirm to proceed with checkout", totals.Balance))
	}

	next := s.Clone()
	mutation := Mutation{}

	for _, booking := range targets {
		booking.Status = bookingModel.StatusCompleted
		booking.CheckOutDate = day(now)
		booking.CheckOutTime = clock(now)

		next.putBooking(booking)
		mutation.Bookings = append(mutation.Bookings, booking)

		if room, ok := next.Room(booking.RoomID); ok {
			room = vacate(room)
			next.putRoom(room)
			mutation.Rooms = append(mutation.Rooms, room)
		}

		checkedOut := event(EventCheckedOut, booking, now)
		if booking.ID == primary.ID {
			checkedOut.Amount = totals.Balance
		}

		mutation.Events = append(mutation.Events, checkedOut)
	}

	return next, mutation, nil
}

// checkoutTargets lists the bookings a checkout completes: primary, plus its ACTIVE
// siblings when consolidated. Reservations in the group keep their rent on their own
// folio.
func checkoutTargets(s State, primary bookingModel.Booking, consolidated bool) []bookingModel.Booking {
	targets := []bookingModel.Booking{primary}

	if consolidated {
		for _, sibling := range billing.Siblings(primary, s.Bookings) {
			if sibling.Status == bookingModel.StatusActive {
				targets = append(targets, sibling.Clone())
			}
		}
	}

	return targets
}

// CheckoutTotals returns the folio totals a checkout of bookingID settles.
func CheckoutTotals(s State, bookingID string, opts CheckoutOptions) (billing.FolioTotals, bool) {
	primary, ok := s.Booking(bookingID)
	if !ok {
		return billing.FolioTotals{}, false
	}

	return billing.ComputeFolioTotals(primary, checkoutTargets(s, primary, opts.Consolidated), opts.Consolidated, opts.TaxRate), true
}

// CancelReservation removes a reservation that was never checked in.
func CancelReservation(s State, bookingID string, now time.Time) (State, Mutation, error) {
	booking, err := mustBooking(s, bookingID)
	if err != nil {
		return s, Mutation{}, err
	}

	if booking.Status != bookingModel.StatusReserved {
		return s, Mutation{}, failure.Conflict(fmt.Sprintf("booking %s is %s, only reservations can be cancelled", booking.ID, booking.Status))
	}

	next := s.Clone()
	next.removeBooking(booking.ID)

	booking.Status = bookingModel.StatusCancelled

	return next, Mutation{
		DeletedBookings: []string{booking.ID},
		Events:          []Event{event(EventReservationCanceled, booking, now)},
	}, nil
}

// ShiftRoom moves a live stay to another room. Shifting to the room already held changes
// nothing.
func ShiftRoom(s State, bookingID, roomID string, now time.Time) (State, Mutation, error) {
	booking, err := mustBooking(s, bookingID)
	if err != nil {
		return s, Mutation{}, err
	}

	if booking.Status != bookingModel.StatusActive {
		return s, Mutation{}, failure.Conflict(fmt.Sprintf("booking %s is %s, only active stays can shift rooms", booking.ID, booking.Status))
	}

	if booking.RoomID == roomID {
		return s, Mutation{}, nil
	}

	target, err := mustRoom(s, roomID)
	if err != nil {
		return s, Mutation{}, err
	}

	if status := allocation.EffectiveStatus(target, s.Bookings, day(now)); status != roomModel.StatusVacant {
		return s, Mutation{}, failure.Conflict(fmt.Sprintf("room %s is %s, a shift needs a vacant room", target.Number, status))
	}

	next := s.Clone()
	mutation := Mutation{}

	if source, ok := next.Room(booking.RoomID); ok {
		source = vacate(source)
		next.putRoom(source)
		mutation.Rooms = append(mutation.Rooms, source)
	}

	fromRoomID := booking.RoomID
	booking.RoomID = target.ID
	target = occupy(target, booking.ID)

	next.putRoom(target)
	next.putBooking(booking)

	shifted := event(EventRoomShifted, booking, now)
	shifted.FromRoomID = fromRoomID

	mutation.Rooms = append(mutation.Rooms, target)
	mutation.Bookings = []bookingModel.Booking{booking}
	mutation.Events = []Event{shifted}

	return next, mutation, nil
}

// ExtendStay moves the planned check-out date. The new date must fall after check-in.
func ExtendStay(s State, bookingID, checkOutDate string, now time.Time) (State, Mutation, error) {
	booking, err := mustBooking(s, bookingID)
	if err != nil {
		return s, Mutation{}, err
	}

	if !booking.Status.Open() {
		return s, Mutation{}, failure.Conflict(fmt.Sprintf("booking %s is %s and can no longer be extended", booking.ID, booking.Status))
	}

	out, err := time.Parse(constant.DayFormat, checkOutDate)
	if err != nil {
		return s, Mutation{}, failure.BadRequestFromString(fmt.Sprintf("invalid check-out date %q", checkOutDate))
	}

	in, err := time.Parse(constant.DayFormat, booking.CheckInDate)
	if err == nil && !out.After(in) {
		return s, Mutation{}, failure.BadRequestFromString("check-out date must be after the check-in date")
	}

	booking.CheckOutDate = checkOutDate

	next := s.Clone()
	next.putBooking(booking)

	return next, Mutation{
		Bookings: []bookingModel.Booking{booking},
		Events:   []Event{event(EventStayExtended, booking, now)},
	}, nil
}

func postable(booking bookingModel.Booking, what string) error {
	if !booking.Status.Open() {
		return failure.Conflict(fmt.Sprintf("booking %s is %s and no longer accepts %s", booking.ID, booking.Status, what))
	}

	if booking.IsVIP {
		return failure.Conflict(fmt.Sprintf("booking %s is a VIP stay and does not accept %s", booking.ID, what))
	}

	return nil
}

// PostCharge appends a service charge to an open, non VIP booking.
func PostCharge(s State, bookingID string, input ChargeInput, now time.Time) (State, Mutation, error) {
	booking, err := mustBooking(s, bookingID)
	if err != nil {
		return s, Mutation{}, err
	}

	if err := postable(booking, "charges"); err != nil {
		return s, Mutation{}, err
	}

	description := strings.TrimSpace(input.Description)
	if description == constant.Empty {
		return s, Mutation{}, failure.BadRequestFromString("charge description is required")
	}

	if input.Amount <= 0 {
		return s, Mutation{}, failure.BadRequestFromString("charge amount must be positive")
	}

	booking.Charges = append(booking.Charges, bookingModel.Charge{
		ID:          identifier.ChargeID(now),
		Description: description,
		Amount:      input.Amount,
		Date:        now.Format(constant.DateFormat),
	})

	next := s.Clone()
	next.putBooking(booking)

	posted := event(EventChargePosted, booking, now)
	posted.Amount = input.Amount

	return next, Mutation{
		Bookings: []bookingModel.Booking{booking},
		Events:   []Event{posted},
	}, nil
}

// PostPayment records a receipt against an open, non VIP booking.
func PostPayment(s State, bookingID string, input PaymentInput, now time.Time) (State, Mutation, error) {
	booking, err := mustBooking(s, bookingID)
	if err != nil {
		return s, Mutation{}, err
	}

	if err := postable(booking, "payments"); err != nil {
		return s, Mutation{}, err
	}

	if input.Amount <= 0 {
		return s, Mutation{}, failure.BadRequestFromString("payment amount must be positive")
	}

	method := strings.TrimSpace(input.Method)
	if method == constant.Empty {
		method = DefaultPaymentMethod
	}

	booking.Payments = append(booking.Payments, bookingModel.Payment{
		ID:      identifier.PaymentID(now),
		Amount:  input.Amount,
		Date:    now.Format(constant.DateFormat),
		Method:  method,
		Remarks: input.Remarks,
	})

	next := s.Clone()
	next.putBooking(booking)

	posted := event(EventPaymentPosted, booking, now)
	posted.Amount = input.Amount

	return next, Mutation{
		Bookings: []bookingModel.Booking{booking},
		Events:   []Event{posted},
	}, nil
}

func admissible(s State, booking bookingModel.Booking, today string, claimed map[string]bool) error {
	if booking.ID == constant.Empty {
		return failure.BadRequestFromString("booking id is required")
	}

	if _, exists := s.Booking(booking.ID); exists {
		return failure.Conflict(fmt.Sprintf("booking %s already exists", booking.ID))
	}

	room, err := mustRoom(s, booking.RoomID)
	if err != nil {
		return err
	}

	switch booking.Status {
	case bookingModel.StatusActive:
		if claimed[room.ID] {
			return failure.BadRequestFromString(fmt.Sprintf("room %s is selected twice", room.Number))
		}

		status := allocation.EffectiveStatus(room, s.Bookings, today)
		if status != roomModel.StatusVacant && status != roomModel.StatusDirty {
			return failure.Conflict(fmt.Sprintf("room %s is %s and cannot take a check-in", room.Number, status))
		}

		claimed[room.ID] = true
	case bookingModel.StatusReserved:
	case bookingModel.StatusCompleted, bookingModel.StatusCancelled:
		return failure.BadRequestFromString(fmt.Sprintf("new bookings cannot be %s", booking.Status))
	default:
		return failure.BadRequestFromString(fmt.Sprintf("unknown booking status %q", booking.Status))
	}

	return nil
}

// Admit commits a guest, an optional group profile and their new bookings in one step.
// Nothing is applied unless every booking is admissible.
func Admit(s State, admission Admission, now time.Time) (State, Mutation, error) {
	guest := admission.Guest

	if guest.ID == constant.Empty {
		return s, Mutation{}, failure.BadRequestFromString("guest id is required")
	}

	if strings.TrimSpace(guest.Name) == constant.Empty || strings.TrimSpace(guest.Phone) == constant.Empty {
		return s, Mutation{}, failure.BadRequestFromString("guest name and phone are required")
	}

	if len(admission.Bookings) == 0 {
		return s, Mutation{}, failure.BadRequestFromString("at least one room must be assigned")
	}

	if known, taken := s.Guest(guest.ID); taken && admission.NewGuest {
		return s, Mutation{}, failure.Conflict(fmt.Sprintf("guest id %s was just issued to %s, submit the check-in again", guest.ID, known.Name))
	}

	claimed := map[string]bool{}
	for _, booking := range admission.Bookings {
		if err := admissible(s, booking, day(now), claimed); err != nil {
			return s, Mutation{}, err
		}
	}

	next := s.Clone()
	mutation := Mutation{Guests: []guestModel.Guest{guest}}

	next.putGuest(guest)

	if admission.Group != nil && admission.Group.ID != constant.Empty {
		next.putGroup(*admission.Group)
		mutation.Groups = []groupModel.GroupProfile{*admission.Group}
	}

	for _, booking := range admission.Bookings {
		booking = booking.Clone()
		booking.GuestID = guest.ID

		next.putBooking(booking)
		mutation.Bookings = append(mutation.Bookings, booking)

		eventType := EventReserved

		if booking.Status == bookingModel.StatusActive {
			room, _ := next.Room(booking.RoomID)
			room = occupy(room, booking.ID)
			next.putRoom(room)
			mutation.Rooms = append(mutation.Rooms, room)
			eventType = EventAdmitted
		}

		mutation.Events = append(mutation.Events, event(eventType, booking, now))
	}

	return next, mutation, nil
}

// SetRoomStatus changes a room's stored housekeeping status. OCCUPIED and RESERVED are
// derived from bookings and cannot be set by hand, and a room with a live stay is left
// alone.
func SetRoomStatus(s State, roomID string, status roomModel.Status, now time.Time) (State, Mutation, error) {
	room, err := mustRoom(s, roomID)
	if err != nil {
		return s, Mutation{}, err
	}

	if !status.Valid() {
		return s, Mutation{}, failure.BadRequestFromString(fmt.Sprintf("unknown room status %q", status))
	}

	if status == roomModel.StatusOccupied || status == roomModel.StatusReserved {
		return s, Mutation{}, failure.BadRequestFromString(fmt.Sprintf("room status %s follows the bookings and cannot be set", status))
	}

	if holder, ok := allocation.ActiveBooking(room.ID, s.Bookings); ok {
		return s, Mutation{}, failure.Conflict(fmt.Sprintf("room %s is occupied by booking %s", room.Number, holder.ID))
	}

	room.Status = status
	room.CurrentBookingID = constant.Empty

	next := s.Clone()
	next.putRoom(room)

	return next, Mutation{
		Rooms: []roomModel.Room{room},
		Events: []Event{{
			Type:   EventRoomStatusChanged,
			RoomID: room.ID,
			Status: string(status),
			At:     now,
		}},
	}, nil
}

// UpdateGuest replaces the stored details of an existing guest.
func UpdateGuest(s State, guest guestModel.Guest, now time.Time) (State, Mutation, error) {
	if _, ok := s.Guest(guest.ID); !ok {
		return s, Mutation{}, failure.NotFound(fmt.Sprintf("guest %s not found", guest.ID))
	}

	if strings.TrimSpace(guest.Name) == constant.Empty || strings.TrimSpace(guest.Phone) == constant.Empty {
		return s, Mutation{}, failure.BadRequestFromString("guest name and phone are required")
	}

	next := s.Clone()
	next.putGuest(guest)

	return next, Mutation{
		Guests: []guestModel.Guest{guest},
		Events: []Event{{Type: EventGuestUpdated, GuestID: guest.ID, At: now}},
	}, nil
}

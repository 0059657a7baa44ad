// Package checkin turns a front desk registration form into the guest and bookings the
// stay controller admits.
package checkin

import (
	"fmt"
	"strings"
	"time"

	"frontdesk/internal/domains/allocation"
	bookingModel "frontdesk/internal/domains/booking/model"
	groupModel "frontdesk/internal/domains/group/model"
	guestModel "frontdesk/internal/domains/guest/model"
	roomModel "frontdesk/internal/domains/room/model"
	settingModel "frontdesk/internal/domains/setting/model"
	"frontdesk/internal/domains/stay/state"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/identifier"
)

const (
	DefaultCheckOutTime = "11:00"
	AdvanceRemarks      = "Advance"
)

// RoomAssignment selects a room. Nil rates fall back to the configured tariff and meal
// plan.
type RoomAssignment struct {
	RoomID   string
	Tariff   *float64
	MealRate *float64
	Discount float64
}

type Input struct {
	Guest          guestModel.Guest
	Rooms          []RoomAssignment
	Status         bookingModel.Status
	CheckInDate    string
	CheckInTime    string
	CheckOutDate   string
	CheckOutTime   string
	MealPlan       string
	IsVIP          bool
	IsGSTInclusive bool
	Advance        float64
	PaymentMethod  string
	Group          *groupModel.GroupProfile
	Agent          string
}

// Assemble validates in against the current state and builds the admission. It has no
// side effects; the stay controller re-checks room availability when admitting.
func Assemble(current state.State, settings settingModel.Settings, in Input, now time.Time) (state.Admission, error) {
	if strings.TrimSpace(in.Guest.Name) == constant.Empty || strings.TrimSpace(in.Guest.Phone) == constant.Empty {
		return state.Admission{}, failure.BadRequestFromString("guest name and phone are required")
	}

	if len(in.Rooms) == 0 {
		return state.Admission{}, failure.BadRequestFromString("at least one room must be assigned")
	}

	status := in.Status
	if status == constant.Empty {
		status = bookingModel.StatusActive
	}

	if status != bookingModel.StatusActive && status != bookingModel.StatusReserved {
		return state.Admission{}, failure.BadRequestFromString(fmt.Sprintf("new bookings cannot be %s", status))
	}

	checkInDate, checkOutDate, err := stayDates(in, now)
	if err != nil {
		return state.Admission{}, err
	}

	rooms, err := selectRooms(current, in.Rooms, status, now.Format(constant.DayFormat))
	if err != nil {
		return state.Admission{}, err
	}

	guest, newGuest := resolveGuest(current, in.Guest, now)
	group, groupID := resolveGroup(in.Group, len(rooms))

	checkInTime := in.CheckInTime
	if checkInTime == constant.Empty {
		checkInTime = now.Format(constant.ClockFormat)
	}

	checkOutTime := in.CheckOutTime
	if checkOutTime == constant.Empty {
		checkOutTime = DefaultCheckOutTime
	}

	admission := state.Admission{Guest: guest, NewGuest: newGuest, Group: group}

	for i, room := range rooms {
		assignment := in.Rooms[i]

		booking := bookingModel.Booking{
			ID:              identifier.BookingID(),
			BookingNo:       identifier.BookingNo(),
			RoomID:          room.ID,
			GuestID:         guest.ID,
			GroupID:         groupID,
			CheckInDate:     checkInDate,
			CheckInTime:     checkInTime,
			CheckOutDate:    checkOutDate,
			CheckOutTime:    checkOutTime,
			Status:          status,
			Charges:         []bookingModel.Charge{},
			Payments:        []bookingModel.Payment{},
			BasePrice:       Tariff(settings, room, guest.Adults, assignment.Tariff),
			Discount:        assignment.Discount,
			MealPlan:        in.MealPlan,
			MealRate:        MealRate(settings, in.MealPlan, assignment.MealRate),
			IsVIP:           in.IsVIP,
			IsGSTInclusive:  in.IsGSTInclusive,
			Agent:           in.Agent,
			ArrivalFrom:     guest.ArrivalFrom,
			NextDestination: guest.NextDestination,
			PurposeOfVisit:  guest.PurposeOfVisit,
		}

		if i == 0 && in.Advance > 0 {
			booking.Payments = append(booking.Payments, advance(in, now))
		}

		admission.Bookings = append(admission.Bookings, booking)
	}

	return admission, nil
}

// Tariff is the nightly rate for room: the override when given, else the configured rate
// for the room type at the party's occupancy, else the room's own price.
func Tariff(settings settingModel.Settings, room roomModel.Room, adults int, override *float64) float64 {
	if override != nil {
		return *override
	}

	if rate := settings.Tariff(room.Type, adults > 1); rate > 0 {
		return rate
	}

	return room.Price
}

func MealRate(settings settingModel.Settings, plan string, override *float64) float64 {
	if override != nil {
		return *override
	}

	return settings.MealRate(plan)
}

func stayDates(in Input, now time.Time) (checkIn, checkOut string, err error) {
	checkIn = in.CheckInDate
	if checkIn == constant.Empty {
		checkIn = now.Format(constant.DayFormat)
	}

	start, err := time.Parse(constant.DayFormat, checkIn)
	if err != nil {
		return "", "", failure.BadRequestFromString("check-in date must be formatted as YYYY-MM-DD")
	}

	checkOut = in.CheckOutDate
	if checkOut == constant.Empty {
		checkOut = start.AddDate(0, 0, 1).Format(constant.DayFormat)
	}

	end, err := time.Parse(constant.DayFormat, checkOut)
	if err != nil {
		return "", "", failure.BadRequestFromString("check-out date must be formatted as YYYY-MM-DD")
	}

	if end.Before(start) {
		return "", "", failure.BadRequestFromString("check-out date cannot be before check-in date")
	}

	return checkIn, checkOut, nil
}

func selectRooms(current state.State, assignments []RoomAssignment, status bookingModel.Status, today string) ([]roomModel.Room, error) {
	rooms := make([]roomModel.Room, 0, len(assignments))
	seen := map[string]bool{}

	for _, assignment := range assignments {
		if seen[assignment.RoomID] {
			return nil, failure.BadRequestFromString(fmt.Sprintf("room %s is selected twice", assignment.RoomID))
		}

		seen[assignment.RoomID] = true

		room, ok := current.Room(assignment.RoomID)
		if !ok {
			return nil, failure.NotFound(fmt.Sprintf("room %s not found", assignment.RoomID))
		}

		if status == bookingModel.StatusActive {
			if holder, busy := allocation.ActiveBooking(room.ID, current.Bookings); busy {
				return nil, failure.Conflict(fmt.Sprintf("room %s is occupied by booking %s", room.Number, holder.ID))
			}

			effective := allocation.EffectiveStatus(room, current.Bookings, today)
			if effective != roomModel.StatusVacant && effective != roomModel.StatusDirty {
				return nil, failure.Conflict(fmt.Sprintf("room %s is %s and cannot take a check-in", room.Number, effective))
			}
		}

		rooms = append(rooms, room)
	}

	return rooms, nil
}

// resolveGuest keeps the id of a known guest, matched by id or else by phone, and issues a
// new one otherwise. Stored documents are kept unless replaced. It reports whether the
// guest is new.
func resolveGuest(current state.State, guest guestModel.Guest, now time.Time) (guestModel.Guest, bool) {
	if guest.Adults < 1 {
		guest.Adults = 1
	}

	known, ok := current.Guest(guest.ID)
	if !ok {
		known, ok = current.GuestByPhone(guest.Phone)
	}

	if !ok {
		if guest.ID == constant.Empty {
			guest.ID = identifier.GuestID(now)
		}

		return guest, true
	}

	guest.ID = known.ID

	documents := make(map[string]string, len(known.Documents)+len(guest.Documents))
	for name, value := range known.Documents {
		documents[name] = value
	}

	for name, value := range guest.Documents {
		documents[name] = value
	}

	guest.Documents = documents

	return guest, false
}

func resolveGroup(group *groupModel.GroupProfile, rooms int) (*groupModel.GroupProfile, string) {
	if group != nil {
		profile := *group
		if profile.ID == constant.Empty {
			profile.ID = identifier.GroupID()
		}

		return &profile, profile.ID
	}

	if rooms > 1 {
		return nil, identifier.GroupID()
	}

	return nil, constant.Empty
}

func advance(in Input, now time.Time) bookingModel.Payment {
	method := in.PaymentMethod
	if method == constant.Empty {
		method = state.DefaultPaymentMethod
	}

	return bookingModel.Payment{
		ID:      identifier.AdvanceID(now),
		Amount:  in.Advance,
		Date:    now.Format(constant.DateFormat),
		Method:  method,
		Remarks: AdvanceRemarks,
	}
}

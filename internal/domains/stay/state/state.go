// Package state holds the in-memory front desk state and the reducers that move bookings
// through their lifecycle. Reducers never modify their input; they return the next state
// and the records that must be persisted.
package state

import (
	"time"

	bookingModel "frontdesk/internal/domains/booking/model"
	groupModel "frontdesk/internal/domains/group/model"
	guestModel "frontdesk/internal/domains/guest/model"
	roomModel "frontdesk/internal/domains/room/model"
)

type State struct {
	Rooms    []roomModel.Room          `json:"rooms"`
	Guests   []guestModel.Guest        `json:"guests"`
	Bookings []bookingModel.Booking    `json:"bookings"`
	Groups   []groupModel.GroupProfile `json:"groups"`
}

// Clone returns a copy that shares no slices with s.
func (s State) Clone() State {
	next := State{
		Rooms:    append([]roomModel.Room(nil), s.Rooms...),
		Guests:   append([]guestModel.Guest(nil), s.Guests...),
		Bookings: make([]bookingModel.Booking, 0, len(s.Bookings)),
		Groups:   append([]groupModel.GroupProfile(nil), s.Groups...),
	}

	for _, booking := range s.Bookings {
		next.Bookings = append(next.Bookings, booking.Clone())
	}

	return next
}

func (s State) Room(id string) (roomModel.Room, bool) {
	for _, room := range s.Rooms {
		if room.ID == id {
			return room, true
		}
	}

	return roomModel.Room{}, false
}

func (s State) Guest(id string) (guestModel.Guest, bool) {
	for _, guest := range s.Guests {
		if guest.ID == id {
			return guest, true
		}
	}

	return guestModel.Guest{}, false
}

// GuestByPhone returns the guest registered under phone, the natural key for returning
// guests.
func (s State) GuestByPhone(phone string) (guestModel.Guest, bool) {
	if phone == "" {
		return guestModel.Guest{}, false
	}

	for _, guest := range s.Guests {
		if guest.Phone == phone {
			return guest, true
		}
	}

	return guestModel.Guest{}, false
}

func (s State) Booking(id string) (bookingModel.Booking, bool) {
	for _, booking := range s.Bookings {
		if booking.ID == id {
			return booking, true
		}
	}

	return bookingModel.Booking{}, false
}

// BookingsOfGuest returns every booking registered to guestID, most recently added first.
func (s State) BookingsOfGuest(guestID string) []bookingModel.Booking {
	bookings := []bookingModel.Booking{}

	for i := len(s.Bookings) - 1; i >= 0; i-- {
		if s.Bookings[i].GuestID == guestID {
			bookings = append(bookings, s.Bookings[i])
		}
	}

	return bookings
}

func (s State) Group(id string) (groupModel.GroupProfile, bool) {
	for _, group := range s.Groups {
		if group.ID == id {
			return group, true
		}
	}

	return groupModel.GroupProfile{}, false
}

func (s *State) putRoom(room roomModel.Room) {
	for i := range s.Rooms {
		if s.Rooms[i].ID == room.ID {
			s.Rooms[i] = room

			return
		}
	}

	s.Rooms = append(s.Rooms, room)
}

func (s *State) putGuest(guest guestModel.Guest) {
	for i := range s.Guests {
		if s.Guests[i].ID == guest.ID {
			s.Guests[i] = guest

			return
		}
	}

	s.Guests = append(s.Guests, guest)
}

func (s *State) putBooking(booking bookingModel.Booking) {
	for i := range s.Bookings {
		if s.Bookings[i].ID == booking.ID {
			s.Bookings[i] = booking

			return
		}
	}

	s.Bookings = append(s.Bookings, booking)
}

func (s *State) putGroup(group groupModel.GroupProfile) {
	for i := range s.Groups {
		if s.Groups[i].ID == group.ID {
			s.Groups[i] = group

			return
		}
	}

	s.Groups = append(s.Groups, group)
}

func (s *State) removeBooking(id string) {
	for i := range s.Bookings {
		if s.Bookings[i].ID == id {
			s.Bookings = append(s.Bookings[:i], s.Bookings[i+1:]...)

			return
		}
	}
}

type EventType string

const (
	EventAdmitted            EventType = "ADMITTED"
	EventReserved            EventType = "RESERVED"
	EventCheckedIn           EventType = "CHECKED_IN"
	EventCheckedOut          EventType = "CHECKED_OUT"
	EventReservationCanceled EventType = "RESERVATION_CANCELLED"
	EventRoomShifted         EventType = "ROOM_SHIFTED"
	EventStayExtended        EventType = "STAY_EXTENDED"
	EventChargePosted        EventType = "CHARGE_POSTED"
	EventPaymentPosted       EventType = "PAYMENT_POSTED"
	EventRoomStatusChanged   EventType = "ROOM_STATUS_CHANGED"
	EventGuestUpdated        EventType = "GUEST_UPDATED"
)

// Event describes a completed transition for downstream consumers.
type Event struct {
	Type       EventType `json:"type"`
	BookingID  string    `json:"bookingId,omitempty"`
	BookingNo  string    `json:"bookingNo,omitempty"`
	GroupID    string    `json:"groupId,omitempty"`
	GuestID    string    `json:"guestId,omitempty"`
	RoomID     string    `json:"roomId,omitempty"`
	FromRoomID string    `json:"fromRoomId,omitempty"`
	Status     string    `json:"status,omitempty"`
	Amount     float64   `json:"amount,omitempty"`
	At         time.Time `json:"at"`
}

// Mutation lists the records a transition changed. Each slice holds the final version of
// a record; DeletedBookings holds ids to remove.
type Mutation struct {
	Rooms           []roomModel.Room
	Guests          []guestModel.Guest
	Bookings        []bookingModel.Booking
	Groups          []groupModel.GroupProfile
	DeletedBookings []string
	Events          []Event
}

func (m Mutation) Empty() bool {
	return len(m.Rooms) == 0 &&
		len(m.Guests) == 0 &&
		len(m.Bookings) == 0 &&
		len(m.Groups) == 0 &&
		len(m.DeletedBookings) == 0
}

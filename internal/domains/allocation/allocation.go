// Package allocation projects the effective status of rooms from the live booking set.
// Results are recomputed on every call and never stored.
package allocation

import (
	"sort"

	bookingModel "frontdesk/internal/domains/booking/model"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
)

// Derive returns the effective status of every room. An ACTIVE booking forces OCCUPIED,
// a RESERVED booking arriving today forces RESERVED, otherwise the stored status stands.
func Derive(rooms []roomModel.Room, bookings []bookingModel.Booking, today string) map[string]roomModel.Status {
	active := map[string]bool{}
	arriving := map[string]bool{}

	for _, booking := range bookings {
		switch booking.Status {
		case bookingModel.StatusActive:
			active[booking.RoomID] = true
		case bookingModel.StatusReserved:
			if booking.CheckInDate == today {
				arriving[booking.RoomID] = true
			}
		case bookingModel.StatusCompleted, bookingModel.StatusCancelled:
		}
	}

	statuses := make(map[string]roomModel.Status, len(rooms))

	for _, room := range rooms {
		switch {
		case active[room.ID]:
			statuses[room.ID] = roomModel.StatusOccupied
		case arriving[room.ID]:
			statuses[room.ID] = roomModel.StatusReserved
		default:
			statuses[room.ID] = room.Status
		}
	}

	return statuses
}

// EffectiveStatus derives the status of a single room.
func EffectiveStatus(room roomModel.Room, bookings []bookingModel.Booking, today string) roomModel.Status {
	return Derive([]roomModel.Room{room}, bookings, today)[room.ID]
}

// ActiveBooking returns the ACTIVE booking holding roomID, if any.
func ActiveBooking(roomID string, bookings []bookingModel.Booking) (bookingModel.Booking, bool) {
	for _, booking := range bookings {
		if booking.RoomID == roomID && booking.Status == bookingModel.StatusActive {
			return booking, true
		}
	}

	return bookingModel.Booking{}, false
}

// View is a room together with its effective status and occupying booking.
type View struct {
	roomModel.Room
	EffectiveStatus roomModel.Status `json:"effectiveStatus"`
	BookingID       string           `json:"bookingId,omitempty"`
	GuestID         string           `json:"guestId,omitempty"`
}

// Filter narrows a board. Empty fields match everything.
type Filter struct {
	Status roomModel.Status
	Block  string
}

// Match reports whether view passes the filter.
func (f Filter) Match(view View) bool {
	if f.Status != "" && view.EffectiveStatus != f.Status {
		return false
	}

	return f.Block == "" || view.Block == f.Block
}

type Floor struct {
	Floor int    `json:"floor"`
	Rooms []View `json:"rooms"`
}

type Block struct {
	Block  string                   `json:"block"`
	Floors []Floor                  `json:"floors"`
	Counts map[roomModel.Status]int `json:"counts"`
}

// Board is the room rack: rooms grouped by block then floor, ordered by room number.
type Board struct {
	Date   string                   `json:"date"`
	Blocks []Block                  `json:"blocks"`
	Counts map[roomModel.Status]int `json:"counts"`
}

// Views projects rooms into views, sorted by block, floor and number.
func Views(rooms []roomModel.Room, bookings []bookingModel.Booking, today string) []View {
	statuses := Derive(rooms, bookings, today)
	views := make([]View, 0, len(rooms))

	for _, room := range rooms {
		view := View{Room: room, EffectiveStatus: statuses[room.ID]}

		if booking, ok := ActiveBooking(room.ID, bookings); ok {
			view.BookingID = booking.ID
			view.GuestID = booking.GuestID
		}

		views = append(views, view)
	}

	sort.SliceStable(views, func(i, j int) bool {
		a, b := views[i], views[j]
		if a.Block != b.Block {
			return a.Block < b.Block
		}

		if a.Floor != b.Floor {
			return a.Floor < b.Floor
		}

		return a.Number < b.Number
	})

	return views
}

// BuildBoard groups the filtered views by block and floor. Counts cover the rooms shown.
func BuildBoard(rooms []roomModel.Room, bookings []bookingModel.Booking, today string, filter Filter) Board {
	board := Board{
		Date:   today,
		Blocks: []Block{},
		Counts: map[roomModel.Status]int{},
	}

	index := map[string]int{}

	for _, view := range Views(rooms, bookings, today) {
		if !filter.Match(view) {
			continue
		}

		name := view.Block
		if name == constant.Empty {
			name = "-"
		}

		i, ok := index[name]
		if !ok {
			i = len(board.Blocks)
			index[name] = i
			board.Blocks = append(board.Blocks, Block{Block: name, Floors: []Floor{}, Counts: map[roomModel.Status]int{}})
		}

		block := &board.Blocks[i]
		if n := len(block.Floors); n == 0 || block.Floors[n-1].Floor != view.Floor {
			block.Floors = append(block.Floors, Floor{Floor: view.Floor, Rooms: []View{}})
		}

		floor := &block.Floors[len(block.Floors)-1]
		floor.Rooms = append(floor.Rooms, view)
		block.Counts[view.EffectiveStatus]++
		board.Counts[view.EffectiveStatus]++
	}

	return board
}

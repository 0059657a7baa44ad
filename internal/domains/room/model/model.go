package model

const (
	TableName  = "rooms"
	EntityName = "room"
)

type Status string

const (
	StatusVacant     Status = "VACANT"
	StatusOccupied   Status = "OCCUPIED"
	StatusReserved   Status = "RESERVED"
	StatusDirty      Status = "DIRTY"
	StatusRepair     Status = "REPAIR"
	StatusManagement Status = "MANAGEMENT"
	StatusStaffBlock Status = "STAFF_BLOCK"
)

// Statuses lists every room status in display order.
var Statuses = []Status{
	StatusVacant,
	StatusOccupied,
	StatusReserved,
	StatusDirty,
	StatusRepair,
	StatusManagement,
	StatusStaffBlock,
}

func (s Status) Valid() bool {
	for _, status := range Statuses {
		if s == status {
			return true
		}
	}

	return false
}

// Room is a physical room. Status is the stored housekeeping status; the status shown
// to the desk is derived from bookings and may differ.
type Room struct {
	ID               string  `json:"id"`
	Number           string  `json:"number"`
	Floor            int     `json:"floor"`
	Block            string  `json:"block,omitempty"`
	Type             string  `json:"type"`
	Price            float64 `json:"price"`
	Status           Status  `json:"status"`
	CurrentBookingID string  `json:"currentBookingId,omitempty"`
}

func (r Room) RecordID() string {
	return r.ID
}

package model

import (
	"time"
)

const (
	DirectionPull = "pull"
	DirectionPush = "push"
)

// DefaultTables is the fixed table list exchanged with the remote store.
var DefaultTables = []string{
	"rooms", "guests", "bookings", "transactions", "groups", "supervisors", "settings",
	"banquetHalls", "eventBookings", "cateringMenu", "restaurants", "menuItems",
	"diningTables", "diningBills", "inventory", "vendors", "facilityUsage",
	"travelBookings", "stockReceipts", "shiftLogs", "cleaningLogs", "quotations",
}

type TableReport struct {
	Table   string `json:"table"`
	Records int    `json:"records"`
	Error   string `json:"error,omitempty"`
}

// Report summarises one sync pass. A failed table does not stop the pass.
type Report struct {
	Direction  string        `json:"direction"`
	Tables     []TableReport `json:"tables"`
	Records    int           `json:"records"`
	Failed     int           `json:"failed"`
	StartedAt  time.Time     `json:"startedAt"`
	FinishedAt time.Time     `json:"finishedAt"`
}

func (r *Report) Add(table TableReport) {
	r.Tables = append(r.Tables, table)
	r.Records += table.Records

	if table.Error != "" {
		r.Failed++
	}
}

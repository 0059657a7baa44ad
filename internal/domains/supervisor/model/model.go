package model

const (
	TableName  = "supervisors"
	EntityName = "supervisor"

	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Supervisor is a staff login. Password holds a bcrypt hash.
type Supervisor struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	LoginID         string   `json:"loginId"`
	Password        string   `json:"password,omitempty"`
	Role            string   `json:"role"`
	AssignedRoomIDs []string `json:"assignedRoomIds"`
	Status          string   `json:"status"`
	LastActive      string   `json:"lastActive,omitempty"`
}

func (s Supervisor) RecordID() string {
	return s.ID
}

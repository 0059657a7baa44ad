package model

const (
	TableName  = "guests"
	EntityName = "guest"
)

// Guest is the person a booking is registered to. Phone is the natural key used to
// recognise returning guests.
type Guest struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Phone           string            `json:"phone"`
	Email           string            `json:"email"`
	Address         string            `json:"address"`
	City            string            `json:"city"`
	State           string            `json:"state"`
	Nationality     string            `json:"nationality"`
	IDType          string            `json:"idType"`
	IDNumber        string            `json:"idNumber"`
	Adults          int               `json:"adults"`
	Children        int               `json:"children"`
	Kids            int               `json:"kids"`
	Others          int               `json:"others"`
	Documents       map[string]string `json:"documents"`
	Gender          string            `json:"gender,omitempty"`
	Dob             string            `json:"dob,omitempty"`
	ArrivalFrom     string            `json:"arrivalFrom,omitempty"`
	NextDestination string            `json:"nextDestination,omitempty"`
	PurposeOfVisit  string            `json:"purposeOfVisit,omitempty"`
	Remarks         string            `json:"remarks,omitempty"`
}

func (g Guest) RecordID() string {
	return g.ID
}

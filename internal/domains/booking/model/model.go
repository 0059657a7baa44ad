package model

const (
	TableName  = "bookings"
	EntityName = "booking"
)

type Status string

const (
	StatusReserved  Status = "RESERVED"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Open reports whether a booking may still receive charges and payments.
func (s Status) Open() bool {
	return s == StatusActive || s == StatusReserved
}

type Charge struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
}

type Payment struct {
	ID      string  `json:"id"`
	Amount  float64 `json:"amount"`
	Date    string  `json:"date"`
	Method  string  `json:"method"`
	Remarks string  `json:"remarks"`
}

// Booking is one room for one stay. Bookings created together for several rooms
// share a GroupID.
type Booking struct {
	ID              string    `json:"id"`
	BookingNo       string    `json:"bookingNo"`
	RoomID          string    `json:"roomId"`
	GuestID         string    `json:"guestId"`
	GroupID         string    `json:"groupId,omitempty"`
	CheckInDate     string    `json:"checkInDate"`
	CheckInTime     string    `json:"checkInTime"`
	CheckOutDate    string    `json:"checkOutDate"`
	CheckOutTime    string    `json:"checkOutTime"`
	Status          Status    `json:"status"`
	Charges         []Charge  `json:"charges"`
	Payments        []Payment `json:"payments"`
	BasePrice       float64   `json:"basePrice"`
	Discount        float64   `json:"discount"`
	MealPlan        string    `json:"mealPlan,omitempty"`
	MealRate        float64   `json:"mealRate,omitempty"`
	IsVIP           bool      `json:"isVip,omitempty"`
	IsGSTInclusive  bool      `json:"isGstInclusive,omitempty"`
	Agent           string    `json:"agent,omitempty"`
	ArrivalFrom     string    `json:"arrivalFrom,omitempty"`
	NextDestination string    `json:"nextDestination,omitempty"`
	PurposeOfVisit  string    `json:"purposeOfVisit,omitempty"`
}

func (b Booking) RecordID() string {
	return b.ID
}

// Clone returns a copy whose charge and payment slices are not shared with b.
func (b Booking) Clone() Booking {
	b.Charges = append([]Charge(nil), b.Charges...)
	b.Payments = append([]Payment(nil), b.Payments...)

	return b
}

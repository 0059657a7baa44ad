package dto

import (
	"frontdesk/internal/domains/billing"
	bookingModel "frontdesk/internal/domains/booking/model"
	guestModel "frontdesk/internal/domains/guest/model"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/stay/state"
)

type CheckoutRequest struct {
	Consolidated bool `json:"consolidated"`
	Confirmed    bool `json:"confirmed"`
}

type ShiftRoomRequest struct {
	RoomID string `json:"roomId" validate:"required"`
}

type ExtendStayRequest struct {
	CheckOutDate string `json:"checkOutDate" validate:"required,datetime=2006-01-02"`
}

type ChargeRequest struct {
	Description string  `json:"description" validate:"required,max=200"`
	Amount      float64 `json:"amount"      validate:"gt=0"`
}

func (r *ChargeRequest) ToInput() state.ChargeInput {
	return state.ChargeInput{Description: r.Description, Amount: r.Amount}
}

type PaymentRequest struct {
	Amount  float64 `json:"amount"  validate:"gt=0"`
	Method  string  `json:"method"  validate:"omitempty,max=50"`
	Remarks string  `json:"remarks" validate:"omitempty,max=200"`
}

func (r *PaymentRequest) ToInput() state.PaymentInput {
	return state.PaymentInput{Amount: r.Amount, Method: r.Method, Remarks: r.Remarks}
}

type RoomStatusRequest struct {
	Status roomModel.Status `json:"status" validate:"required,valid"`
}

type UpdateGuestRequest struct {
	Name            string `json:"name"            validate:"required,max=100"`
	Phone           string `json:"phone"           validate:"required,phone"`
	Email           string `json:"email"           validate:"omitempty,email"`
	Address         string `json:"address"         validate:"omitempty,max=300"`
	City            string `json:"city"            validate:"omitempty,max=100"`
	State           string `json:"state"           validate:"omitempty,max=100"`
	Nationality     string `json:"nationality"     validate:"omitempty,max=100"`
	IDType          string `json:"idType"          validate:"omitempty,max=50"`
	IDNumber        string `json:"idNumber"        validate:"omitempty,max=50"`
	Gender          string `json:"gender"          validate:"omitempty,max=20"`
	Dob             string `json:"dob"             validate:"omitempty,datetime=2006-01-02"`
	ArrivalFrom     string `json:"arrivalFrom"     validate:"omitempty,max=100"`
	NextDestination string `json:"nextDestination" validate:"omitempty,max=100"`
	PurposeOfVisit  string `json:"purposeOfVisit"  validate:"omitempty,max=100"`
	Remarks         string `json:"remarks"         validate:"omitempty,max=300"`
}

// Apply copies the editable fields onto guest, keeping its id, party size and documents.
func (r *UpdateGuestRequest) Apply(guest guestModel.Guest) guestModel.Guest {
	guest.Name = r.Name
	guest.Phone = r.Phone
	guest.Email = r.Email
	guest.Address = r.Address
	guest.City = r.City
	guest.State = r.State
	guest.Nationality = r.Nationality
	guest.IDType = r.IDType
	guest.IDNumber = r.IDNumber
	guest.Gender = r.Gender
	guest.Dob = r.Dob
	guest.ArrivalFrom = r.ArrivalFrom
	guest.NextDestination = r.NextDestination
	guest.PurposeOfVisit = r.PurposeOfVisit
	guest.Remarks = r.Remarks

	return guest
}

// StayResponse is a booking after a transition together with its own folio totals.
type StayResponse struct {
	Booking bookingModel.Booking `json:"booking"`
	Totals  billing.FolioTotals  `json:"totals"`
}

// CheckoutResponse lists every booking closed by a checkout and the balance settled.
type CheckoutResponse struct {
	Bookings []bookingModel.Booking `json:"bookings"`
	Totals   billing.FolioTotals    `json:"totals"`
}

type GuestHistoryResponse struct {
	Guest    guestModel.Guest       `json:"guest"`
	Bookings []bookingModel.Booking `json:"bookings"`
}

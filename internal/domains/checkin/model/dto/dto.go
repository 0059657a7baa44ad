package dto

import (
	"frontdesk/internal/domains/billing"
	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/checkin"
	groupModel "frontdesk/internal/domains/group/model"
	guestModel "frontdesk/internal/domains/guest/model"
)

type GuestRequest struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"            validate:"required,max=100"`
	Phone           string            `json:"phone"           validate:"required,phone"`
	Email           string            `json:"email"           validate:"omitempty,email"`
	Gender          string            `json:"gender"          validate:"omitempty,max=20"`
	Dob             string            `json:"dob"             validate:"omitempty,datetime=2006-01-02"`
	Address         string            `json:"address"         validate:"omitempty,max=300"`
	City            string            `json:"city"            validate:"omitempty,max=100"`
	State           string            `json:"state"           validate:"omitempty,max=100"`
	Nationality     string            `json:"nationality"     validate:"omitempty,max=100"`
	IDType          string            `json:"idType"          validate:"omitempty,max=50"`
	IDNumber        string            `json:"idNumber"        validate:"omitempty,max=50"`
	Adults          int               `json:"adults"          validate:"min=0,max=20"`
	Children        int               `json:"children"        validate:"min=0,max=20"`
	Kids            int               `json:"kids"            validate:"min=0,max=20"`
	Others          int               `json:"others"          validate:"min=0,max=20"`
	ArrivalFrom     string            `json:"arrivalFrom"     validate:"omitempty,max=100"`
	NextDestination string            `json:"nextDestination" validate:"omitempty,max=100"`
	PurposeOfVisit  string            `json:"purposeOfVisit"  validate:"omitempty,max=100"`
	Remarks         string            `json:"remarks"         validate:"omitempty,max=300"`
	Documents       map[string]string `json:"documents"       validate:"omitempty,max=8,dive,document"`
}

func (r *GuestRequest) ToModel() guestModel.Guest {
	return guestModel.Guest{
		ID:              r.ID,
		Name:            r.Name,
		Phone:           r.Phone,
		Email:           r.Email,
		Gender:          r.Gender,
		Dob:             r.Dob,
		Address:         r.Address,
		City:            r.City,
		State:           r.State,
		Nationality:     r.Nationality,
		IDType:          r.IDType,
		IDNumber:        r.IDNumber,
		Adults:          r.Adults,
		Children:        r.Children,
		Kids:            r.Kids,
		Others:          r.Others,
		ArrivalFrom:     r.ArrivalFrom,
		NextDestination: r.NextDestination,
		PurposeOfVisit:  r.PurposeOfVisit,
		Remarks:         r.Remarks,
		Documents:       r.Documents,
	}
}

type RoomAssignmentRequest struct {
	RoomID   string   `json:"roomId"   validate:"required"`
	Tariff   *float64 `json:"tariff"   validate:"omitempty,min=0"`
	MealRate *float64 `json:"mealRate" validate:"omitempty,min=0"`
	Discount float64  `json:"discount" validate:"min=0"`
}

type GroupRequest struct {
	ID                string `json:"id"`
	GroupName         string `json:"groupName"         validate:"required,max=150"`
	Phone             string `json:"phone"             validate:"omitempty,max=20"`
	Email             string `json:"email"             validate:"omitempty,email"`
	HeadName          string `json:"headName"          validate:"omitempty,max=100"`
	BillingPreference string `json:"billingPreference" validate:"omitempty,max=50"`
	GroupType         string `json:"groupType"         validate:"omitempty,max=50"`
	OrgName           string `json:"orgName"           validate:"omitempty,max=150"`
}

type CheckInRequest struct {
	Guest          GuestRequest            `json:"guest"          validate:"required"`
	Rooms          []RoomAssignmentRequest `json:"rooms"          validate:"required,min=1,dive"`
	CheckInDate    string                  `json:"checkInDate"    validate:"omitempty,datetime=2006-01-02"`
	CheckInTime    string                  `json:"checkInTime"    validate:"omitempty,datetime=15:04"`
	CheckOutDate   string                  `json:"checkOutDate"   validate:"omitempty,datetime=2006-01-02"`
	CheckOutTime   string                  `json:"checkOutTime"   validate:"omitempty,datetime=15:04"`
	MealPlan       string                  `json:"mealPlan"       validate:"omitempty,max=50"`
	IsVIP          bool                    `json:"isVip"`
	IsGSTInclusive bool                    `json:"isGstInclusive"`
	Advance        float64                 `json:"advance"        validate:"min=0"`
	PaymentMethod  string                  `json:"paymentMethod"  validate:"omitempty,max=50"`
	Agent          string                  `json:"agent"          validate:"omitempty,max=100"`
	Group          *GroupRequest           `json:"group"          validate:"omitempty"`
}

// ToInput maps the request onto assembler input with the given booking status.
func (r *CheckInRequest) ToInput(status bookingModel.Status) checkin.Input {
	in := checkin.Input{
		Guest:          r.Guest.ToModel(),
		Rooms:          make([]checkin.RoomAssignment, 0, len(r.Rooms)),
		Status:         status,
		CheckInDate:    r.CheckInDate,
		CheckInTime:    r.CheckInTime,
		CheckOutDate:   r.CheckOutDate,
		CheckOutTime:   r.CheckOutTime,
		MealPlan:       r.MealPlan,
		IsVIP:          r.IsVIP,
		IsGSTInclusive: r.IsGSTInclusive,
		Advance:        r.Advance,
		PaymentMethod:  r.PaymentMethod,
		Agent:          r.Agent,
	}

	for _, room := range r.Rooms {
		in.Rooms = append(in.Rooms, checkin.RoomAssignment{
			RoomID:   room.RoomID,
			Tariff:   room.Tariff,
			MealRate: room.MealRate,
			Discount: room.Discount,
		})
	}

	if r.Group != nil {
		in.Group = &groupModel.GroupProfile{
			ID:                r.Group.ID,
			GroupName:         r.Group.GroupName,
			Phone:             r.Group.Phone,
			Email:             r.Group.Email,
			HeadName:          r.Group.HeadName,
			Status:            groupModel.StatusActive,
			BillingPreference: r.Group.BillingPreference,
			GroupType:         r.Group.GroupType,
			OrgName:           r.Group.OrgName,
		}
	}

	return in
}

type CheckInResponse struct {
	Guest    guestModel.Guest       `json:"guest"`
	GroupID  string                 `json:"groupId,omitempty"`
	Bookings []bookingModel.Booking `json:"bookings"`
	Totals   billing.FolioTotals    `json:"totals"`
}

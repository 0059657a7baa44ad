package billing

import (
	"frontdesk/internal/domains/booking/model"
)

type LineKind string

const (
	LineRent     LineKind = "RENT"
	LineMeal     LineKind = "MEAL"
	LineCharge   LineKind = "CHARGE"
	LineDiscount LineKind = "DISCOUNT"
	LinePayment  LineKind = "PAYMENT"
)

// Line is one row of a folio statement. Discounts and payments carry positive amounts;
// Kind tells which side of the account they sit on.
type Line struct {
	BookingID   string   `json:"bookingId"`
	BookingNo   string   `json:"bookingNo"`
	RoomID      string   `json:"roomId"`
	Kind        LineKind `json:"kind"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Quantity    int      `json:"quantity"`
	Rate        float64  `json:"rate"`
	Amount      float64  `json:"amount"`
}

type Folio struct {
	PrimaryID    string      `json:"primaryId"`
	GroupID      string      `json:"groupId,omitempty"`
	Consolidated bool        `json:"consolidated"`
	VIP          bool        `json:"vip"`
	GSTInclusive bool        `json:"gstInclusive"`
	TaxRate      float64     `json:"taxRate"`
	BookingIDs   []string    `json:"bookingIds"`
	Lines        []Line      `json:"lines"`
	Totals       FolioTotals `json:"totals"`
}

// BuildFolio itemises the folio set of primary and attaches the rounded totals.
func BuildFolio(primary model.Booking, bookings []model.Booking, consolidated bool, taxRate float64) Folio {
	set := FolioSet(primary, bookings, consolidated)

	folio := Folio{
		PrimaryID:    primary.ID,
		GroupID:      primary.GroupID,
		Consolidated: consolidated,
		VIP:          primary.IsVIP,
		GSTInclusive: primary.IsGSTInclusive,
		TaxRate:      taxRate,
		BookingIDs:   make([]string, 0, len(set)),
		Lines:        []Line{},
		Totals:       ComputeFolioTotals(primary, bookings, consolidated, taxRate).Rounded(),
	}

	for _, booking := range set {
		folio.BookingIDs = append(folio.BookingIDs, booking.ID)
		folio.Lines = append(folio.Lines, bookingLines(booking)...)
	}

	return folio
}

func bookingLines(booking model.Booking) []Line {
	nights := NightsOf(booking)
	line := func(kind LineKind, description, date string, quantity int, rate, amount float64) Line {
		return Line{
			BookingID:   booking.ID,
			BookingNo:   booking.BookingNo,
			RoomID:      booking.RoomID,
			Kind:        kind,
			Description: description,
			Date:        date,
			Quantity:    quantity,
			Rate:        rate,
			Amount:      amount,
		}
	}

	lines := []Line{
		line(LineRent, "Room rent", booking.CheckInDate, nights, booking.BasePrice, booking.BasePrice*float64(nights)),
	}

	if booking.MealRate > 0 {
		description := "Meal plan"
		if booking.MealPlan != "" {
			description += " " + booking.MealPlan
		}

		lines = append(lines, line(LineMeal, description, booking.CheckInDate, nights, booking.MealRate, booking.MealRate*float64(nights)))
	}

	for _, charge := range booking.Charges {
		lines = append(lines, line(LineCharge, charge.Description, charge.Date, 1, charge.Amount, charge.Amount))
	}

	if booking.Discount > 0 {
		lines = append(lines, line(LineDiscount, "Discount", booking.CheckInDate, 1, booking.Discount, booking.Discount))
	}

	for _, payment := range booking.Payments {
		description := payment.Method
		if payment.Remarks != "" {
			description += " " + payment.Remarks
		}

		lines = append(lines, line(LinePayment, description, payment.Date, 1, payment.Amount, payment.Amount))
	}

	return lines
}

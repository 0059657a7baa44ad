// Package billing computes folio totals for one booking or a group of sibling bookings.
// Everything here is a pure function of its arguments.
package billing

import (
	"math"
	"time"

	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
)

const hoursPerDay = 24

// Assignment is the per-room rate a stay is billed at.
type Assignment struct {
	Tariff   float64
	MealRate float64
	Discount float64
}

// FolioTotals is the computed account of a folio. Values keep full precision; use
// Rounded for presentation.
type FolioTotals struct {
	Bookings    int     `json:"bookings"`
	Nights      int     `json:"nights"`
	RoomRent    float64 `json:"roomRent"`
	Charges     float64 `json:"charges"`
	Payments    float64 `json:"payments"`
	Discount    float64 `json:"discount"`
	TaxableBase float64 `json:"taxableBase"`
	Tax         float64 `json:"tax"`
	GrandTotal  float64 `json:"grandTotal"`
	Balance     float64 `json:"balance"`
}

func (t FolioTotals) Rounded() FolioTotals {
	t.RoomRent = shared.RoundMoney(t.RoomRent)
	t.Charges = shared.RoundMoney(t.Charges)
	t.Payments = shared.RoundMoney(t.Payments)
	t.Discount = shared.RoundMoney(t.Discount)
	t.TaxableBase = shared.RoundMoney(t.TaxableBase)
	t.Tax = shared.RoundMoney(t.Tax)
	t.GrandTotal = shared.RoundMoney(t.GrandTotal)
	t.Balance = shared.RoundMoney(t.Balance)

	return t
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range []string{constant.DayFormat, constant.DateFormat} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// Nights returns the number of billable nights between two dates, never less than one.
// Dates that cannot be parsed bill a single night.
func Nights(checkIn, checkOut string) int {
	start, ok := parseDate(checkIn)
	if !ok {
		return 1
	}

	end, ok := parseDate(checkOut)
	if !ok {
		return 1
	}

	nights := int(math.Ceil(end.Sub(start).Hours() / hoursPerDay))

	return max(1, nights)
}

// NightsOf is Nights over a booking's planned dates.
func NightsOf(booking model.Booking) int {
	return Nights(booking.CheckInDate, booking.CheckOutDate)
}

// StayValue is (tariff + meal rate) per night less the flat per-stay discount.
func StayValue(assignment Assignment, nights int) float64 {
	return (assignment.Tariff+assignment.MealRate)*float64(max(1, nights)) - assignment.Discount
}

// ApplyTax splits a raw taxable amount into base and tax. In inclusive mode raw already
// contains the tax; otherwise tax is added on top.
func ApplyTax(raw, taxRate float64, inclusive bool) (base, tax float64) {
	if inclusive {
		base = raw / (1 + taxRate/100)

		return base, raw - base
	}

	return raw, raw * taxRate / 100
}

// FolioSet returns the bookings billed on primary's folio. Without consolidation it is
// the primary alone; with consolidation it adds every ACTIVE or RESERVED booking sharing
// the primary's non-empty group id.
func FolioSet(primary model.Booking, bookings []model.Booking, consolidated bool) []model.Booking {
	set := []model.Booking{primary}

	if !consolidated || primary.GroupID == constant.Empty {
		return set
	}

	for _, booking := range bookings {
		if booking.ID == primary.ID || booking.GroupID != primary.GroupID || !booking.Status.Open() {
			continue
		}

		set = append(set, booking)
	}

	return set
}

// Siblings returns the open bookings sharing primary's group, primary excluded.
func Siblings(primary model.Booking, bookings []model.Booking) []model.Booking {
	return FolioSet(primary, bookings, true)[1:]
}

// ComputeFolioTotals sums rent, charges, payments and discounts over the folio set and
// applies the primary booking's tax mode to the aggregate. A VIP primary bills nothing.
func ComputeFolioTotals(primary model.Booking, bookings []model.Booking, consolidated bool, taxRate float64) FolioTotals {
	set := FolioSet(primary, bookings, consolidated)

	if primary.IsVIP {
		return FolioTotals{Bookings: len(set)}
	}

	totals := FolioTotals{Bookings: len(set)}

	for _, booking := range set {
		nights := NightsOf(booking)

		totals.Nights += nights
		totals.RoomRent += (booking.BasePrice + booking.MealRate) * float64(nights)
		totals.Discount += booking.Discount

		for _, charge := range booking.Charges {
			totals.Charges += charge.Amount
		}

		for _, payment := range booking.Payments {
			totals.Payments += payment.Amount
		}
	}

	raw := totals.RoomRent + totals.Charges - totals.Discount
	totals.TaxableBase, totals.Tax = ApplyTax(raw, taxRate, primary.IsGSTInclusive)
	totals.GrandTotal = totals.TaxableBase + totals.Tax
	totals.Balance = totals.GrandTotal - totals.Payments

	return totals
}

// Outstanding reports whether a folio still has money due at presentation precision.
func Outstanding(totals FolioTotals) bool {
	return shared.RoundMoney(totals.Balance) > 0
}

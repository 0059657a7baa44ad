// Package identifier generates the record ids and human-readable numbers used at the
// front desk.
package identifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	PrefixBooking   = "B-"
	PrefixBookingNo = "BK-"
	PrefixCharge    = "CHG-"
	PrefixGuest     = "G-"
	PrefixAdvance   = "ADV-"
	PrefixPayment   = "PAY-"
	PrefixGroup     = "GRP-"
	PrefixStaff     = "SUP-"

	bookingTokenLength   = 5
	bookingNoTokenLength = 6
)

func token(length int) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:length]
}

func stamped(prefix string, at time.Time) string {
	return fmt.Sprintf("%s%d", prefix, at.UnixMilli())
}

// BookingID returns "B-" followed by five random lowercase hex characters.
func BookingID() string {
	return PrefixBooking + token(bookingTokenLength)
}

// BookingNo returns "BK-" followed by six random uppercase characters.
func BookingNo() string {
	return PrefixBookingNo + strings.ToUpper(token(bookingNoTokenLength))
}

func ChargeID(at time.Time) string {
	return stamped(PrefixCharge, at)
}

func GuestID(at time.Time) string {
	return stamped(PrefixGuest, at)
}

func AdvanceID(at time.Time) string {
	return stamped(PrefixAdvance, at)
}

func PaymentID(at time.Time) string {
	return stamped(PrefixPayment, at)
}

// GroupID correlates bookings created together for several rooms.
func GroupID() string {
	return PrefixGroup + strings.ToUpper(token(bookingNoTokenLength+2))
}

func SupervisorID() string {
	return PrefixStaff + uuid.NewString()
}

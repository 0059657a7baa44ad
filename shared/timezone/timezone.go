// Package timezone keeps the property's wall clock. Business days, night counts and folio
// stamps are all taken in the zone configured by APP_TIMEZONE.
package timezone

import (
	"time"
	_ "time/tzdata"

	"frontdesk/config"
	"frontdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

var appLocation = time.UTC

func init() {
	appLocation = Load(config.Get().App.Timezone)
}

// Load resolves an IANA zone name such as "Asia/Kolkata". Empty or unknown names fall back
// to UTC.
func Load(name string) *time.Location {
	if name == constant.Empty {
		log.Warn().Msg("No timezone configured, using UTC as default")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return loc
}

func Now() time.Time {
	return time.Now().In(appLocation)
}

func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

func GetLocation() *time.Location {
	return appLocation
}

// Parse reads value as a wall-clock time at the property.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, appLocation)
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// Today returns the current business day at the property as YYYY-MM-DD.
func Today() string {
	return Now().Format(constant.DayFormat)
}

package timezone_test

import (
	"testing"
	"time"

	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		zone string
		want string
	}{
		{name: "kolkata", zone: "Asia/Kolkata", want: "Asia/Kolkata"},
		{name: "empty falls back to utc", zone: "", want: "UTC"},
		{name: "unknown falls back to utc", zone: "Mars/Olympus_Mons", want: "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timezone.Load(tt.zone).String())
		})
	}
}

func TestClockUsesAppLocation(t *testing.T) {
	loc := timezone.GetLocation()
	require.NotNil(t, loc)

	assert.Equal(t, loc, timezone.Now().Location())
	assert.Equal(t, loc, timezone.ToAppTime(time.Now().UTC()).Location())
}

func TestParseAndFormatRoundTrip(t *testing.T) {
	parsed, err := timezone.Parse(constant.DayFormat, "2025-03-14")
	require.NoError(t, err)

	assert.Equal(t, timezone.GetLocation(), parsed.Location())
	assert.Equal(t, "2025-03-14", timezone.Format(parsed, constant.DayFormat))
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	_, err := time.Parse(constant.DayFormat, today)
	require.NoError(t, err)

	assert.Equal(t, timezone.Format(timezone.Now(), constant.DayFormat), today)
}

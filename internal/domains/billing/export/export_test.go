package export_test

import (
	"bytes"
	"testing"

	"frontdesk/internal/domains/billing"
	"frontdesk/internal/domains/billing/export"
	"frontdesk/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWrite(t *testing.T) {
	booking := model.Booking{
		ID:           "B-aaaaa",
		BookingNo:    "BK-AAAAAA",
		RoomID:       "A101",
		Status:       model.StatusActive,
		CheckInDate:  "2024-06-01",
		CheckOutDate: "2024-06-03",
		BasePrice:    2500,
		Payments:     []model.Payment{{ID: "ADV-1", Amount: 1000, Method: "Cash", Date: "2024-06-01"}},
	}
	folio := billing.BuildFolio(booking, nil, false, 12)

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, folio, export.Header{PropertyName: "Hotel Ayodhya", GuestName: "Ravi Kumar"}))

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{export.SheetLines, export.SheetSummary}, file.GetSheetList())

	rows, err := file.GetRows(export.SheetLines)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Booking No", rows[0][0])
	assert.Equal(t, "RENT", rows[1][2])
	assert.Equal(t, "5000", rows[1][7])
	assert.Equal(t, "-1000", rows[2][7])

	title, err := file.GetCellValue(export.SheetSummary, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Hotel Ayodhya", title)

	balance, err := file.GetCellValue(export.SheetSummary, "B15")
	require.NoError(t, err)
	assert.Equal(t, "4600", balance)
}

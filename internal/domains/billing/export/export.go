// Package export renders a folio statement as an XLSX workbook.
package export

import (
	"errors"
	"fmt"
	"io"

	"frontdesk/internal/domains/billing"

	"github.com/xuri/excelize/v2"
)

const (
	SheetLines   = "Folio"
	SheetSummary = "Summary"

	defaultSheet = "Sheet1"
	maxSheetName = 31
)

var (
	errNoActiveSheet = errors.New("no active sheet")

	lineColumns = []string{"Booking No", "Room", "Type", "Description", "Date", "Qty", "Rate", "Amount"}
)

// Header is printed above the summary sheet.
type Header struct {
	PropertyName string
	GSTNumber    string
	GuestName    string
	GuestPhone   string
}

type sheetWriter struct {
	file         *excelize.File
	currentSheet string
	currentRow   int
}

func newSheetWriter() *sheetWriter {
	return &sheetWriter{file: excelize.NewFile()}
}

func (w *sheetWriter) addSheet(name string) error {
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}

	if w.currentSheet == "" {
		if err := w.file.SetSheetName(defaultSheet, name); err != nil {
			return fmt.Errorf("rename sheet %s: %w", name, err)
		}
	} else if _, err := w.file.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}

	w.currentSheet = name
	w.currentRow = 1

	return nil
}

func (w *sheetWriter) writeRow(row []any, bold bool) error {
	if w.currentSheet == "" {
		return errNoActiveSheet
	}

	for i, val := range row {
		cell, err := excelize.CoordinatesToCellName(i+1, w.currentRow)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}

		if err := w.file.SetCellValue(w.currentSheet, cell, val); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}

	if bold && len(row) > 0 {
		style, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err == nil {
			startCell, _ := excelize.CoordinatesToCellName(1, w.currentRow)
			endCell, _ := excelize.CoordinatesToCellName(len(row), w.currentRow)
			_ = w.file.SetCellStyle(w.currentSheet, startCell, endCell, style)
		}
	}

	w.currentRow++

	return nil
}

// Write renders folio into an XLSX workbook with an itemised sheet and a summary sheet.
func Write(wr io.Writer, folio billing.Folio, header Header) (err error) {
	w := newSheetWriter()
	defer func() {
		if closeErr := w.file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close workbook: %w", closeErr)
		}
	}()

	if err = writeLines(w, folio); err != nil {
		return err
	}

	if err = writeSummary(w, folio, header); err != nil {
		return err
	}

	if err = w.file.Write(wr); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	return nil
}

func writeLines(w *sheetWriter, folio billing.Folio) error {
	if err := w.addSheet(SheetLines); err != nil {
		return err
	}

	header := make([]any, 0, len(lineColumns))
	for _, column := range lineColumns {
		header = append(header, column)
	}

	if err := w.writeRow(header, true); err != nil {
		return err
	}

	for _, line := range folio.Lines {
		amount := line.Amount
		if line.Kind == billing.LineDiscount || line.Kind == billing.LinePayment {
			amount = -amount
		}

		row := []any{line.BookingNo, line.RoomID, string(line.Kind), line.Description, line.Date, line.Quantity, line.Rate, amount}
		if err := w.writeRow(row, false); err != nil {
			return err
		}
	}

	return nil
}

func writeSummary(w *sheetWriter, folio billing.Folio, header Header) error {
	if err := w.addSheet(SheetSummary); err != nil {
		return err
	}

	totals := folio.Totals
	taxMode := "Exclusive"

	if folio.GSTInclusive {
		taxMode = "Inclusive"
	}

	rows := [][]any{
		{header.PropertyName},
		{"GSTIN", header.GSTNumber},
		{"Guest", header.GuestName},
		{"Phone", header.GuestPhone},
		{"Folio", folio.PrimaryID},
		{"Bookings", totals.Bookings},
		{"Nights", totals.Nights},
		{"Room Rent", totals.RoomRent},
		{"Charges", totals.Charges},
		{"Discount", totals.Discount},
		{"Taxable Value", totals.TaxableBase},
		{fmt.Sprintf("GST %g%% (%s)", folio.TaxRate, taxMode), totals.Tax},
		{"Grand Total", totals.GrandTotal},
		{"Paid", totals.Payments},
		{"Balance", totals.Balance},
	}

	if folio.VIP {
		rows = append(rows, []any{"VIP complimentary stay"})
	}

	for i, row := range rows {
		if err := w.writeRow(row, i == 0 || i == len(rows)-1); err != nil {
			return err
		}
	}

	return nil
}

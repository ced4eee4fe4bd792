// Package models defines the sheet layout and the data produced by a
// rescheduling run.
package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Layout describes where the scheduling grid lives inside the workbook.
type Layout struct {
	// SheetName is the worksheet holding the delivery calendar.
	SheetName string `json:"sheet_name"`
	// DeliveryColumns are the delivery-day columns, left to right.
	DeliveryColumns []string `json:"delivery_columns"`
	// ObservationsColumn receives the audit note of every moved task.
	ObservationsColumn string `json:"observations_column"`
	// DayRow holds the day-of-month of each delivery column (1-based).
	DayRow int `json:"day_row"`
	// WeekdayRow holds the weekday code of each delivery column (1-based).
	WeekdayRow int `json:"weekday_row"`
	// FirstTaskRow is the first task row (1-based).
	FirstTaskRow int `json:"first_task_row"`
}

// DefaultLayout returns the layout of the logistics calendar template.
func DefaultLayout() Layout {
	return Layout{
		SheetName:          "01. Calendario SCL Abarrotes",
		DeliveryColumns:    []string{"AI", "AJ", "AK", "AL", "AM", "AN"},
		ObservationsColumn: "CT",
		DayRow:             3,
		WeekdayRow:         6,
		FirstTaskRow:       8,
	}
}

// SetDefaults fills every zero field with the value from DefaultLayout.
func (l *Layout) SetDefaults() {
	def := DefaultLayout()
	if l.SheetName == "" {
		l.SheetName = def.SheetName
	}
	if len(l.DeliveryColumns) == 0 {
		l.DeliveryColumns = def.DeliveryColumns
	}
	if l.ObservationsColumn == "" {
		l.ObservationsColumn = def.ObservationsColumn
	}
	if l.DayRow == 0 {
		l.DayRow = def.DayRow
	}
	if l.WeekdayRow == 0 {
		l.WeekdayRow = def.WeekdayRow
	}
	if l.FirstTaskRow == 0 {
		l.FirstTaskRow = def.FirstTaskRow
	}
}

// Validate checks that the layout can be scanned.
// Delivery columns must be contiguous and ordered left to right.
func (l Layout) Validate() error {
	if l.SheetName == "" {
		return errors.New("sheet name is required")
	}
	if len(l.DeliveryColumns) == 0 {
		return errors.New("at least one delivery column is required")
	}

	prev := 0
	for i, col := range l.DeliveryColumns {
		n, err := excelize.ColumnNameToNumber(col)
		if err != nil {
			return fmt.Errorf("delivery column %q: %w", col, err)
		}
		if i > 0 && n != prev+1 {
			return fmt.Errorf("delivery column %q does not follow %q", col, l.DeliveryColumns[i-1])
		}
		prev = n
	}

	if _, err := excelize.ColumnNameToNumber(l.ObservationsColumn); err != nil {
		return fmt.Errorf("observations column %q: %w", l.ObservationsColumn, err)
	}
	if l.columnIndex(l.ObservationsColumn) >= 0 {
		return fmt.Errorf("observations column %q overlaps the delivery columns", l.ObservationsColumn)
	}

	if l.DayRow < 1 || l.WeekdayRow < 1 || l.FirstTaskRow < 1 {
		return errors.New("rows must be positive")
	}
	if l.DayRow >= l.FirstTaskRow || l.WeekdayRow >= l.FirstTaskRow {
		return fmt.Errorf("header rows must come before first task row %d", l.FirstTaskRow)
	}
	return nil
}

// Predecessor returns the delivery column immediately left of col.
// It reports false when col is the first delivery column or not one at all.
func (l Layout) Predecessor(col string) (string, bool) {
	i := l.columnIndex(col)
	if i <= 0 {
		return "", false
	}
	return l.DeliveryColumns[i-1], true
}

func (l Layout) columnIndex(col string) int {
	for i, c := range l.DeliveryColumns {
		if strings.EqualFold(c, col) {
			return i
		}
	}
	return -1
}

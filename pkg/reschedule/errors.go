package reschedule

import (
	"errors"
	"fmt"
)

// ErrNoInput indicates no spreadsheet was supplied.
var ErrNoInput = errors.New("no spreadsheet supplied")

// ErrLoad indicates the spreadsheet could not be read or lacks the calendar sheet.
var ErrLoad = errors.New("cannot load spreadsheet")

// ErrDayNotFound indicates the holiday day is absent from every delivery header.
var ErrDayNotFound = errors.New("day not found in delivery columns")

// ErrCannotAnticipateFirstDay indicates the holiday falls on the first
// delivery column, which has no earlier column to move into.
var ErrCannotAnticipateFirstDay = errors.New("holiday is the first delivery day")

// LoadError represents a failure to open the workbook or find its calendar.
type LoadError struct {
	FileName  string
	SheetName string
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %q (sheet %q): %v", e.FileName, e.SheetName, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrLoad, e.Err}
}

// SheetError represents a cell access failure while rescheduling.
type SheetError struct {
	SheetName string
	Cell      string
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q cell %s: %v", e.SheetName, e.Cell, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

func newSheetError(sheetName, cell string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Cell:      cell,
		Err:       err,
	}
}

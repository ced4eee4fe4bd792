package reschedule

import (
	"fmt"

	"github.com/ukaji3/reschedule-go/pkg/reschedule/i18n"
	"github.com/ukaji3/reschedule-go/pkg/reschedule/models"
	"github.com/ukaji3/reschedule-go/pkg/reschedule/parser"
	"github.com/xuri/excelize/v2"
)

// Task values outside this range mean "nothing scheduled".
const (
	minTaskValue = 1
	maxTaskValue = 6
)

// Reschedule moves every task of the holiday column one delivery column to the
// left, writing the destination weekday number, clearing the holiday cell and
// noting the change in the observations column.
//
// The returned report is never nil and its Log is always populated, also on
// error. ErrDayNotFound and ErrCannotAnticipateFirstDay are returned before
// any cell is written. Rows already moved are kept if a later cell write fails.
func Reschedule(f *excelize.File, holidayDay int, opts Options) (*models.Report, error) {
	layout := opts.Layout
	log := opts.logger()
	p := i18n.NewPrinter(opts.Lang)
	report := &models.Report{HolidayDay: holidayDay}

	fail := func(err error) (*models.Report, error) {
		report.Append(p.Sprintf(i18n.ReadSheetError, err.Error()))
		log.Errorf("reschedule day %d: %v", holidayDay, err)
		return report, err
	}

	if err := layout.Validate(); err != nil {
		return fail(fmt.Errorf("invalid layout: %w", err))
	}
	sheet := layout.SheetName

	holidayCol, err := findHolidayColumn(f, layout, holidayDay)
	if err != nil {
		return fail(err)
	}
	if holidayCol == "" {
		report.Append(p.Sprintf(i18n.DayNotFound, holidayDay, layout.DayRow))
		log.Warnf("day %d not found in row %d of %v", holidayDay, layout.DayRow, layout.DeliveryColumns)
		return report, ErrDayNotFound
	}
	report.HolidayColumn = holidayCol
	report.Append(p.Sprintf(i18n.HolidayIdentified, holidayCol))

	destCol, ok := layout.Predecessor(holidayCol)
	if !ok {
		report.Append(p.Sprintf(i18n.FirstDayWarning))
		log.Warnf("day %d is in first delivery column %s", holidayDay, holidayCol)
		return report, ErrCannotAnticipateFirstDay
	}
	report.DestinationColumn = destCol

	codeCell := cellName(destCol, layout.WeekdayRow)
	code, err := parser.ReadText(f, sheet, codeCell)
	if err != nil {
		return fail(newSheetError(sheet, codeCell, err))
	}
	weekday, mapped := models.WeekdayNumber(code)
	if !mapped {
		log.Warnf("weekday code %q at %s is not mapped, tasks stay in %s", code, codeCell, holidayCol)
	}

	lastRow, err := parser.LastRow(f, sheet)
	if err != nil {
		return fail(err)
	}
	note := p.Sprintf(i18n.RescheduledNote, holidayDay, destCol)

	for row := layout.FirstTaskRow; row <= lastRow; row++ {
		taskCell := cellName(holidayCol, row)
		v, numeric, err := parser.ReadNumber(f, sheet, taskCell)
		if err != nil {
			return fail(newSheetError(sheet, taskCell, err))
		}
		if !numeric || !(v >= minTaskValue && v <= maxTaskValue) || !mapped {
			continue
		}

		move := models.Move{Row: row, OriginalValue: v, Weekday: weekday, Note: note}
		if err := applyMove(f, layout, holidayCol, destCol, move); err != nil {
			return fail(err)
		}
		report.Moves = append(report.Moves, move)
		log.Debugf("row %d: %s=%v moved to %s=%d", row, holidayCol, v, destCol, weekday)
	}

	report.Append(p.Sprintf(i18n.ReschedulingDone, report.Moved()))
	log.Infof("day %d: %d tasks moved from %s to %s", holidayDay, report.Moved(), holidayCol, destCol)
	return report, nil
}

// findHolidayColumn returns the leftmost delivery column whose day header
// equals day, or "" when none does.
func findHolidayColumn(f *excelize.File, layout models.Layout, day int) (string, error) {
	for _, col := range layout.DeliveryColumns {
		cell := cellName(col, layout.DayRow)
		v, numeric, err := parser.ReadNumber(f, layout.SheetName, cell)
		if err != nil {
			return "", newSheetError(layout.SheetName, cell, err)
		}
		if numeric && v == float64(day) {
			return col, nil
		}
	}
	return "", nil
}

func applyMove(f *excelize.File, layout models.Layout, from, to string, move models.Move) error {
	sheet := layout.SheetName

	dest := cellName(to, move.Row)
	if err := f.SetCellValue(sheet, dest, move.Weekday); err != nil {
		return newSheetError(sheet, dest, err)
	}
	src := cellName(from, move.Row)
	if err := f.SetCellValue(sheet, src, nil); err != nil {
		return newSheetError(sheet, src, err)
	}
	obs := cellName(layout.ObservationsColumn, move.Row)
	if err := f.SetCellStr(sheet, obs, move.Note); err != nil {
		return newSheetError(sheet, obs, err)
	}
	return nil
}

// cellName joins a column name and a row number. Callers pass columns from a
// validated layout.
func cellName(col string, row int) string {
	name, _ := excelize.JoinCellName(col, row)
	return name
}

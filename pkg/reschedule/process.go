package reschedule

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/ukaji3/reschedule-go/pkg/reschedule/i18n"
	"github.com/ukaji3/reschedule-go/pkg/reschedule/models"
	"github.com/ukaji3/reschedule-go/pkg/reschedule/parser"
	"github.com/xuri/excelize/v2"
)

var errMissingCalendar = errors.New("sheet does not reach the delivery header")

// Load opens a workbook from r and checks it holds the calendar sheet
// described by layout. Failures are returned as *LoadError matching ErrLoad.
func Load(r io.Reader, fileName string, layout models.Layout) (*excelize.File, error) {
	loadErr := func(err error) error {
		return &LoadError{FileName: fileName, SheetName: layout.SheetName, Err: err}
	}

	if err := layout.Validate(); err != nil {
		return nil, loadErr(fmt.Errorf("invalid layout: %w", err))
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, loadErr(err)
	}

	if !slices.Contains(f.GetSheetList(), layout.SheetName) {
		f.Close()
		return nil, loadErr(excelize.ErrSheetNotExist{SheetName: layout.SheetName})
	}

	// The populated area must cover the day header of the first delivery column.
	region, err := parser.DataBounds(f, layout.SheetName)
	if err != nil {
		f.Close()
		return nil, loadErr(err)
	}
	firstCol, _ := excelize.ColumnNameToNumber(layout.DeliveryColumns[0])
	if !region.Contains(firstCol, layout.DayRow) {
		f.Close()
		return nil, loadErr(errMissingCalendar)
	}

	return f, nil
}

// Process loads the workbook read from r and reschedules holidayDay.
//
// It returns the modified workbook, or nil when there is nothing to hand back,
// together with the report log in order. Every failure is also described in
// the log. The caller owns the returned workbook and must close it.
func Process(r io.Reader, fileName string, holidayDay int, opts Options) (*excelize.File, []string, error) {
	p := i18n.NewPrinter(opts.Lang)
	log := opts.logger()

	if r == nil {
		return nil, []string{p.Sprintf(i18n.NoInputSpreadsheet)}, ErrNoInput
	}

	f, err := Load(r, fileName, opts.Layout)
	if err != nil {
		log.Errorf("load %s: %v", fileName, err)
		return nil, []string{p.Sprintf(i18n.ReadSheetError, err.Error())}, err
	}
	logs := []string{p.Sprintf(i18n.SheetLoaded, fileName)}
	log.Infof("loaded %s, sheet %q", fileName, opts.Layout.SheetName)

	report, err := Reschedule(f, holidayDay, opts)
	logs = append(logs, report.Log...)
	if err != nil {
		f.Close()
		return nil, logs, err
	}
	return f, logs, nil
}

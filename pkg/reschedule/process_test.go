package reschedule

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/reschedule-go/pkg/reschedule/models"
	"github.com/xuri/excelize/v2"
)

func workbookBytes(t *testing.T, f *excelize.File) *bytes.Reader {
	t.Helper()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestProcess(t *testing.T) {
	src := newCalendar(t, map[string]any{"AK8": 3, "AK9": 4})

	f, logs, err := Process(workbookBytes(t, src), "plan.xlsx", 20, DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	assert.Equal(t, []string{
		"Spreadsheet 'plan.xlsx' loaded successfully.",
		"Holiday identified in the Delivery column: AK",
		"Rescheduling completed. 2 tasks were moved.",
	}, logs)
	v, err := f.GetCellValue(models.DefaultLayout().SheetName, "AJ9")
	require.NoError(t, err)
	assert.Equal(t, "2", v)
}

func TestProcessDayNotFound(t *testing.T) {
	src := newCalendar(t, map[string]any{"AK8": 3})

	f, logs, err := Process(workbookBytes(t, src), "plan.xlsx", 31, DefaultOptions())
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrDayNotFound)
	assert.Equal(t, []string{
		"Spreadsheet 'plan.xlsx' loaded successfully.",
		"ERROR: The day 31 was not found in row 3 of the Delivery columns.",
	}, logs)
}

func TestProcessFirstDay(t *testing.T) {
	src := newCalendar(t, nil)

	f, logs, err := Process(workbookBytes(t, src), "plan.xlsx", 18, DefaultOptions())
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrCannotAnticipateFirstDay)
	assert.Len(t, logs, 3)
}

func TestProcessNoInput(t *testing.T) {
	opts := DefaultOptions()
	opts.Lang = "es"

	f, logs, err := Process(nil, "", 20, opts)
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrNoInput)
	assert.Equal(t, []string{"Por favor, suba una planilla antes de reprogramar."}, logs)
}

func TestProcessLoadFailures(t *testing.T) {
	missingSheet := excelize.NewFile()
	defer missingSheet.Close()

	empty := excelize.NewFile()
	defer empty.Close()
	require.NoError(t, empty.SetSheetName("Sheet1", models.DefaultLayout().SheetName))

	cases := []struct {
		name string
		data *bytes.Reader
	}{
		{"not a workbook", bytes.NewReader([]byte("plain text"))},
		{"missing sheet", workbookBytes(t, missingSheet)},
		{"empty calendar", workbookBytes(t, empty)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, logs, err := Process(c.data, "plan.xlsx", 20, DefaultOptions())
			assert.Nil(t, f)
			assert.ErrorIs(t, err, ErrLoad)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, "plan.xlsx", loadErr.FileName)

			require.Len(t, logs, 1)
			assert.True(t, strings.HasPrefix(logs[0], "ERROR: Could not read the spreadsheet."), logs[0])
		})
	}
}

func TestLoadMissingSheetError(t *testing.T) {
	src := excelize.NewFile()
	defer src.Close()

	_, err := Load(workbookBytes(t, src), "plan.xlsx", models.DefaultLayout())
	var sheetErr excelize.ErrSheetNotExist
	require.True(t, errors.As(err, &sheetErr))
	assert.Equal(t, models.DefaultLayout().SheetName, sheetErr.SheetName)
}

func TestProcessOutputIsUntouchedElsewhere(t *testing.T) {
	src := newCalendar(t, map[string]any{"AK8": 3, "B8": "customer", "CU8": 42})

	f, _, err := Process(workbookBytes(t, src), "plan.xlsx", 20, DefaultOptions())
	require.NoError(t, err)
	defer f.Close()

	sheet := models.DefaultLayout().SheetName
	for cell, want := range map[string]string{"A8": "order-1", "B8": "customer", "CU8": "42", "AN3": "23"} {
		v, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		assert.Equal(t, want, v, cell)
	}
}

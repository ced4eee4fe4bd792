// Package parser provides cell-level readers over an excelize workbook.
package parser

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadNumber reads a cell and reports whether it holds a number.
// String, boolean, date, error and inline string cells are not numbers even
// when their text looks numeric.
func ReadNumber(f *excelize.File, sheetName, cell string) (float64, bool, error) {
	typ, err := f.GetCellType(sheetName, cell)
	if err != nil {
		return 0, false, err
	}
	if typ != excelize.CellTypeUnset && typ != excelize.CellTypeNumber {
		return 0, false, nil
	}

	raw, err := f.GetCellValue(sheetName, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return 0, false, err
	}
	switch v := parseValue(raw).(type) {
	case int64:
		return float64(v), true, nil
	case float64:
		return v, true, nil
	}
	return 0, false, nil
}

// ReadText reads the raw text of a cell with surrounding blanks removed.
func ReadText(f *excelize.File, sheetName, cell string) (string, error) {
	v, err := f.GetCellValue(sheetName, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(v), nil
}

// parseValue returns int64 for integral text, float64 for other numeric
// text and s itself otherwise.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

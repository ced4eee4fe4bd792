package parser

import (
	"github.com/ukaji3/reschedule-go/pkg/reschedule/models"
	"github.com/xuri/excelize/v2"
)

// DataBounds returns the region spanned by the non-empty cells of a sheet.
// The region is empty when the sheet holds no value.
func DataBounds(f *excelize.File, sheetName string) (models.Region, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Region{}, err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.Region{}, nil
	}
	return models.Region{
		R1: minRow + 1,
		C1: minCol + 1,
		R2: maxRow + 1,
		C2: maxCol + 1,
	}, nil
}

// LastRow returns the 1-based index of the last row holding any value,
// or 0 for an empty sheet.
func LastRow(f *excelize.File, sheetName string) (int, error) {
	region, err := DataBounds(f, sheetName)
	if err != nil {
		return 0, err
	}
	if region.Empty() {
		return 0, nil
	}
	return region.R2, nil
}

// findDataBounds returns the 0-based box around non-empty cells, all -1
// when there is none.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow, minCol, maxCol = -1, -1, -1, -1
	for r, row := range rows {
		for c, v := range row {
			if v == "" {
				continue
			}
			// rows are visited top-down, so the first hit fixes minRow
			if minRow < 0 {
				minRow = r
			}
			maxRow = r
			if minCol < 0 || c < minCol {
				minCol = c
			}
			if c > maxCol {
				maxCol = c
			}
		}
	}
	return
}

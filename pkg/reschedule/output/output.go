// Package output serializes rescheduled workbooks.
package output

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Write serializes the workbook to w in its original spreadsheet format.
func Write(w io.Writer, f *excelize.File) error {
	return f.Write(w)
}

// Bytes returns the serialized workbook.
func Bytes(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile serializes the workbook to path.
func WriteFile(path string, f *excelize.File) error {
	data, err := Bytes(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FileName inserts suffix between the base name and the extension of original.
// Directories in original are dropped.
func FileName(original, suffix string) string {
	name := filepath.Base(original)
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + suffix + ext
}

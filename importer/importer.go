// Package importer reads uploaded manifest files (xlsx, csv) into the
// raw column form the inference engine consumes: one RawColumn per
// spreadsheet column, header plus a bounded sample of cell values.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/demoperez-ux/manifestpro/schema"
)

// ErrNoData is returned when a file contains no usable rows.
var ErrNoData = errors.New("importer: file contains no rows")

// ReadXLSX reads the first populated sheet of a workbook: row 1 becomes
// the headers, the next sampleSize rows become the samples.
func ReadXLSX(r io.Reader, sampleSize int) ([]schema.RawColumn, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}
		if sheetPopulated(rows) {
			return columnsFromRows(rows, sampleSize), nil
		}
	}
	return nil, ErrNoData
}

// ReadXLSXFile is ReadXLSX over a path on disk.
func ReadXLSXFile(path string, sampleSize int) ([]schema.RawColumn, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}
		if sheetPopulated(rows) {
			return columnsFromRows(rows, sampleSize), nil
		}
	}
	return nil, ErrNoData
}

// ReadCSV reads a comma-separated manifest. Legacy Spanish-language
// exports frequently arrive as ISO-8859-1; invalid UTF-8 input is
// transparently decoded from Latin-1.
func ReadCSV(r io.Reader, sampleSize int) ([]schema.RawColumn, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if !utf8.Valid(data) {
		data, _, err = transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode latin-1 input: %w", err)
		}
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1 // vendors pad rows inconsistently
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if !sheetPopulated(rows) {
		return nil, ErrNoData
	}
	return columnsFromRows(rows, sampleSize), nil
}

// columnsFromRows turns row-major sheet data into RawColumns. Ragged
// rows are tolerated: short rows simply contribute nothing to the
// columns they do not reach.
func columnsFromRows(rows [][]string, sampleSize int) []schema.RawColumn {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	columns := make([]schema.RawColumn, width)
	for c := 0; c < width; c++ {
		if len(rows[0]) > c {
			columns[c].Header = strings.TrimSpace(rows[0][c])
		}
		for r := 1; r < len(rows) && len(columns[c].Sample) < sampleSize; r++ {
			if len(rows[r]) > c {
				columns[c].Sample = append(columns[c].Sample, rows[r][c])
			}
		}
	}
	return columns
}

func sheetPopulated(rows [][]string) bool {
	for _, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return true
			}
		}
	}
	return false
}

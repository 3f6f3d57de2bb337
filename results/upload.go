package results

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for file extensions other than
// .csv, .xlsx and .xls. Nothing is decoded in that case.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// DecodeUpload reads the whole file into memory and decodes it into
// header-keyed rows. The first row is the header; header names are trimmed and
// lowercased. For spreadsheets only the first sheet is read. Blank rows are
// skipped. Row order is preserved.
func DecodeUpload(r io.Reader, filename string) ([]RawRow, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".csv":
		return decodeCSV(r)
	case ".xlsx":
		return decodeXLSX(r)
	case ".xls":
		return decodeXLS(r)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func decodeCSV(r io.Reader) ([]RawRow, error) {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return []RawRow{}, nil
	}

	return keyRows(records[0], records[1:]), nil
}

func decodeXLSX(r io.Reader) ([]RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return []RawRow{}, nil
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(records) == 0 {
		return []RawRow{}, nil
	}

	return keyRows(records[0], records[1:]), nil
}

func decodeXLS(r io.Reader) ([]RawRow, error) {
	// extrame/xls needs a ReadSeeker, so buffer the workbook first.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("parse xls: %w", err)
	}

	// Only the first sheet is imported, same as the xlsx path.
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return []RawRow{}, nil
	}

	records := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := xlsRow(sheet, i)
		if row == nil {
			continue
		}
		record := make([]string, row.LastCol())
		for j := 0; j < row.LastCol(); j++ {
			record[j] = row.Col(j)
		}
		records = append(records, record)
	}
	if len(records) == 0 {
		return []RawRow{}, nil
	}

	return keyRows(records[0], records[1:]), nil
}

// xlsRow returns nil for gaps in the sheet. The library indexes its row map
// without a presence check, so a missing row panics instead of returning nil.
func xlsRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() { _ = recover() }()
	return sheet.Row(i)
}

// keyRows maps data records onto the header row. Cells beyond the header are
// dropped; missing trailing cells read as empty strings.
func keyRows(header []string, records [][]string) []RawRow {
	cols := make([]string, len(header))
	for i, name := range header {
		cols[i] = strings.ToLower(strings.TrimSpace(name))
	}

	rows := make([]RawRow, 0, len(records))
	for _, record := range records {
		if isBlankRecord(record) {
			continue
		}
		row := make(RawRow, len(cols))
		for i, name := range cols {
			if name == "" {
				continue
			}
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

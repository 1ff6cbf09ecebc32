package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrEmptyCSV is returned when the CSV input has no header row.
var ErrEmptyCSV = errors.New("frame: csv input is empty")

// ReadCSV parses CSV input into a frame.
//
// The first record is the header. Column kinds are inferred: a column in
// which every cell parses as a float64 becomes numeric, otherwise it
// becomes a factor. A file with a header but no data rows yields an empty
// zero-row frame.
func ReadCSV(r io.Reader) (*Frame, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("frame: reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyCSV
	}

	header := records[0]
	rows := records[1:]

	f := New()
	for j, name := range header {
		cells := make([]string, len(rows))
		for i, row := range rows {
			cells[i] = row[j]
		}

		nums, numeric := parseNumericColumn(cells)
		if numeric {
			err = f.AddNumeric(name, nums)
		} else {
			err = f.AddFactor(name, cells)
		}
		if err != nil {
			return nil, err
		}
	}

	return f, nil
}

// parseNumericColumn attempts to parse every cell as float64.
func parseNumericColumn(cells []string) ([]float64, bool) {
	nums := make([]float64, len(cells))
	for i, cell := range cells {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, false
		}
		nums[i] = v
	}

	return nums, true
}

// WriteCSV writes the frame as CSV with a header row, columns in insertion
// order.
func (f *Frame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(f.names); err != nil {
		return fmt.Errorf("frame: writing csv header: %w", err)
	}

	record := make([]string, len(f.names))
	for i := range f.rows {
		for j, name := range f.names {
			col := f.cols[name]
			if col.kind == kindNumeric {
				record[j] = strconv.FormatFloat(col.nums[i], 'g', -1, 64)
			} else {
				record[j] = col.labels[i]
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("frame: writing csv row %d: %w", i, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

package tabular

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEmptyInput is returned when the input carries no header row.
var ErrEmptyInput = errors.New("no columns to parse from input")

// Row maps a column label to its raw cell value. Absent cells are nil.
type Row = map[string]any

// naValues are the cell contents treated as missing, matching what spreadsheet
// exports and pandas write for empty values.
var naValues = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#NA":      {},
	"N/A":      {},
	"n/a":      {},
	"NA":       {},
	"<NA>":     {},
	"NULL":     {},
	"null":     {},
	"NaN":      {},
	"nan":      {},
	"-NaN":     {},
	"-nan":     {},
	"None":     {},
	"#N/A N/A": {},
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// IsNA reports whether a raw text cell denotes a missing value.
func IsNA(cell string) bool {
	_, ok := naValues[strings.TrimSpace(cell)]
	return ok
}

// ReadCSV decodes a CSV document with a header row into rows.
// Cells are kept as text; missing cells and NA sentinels become nil.
// Rows shorter than the header are padded with nil, extra cells are dropped.
func ReadCSV(r io.Reader) ([]Row, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	columns := make([]string, len(header))
	seen := make(map[string]struct{}, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := seen[name]; dup || name == "" {
			// Duplicate and blank labels are ignored.
			continue
		}
		seen[name] = struct{}{}
		columns[i] = name
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv line %d: %w", len(rows)+2, err)
		}
		if isBlankRecord(record) {
			continue
		}

		row := make(Row, len(seen))
		for i, name := range columns {
			if name == "" {
				continue
			}
			if i >= len(record) || IsNA(record[i]) {
				row[name] = nil
				continue
			}
			row[name] = record[i]
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ReadJSON decodes a JSON array of objects into rows.
// JSON null becomes nil and numbers arrive as float64.
func ReadJSON(r io.Reader) ([]Row, error) {
	var rows []Row
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, fmt.Errorf("failed to decode json rows: %w", err)
	}
	return rows, nil
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/artworks/pkg/types"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse decodes UTF-8 CSV text into a Dataset. The first row is the header;
// every following row becomes one Record with the header's field names.
// Rows shorter than the header get empty values for the missing cells.
// Quotes inside unquoted cells are kept as ordinary characters, and line
// breaks inside quoted cells keep their original CRLF or LF form. Rows
// longer than the header, and input that is not valid UTF-8, are errors.
// Empty input yields an empty Dataset.
func Parse(data []byte) (types.Dataset, error) {
	if !utf8.Valid(data) {
		return nil, errors.New("input is not valid UTF-8")
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	starts := lineStarts(data)

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return types.Dataset{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	restoreCRLF(r, header, data, starts)

	// A repeated column name keeps its first position and its last value.
	names, slot := headerSlots(header)

	ds := types.Dataset{}
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		if len(row) > len(header) {
			line, _ := r.FieldPos(0)
			return nil, fmt.Errorf("record on line %d: %d fields, header has %d", line, len(row), len(header))
		}
		restoreCRLF(r, row, data, starts)

		rec := make(types.Record, len(names))
		for i, name := range names {
			rec[i].Name = name
		}
		for i, cell := range row {
			rec[slot[i]].Value = cell
		}
		ds = append(ds, rec)
	}
	return ds, nil
}

// ReadCSV reads all of r and parses it with Parse.
func ReadCSV(r io.Reader) (types.Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// lineStarts returns the byte offset at which each line of data begins.
func lineStarts(data []byte) []int {
	starts := []int{0}
	for i, b := range data {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// restoreCRLF puts back the carriage returns the csv reader drops from line
// breaks inside quoted cells of the record r just read. Each "\n" in a cell
// corresponds, in order, to the next '\n' in data after the cell's start.
func restoreCRLF(r *csv.Reader, row []string, data []byte, starts []int) {
	for i, cell := range row {
		if !strings.Contains(cell, "\n") {
			continue
		}
		line, col := r.FieldPos(i)
		if line < 1 || line > len(starts) {
			continue
		}
		raw := data[starts[line-1]+col-1:]

		var b strings.Builder
		for _, part := range strings.SplitAfter(cell, "\n") {
			j := bytes.IndexByte(raw, '\n')
			if !strings.HasSuffix(part, "\n") || j < 0 {
				b.WriteString(part)
				continue
			}
			if j > 0 && raw[j-1] == '\r' {
				b.WriteString(strings.TrimSuffix(part, "\n"))
				b.WriteString("\r\n")
			} else {
				b.WriteString(part)
			}
			raw = raw[j+1:]
		}
		row[i] = b.String()
	}
}

// headerSlots returns the unique field names in first-seen order and, for
// each header column, the index of the name it writes to.
func headerSlots(header []string) ([]string, []int) {
	names := make([]string, 0, len(header))
	slot := make([]int, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		if j, ok := seen[h]; ok {
			slot[i] = j
			continue
		}
		seen[h] = len(names)
		slot[i] = len(names)
		names = append(names, h)
	}
	return names, slot
}

// Normalize returns a copy of ds with every value trimmed of leading and
// trailing whitespace. Normalize is idempotent.
func Normalize(ds types.Dataset) types.Dataset {
	out := make(types.Dataset, len(ds))
	for i, rec := range ds {
		out[i] = rec.Trimmed()
	}
	return out
}

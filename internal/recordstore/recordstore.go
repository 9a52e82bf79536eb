// Package recordstore provides schema-generic load, append, update and delete
// operations on CSV flat-file resources. Every mutation rewrites the whole
// resource through a temp-file-and-rename, so readers never observe a
// partially written file.
package recordstore

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"fjacquet/bookctl/internal/bookingerror"
	"fjacquet/bookctl/internal/common"
	"fjacquet/bookctl/internal/fileutils"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Table is the in-memory form of a tabular resource: an ordered header and
// the data rows in file order. All cell values are strings.
type Table struct {
	Header []string
	Rows   [][]string
}

// RowCount returns the number of data rows (the header is not counted)
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// columnIndex finds the position of a column in the header
func (t *Table) columnIndex(column string) (int, error) {
	for i, name := range t.Header {
		if name == column {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not present in header %v", column, t.Header)
}

// Load reads a resource into a Table. Returns a NotFoundError when the file
// does not exist; callers decide the fallback.
func Load(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &bookingerror.NotFoundError{Resource: path, Err: err}
		}
		return nil, fmt.Errorf("error opening resource: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = common.Delimiter
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading resource %s: %w", path, err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// AppendRow appends a single row to a resource, creating the file and
// writing the header first when the resource does not exist yet.
func AppendRow(path string, row []string, schema []string) error {
	if len(row) != len(schema) {
		return fmt.Errorf("row has %d values, schema has %d columns", len(row), len(schema))
	}

	writeHeader := !fileutils.FileExists(path)

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening resource for append: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	writer := csv.NewWriter(file)
	writer.Comma = common.Delimiter

	if writeHeader {
		if err := writer.Write(schema); err != nil {
			return fmt.Errorf("error writing header: %w", err)
		}
	}
	if err := writer.Write(row); err != nil {
		return fmt.Errorf("error writing row: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("error flushing resource: %w", err)
	}

	log.WithFields(logrus.Fields{
		"resource": path,
		"header":   writeHeader,
	}).Debug("Appended row to resource")
	return nil
}

// UpdateWhere rewrites updateColumn for every row whose matchColumn equals
// matchValue, preserving row order and all other cells, then atomically
// replaces the resource. Returns the number of rows changed.
func UpdateWhere(path, matchColumn, matchValue, updateColumn, newValue string) (int, error) {
	table, err := Load(path)
	if err != nil {
		return 0, err
	}

	matchIdx, err := table.columnIndex(matchColumn)
	if err != nil {
		return 0, err
	}
	updateIdx, err := table.columnIndex(updateColumn)
	if err != nil {
		return 0, err
	}

	updated := 0
	for i, row := range table.Rows {
		if matchIdx >= len(row) || row[matchIdx] != matchValue {
			continue
		}
		// Load admits ragged rows; a matched row too short to hold the
		// update column is a data defect, surfaced without touching the file
		if updateIdx >= len(row) {
			return 0, &bookingerror.MalformedRowError{
				Resource: path, Line: i + 2, Field: updateColumn,
				Value: strings.Join(row, string(common.Delimiter)),
				Err:   fmt.Errorf("row has %d fields, column %q is at position %d", len(row), updateColumn, updateIdx),
			}
		}
		row[updateIdx] = newValue
		updated++
	}

	if err := rewrite(path, table); err != nil {
		return 0, err
	}

	log.WithFields(logrus.Fields{
		"resource": path,
		"match":    matchValue,
		"updated":  updated,
	}).Debug("Updated resource rows")
	return updated, nil
}

// DeleteAtIndex removes exactly one data row by zero-based index and
// atomically rewrites the resource. Index 0 is valid; only indexes outside
// [0, rowCount) fail, with an OutOfRangeError and no mutation.
func DeleteAtIndex(path string, index int) error {
	table, err := Load(path)
	if err != nil {
		return err
	}

	if index < 0 || index >= table.RowCount() {
		return &bookingerror.OutOfRangeError{Index: index, Count: table.RowCount()}
	}

	table.Rows = append(table.Rows[:index], table.Rows[index+1:]...)

	if err := rewrite(path, table); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"resource": path,
		"index":    index,
	}).Debug("Deleted resource row")
	return nil
}

// rewrite serializes the table and replaces the resource atomically
func rewrite(path string, table *Table) error {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Comma = common.Delimiter

	if err := writer.Write(table.Header); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}
	if err := writer.WriteAll(table.Rows); err != nil {
		return fmt.Errorf("error writing rows: %w", err)
	}

	if err := fileutils.WriteFileAtomic(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error replacing resource %s: %w", path, err)
	}
	return nil
}

// Package common provides shared CSV functionality used by the catalog
// loader and the user directory.
package common

import (
	"encoding/csv"
	"fmt"
	"os"

	"fjacquet/bookctl/internal/bookingerror"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Delimiter is the field separator used for all CSV resources
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV resources
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
// TCSVRow is the struct type that maps to the CSV columns. A missing file
// surfaces as a NotFoundError so callers can fall back to an empty set.
func ReadCSVFile[TCSVRow any](filePath string) ([]TCSVRow, error) {
	log.WithField("file", filePath).Debug("Reading CSV file")

	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &bookingerror.NotFoundError{Resource: filePath, Err: err}
		}
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = Delimiter

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  filePath,
		"count": len(rows),
	}).Debug("Successfully read CSV data")
	return rows, nil
}

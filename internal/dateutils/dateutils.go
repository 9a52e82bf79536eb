// Package dateutils provides common date and time operations used throughout the application.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutUS       = "01/02/2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
)

// CommonFormats is a list of standard formats to try when parsing dates
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutEuropean,
	DateLayoutUS,
	DateLayoutFull,
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"2-Jan-2006",
	"Jan 2, 2006",
}

// ParseDate attempts to parse a date string using multiple common formats.
// Returns the parsed time and the detected format.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// NormalizeDate reformats a date string in any of the common formats to ISO
// (YYYY-MM-DD). Unparseable strings are returned unchanged so free-form
// schedule notes in catalog files survive a round trip.
func NormalizeDate(dateStr string) string {
	t, _, err := ParseDate(dateStr)
	if err != nil {
		return strings.TrimSpace(dateStr)
	}
	return t.Format(DateLayoutISO)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// CleanDateString removes unwanted characters and normalizes a date string
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)

	re := regexp.MustCompile(`\s+`)
	return re.ReplaceAllString(dateStr, " ")
}

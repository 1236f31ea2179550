// Package dateutil provides date formatting utilities for build artifacts.
package dateutil

import (
	"strings"
	"time"
)

// StampFormat names compiled PDFs, e.g. thesis_20250601_143000.pdf.
const StampFormat = "20060102_150405"

// ISODateFormat is the resolved form of an "auto" document date.
const ISODateFormat = "2006-01-02"

// Stamp returns t formatted for use in artifact file names.
func Stamp(t time.Time) string {
	return t.Format(StampFormat)
}

// ResolveDate handles the "auto" shortcut for the document date.
// "auto" (case-insensitive) becomes the current date in ISO format; any
// other value, including empty, passes through unchanged.
//
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, t time.Time) string {
	if strings.EqualFold(value, "auto") {
		return t.Format(ISODateFormat)
	}
	return value
}

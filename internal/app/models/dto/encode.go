package dto

import (
	"encoding/base64"
	"time"
)

// isoDate is the wire format for date-only fields
const isoDate = "2006-01-02"

// Base64OrNil encodes binary data to standard base64 text.
// Absent binary serializes as null, never as an empty string.
func Base64OrNil(data []byte) *string {
	if len(data) == 0 {
		return nil
	}
	s := base64.StdEncoding.EncodeToString(data)
	return &s
}

// ISODateOrNil formats a date as an ISO-8601 date string, null when absent.
func ISODateOrNil(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(isoDate)
	return &s
}

package utils

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// extraDateLayouts covers spreadsheet style dates that cast does not recognise.
var extraDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01/02/2006",
	"01/02/2006 15:04",
	"01/02/2006 15:04:05",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
}

// IsMissing reports whether a raw cell value represents an absent value:
// nil, a nil pointer, or a floating point NaN.
func IsMissing(val any) bool {
	switch v := val.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(v)
	case float32:
		return math.IsNaN(float64(v))
	case *string:
		return v == nil
	case *float64:
		return v == nil || math.IsNaN(*v)
	case *time.Time:
		return v == nil
	default:
		return false
	}
}

// ToString converts various types to their natural string form.
// Numbers use the shortest decimal representation (123 -> "123", 123.45 -> "123.45").
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case *string:
		return *v
	case *float64:
		return ToString(*v)
	case *time.Time:
		return ToString(*v)
	case time.Time:
		return v.Format(time.RFC3339)
	}
	if s, err := cast.ToStringE(val); err == nil {
		return s
	}
	return fmt.Sprintf("%v", val)
}

// CleanValue normalizes a raw cell into nil or its string representation.
// It never fails: missing values and NaN become nil, everything else is stringified.
func CleanValue(val any) *string {
	if IsMissing(val) {
		return nil
	}
	s := ToString(val)
	return &s
}

// StringOrEmpty returns the normalized string form of val, or "" when it is missing.
func StringOrEmpty(val any) string {
	if s := CleanValue(val); s != nil {
		return *s
	}
	return ""
}

// ParseDate attempts to read val as a calendar date or timestamp.
// Missing input and unparseable strings yield nil; parse errors are never returned.
func ParseDate(val any) *time.Time {
	switch v := val.(type) {
	case time.Time:
		return &v
	case *time.Time:
		return v
	}

	s := CleanValue(val)
	if s == nil {
		return nil
	}
	str := strings.TrimSpace(*s)
	if str == "" {
		return nil
	}

	if t, err := cast.ToTimeInDefaultLocationE(str, time.UTC); err == nil {
		return &t
	}
	for _, layout := range extraDateLayouts {
		if t, err := time.ParseInLocation(layout, str, time.UTC); err == nil {
			return &t
		}
	}
	return nil
}

// ParseBool derives a boolean from the normalized string form of val.
// Only "true" (any case) is true; absence and any other content are false.
func ParseBool(val any) bool {
	s := CleanValue(val)
	if s == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(*s), "true")
}

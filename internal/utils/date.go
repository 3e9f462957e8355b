package utils

import (
	"strings"
	"time"

	"showlink/internal/apperr"
)

// CanonicalDateLayout is the layout every date reaching the GameChat backend uses.
const CanonicalDateLayout = "2006-01-02T15:04:05"

var requestDateLayouts = []string{
	"2006-01-02T15:04 -07:00",
	"2006-01-02T15:04 -0700",
	"2006-01-02T15:04 Z07:00",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	CanonicalDateLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseRequestDate accepts the date formats clients send. Values without an
// offset are taken as UTC.
func ParseRequestDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range requestDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func FormatCanonical(t time.Time) string {
	return t.UTC().Format(CanonicalDateLayout)
}

// ToCanonicalDate converts a request date to UTC in CanonicalDateLayout.
func ToCanonicalDate(s string) (string, error) {
	t, ok := ParseRequestDate(s)
	if !ok {
		return "", apperr.Validation(apperr.MsgInvalidDateFormat)
	}
	return FormatCanonical(t), nil
}

package utils

import (
	"net/http"
	"testing"
	"time"

	"showlink/internal/apperr"
)

func TestToCanonicalDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"request format with offset", "2024-03-10T20:30 +07:00", "2024-03-10T13:30:00"},
		{"request format with utc", "2024-03-10T20:30 Z", "2024-03-10T20:30:00"},
		{"rfc3339", "2024-03-10T20:30:15+02:00", "2024-03-10T18:30:15"},
		{"rfc3339 nano", "2024-03-10T20:30:15.123Z", "2024-03-10T20:30:15"},
		{"canonical", "2024-03-10T20:30:15", "2024-03-10T20:30:15"},
		{"minutes only", "2024-03-10T20:30", "2024-03-10T20:30:00"},
		{"date only", "2024-03-10", "2024-03-10T00:00:00"},
		{"padded", "  2024-03-10  ", "2024-03-10T00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToCanonicalDate(tt.input)
			if err != nil {
				t.Fatalf("ToCanonicalDate(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ToCanonicalDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToCanonicalDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "yesterday", "10/03/2024"} {
		_, err := ToCanonicalDate(input)
		if err == nil {
			t.Errorf("ToCanonicalDate(%q) expected error", input)
			continue
		}
		if apperr.StatusCode(err) != http.StatusBadRequest {
			t.Errorf("ToCanonicalDate(%q) status = %d, want 400", input, apperr.StatusCode(err))
		}
	}
}

func TestFormatCanonical(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	got := FormatCanonical(time.Date(2024, 1, 1, 3, 0, 0, 0, loc))
	if got != "2023-12-31T20:00:00" {
		t.Errorf("FormatCanonical() = %q", got)
	}
}

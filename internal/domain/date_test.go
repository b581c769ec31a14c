package domain_test

import (
	"testing"

	"weighttrack/internal/domain"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"valid", "2024-01-15", "2024-01-15", true},
		{"valid leap day", "2024-02-29", "2024-02-29", true},
		{"valid end of year", "2023-12-31", "2023-12-31", true},
		{"invalid month", "2023-13-40", "", false},
		{"invalid day", "2023-02-30", "", false},
		{"non-leap feb 29", "2023-02-29", "", false},
		{"wrong order", "01-01-2023", "", false},
		{"slashes", "2023/01/01", "", false},
		{"missing zero padding", "2023-1-1", "", false},
		{"empty", "", "", false},
		{"trailing garbage", "2023-01-01x", "", false},
		{"non numeric", "yyyy-mm-dd", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := domain.ParseDay(tc.input)
			if tc.ok {
				if err != nil {
					t.Fatalf("ParseDay(%q) error: %v", tc.input, err)
				}
				if got != tc.want {
					t.Errorf("ParseDay(%q) = %q; want %q", tc.input, got, tc.want)
				}
				return
			}
			if err == nil {
				t.Errorf("ParseDay(%q) = %q; want error", tc.input, got)
			}
		})
	}
}

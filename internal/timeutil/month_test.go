package timeutil

import (
	"testing"
	"time"
)

func TestParseMonth_Valid(t *testing.T) {
	tests := []struct {
		key   string
		year  int
		month time.Month
	}{
		{"202403", 2024, time.March},
		{"202401", 2024, time.January},
		{"202412", 2024, time.December},
		{"199910", 1999, time.October},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, err := ParseMonth(tt.key)
			if err != nil {
				t.Fatalf("ParseMonth(%q) returned unexpected error: %v", tt.key, err)
			}
			if m.Year != tt.year || m.Month != tt.month {
				t.Errorf("ParseMonth(%q) = %v, expected %d/%v", tt.key, m, tt.year, tt.month)
			}
			if m.String() != tt.key {
				t.Errorf("String() = %q, expected %q", m.String(), tt.key)
			}
		})
	}
}

func TestParseMonth_Invalid(t *testing.T) {
	for _, key := range []string{"", "2024", "2024-03", "202400", "202413", "24031", "abcdef", "2024031"} {
		t.Run(key, func(t *testing.T) {
			if _, err := ParseMonth(key); err == nil {
				t.Errorf("ParseMonth(%q) should return an error", key)
			}
		})
	}
}

func TestMonthPrevNext(t *testing.T) {
	tests := []struct {
		key  string
		prev string
		next string
	}{
		{"202403", "202402", "202404"},
		{"202401", "202312", "202402"},
		{"202412", "202411", "202501"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, _ := ParseMonth(tt.key)
			if got := m.Prev().String(); got != tt.prev {
				t.Errorf("Prev() = %s, expected %s", got, tt.prev)
			}
			if got := m.Next().String(); got != tt.next {
				t.Errorf("Next() = %s, expected %s", got, tt.next)
			}
		})
	}
}

func TestMonthContains(t *testing.T) {
	m := Month{Year: 2024, Month: time.March}

	if !m.Contains(time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC)) {
		t.Error("expected last second of March to be contained")
	}
	if m.Contains(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected April 1st not to be contained")
	}
	if m.Contains(time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected March of another year not to be contained")
	}
}

func TestMonthLabelAndStart(t *testing.T) {
	m := Month{Year: 2024, Month: time.March}
	if m.Label() != "March 2024" {
		t.Errorf("Label() = %q, expected %q", m.Label(), "March 2024")
	}

	start := m.Start(time.UTC)
	if !start.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Start() = %v", start)
	}
}

func TestMonthBefore(t *testing.T) {
	a := Month{Year: 2023, Month: time.December}
	b := Month{Year: 2024, Month: time.January}
	if !a.Before(b) || b.Before(a) {
		t.Error("expected 202312 to be before 202401")
	}
	if a.Before(a) {
		t.Error("a month should not be before itself")
	}
}

func TestMonthsOfYear(t *testing.T) {
	months := MonthsOfYear(2024)
	if len(months) != 12 {
		t.Fatalf("expected 12 months, got %d", len(months))
	}
	if months[0].String() != "202401" || months[11].String() != "202412" {
		t.Errorf("unexpected range %s..%s", months[0], months[11])
	}
}

func TestParseYear(t *testing.T) {
	if y, err := ParseYear("2024"); err != nil || y != 2024 {
		t.Errorf("ParseYear(\"2024\") = %d, %v", y, err)
	}
	for _, s := range []string{"", "24", "20245", "abcd", "0000"} {
		if _, err := ParseYear(s); err == nil {
			t.Errorf("ParseYear(%q) should return an error", s)
		}
	}
}

package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// monthKeyPattern matches a YYYYMM month key with a month between 01 and 12
var monthKeyPattern = regexp.MustCompile(`^(\d{4})(0[1-9]|1[0-2])$`)

// Month identifies one calendar month. Its key form is YYYYMM (e.g. "202403").
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a YYYYMM month key
func ParseMonth(key string) (Month, error) {
	matches := monthKeyPattern.FindStringSubmatch(key)
	if matches == nil {
		return Month{}, fmt.Errorf("invalid month %q: expected YYYYMM (e.g. 202403)", key)
	}

	year, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	return Month{Year: year, Month: time.Month(month)}, nil
}

// MonthOf returns the month containing t (in t's location)
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// CurrentMonth returns the current month in loc (time.Local when nil)
func CurrentMonth(loc *time.Location) Month {
	if loc == nil {
		loc = time.Local
	}
	return MonthOf(time.Now().In(loc))
}

// String returns the YYYYMM key
func (m Month) String() string {
	return fmt.Sprintf("%04d%02d", m.Year, int(m.Month))
}

// Label returns a human-readable name such as "March 2024"
func (m Month) Label() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// IsZero reports whether m is the zero Month
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// Start returns the first instant of the month in loc (time.Local when nil)
func (m Month) Start(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
}

// Prev returns the previous calendar month
func (m Month) Prev() Month {
	return MonthOf(time.Date(m.Year, m.Month-1, 1, 0, 0, 0, 0, time.UTC))
}

// Next returns the following calendar month
func (m Month) Next() Month {
	return MonthOf(time.Date(m.Year, m.Month+1, 1, 0, 0, 0, 0, time.UTC))
}

// Contains reports whether t falls inside the month (evaluated in t's location)
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// Before reports whether m is earlier than other
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// MonthsOfYear returns January through December of the given year
func MonthsOfYear(year int) []Month {
	months := make([]Month, 0, 12)
	for mo := time.January; mo <= time.December; mo++ {
		months = append(months, Month{Year: year, Month: mo})
	}
	return months
}

// ParseYear parses a four digit year
func ParseYear(s string) (int, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("invalid year %q: expected YYYY", s)
	}
	year, err := strconv.Atoi(s)
	if err != nil || year < 1 {
		return 0, fmt.Errorf("invalid year %q: expected YYYY", s)
	}
	return year, nil
}

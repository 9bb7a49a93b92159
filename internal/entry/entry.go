package entry

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TimestampLayout is the on-disk and user-facing timestamp format (YYYY-MM-DD HH:MM:SS)
const TimestampLayout = "2006-01-02 15:04:05"

// Entry represents a single logged unit of work
type Entry struct {
	Timestamp   time.Time       `json:"timestamp"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// New builds an Entry from user-supplied text.
// Returns a *ValidationError if any field is malformed.
func New(timestamp, description, amount string) (Entry, error) {
	ts, err := ParseTimestamp(timestamp)
	if err != nil {
		return Entry{}, &ValidationError{Field: "timestamp", Value: timestamp, Reason: "expected format YYYY-MM-DD HH:MM:SS"}
	}

	amt, err := ParseAmount(amount)
	if err != nil {
		return Entry{}, &ValidationError{Field: "amount", Value: amount, Reason: "not a decimal number"}
	}

	e := Entry{
		Timestamp:   ts,
		Description: description,
		Amount:      amt,
	}
	if err := Validate(e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Validate checks that a typed entry can be serialized to exactly one line
func Validate(e Entry) error {
	if e.Timestamp.IsZero() {
		return &ValidationError{Field: "timestamp", Reason: "timestamp is required"}
	}
	if strings.TrimSpace(e.Description) == "" {
		return &ValidationError{Field: "description", Value: e.Description, Reason: "description cannot be empty"}
	}
	if strings.ContainsAny(e.Description, "\r\n") {
		return &ValidationError{Field: "description", Value: e.Description, Reason: "description must be a single line"}
	}
	return nil
}

// ParseTimestamp parses a YYYY-MM-DD HH:MM:SS timestamp as wall-clock time.
// The result carries no zone (UTC), so every stored timestamp formats back to
// the same text, including times a DST transition skips. Text that would not
// format back identically (one-digit hours, fractional seconds) is rejected.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	if t.Format(TimestampLayout) != s {
		return time.Time{}, fmt.Errorf("timestamp %q is not in YYYY-MM-DD HH:MM:SS form", s)
	}
	return t, nil
}

// WallClock drops the zone of t, keeping its date and clock reading to the second
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// Equal reports whether two entries hold the same timestamp, description and amount.
// Amounts are compared numerically, so 4 and 4.0 are equal.
func (e Entry) Equal(other Entry) bool {
	return e.Timestamp.Equal(other.Timestamp) &&
		e.Description == other.Description &&
		e.Amount.Equal(other.Amount)
}

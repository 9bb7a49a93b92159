package entry

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Separator delimits the timestamp, description and amount fields of a line
const Separator = " - "

// Format serializes an entry to a single line (without trailing newline):
// "YYYY-MM-DD HH:MM:SS - description - amount".
// The description is escaped so the line always splits back into exactly three fields.
func Format(e Entry) string {
	return e.Timestamp.Format(TimestampLayout) + Separator + escapeDescription(e.Description) + Separator + FormatAmount(e.Amount)
}

// Parse splits a stored line into timestamp, description and amount on the
// first two occurrences of " - ". The timestamp is read as wall-clock time.
// Returns a *ParseError if fewer than three fields result, the amount is not
// numeric, or the timestamp does not match YYYY-MM-DD HH:MM:SS.
func Parse(line string) (Entry, error) {
	line = strings.TrimRight(line, "\r\n")

	parts := strings.SplitN(line, Separator, 3)
	if len(parts) < 3 {
		return Entry{}, &ParseError{Line: line, Reason: "expected 3 fields separated by \" - \""}
	}

	ts, err := ParseTimestamp(parts[0])
	if err != nil {
		return Entry{}, &ParseError{Line: line, Reason: "timestamp does not match YYYY-MM-DD HH:MM:SS"}
	}

	amount, err := ParseAmount(parts[2])
	if err != nil {
		return Entry{}, &ParseError{Line: line, Reason: "amount is not numeric"}
	}

	return Entry{
		Timestamp:   ts,
		Description: unescapeDescription(parts[1]),
		Amount:      amount,
	}, nil
}

// ParseAmount parses a decimal amount, ignoring surrounding whitespace.
func ParseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// FormatAmount renders an amount in its canonical stored form.
// Whole numbers keep one fractional digit ("4.0"), everything else uses the
// shortest exact representation ("2.5", "0.25").
func FormatAmount(d decimal.Decimal) string {
	if d.IsInteger() {
		return d.StringFixed(1)
	}
	return d.String()
}

// DisplayAmount renders an amount with exactly one fractional digit for listings
func DisplayAmount(d decimal.Decimal) string {
	return d.StringFixed(1)
}

// escapeDescription writes backslashes as `\\` and any '-' bounded by spaces
// (or the ends of the description) as `\-`.
func escapeDescription(s string) string {
	if !strings.ContainsAny(s, `\-`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c == '-' && (i == 0 || s[i-1] == ' ') && (i == len(s)-1 || s[i+1] == ' '):
			b.WriteString(`\-`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// unescapeDescription reverses escapeDescription. Unknown escapes are kept
// literally so unescaped legacy lines read back unchanged.
func unescapeDescription(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '\\' || s[i+1] == '-') {
			b.WriteByte(s[i+1])
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

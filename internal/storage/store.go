package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/xolan/timelog/internal/entry"
	"github.com/xolan/timelog/internal/logging"
	"github.com/xolan/timelog/internal/timeutil"
)

const (
	// FilePrefix and FileExt make up a month file name: log<YYYYMM>.txt
	FilePrefix = "log"
	FileExt    = ".txt"
)

// monthFilePattern matches month file names inside the log directory
var monthFilePattern = regexp.MustCompile(`^` + FilePrefix + `(\d{6})` + regexp.QuoteMeta(FileExt) + `$`)

// ParseWarning represents a warning about a line that could not be parsed
type ParseWarning struct {
	LineNumber int    // Line number in the file (1-indexed)
	Content    string // Raw content of the line
	Error      string // Description of the parsing error
}

// ReadResult contains the entries parsed from a month file along with
// warnings about lines that could not be parsed.
type ReadResult struct {
	Entries  []entry.Entry
	Warnings []ParseWarning
}

// Totals summarizes the parseable entries of a month
type Totals struct {
	Count int
	Sum   decimal.Decimal
	Lines int // raw (non-blank) lines in the file
}

// Health contains information about the health of a month file
type Health struct {
	Path             string
	TotalLines       int
	ValidEntries     int
	CorruptedEntries int
	Sorted           bool // entries are stored most recent first
	Warnings         []ParseWarning
}

// Store is the month-partitioned flat-file log.
// It keeps no state between calls: every operation reads the month file fresh.
type Store struct {
	dir     string
	backups int
	log     zerolog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for storage events
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.log = logging.Component(l, logging.ComponentStorage)
	}
}

// WithBackups sets how many rotating backups are kept before a rewrite.
// Zero disables backups.
func WithBackups(n int) Option {
	return func(s *Store) {
		if n < 0 {
			n = 0
		}
		if n > MaxBackupLimit {
			n = MaxBackupLimit
		}
		s.backups = n
	}
}

// NewStore creates a Store rooted at dir
func NewStore(dir string, opts ...Option) *Store {
	s := &Store{
		dir:     dir,
		backups: DefaultBackupCount,
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the log directory
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file backing the given month
func (s *Store) Path(month timeutil.Month) string {
	return filepath.Join(s.dir, FilePrefix+month.String()+FileExt)
}

// Append validates e and appends it as one line to the month file.
// The log directory and the file are created if they don't exist.
// Existing content is never rewritten.
func (s *Store) Append(month timeutil.Month, e entry.Entry) error {
	if err := entry.Validate(e); err != nil {
		return err
	}
	if !month.Contains(e.Timestamp) {
		return &entry.ValidationError{
			Field:  "timestamp",
			Value:  e.Timestamp.Format(entry.TimestampLayout),
			Reason: fmt.Sprintf("not in month %s", month),
		}
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return ioError("create directory", s.dir, err)
	}

	path := s.Path(month)
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return ioError("open", path, err)
	}

	if _, err := file.WriteString(entry.Format(e) + "\n"); err != nil {
		_ = file.Close()
		return ioError("write", path, err)
	}
	if err := file.Close(); err != nil {
		return ioError("close", path, err)
	}

	s.log.Debug().
		Str(logging.FieldMonth, month.String()).
		Str(logging.FieldPath, path).
		Msg("appended entry")
	return nil
}

type rawLine struct {
	number int
	text   string
}

// readLines reads the non-blank lines of a month file with their 1-based line numbers.
// A missing file yields no lines and no error.
func (s *Store) readLines(month timeutil.Month) ([]rawLine, error) {
	path := s.Path(month)
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, ioError("open", path, err)
	}
	defer func() { _ = file.Close() }()

	var lines []rawLine
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	number := 0
	for scanner.Scan() {
		number++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, rawLine{number: number, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, ioError("read", path, err)
	}
	return lines, nil
}

// LoadAll returns the raw lines of a month file in file order (oldest appended first).
// Returns an empty slice if the file doesn't exist or is empty.
func (s *Store) LoadAll(month timeutil.Month) ([]string, error) {
	lines, err := s.readLines(month)
	if err != nil {
		return []string{}, err
	}

	result := make([]string, 0, len(lines))
	for _, l := range lines {
		result = append(result, l.text)
	}
	return result, nil
}

// Read parses every line of a month file. Entries stay in file order;
// unparsable lines are reported as warnings and never dropped from the file.
func (s *Store) Read(month timeutil.Month) (ReadResult, error) {
	result := ReadResult{
		Entries:  []entry.Entry{},
		Warnings: []ParseWarning{},
	}

	lines, err := s.readLines(month)
	if err != nil {
		return result, err
	}

	for _, l := range lines {
		e, err := entry.Parse(l.text)
		if err != nil {
			result.Warnings = append(result.Warnings, ParseWarning{
				LineNumber: l.number,
				Content:    l.text,
				Error:      err.Error(),
			})
			continue
		}
		result.Entries = append(result.Entries, e)
	}
	return result, nil
}

// SortDescending parses lines, discards the unparsable ones and returns the
// entries ordered most recent first. Ties keep their original relative order.
func (s *Store) SortDescending(lines []string) []entry.Entry {
	entries := make([]entry.Entry, 0, len(lines))
	for _, line := range lines {
		e, err := entry.Parse(line)
		if err != nil {
			continue
		}
		entries = append(entries, e)
	}
	entry.SortDescending(entries)
	return entries
}

// List reads a month and returns its entries in descending order.
// This is the view that Update indexes into.
func (s *Store) List(month timeutil.Month) (ReadResult, error) {
	result, err := s.Read(month)
	if err != nil {
		return result, err
	}
	entry.SortDescending(result.Entries)
	return result, nil
}

// Update replaces the entry at index (0-based, in the descending view) with e
// and rewrites the month file in descending order.
// Returns an *IndexError if index is out of range.
func (s *Store) Update(month timeutil.Month, index int, e entry.Entry) error {
	if err := entry.Validate(e); err != nil {
		return err
	}
	if !month.Contains(e.Timestamp) {
		return &entry.ValidationError{
			Field:  "timestamp",
			Value:  e.Timestamp.Format(entry.TimestampLayout),
			Reason: fmt.Sprintf("not in month %s", month),
		}
	}

	result, err := s.List(month)
	if err != nil {
		return err
	}

	if index < 0 || index >= len(result.Entries) {
		return &IndexError{Index: index, Count: len(result.Entries)}
	}

	result.Entries[index] = e
	entry.SortDescending(result.Entries)

	if err := s.rewrite(month, result); err != nil {
		return err
	}

	s.log.Debug().
		Str(logging.FieldMonth, month.String()).
		Int(logging.FieldIndex, index).
		Msg("updated entry")
	return nil
}

// Sort rewrites a month file with its entries in descending order.
// Entries themselves are not changed.
func (s *Store) Sort(month timeutil.Month) error {
	result, err := s.List(month)
	if err != nil {
		return err
	}
	if len(result.Entries) == 0 && len(result.Warnings) == 0 {
		return nil
	}
	return s.rewrite(month, result)
}

// rewrite replaces the month file with the given entries followed by the raw
// content of any unparsable lines, in their original order.
// Uses atomic write pattern (write to temp file, then rename) for safety.
func (s *Store) rewrite(month timeutil.Month, result ReadResult) error {
	path := s.Path(month)

	if s.backups > 0 {
		if err := CreateBackup(path, s.backups); err != nil {
			return ioError("backup", path, err)
		}
	}

	for _, w := range result.Warnings {
		s.log.Warn().
			Str(logging.FieldMonth, month.String()).
			Int(logging.FieldLine, w.LineNumber).
			Str("content", w.Content).
			Msg("preserving unparsable line")
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return ioError("create directory", s.dir, err)
	}

	tmpFile := path + ".tmp"
	file, err := os.OpenFile(tmpFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return ioError("open", tmpFile, err)
	}

	w := bufio.NewWriter(file)
	for _, e := range result.Entries {
		_, _ = w.WriteString(entry.Format(e) + "\n")
	}
	for _, warning := range result.Warnings {
		_, _ = w.WriteString(warning.Content + "\n")
	}

	if err := w.Flush(); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpFile)
		return ioError("write", tmpFile, err)
	}

	// Close temp file before rename
	if err := file.Close(); err != nil {
		_ = os.Remove(tmpFile)
		return ioError("close", tmpFile, err)
	}

	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return ioError("rename", path, err)
	}

	s.log.Debug().
		Str(logging.FieldMonth, month.String()).
		Str(logging.FieldPath, path).
		Int(logging.FieldCount, len(result.Entries)).
		Msg("rewrote month file")
	return nil
}

// Count returns the number of lines in the month that parse completely.
// A line with a numeric amount but a malformed timestamp or missing delimiter
// is not counted, so Count and Sum always cover the same lines.
func (s *Store) Count(month timeutil.Month) (int, error) {
	totals, err := s.Totals(month)
	return totals.Count, err
}

// Sum returns the sum of the amounts of exactly the lines counted by Count.
// Malformed lines are excluded silently.
func (s *Store) Sum(month timeutil.Month) (decimal.Decimal, error) {
	totals, err := s.Totals(month)
	return totals.Sum, err
}

// Totals returns count, sum and raw line count for a month in a single read
func (s *Store) Totals(month timeutil.Month) (Totals, error) {
	totals := Totals{Sum: decimal.Zero}

	result, err := s.Read(month)
	if err != nil {
		return totals, err
	}

	for _, e := range result.Entries {
		totals.Sum = totals.Sum.Add(e.Amount)
	}
	totals.Count = len(result.Entries)
	totals.Lines = len(result.Entries) + len(result.Warnings)
	return totals, nil
}

// Validate analyzes a month file and returns health status information.
// Returns an empty health status if the file doesn't exist.
func (s *Store) Validate(month timeutil.Month) (Health, error) {
	health := Health{
		Path:     s.Path(month),
		Warnings: []ParseWarning{},
	}

	result, err := s.Read(month)
	if err != nil {
		return health, err
	}

	health.ValidEntries = len(result.Entries)
	health.CorruptedEntries = len(result.Warnings)
	health.TotalLines = health.ValidEntries + health.CorruptedEntries
	health.Sorted = entry.IsSortedDescending(result.Entries)
	health.Warnings = result.Warnings
	return health, nil
}

// Months returns the months that have a file in the log directory, oldest first.
// A missing directory yields an empty slice.
func (s *Store) Months() ([]timeutil.Month, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []timeutil.Month{}, nil
		}
		return nil, ioError("read directory", s.dir, err)
	}

	months := []timeutil.Month{}
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		matches := monthFilePattern.FindStringSubmatch(de.Name())
		if matches == nil {
			continue
		}
		m, err := timeutil.ParseMonth(matches[1])
		if err != nil {
			continue
		}
		months = append(months, m)
	}

	sort.Slice(months, func(i, j int) bool {
		return months[i].Before(months[j])
	})
	return months, nil
}

package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xolan/timelog/internal/entry"
	"github.com/xolan/timelog/internal/timeutil"
)

var march2024 = timeutil.Month{Year: 2024, Month: time.March}

// newTestStore creates a Store in a temp directory with no backups
func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	opts = append([]Option{WithBackups(0)}, opts...)
	return NewStore(filepath.Join(t.TempDir(), "logs"), opts...)
}

func mustEntry(t *testing.T, ts, desc, amount string) entry.Entry {
	t.Helper()
	e, err := entry.New(ts, desc, amount)
	if err != nil {
		t.Fatalf("entry.New(%q, %q, %q) returned unexpected error: %v", ts, desc, amount, err)
	}
	return e
}

func writeMonthFile(t *testing.T, s *Store, month timeutil.Month, content string) {
	t.Helper()
	if err := os.MkdirAll(s.Dir(), 0755); err != nil {
		t.Fatalf("Failed to create log dir: %v", err)
	}
	if err := os.WriteFile(s.Path(month), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write month file: %v", err)
	}
}

func readMonthFile(t *testing.T, s *Store, month timeutil.Month) string {
	t.Helper()
	data, err := os.ReadFile(s.Path(month))
	if err != nil {
		t.Fatalf("Failed to read month file: %v", err)
	}
	return string(data)
}

// appendScenario appends the two entries used throughout the month scenarios
func appendScenario(t *testing.T, s *Store) {
	t.Helper()
	for _, e := range []entry.Entry{
		mustEntry(t, "2024-03-01 09:00:00", "design review", "2.5"),
		mustEntry(t, "2024-03-02 10:00:00", "coding", "4.0"),
	} {
		if err := s.Append(march2024, e); err != nil {
			t.Fatalf("Append() returned unexpected error: %v", err)
		}
	}
}

func TestPath(t *testing.T) {
	s := NewStore("/var/timelog")
	expected := filepath.Join("/var/timelog", "log202403.txt")
	if got := s.Path(march2024); got != expected {
		t.Errorf("Path() = %q, expected %q", got, expected)
	}
}

func TestAppend_CreatesDirectoryAndFile(t *testing.T) {
	s := newTestStore(t)

	if _, err := os.Stat(s.Dir()); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("log dir should not exist before the first append")
	}

	appendScenario(t, s)

	content := readMonthFile(t, s, march2024)
	expected := "2024-03-01 09:00:00 - design review - 2.5\n" +
		"2024-03-02 10:00:00 - coding - 4.0\n"
	if content != expected {
		t.Errorf("file content = %q, expected %q", content, expected)
	}
}

func TestAppend_DoesNotRewriteExistingContent(t *testing.T) {
	s := newTestStore(t)
	writeMonthFile(t, s, march2024, "garbage line no delimiter\n")

	if err := s.Append(march2024, mustEntry(t, "2024-03-05 12:00:00", "meeting", "1")); err != nil {
		t.Fatalf("Append() returned unexpected error: %v", err)
	}

	content := readMonthFile(t, s, march2024)
	expected := "garbage line no delimiter\n2024-03-05 12:00:00 - meeting - 1.0\n"
	if content != expected {
		t.Errorf("file content = %q, expected %q", content, expected)
	}
}

func TestAppend_Validation(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name  string
		entry entry.Entry
	}{
		{
			name:  "zero timestamp",
			entry: entry.Entry{Description: "work", Amount: decimal.NewFromInt(1)},
		},
		{
			name:  "empty description",
			entry: entry.Entry{Timestamp: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(1)},
		},
		{
			name:  "timestamp outside month",
			entry: mustEntry(t, "2024-04-01 00:00:00", "work", "1"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Append(march2024, tt.entry)
			var verr *entry.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *entry.ValidationError, got %T: %v", err, err)
			}
		})
	}

	if _, err := os.Stat(s.Path(march2024)); !errors.Is(err, fs.ErrNotExist) {
		t.Error("no file should be created for rejected entries")
	}
}

func TestAppend_IOError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("directory permissions behave differently on windows")
	}
	if os.Getuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	s := newTestStore(t)
	if err := os.MkdirAll(s.Dir(), 0555); err != nil {
		t.Fatalf("Failed to create read-only dir: %v", err)
	}
	defer os.Chmod(s.Dir(), 0755)

	err := s.Append(march2024, mustEntry(t, "2024-03-01 09:00:00", "work", "1"))
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError, got %T: %v", err, err)
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Errorf("expected error to wrap fs.ErrPermission, got %v", err)
	}
}

func TestLoadAll_MissingMonth(t *testing.T) {
	s := newTestStore(t)

	lines, err := s.LoadAll(march2024)
	if err != nil {
		t.Fatalf("LoadAll() returned unexpected error: %v", err)
	}
	if lines == nil || len(lines) != 0 {
		t.Errorf("LoadAll() = %v, expected empty non-nil slice", lines)
	}
}

func TestLoadAll_EmptyFile(t *testing.T) {
	s := newTestStore(t)
	writeMonthFile(t, s, march2024, "")

	lines, err := s.LoadAll(march2024)
	if err != nil {
		t.Fatalf("LoadAll() returned unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("LoadAll() returned %d lines, expected 0", len(lines))
	}
}

func TestLoadAll_FileOrder(t *testing.T) {
	s := newTestStore(t)

	descriptions := []string{"first", "second", "third", "fourth", "fifth"}
	for i, desc := range descriptions {
		// Append out of timestamp order to show raw order is append order
		ts := time.Date(2024, time.March, 20-i*3, 9, 0, 0, 0, time.UTC)
		e := entry.Entry{Timestamp: ts, Description: desc, Amount: decimal.NewFromInt(1)}
		if err := s.Append(march2024, e); err != nil {
			t.Fatalf("Append() returned unexpected error: %v", err)
		}
	}

	lines, err := s.LoadAll(march2024)
	if err != nil {
		t.Fatalf("LoadAll() returned unexpected error: %v", err)
	}
	if len(lines) != len(descriptions) {
		t.Fatalf("LoadAll() returned %d lines, expected %d", len(lines), len(descriptions))
	}
	for i, desc := range descriptions {
		if !strings.Contains(lines[i], " - "+desc+" - ") {
			t.Errorf("lines[%d] = %q, expected description %q", i, lines[i], desc)
		}
	}
}

func TestLoadAll_SkipsBlankLinesAndCarriageReturns(t *testing.T) {
	s := newTestStore(t)
	writeMonthFile(t, s, march2024, "2024-03-01 09:00:00 - a - 1.0\r\n\n   \n2024-03-02 09:00:00 - b - 2.0\r\n")

	lines, err := s.LoadAll(march2024)
	if err != nil {
		t.Fatalf("LoadAll() returned unexpected error: %v", err)
	}
	expected := []string{"2024-03-01 09:00:00 - a - 1.0", "2024-03-02 09:00:00 - b - 2.0"}
	if len(lines) != len(expected) {
		t.Fatalf("LoadAll() = %q, expected %q", lines, expected)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("lines[%d] = %q, expected %q", i, lines[i], expected[i])
		}
	}
}

func TestRead_Warnings(t *testing.T) {
	s := newTestStore(t)
	writeMonthFile(t, s, march2024,
		"2024-03-01 09:00:00 - design review - 2.5\n"+
			"garbage line no delimiter\n"+
			"\n"+
			"2024-03-02 10:00:00 - coding - lots\n"+
			"2024-03-02 11:00:00 - coding - 4.0\n")

	result, err := s.Read(march2024)
	if err != nil {
		t.Fatalf("Read() returned unexpected error: %v", err)
	}

	if len(result.Entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(result.Entries))
	}
	if len(result.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(result.Warnings))
	}

	if result.Warnings[0].LineNumber != 2 || result.Warnings[0].Content != "garbage line no delimiter" {
		t.Errorf("unexpected first warning: %+v", result.Warnings[0])
	}
	if result.Warnings[1].LineNumber != 4 {
		t.Errorf("second warning LineNumber = %d, expected 4 (blank lines still count)", result.Warnings[1].LineNumber)
	}
	if !strings.Contains(result.Warnings[1].Error, "amount is not numeric") {
		t.Errorf("second warning Error = %q", result.Warnings[1].Error)
	}
}

func TestSortDescending_Scenario(t *testing.T) {
	s := newTestStore(t)
	appendScenario(t, s)

	lines, err := s.LoadAll(march2024)
	if err != nil {
		t.Fatalf("LoadAll() returned unexpected error: %v", err)
	}

	sorted := s.SortDescending(lines)
	if len(sorted) != 2 {
		t.Fatalf("SortDescending() returned %d entries, expected 2", len(sorted))
	}
	if sorted[0].Description != "coding" || !sorted[0].Amount.Equal(decimal.RequireFromString("4.0")) {
		t.Errorf("sorted[0] = %+v, expected coding(4.0)", sorted[0])
	}
	if sorted[1].Description != "design review" || !sorted[1].Amount.Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("sorted[1] = %+v, expected design review(2.5)", sorted[1])
	}
}

func TestSortDescending_DiscardsUnparsableAndIsStable(t *testing.T) {
	s := newTestStore(t)
	lines := []string{
		"2024-03-01 09:00:00 - a - 1.0",
		"garbage line no delimiter",
		"2024-03-05 09:00:00 - b - 1.0",
		"2024-03-05 09:00:00 - c - 1.0",
		"2024-03-03 09:00:00 - d - x",
	}

	sorted := s.SortDescending(lines)
	got := make([]string, 0, len(sorted))
	for _, e := range sorted {
		got = append(got, e.Description)
	}

	expected := []string{"b", "c", "a"}
	if strings.Join(got, ",") != strings.Join(expected, ",") {
		t.Errorf("SortDescending() order = %v, expected %v", got, expected)
	}

	// Idempotence: sorting the serialized sorted sequence yields the same sequence
	reserialized := make([]string, 0, len(sorted))
	for _, e := range sorted {
		reserialized = append(reserialized, entry.Format(e))
	}
	again := s.SortDescending(reserialized)
	for i := range sorted {
		if !again[i].Equal(sorted[i]) {
			t.Errorf("second sort changed position %d", i)
		}
	}
}

func TestCountAndSum_Scenario(t *testing.T) {
	s := newTestStore(t)
	appendScenario(t, s)

	count, err := s.Count(march2024)
	if err != nil {
		t.Fatalf("Count() returned unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, expected 2", count)
	}

	sum, err := s.Sum(march2024)
	if err != nil {
		t.Fatalf("Sum() returned unexpected error: %v", err)
	}
	if !sum.Equal(decimal.RequireFromString("6.5")) {
		t.Errorf("Sum() = %s, expected 6.5", sum)
	}
}

func TestCountAndSum_IgnoreMalformedLines(t *testing.T) {
	s := newTestStore(t)
	writeMonthFile(t, s, march2024,
		"2024-03-01 09:00:00 - design review - 2.5\n"+
			"garbage line no delimiter\n"+
			"2024-03-02 10:00:00 - coding - four\n"+
			"2024-03-03 10:00:00 - coding - 0.1\n"+
			"2024-03-04 10:00:00 - coding - 0.2\n")

	lines, _ := s.LoadAll(march2024)
	totals, err := s.Totals(march2024)
	if err != nil {
		t.Fatalf("Totals() returned unexpected error: %v", err)
	}

	if totals.Count > len(lines) {
		t.Errorf("Count (%d) must not exceed raw line count (%d)", totals.Count, len(lines))
	}
	if totals.Count != 3 {
		t.Errorf("Count = %d, expected 3", totals.Count)
	}
	if totals.Lines != 5 {
		t.Errorf("Lines = %d, expected 5", totals.Lines)
	}
	// Exact decimal arithmetic: 2.5 + 0.1 + 0.2 == 2.8
	if !totals.Sum.Equal(decimal.RequireFromString("2.8")) {
		t.Errorf("Sum = %s, expected 2.8", totals.Sum)
	}

	// Sum equals the sum over exactly the counted lines
	expected := decimal.Zero
	for _, e := range s.SortDescending(lines) {
		expected = expected.Add(e.Amount)
	}
	if !totals.Sum.Equal(expected) {
		t.Errorf("Sum = %s, expected sum over parsed lines %s", totals.Sum, expected)
	}
}

func TestCountAndSum_ExcludeNumericAmountWithBadTimestamp(t *testing.T) {
	s := newTestStore(t)
	writeMonthFile(t, s, march2024,
		"2024-03-01 09:00:00 - design review - 2.5\n"+
			"2024-03-01 9:00:00 - short hour - 4.0\n"+
			"yesterday - no timestamp - 1.0\n")

	count, err := s.Count(march2024)
	if err != nil {
		t.Fatalf("Count() returned unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %d, expected 1", count)
	}

	sum, err := s.Sum(march2024)
	if err != nil {
		t.Fatalf("Sum() returned unexpected error: %v", err)
	}
	if !sum.Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("Sum() = %s, expected 2.5", sum)
	}
}

func TestCountAndSum_MissingMonth(t *testing.T) {
	s := newTestStore(t)

	count, err := s.Count(march2024)
	if err != nil || count != 0 {
		t.Errorf("Count() = %d, %v; expected 0, nil", count, err)
	}
	sum, err := s.Sum(march2024)
	if err != nil || !sum.IsZero() {
		t.Errorf("Sum() = %s, %v; expected 0, nil", sum, err)
	}
}

func TestUpdate_Scenario(t *testing.T) {
	s := newTestStore(t)
	appendScenario(t, s)

	updated := mustEntry(t, "2024-03-02 10:00:00", "coding", "5.5")
	if err := s.Update(march2024, 0, updated); err != nil {
		t.Fatalf("Update() returned unexpected error: %v", err)
	}

	result, err := s.List(march2024)
	if err != nil {
		t.Fatalf("List() returned unexpected error: %v", err)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(result.Entries))
	}
	if result.Entries[0].Description != "coding" || result.Entries[1].Description != "design review" {
		t.Errorf("descending order changed: %q, %q", result.Entries[0].Description, result.Entries[1].Description)
	}
	if !result.Entries[0].Amount.Equal(decimal.RequireFromString("5.5")) {
		t.Errorf("updated amount = %s, expected 5.5", result.Entries[0].Amount)
	}

	sum, _ := s.Sum(march2024)
	if !sum.Equal(decimal.RequireFromString("8.0")) {
		t.Errorf("Sum() = %s, expected 8.0", sum)
	}

	// The file is rewritten in descending order with canonical amounts
	content := readMonthFile(t, s, march2024)
	expected := "2024-03-02 10:00:00 - coding - 5.5\n" +
		"2024-03-01 09:00:00 - design review - 2.5\n"
	if content != expected {
		t.Errorf("file content = %q, expected %q", content, expected)
	}
}

func TestUpdate_IndexOutOfRange(t *testing.T) {
	s := newTestStore(t)
	appendScenario(t, s)

	e := mustEntry(t, "2024-03-02 10:00:00", "coding", "1")
	for _, index := range []int{2, 3, -1} {
		err := s.Update(march2024, index, e)
		var idxErr *IndexError
		if !errors.As(err, &idxErr) {
			t.Fatalf("Update(index=%d): expected *IndexError, got %T: %v", index, err, err)
		}
		if idxErr.Index != index || idxErr.Count != 2 {
			t.Errorf("IndexError = %+v, expected index %d count 2", idxErr, index)
		}
	}
}

func TestUpdate_MissingMonth(t *testing.T) {
	s := newTestStore(t)

	err := s.Update(march2024, 0, mustEntry(t, "2024-03-02 10:00:00", "coding", "1"))
	var idxErr *IndexError
	if !errors.As(err, &idxErr) {
		t.Fatalf("expected *IndexError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "no entries") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestUpdate_ResortsWhenTimestampChanges(t *testing.T) {
	s := newTestStore(t)
	appendScenario(t, s)

	// Move "design review" (index 1) after "coding"
	moved := mustEntry(t, "2024-03-03 08:00:00", "design review", "2.5")
	if err := s.Update(march2024, 1, moved); err != nil {
		t.Fatalf("Update() returned unexpected error: %v", err)
	}

	result, _ := s.List(march2024)
	if result.Entries[0].Description != "design review" {
		t.Errorf("expected moved entry first, got %q", result.Entries[0].Description)
	}
}

func TestUpdate_RejectsEntryOutsideMonth(t *testing.T) {
	s := newTestStore(t)
	appendScenario(t, s)

	err := s.Update(march2024, 0, mustEntry(t, "2024-04-02 10:00:00", "coding", "1"))
	var verr *entry.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *entry.ValidationError, got %T: %v", err, err)
	}
}

func TestGarbageLineSurvivesAppendAndUpdate(t *testing.T) {
	s := newTestStore(t)
	writeMonthFile(t, s, march2024, "garbage line no delimiter\n")
	appendScenario(t, s)

	count, _ := s.Count(march2024)
	if count != 2 {
		t.Errorf("Count() = %d, expected 2", count)
	}
	sum, _ := s.Sum(march2024)
	if !sum.Equal(decimal.RequireFromString("6.5")) {
		t.Errorf("Sum() = %s, expected 6.5", sum)
	}

	lines, _ := s.LoadAll(march2024)
	if lines[0] != "garbage line no delimiter" {
		t.Errorf("garbage line should still be first raw line, got %q", lines[0])
	}
	for _, e := range s.SortDescending(lines) {
		if strings.Contains(e.Description, "garbage") {
			t.Error("garbage line must not appear in the sorted view")
		}
	}

	if err := s.Update(march2024, 0, mustEntry(t, "2024-03-02 10:00:00", "coding", "5.5")); err != nil {
		t.Fatalf("Update() returned unexpected error: %v", err)
	}

	content := readMonthFile(t, s, march2024)
	expected := "2024-03-02 10:00:00 - coding - 5.5\n" +
		"2024-03-01 09:00:00 - design review - 2.5\n" +
		"garbage line no delimiter\n"
	if content != expected {
		t.Errorf("file content = %q, expected %q", content, expected)
	}
}

func TestUpdate_CreatesBackup(t *testing.T) {
	s := newTestStore(t, WithBackups(2))
	appendScenario(t, s)
	before := readMonthFile(t, s, march2024)

	if err := s.Update(march2024, 0, mustEntry(t, "2024-03-02 10:00:00", "coding", "5.5")); err != nil {
		t.Fatalf("Update() returned unexpected error: %v", err)
	}

	backup, err := os.ReadFile(BackupPath(s.Path(march2024), 1))
	if err != nil {
		t.Fatalf("expected backup file: %v", err)
	}
	if string(backup) != before {
		t.Errorf("backup content = %q, expected %q", backup, before)
	}

	if _, err := os.Stat(s.Path(march2024) + ".tmp"); !errors.Is(err, fs.ErrNotExist) {
		t.Error("temp file should not remain after rewrite")
	}
}

func TestSort_RewritesDescendingAndKeepsGarbage(t *testing.T) {
	s := newTestStore(t)
	writeMonthFile(t, s, march2024,
		"2024-03-01 09:00:00 - a - 1.0\n"+
			"not an entry\n"+
			"2024-03-03 09:00:00 - c - 3\n"+
			"2024-03-02 09:00:00 - b - 2.50\n")

	if err := s.Sort(march2024); err != nil {
		t.Fatalf("Sort() returned unexpected error: %v", err)
	}

	content := readMonthFile(t, s, march2024)
	expected := "2024-03-03 09:00:00 - c - 3.0\n" +
		"2024-03-02 09:00:00 - b - 2.5\n" +
		"2024-03-01 09:00:00 - a - 1.0\n" +
		"not an entry\n"
	if content != expected {
		t.Errorf("file content = %q, expected %q", content, expected)
	}
}

func TestSort_KeepsTimestampsSkippedByDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}
	orig := time.Local
	time.Local = ny
	t.Cleanup(func() { time.Local = orig })

	s := newTestStore(t)
	// 02:30 does not exist in New York on 2024-03-10
	writeMonthFile(t, s, march2024,
		"2024-03-10 02:30:00 - gap - 1.0\n"+
			"2024-03-01 09:00:00 - other - 2.0\n")

	if err := s.Sort(march2024); err != nil {
		t.Fatalf("Sort() returned unexpected error: %v", err)
	}

	content := readMonthFile(t, s, march2024)
	expected := "2024-03-10 02:30:00 - gap - 1.0\n" +
		"2024-03-01 09:00:00 - other - 2.0\n"
	if content != expected {
		t.Errorf("file content = %q, expected %q", content, expected)
	}
}

func TestSort_MissingMonthCreatesNothing(t *testing.T) {
	s := newTestStore(t)

	if err := s.Sort(march2024); err != nil {
		t.Fatalf("Sort() returned unexpected error: %v", err)
	}
	if _, err := os.Stat(s.Path(march2024)); !errors.Is(err, fs.ErrNotExist) {
		t.Error("Sort() should not create a file for an empty month")
	}
}

func TestValidate(t *testing.T) {
	s := newTestStore(t)
	writeMonthFile(t, s, march2024,
		"2024-03-01 09:00:00 - a - 1.0\n"+
			"broken\n"+
			"2024-03-02 09:00:00 - b - 2.0\n")

	health, err := s.Validate(march2024)
	if err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
	if health.TotalLines != 3 || health.ValidEntries != 2 || health.CorruptedEntries != 1 {
		t.Errorf("unexpected health: %+v", health)
	}
	if health.Path != s.Path(march2024) {
		t.Errorf("Path = %q, expected %q", health.Path, s.Path(march2024))
	}
	if health.Sorted {
		t.Error("entries appended oldest first should not be reported as sorted")
	}

	if err := s.Sort(march2024); err != nil {
		t.Fatalf("Sort() returned unexpected error: %v", err)
	}
	health, _ = s.Validate(march2024)
	if !health.Sorted {
		t.Error("entries should be reported as sorted after Sort()")
	}
}

func TestMonths(t *testing.T) {
	s := newTestStore(t)

	months, err := s.Months()
	if err != nil {
		t.Fatalf("Months() on missing dir returned unexpected error: %v", err)
	}
	if len(months) != 0 {
		t.Errorf("expected no months, got %v", months)
	}

	for _, key := range []string{"202403", "202312", "202401"} {
		m, _ := timeutil.ParseMonth(key)
		writeMonthFile(t, s, m, "")
	}
	// Files that are not month files are ignored
	_ = os.WriteFile(filepath.Join(s.Dir(), "log202403.txt.bak.1"), nil, 0644)
	_ = os.WriteFile(filepath.Join(s.Dir(), "notes.txt"), nil, 0644)
	_ = os.WriteFile(filepath.Join(s.Dir(), "log202413.txt"), nil, 0644)

	months, err = s.Months()
	if err != nil {
		t.Fatalf("Months() returned unexpected error: %v", err)
	}

	var keys []string
	for _, m := range months {
		keys = append(keys, m.String())
	}
	if strings.Join(keys, ",") != "202312,202401,202403" {
		t.Errorf("Months() = %v, expected [202312 202401 202403]", keys)
	}
}

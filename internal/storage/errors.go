package storage

import "fmt"

// IndexError reports an update that targets a position outside the
// current entry count of a month
type IndexError struct {
	Index int // 0-based position in the descending view
	Count int // number of parseable entries in the month
}

func (e *IndexError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("index %d out of range: month has no entries", e.Index)
	}
	return fmt.Sprintf("index %d out of range (0-%d)", e.Index, e.Count-1)
}

// IOError wraps a file system failure while reading or writing a month file.
// errors.Is works against the underlying error (e.g. fs.ErrPermission).
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func ioError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}

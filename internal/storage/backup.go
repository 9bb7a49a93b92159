package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/xolan/timelog/internal/logging"
	"github.com/xolan/timelog/internal/timeutil"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// DefaultBackupCount is the number of backups kept unless configured otherwise
	DefaultBackupCount = 3
	// MaxBackupLimit is the largest configurable number of backups
	MaxBackupLimit = 9
)

// BackupPath returns the path to a backup file with the given rotation number.
// Backup files are named <file>.bak.N; lower numbers are more recent
// (.bak.1 is the most recent backup).
func BackupPath(path string, n int) string {
	return fmt.Sprintf("%s%s.%d", path, BackupSuffix, n)
}

// rotateBackups shifts existing backup files to make room for a new backup.
// It deletes .bak.<keep> and renames .bak.N to .bak.N+1 from the oldest down.
// Missing files are not an error.
func rotateBackups(path string, keep int) error {
	if err := os.Remove(BackupPath(path, keep)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	for i := keep - 1; i >= 1; i-- {
		if err := os.Rename(BackupPath(path, i), BackupPath(path, i+1)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	return nil
}

// CreateBackup rotates existing backups and copies the file at path to .bak.1,
// keeping at most keep backups.
// If the file doesn't exist, no backup is created and no error is returned.
func CreateBackup(path string, keep int) error {
	if keep < 1 {
		return nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	if err := rotateBackups(path, keep); err != nil {
		return err
	}

	sourceFile, err := os.Open(path)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(BackupPath(path, 1))
	if err != nil {
		return err
	}

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		_ = destFile.Close()
		return err
	}
	return destFile.Close()
}

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Number int    // The backup number (1 is the most recent)
	Path   string // The full path to the backup file
}

// ListBackups returns the backups of the file at path, most recent first.
// Returns an empty slice if no backups exist.
func ListBackups(path string) ([]BackupInfo, error) {
	backups := []BackupInfo{}

	for i := 1; i <= MaxBackupLimit; i++ {
		backupPath := BackupPath(path, i)
		if _, err := os.Stat(backupPath); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		backups = append(backups, BackupInfo{Number: i, Path: backupPath})
	}

	return backups, nil
}

// RestoreBackup replaces the file at path with backup number n.
// The current content is backed up first, so a restore can itself be undone.
func RestoreBackup(path string, n, keep int) error {
	if n < 1 || n > MaxBackupLimit {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", n, MaxBackupLimit)
	}

	// Read the backup before rotating, since rotation renames it
	data, err := os.ReadFile(BackupPath(path, n))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("backup %d does not exist", n)
		}
		return err
	}

	if keep < 1 {
		keep = 1
	}
	if err := CreateBackup(path, keep); err != nil {
		return err
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpFile, path)
}

// ListBackups returns the backups of a month file, most recent first
func (s *Store) ListBackups(month timeutil.Month) ([]BackupInfo, error) {
	backups, err := ListBackups(s.Path(month))
	if err != nil {
		return nil, ioError("list backups", s.Path(month), err)
	}
	return backups, nil
}

// RestoreBackup restores a month file from backup number n
func (s *Store) RestoreBackup(month timeutil.Month, n int) error {
	if err := RestoreBackup(s.Path(month), n, s.backups); err != nil {
		return err
	}

	s.log.Info().
		Str(logging.FieldMonth, month.String()).
		Int("backup", n).
		Msg("restored month file from backup")
	return nil
}

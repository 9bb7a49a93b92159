// Package osutil provides abstractions for OS-level operations to enable testing.
package osutil

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
)

// PathProvider abstracts the OS lookups used to resolve the config file,
// the timer state file and the log directory.
type PathProvider interface {
	UserConfigDir() (string, error)
	Getwd() (string, error)
	MkdirAll(path string, perm os.FileMode) error
}

// DefaultPathProvider uses real OS functions.
type DefaultPathProvider struct{}

// UserConfigDir returns the default root directory for user-specific configuration data.
func (DefaultPathProvider) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// Getwd returns the working directory of the process.
func (DefaultPathProvider) Getwd() (string, error) {
	return os.Getwd()
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (DefaultPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Provider is the package-level path provider instance.
// In production, this is DefaultPathProvider. Tests can replace it.
var Provider PathProvider = DefaultPathProvider{}

// SetProvider sets a custom provider (for testing).
func SetProvider(p PathProvider) {
	Provider = p
}

// ResetProvider resets to the default provider.
func ResetProvider() {
	Provider = DefaultPathProvider{}
}

// ResolveDir turns a configured directory into an absolute path.
// A leading "~" is expanded to the home directory and relative paths
// are joined to the working directory.
func ResolveDir(dir string) (string, error) {
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), nil
	}

	wd, err := Provider.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, expanded), nil
}

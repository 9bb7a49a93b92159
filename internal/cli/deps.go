package cli

import (
	"io"
	"os"

	"github.com/xolan/timelog/internal/service"
)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	// Services is built lazily by Init so that flags such as --verbose
	// are known before the logger is created
	Services *service.Services
}

// DefaultDeps creates a new Deps with default values
func DefaultDeps() *Deps {
	return &Deps{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
		Exit:   os.Exit,
	}
}

// NewDeps creates a new Deps with the given services
func NewDeps(services *service.Services) *Deps {
	d := DefaultDeps()
	d.Services = services
	return d
}

// Init builds the services from the user's config file unless they are already set
func (d *Deps) Init(verbose bool) error {
	if d.Services != nil {
		return nil
	}
	services, err := service.NewServices(d.Stderr, verbose)
	if err != nil {
		return err
	}
	d.Services = services
	return nil
}

// Global deps instance for CLI
var deps = DefaultDeps()

// SetDeps sets the global deps (for testing)
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets to default deps
func ResetDeps() {
	deps = DefaultDeps()
}

// GetDeps returns the current deps
func GetDeps() *Deps {
	return deps
}

// Package launcher opens exported files with the system's default application.
package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Launcher starts the platform opener (open, xdg-open or start)
type Launcher struct {
	goos string
	stat func(string) (os.FileInfo, error)
}

// New creates a launcher for the running platform
func New() *Launcher {
	return &Launcher{goos: runtime.GOOS, stat: os.Stat}
}

// Open opens path and returns once the opener has handed it off
func (l *Launcher) Open(path string) error {
	cmd, err := l.Command(path)
	if err != nil {
		return err
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	return nil
}

// Command builds the opener command for an existing file
func (l *Launcher) Command(path string) (*exec.Cmd, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	info, err := l.stat(abs)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("cannot open %s: is a directory", path)
	}

	switch l.goos {
	case "darwin":
		return exec.Command("open", abs), nil
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", abs), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", abs), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", l.goos)
	}
}

// Package platform wraps the OS services the command surface depends on,
// so callers can substitute fakes in tests.
package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skratchdot/open-golang/open"
)

// HomeDirResolver reports the current user's home directory.
type HomeDirResolver interface {
	HomeDir() (string, error)
}

// WorkingDirResolver reports the process working directory.
type WorkingDirResolver interface {
	WorkingDir() (string, error)
}

// Launcher opens a path with the OS default application (the file browser for directories).
type Launcher interface {
	Open(path string) error
}

// FileWriter writes whole files, creating parent directories as needed.
// WriteFile replaces an existing file; CreateFile fails with an error matching
// fs.ErrExist instead.
type FileWriter interface {
	WriteFile(path string, data []byte) error
	CreateFile(path string, data []byte) error
}

// OS implements every capability against the running operating system.
type OS struct{}

var (
	_ HomeDirResolver    = OS{}
	_ WorkingDirResolver = OS{}
	_ Launcher           = OS{}
	_ FileWriter         = OS{}
)

func (OS) HomeDir() (string, error) { return os.UserHomeDir() }

func (OS) WorkingDir() (string, error) { return os.Getwd() }

// Open blocks until the platform opener (xdg-open, open, rundll32) exits.
func (OS) Open(path string) error { return open.Run(path) }

func (OS) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (OS) CreateFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

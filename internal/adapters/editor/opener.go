package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"roadmap/internal/ports"
)

// Opener implements ports.EditorOpener
type Opener struct {
	lookupEnv func(string) string
	lookPath  func(string) (string, error)
}

// Ensure Opener implements EditorOpener
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{lookupEnv: os.Getenv, lookPath: exec.LookPath}
}

// OpenFile opens a file in the user's preferred editor and waits for it to exit
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a file in the editor
// This is useful for integrating with bubbletea's ExecProcess
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	editor := o.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	// $EDITOR may carry flags, e.g. "code --wait"
	fields := strings.Fields(editor)
	args := append(fields[1:], path)

	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns the editor to use
func (o *Opener) findEditor() string {
	if editor := strings.TrimSpace(o.lookupEnv("EDITOR")); editor != "" {
		return editor
	}

	if visual := strings.TrimSpace(o.lookupEnv("VISUAL")); visual != "" {
		return visual
	}

	editors := []string{"nvim", "vim", "vi", "nano"}
	for _, editor := range editors {
		if path, err := o.lookPath(editor); err == nil {
			return path
		}
	}

	return ""
}

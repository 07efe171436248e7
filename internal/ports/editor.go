package ports

import "os/exec"

// EditorOpener opens files in the user's external editor
type EditorOpener interface {
	// OpenFile edits path and blocks until the editor exits.
	// It uses $EDITOR, then $VISUAL, then common editors found on $PATH.
	OpenFile(path string) error

	// Command returns the editor command without running it, for
	// bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)
}

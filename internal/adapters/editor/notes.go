package editor

import (
	"fmt"
	"os"
	"strings"

	"roadmap/internal/ports"
)

// NotesFile is a temporary markdown file holding a topic's notes while an
// external editor runs
type NotesFile struct {
	path string
}

// NewNotesFile writes notes to a fresh temporary file
func NewNotesFile(title, notes string) (*NotesFile, error) {
	f, err := os.CreateTemp("", "roadmap-notes-*.md")
	if err != nil {
		return nil, fmt.Errorf("creating notes file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(notes); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("writing notes file for %q: %w", title, err)
	}
	return &NotesFile{path: f.Name()}, nil
}

// Path returns the file path to hand to the editor
func (n *NotesFile) Path() string {
	return n.path
}

// Read returns the edited notes without the trailing newline most editors add
func (n *NotesFile) Read() (string, error) {
	data, err := os.ReadFile(n.path)
	if err != nil {
		return "", fmt.Errorf("reading notes file: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// Remove deletes the temporary file
func (n *NotesFile) Remove() error {
	return os.Remove(n.path)
}

// EditNotes runs the editor on notes and returns the edited text
func EditNotes(opener ports.EditorOpener, title, notes string) (string, error) {
	file, err := NewNotesFile(title, notes)
	if err != nil {
		return "", err
	}
	defer file.Remove()

	if err := opener.OpenFile(file.Path()); err != nil {
		return "", fmt.Errorf("running editor: %w", err)
	}
	return file.Read()
}

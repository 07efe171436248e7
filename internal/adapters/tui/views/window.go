package views

// Window keeps a cursor inside a scrolling range of rows
type Window struct {
	size   int
	offset int
	cursor int
	total  int
}

// NewWindow creates a window showing size rows at a time
func NewWindow(size int) *Window {
	if size <= 0 {
		size = 10
	}
	return &Window{size: size}
}

// SetSize changes how many rows are visible
func (w *Window) SetSize(size int) {
	if size <= 0 {
		size = 1
	}
	w.size = size
	w.follow()
}

// SetTotal sets the number of rows and clamps the cursor
func (w *Window) SetTotal(total int) {
	w.total = total
	w.SetCursor(w.cursor)
}

// Cursor returns the absolute cursor position
func (w *Window) Cursor() int {
	return w.cursor
}

// SetCursor moves the cursor, clamped to the rows
func (w *Window) SetCursor(pos int) {
	if pos >= w.total {
		pos = w.total - 1
	}
	if pos < 0 {
		pos = 0
	}
	w.cursor = pos
	w.follow()
}

// Up moves the cursor up by one
func (w *Window) Up() bool {
	if w.cursor == 0 {
		return false
	}
	w.SetCursor(w.cursor - 1)
	return true
}

// Down moves the cursor down by one
func (w *Window) Down() bool {
	if w.cursor >= w.total-1 {
		return false
	}
	w.SetCursor(w.cursor + 1)
	return true
}

// Visible returns the half-open range of rows to draw
func (w *Window) Visible() (start, end int) {
	return w.offset, min(w.offset+w.size, w.total)
}

// follow scrolls the minimum needed to keep the cursor visible
func (w *Window) follow() {
	if w.cursor < w.offset {
		w.offset = w.cursor
	}
	if w.cursor >= w.offset+w.size {
		w.offset = w.cursor - w.size + 1
	}
	if maxOffset := max(w.total-w.size, 0); w.offset > maxOffset {
		w.offset = maxOffset
	}
	if w.offset < 0 {
		w.offset = 0
	}
}

package tui

// rowTracker is the controller's display surface. The list itself is re-read
// from the controller on every render, so the tracker only keeps the cursor on
// the row that changed.
type rowTracker struct {
	cursor int
	count  func() int
}

func (r *rowTracker) Reload() {
	r.clamp()
}

func (r *rowTracker) InsertRow(index int) {
	r.cursor = index
}

func (r *rowTracker) UpdateRow(index int) {
	r.cursor = index
}

func (r *rowTracker) RemoveRow(index int) {
	if r.cursor > index {
		r.cursor--
	}
	r.clamp()
}

func (r *rowTracker) move(delta int) {
	r.cursor += delta
	r.clamp()
}

func (r *rowTracker) clamp() {
	n := r.count()
	if r.cursor >= n {
		r.cursor = n - 1
	}
	if r.cursor < 0 {
		r.cursor = 0
	}
}

package state

// Step moves the cursor by delta rows, clamped to the list bounds.
func (l *Level) Step(delta int) bool {
	return l.moveCursorBy(delta)
}

// HalfPageDown moves the cursor down by half of viewportHeight, at least one row.
func (l *Level) HalfPageDown(viewportHeight int) bool {
	return l.moveCursorBy(halfPage(viewportHeight))
}

// HalfPageUp moves the cursor up by half of viewportHeight, at least one row.
func (l *Level) HalfPageUp(viewportHeight int) bool {
	return l.moveCursorBy(-halfPage(viewportHeight))
}

func (l *Level) moveCursorBy(delta int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor += delta
	l.clamp()
	return l.Cursor != old
}

func halfPage(viewportHeight int) int {
	if size := viewportHeight / 2; size > 0 {
		return size
	}
	return 1
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	l.clamp()
	if len(l.Items) == 0 || maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if upper := l.ViewportOffset + maxVisible - 1; l.Cursor > upper {
		l.ViewportOffset = l.Cursor - maxVisible + 1
	}
}

// Visible returns the slice of items inside the viewport and its start index.
func (l *Level) Visible(maxVisible int) ([]Item, int) {
	l.EnsureCursorVisible(maxVisible)
	if maxVisible <= 0 || len(l.Items) <= maxVisible {
		return l.Items, 0
	}
	start := l.ViewportOffset
	return l.Items[start : start+maxVisible], start
}

package state

// Item is one selectable row.
type Item struct {
	ID    string
	Label string
}

// Level holds the cursor and viewport for one list screen. Cursor always
// stays within [0, max(0, len(Items)-1)].
type Level struct {
	ID             string
	Title          string
	Items          []Item
	Cursor         int
	ViewportOffset int
}

// NewLevel constructs a Level with the cursor on the first item.
func NewLevel(id, title string, items []Item) *Level {
	l := &Level{ID: id, Title: title}
	l.SetItems(items)
	return l
}

// SetItems replaces the rows and clamps the cursor.
func (l *Level) SetItems(items []Item) {
	l.Items = append([]Item(nil), items...)
	l.clamp()
}

// AppendItems adds rows after the existing ones. The cursor does not move.
func (l *Level) AppendItems(items []Item) {
	l.Items = append(l.Items, items...)
	l.clamp()
}

// Selected returns the item under the cursor.
func (l *Level) Selected() (Item, bool) {
	if len(l.Items) == 0 {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// AtEnd reports whether the cursor sits on the last row.
func (l *Level) AtEnd() bool {
	return len(l.Items) > 0 && l.Cursor == len(l.Items)-1
}

func (l *Level) clamp() {
	if l.Cursor < 0 || len(l.Items) == 0 {
		l.Cursor = 0
	}
	if n := len(l.Items); n > 0 && l.Cursor >= n {
		l.Cursor = n - 1
	}
	if l.ViewportOffset < 0 || len(l.Items) == 0 {
		l.ViewportOffset = 0
	}
}

package state

import (
	"fmt"
	"math/rand"
	"testing"
)

func newTestLevel(ids ...string) *Level {
	items := make([]Item, len(ids))
	for i, id := range ids {
		items[i] = Item{ID: id, Label: id}
	}
	return NewLevel("test", "Test", items)
}

func TestStepClampsAtBounds(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if l.Step(-1) {
		t.Fatalf("expected no movement above first row")
	}
	if !l.Step(1) || l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}
	l.Step(10)
	if l.Cursor != 2 {
		t.Fatalf("expected clamp to last row, got %d", l.Cursor)
	}
	if !l.AtEnd() {
		t.Fatalf("expected cursor at end")
	}
}

func TestHalfPageJumps(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e", "f", "g", "h", "i", "j")
	if !l.HalfPageDown(8) || l.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", l.Cursor)
	}
	l.HalfPageDown(8)
	l.HalfPageDown(8)
	if l.Cursor != 9 {
		t.Fatalf("expected clamp to 9, got %d", l.Cursor)
	}
	l.HalfPageUp(8)
	if l.Cursor != 5 {
		t.Fatalf("expected cursor 5, got %d", l.Cursor)
	}
	l.HalfPageUp(1)
	if l.Cursor != 4 {
		t.Fatalf("expected minimum jump of one row, got %d", l.Cursor)
	}
}

func TestEmptyLevelKeepsCursorAtZero(t *testing.T) {
	l := newTestLevel()
	l.Step(3)
	l.HalfPageUp(10)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}
	if _, ok := l.Selected(); ok {
		t.Fatalf("expected no selection on empty level")
	}
}

func TestCursorInvariantUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 12; n++ {
		ids := make([]string, n)
		for i := range ids {
			ids[i] = fmt.Sprintf("item-%d", i)
		}
		l := newTestLevel(ids...)
		for op := 0; op < 200; op++ {
			switch rng.Intn(5) {
			case 0:
				l.Step(1)
			case 1:
				l.Step(-1)
			case 2:
				l.HalfPageDown(rng.Intn(30))
			case 3:
				l.HalfPageUp(rng.Intn(30))
			case 4:
				l.EnsureCursorVisible(rng.Intn(6))
			}
			upper := n - 1
			if upper < 0 {
				upper = 0
			}
			if l.Cursor < 0 || l.Cursor > upper {
				t.Fatalf("cursor %d escaped [0,%d] with %d items", l.Cursor, upper, n)
			}
		}
	}
}

func TestAppendItemsKeepsCursor(t *testing.T) {
	l := newTestLevel("a", "b")
	l.Step(1)
	l.AppendItems([]Item{{ID: "c"}, {ID: "d"}})
	if l.Cursor != 1 {
		t.Fatalf("expected cursor unchanged, got %d", l.Cursor)
	}
	if l.Items[3].ID != "d" {
		t.Fatalf("expected appended item at 3")
	}
	if l.AtEnd() {
		t.Fatalf("cursor should no longer be at end")
	}
}

func TestVisibleFollowsCursor(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Step(4)
	items, start := l.Visible(2)
	if start != 3 || len(items) != 2 || items[1].ID != "e" {
		t.Fatalf("unexpected viewport start=%d items=%v", start, items)
	}
}

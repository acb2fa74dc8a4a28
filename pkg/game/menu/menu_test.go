package menu

import "testing"

type fakeItem struct {
	label      string
	selectable bool
}

func (f *fakeItem) GetLabel() string    { return f.label }
func (f *fakeItem) IsSelectable() bool  { return f.selectable }
func (f *fakeItem) GetHelpText() string { return "" }

func TestFirstSelectable(t *testing.T) {
	items := []MenuItem{
		&fakeItem{"header", false},
		&fakeItem{"a", true},
		&fakeItem{"b", true},
		&fakeItem{"footer", false},
	}

	if got := firstSelectable(items, 0, +1); got != 1 {
		t.Errorf("first selectable from top = %d, want 1", got)
	}
	if got := firstSelectable(items, 2+1, +1); got != 1 {
		t.Errorf("moving down past the footer = %d, want wrap to 1", got)
	}
	if got := firstSelectable(items, 1-1, -1); got != 2 {
		t.Errorf("moving up past the header = %d, want wrap to 2", got)
	}
}

package input

import (
	"testing"

	"cavearena/pkg/engine/world"
)

func TestMapToIntent(t *testing.T) {
	cases := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionMoveNorth},
		{"k", ActionMoveNorth},
		{"arrow_down", ActionMoveSouth},
		{"h", ActionMoveWest},
		{"l", ActionMoveEast},
		{"q", ActionQuit},
		{"r", ActionNewArena},
		{"f9", ActionDumpMap},
		{"z", ActionNone},
		{"", ActionNone},
	}
	for _, c := range cases {
		ev := NewDebouncedInput(NewRawInput(DeviceTerminal, c.code))
		if got := MapToIntent(ev).Action; got != c.want {
			t.Errorf("MapToIntent(%q) = %v, want %v", c.code, ActionName(got), ActionName(c.want))
		}
	}
}

func TestMoveDirection(t *testing.T) {
	cases := []struct {
		action Action
		dir    world.Direction
		ok     bool
	}{
		{ActionMoveNorth, world.North, true},
		{ActionMoveSouth, world.South, true},
		{ActionMoveWest, world.West, true},
		{ActionMoveEast, world.East, true},
		{ActionQuit, 0, false},
		{ActionNone, 0, false},
	}
	for _, c := range cases {
		dir, ok := MoveDirection(c.action)
		if ok != c.ok || (ok && dir != c.dir) {
			t.Errorf("MoveDirection(%v) = %v, %v, want %v, %v",
				ActionName(c.action), dir, ok, c.dir, c.ok)
		}
	}
}

func TestGetBindingsByAction_SortsCodes(t *testing.T) {
	byAction := GetBindingsByAction()
	north := byAction[ActionMoveNorth]
	if len(north) != 2 {
		t.Fatalf("north has %d bindings, want 2", len(north))
	}
	if north[0] != "arrow_up" || north[1] != "k" {
		t.Errorf("north bindings = %v, want sorted [arrow_up k]", north)
	}
}

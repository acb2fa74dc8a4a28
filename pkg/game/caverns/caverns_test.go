package caverns

import (
	"testing"

	"cavearena/pkg/game/entities"
)

func TestBandForLevel(t *testing.T) {
	cases := []struct {
		level int
		want  Band
	}{
		{1, Shallows},
		{3, Shallows},
		{4, Galleries},
		{7, Galleries},
		{8, Sump},
		{TotalCaverns, Sump},
	}
	for _, c := range cases {
		if got := BandForLevel(c.level); got != c.want {
			t.Errorf("BandForLevel(%d) = %v, want %v", c.level, got, c.want)
		}
	}
}

func TestIsFinalCavern(t *testing.T) {
	if IsFinalCavern(TotalCaverns - 1) {
		t.Error("cavern before the last reported as final")
	}
	if !IsFinalCavern(TotalCaverns) {
		t.Error("deepest cavern not reported as final")
	}
}

func TestBrainFor_CyclesRoster(t *testing.T) {
	brainFor := BrainFor(1)
	kind0, _ := brainFor(0)
	kind1, _ := brainFor(1)
	kind2, _ := brainFor(2)
	if kind0 == kind1 {
		t.Errorf("adjacent spawns share kind %q, want the roster to alternate", kind0)
	}
	if kind0 != kind2 {
		t.Errorf("spawn 2 = %q, want roster to cycle back to %q", kind2, kind0)
	}
}

func TestBrainFor_DeepCavernsHunt(t *testing.T) {
	brainFor := BrainFor(TotalCaverns)
	for i := 0; i < 4; i++ {
		_, brain := brainFor(i)
		if _, ok := brain.(entities.Stalker); !ok {
			t.Fatalf("spawn %d brain = %T, want every deep spawn to stalk", i, brain)
		}
	}
}

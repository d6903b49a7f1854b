package components

import "testing"

func TestDominanceCycle(t *testing.T) {
	colors := AllColors()

	for _, a := range colors {
		if a.Beats(a) {
			t.Errorf("%v beats itself", a)
		}
		if a.Prey() == a || a.Predator() == a {
			t.Errorf("%v is its own prey or predator", a)
		}
		for _, b := range colors {
			if a == b {
				continue
			}
			ab := a.Beats(b)
			ba := b.Beats(a)
			if ab == ba {
				t.Errorf("ordered pair (%v, %v): exactly one direction must win, got a>b=%v b>a=%v", a, b, ab, ba)
			}
		}
	}
}

func TestPreyPredatorInverse(t *testing.T) {
	for _, c := range AllColors() {
		if c.Prey().Predator() != c {
			t.Errorf("%v: Prey().Predator() = %v, want %v", c, c.Prey().Predator(), c)
		}
		if c.Predator().Prey() != c {
			t.Errorf("%v: Predator().Prey() = %v, want %v", c, c.Predator().Prey(), c)
		}
	}
}

func TestBlueBeatsRed(t *testing.T) {
	if !ColorBlue.Beats(ColorRed) {
		t.Error("blue must beat red")
	}
	if ColorRed.Beats(ColorBlue) {
		t.Error("red must not beat blue")
	}
}

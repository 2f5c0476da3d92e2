package animations

import "testing"

func TestAnimationLoopsAndFreezes(t *testing.T) {
	a := NewAnimation(0, 3, 1, 10)
	if got := a.Duration(); got != 0.4 {
		t.Fatalf("Duration() = %v, want 0.4", got)
	}
	a.Update(0.25)
	if a.Frame() != 2 {
		t.Errorf("frame after 0.25s = %d, want 2", a.Frame())
	}
	a.Update(0.2)
	if !a.Looped || a.Frame() != 0 {
		t.Errorf("looped %v frame %d, want looped at 0", a.Looped, a.Frame())
	}

	f := NewAnimation(0, 3, 1, 10)
	f.FreezeOnComplete = true
	f.Update(1)
	if f.Frame() != 3 {
		t.Errorf("frozen frame = %d, want 3", f.Frame())
	}
}

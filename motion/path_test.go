package motion

import (
	"math"
	"testing"

	"github.com/automoto/danmaku/shared/gamemath"
	"github.com/automoto/danmaku/spawntree"
)

const eps = 1e-6

func near(a, b gamemath.Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestStepWaitsUntilDurationExceeded(t *testing.T) {
	p := New([]spawntree.Action{spawntree.Stay{Time: 1}, spawntree.Stay{Time: 1}}, gamemath.Point{})
	var started []int
	record := func(tr Transition) { started = append(started, tr.Index) }

	p.Begin(record)
	p.Tick(1)
	p.Step(record)
	if p.Index != 0 {
		t.Fatalf("advanced at exactly the duration: index %d", p.Index)
	}
	p.Tick(0.25)
	p.Step(record)
	if p.Index != 1 {
		t.Fatalf("index = %d, want 1", p.Index)
	}
	if len(started) != 2 || started[0] != 0 || started[1] != 1 {
		t.Errorf("started = %v, want [0 1]", started)
	}
}

func TestStepSkipsZeroDurationInSameTick(t *testing.T) {
	p := New([]spawntree.Action{
		spawntree.Stay{Time: 0.5},
		spawntree.Detach{},
		spawntree.PolarMove{Time: 2, Radius: spawntree.Const(10), Angle: spawntree.Const(0)},
	}, gamemath.Point{})

	var got []Transition
	p.Begin(nil)
	p.Tick(0.75)
	p.Step(func(tr Transition) { got = append(got, tr) })

	if p.Index != 2 {
		t.Fatalf("index = %d, want 2", p.Index)
	}
	if len(got) != 2 {
		t.Fatalf("got %d transitions, want 2", len(got))
	}
	for _, tr := range got {
		if math.Abs(tr.Lag-0.25) > eps {
			t.Errorf("%T lag = %v, want 0.25", tr.Action, tr.Lag)
		}
		if !spawntree.CreatesReference(tr.Action) {
			t.Errorf("%T should create a reference", tr.Action)
		}
	}
}

func TestPolarOffset(t *testing.T) {
	p := New([]spawntree.Action{
		spawntree.PolarMove{
			Time:   1,
			Radius: spawntree.Profile{From: 0, To: 100},
			Angle:  spawntree.Const(90),
		},
	}, gamemath.Point{X: 5, Y: 5})
	p.Begin(nil)
	p.Tick(0.5)
	p.Step(nil)

	want := gamemath.Point{X: 5, Y: 55}
	if got := p.Offset(); !near(got, want) {
		t.Errorf("Offset() = %v, want %v", got, want)
	}
	// Past offsets use the same closed form.
	if got := p.OffsetAt(0.25); !near(got, gamemath.Point{X: 5, Y: 30}) {
		t.Errorf("OffsetAt(0.25) = %v", got)
	}
}

func TestBaseCarriesAcrossActions(t *testing.T) {
	p := New([]spawntree.Action{
		spawntree.BezierMove{Time: 1, Points: []gamemath.Point{{X: 10}, {X: 20}, {X: 30}}, Rotation: 90},
		spawntree.Stay{Time: 5},
	}, gamemath.Point{})
	p.Begin(nil)
	p.Tick(1.5)
	p.Step(nil)

	if p.Index != 1 {
		t.Fatalf("index = %d, want 1", p.Index)
	}
	// End of the curve, rotated a quarter turn clockwise in screen space.
	if got := p.Offset(); !near(got, gamemath.Point{X: 0, Y: 30}) {
		t.Errorf("Offset() = %v, want (0, 30)", got)
	}
}

func TestSteerTurnsTowardTarget(t *testing.T) {
	p := New([]spawntree.Action{
		spawntree.HomingMove{
			Time:         10,
			InitialAngle: 0,
			Speed:        spawntree.Const(100),
			Strength:     spawntree.Const(90),
		},
	}, gamemath.Point{})
	p.Begin(nil)

	target := gamemath.Point{X: 0, Y: 1000}
	for i := 0; i < 60; i++ {
		p.Tick(1.0 / 60)
		p.Step(nil)
		p.Steer(p.Offset(), target, true)
	}
	// 90 deg/s for one second turns the heading from right to down.
	if math.Abs(p.Heading-math.Pi/2) > 1e-3 {
		t.Errorf("heading = %v, want pi/2", p.Heading)
	}
	if got := p.Offset(); got.Y <= 0 || got.X <= 0 {
		t.Errorf("Offset() = %v, want down and to the right", got)
	}
	if math.Abs(p.Offset().Len()-100) > 40 {
		t.Errorf("travelled %v, want about 100", p.Offset().Len())
	}
}

func TestFinishedPathHoldsEnd(t *testing.T) {
	p := New([]spawntree.Action{
		spawntree.PolarMove{Time: 1, Radius: spawntree.Const(10), Angle: spawntree.Const(180)},
	}, gamemath.Point{})
	p.Begin(nil)
	p.Tick(3)
	p.Step(nil)
	if !p.Finished() {
		t.Fatal("path not finished")
	}
	if got := p.Offset(); !near(got, gamemath.Point{X: -10, Y: 0}) {
		t.Errorf("Offset() = %v, want (-10, 0)", got)
	}
}

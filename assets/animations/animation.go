package animations

// Animation steps through a frame range at a fixed rate.
type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	FPS              float64 // frames per second
	elapsed          float64
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

// Update advances the animation by dt seconds.
func (a *Animation) Update(dt float64) {
	if a.FPS <= 0 || a.Step <= 0 {
		return
	}
	a.elapsed += dt
	perFrame := 1 / a.FPS
	for a.elapsed >= perFrame {
		a.elapsed -= perFrame
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				// Stay on last frame
				a.frame = a.Last
			} else {
				// loop back to the beginning
				a.frame = a.First
			}
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
	a.Looped = false
}

// Frames is the number of frames in one cycle.
func (a *Animation) Frames() int {
	if a.Step <= 0 || a.Last < a.First {
		return 1
	}
	return (a.Last-a.First)/a.Step + 1
}

// Duration is the length of one cycle in seconds.
func (a *Animation) Duration() float64 {
	if a.FPS <= 0 {
		return 0
	}
	return float64(a.Frames()) / a.FPS
}

func NewAnimation(first, last, step int, fps float64) *Animation {
	return &Animation{
		First: first,
		Last:  last,
		Step:  step,
		FPS:   fps,
		frame: first,
	}
}

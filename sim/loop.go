package sim

import (
	"log"
	"sync"
	"time"
)

// GameLoop drives a Simulation at a fixed tick rate.
type GameLoop struct {
	sim      *Simulation
	tickRate int
	maxTicks int
	running  bool
	stopOnce sync.Once
	stopChan chan struct{}

	// BeforeTick runs before every tick, to feed input.
	BeforeTick func(s *Simulation)
	// AfterTick runs after every tick and stops the loop by returning false.
	AfterTick func(s *Simulation) bool
}

// NewGameLoop creates a loop for sim. A maxTicks of 0 runs until Stop.
func NewGameLoop(sim *Simulation, tickRate, maxTicks int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		maxTicks: maxTicks,
		stopChan: make(chan struct{}),
	}
}

// Run ticks in real time until Stop, AfterTick or maxTicks ends it.
func (g *GameLoop) Run() {
	g.running = true
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for ticks := 0; g.maxTicks <= 0 || ticks < g.maxTicks; ticks++ {
		select {
		case <-g.stopChan:
			g.running = false
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			if !g.tick() {
				g.running = false
				return
			}
		}
	}
	g.running = false
}

// RunFast ticks as fast as possible with the fixed tick delta. Headless
// runs and tests use it.
func (g *GameLoop) RunFast() int {
	g.running = true
	defer func() { g.running = false }()
	ticks := 0
	for g.maxTicks <= 0 || ticks < g.maxTicks {
		select {
		case <-g.stopChan:
			return ticks
		default:
		}
		ticks++
		if !g.tick() {
			break
		}
	}
	return ticks
}

// Stop ends Run or RunFast. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// Running reports whether the loop is ticking.
func (g *GameLoop) Running() bool {
	return g.running
}

func (g *GameLoop) tick() bool {
	if g.BeforeTick != nil {
		g.BeforeTick(g.sim)
	}
	g.sim.Update(1 / float64(g.tickRate))
	if g.AfterTick != nil {
		return g.AfterTick(g.sim)
	}
	return true
}

package main

import (
	"flag"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/danmaku/assets"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/content"
	"github.com/automoto/danmaku/metrics"
	"github.com/automoto/danmaku/sim"
	"github.com/automoto/danmaku/systems"
)

func main() {
	stage := flag.String("stage", "stage1", "Stage to run (see -list)")
	list := flag.Bool("list", false, "List the embedded stages and exit")
	tickRate := flag.Int("tickrate", cfg.C.TickRate, "Simulation tick rate (updates per second)")
	ticks := flag.Int("ticks", 60*60, "Ticks to run (0 = until the stage is cleared)")
	realtime := flag.Bool("realtime", false, "Tick at wall-clock rate instead of as fast as possible")
	metricsAddr := flag.String("metrics", "", "Serve prometheus metrics on this address (empty = off)")
	autopilot := flag.Bool("autopilot", true, "Sway the player and keep firing")
	assertions := flag.Bool("assert", false, "Panic on invariant violations")
	volume := flag.Float64("volume", cfg.Audio.Volume, "Sound volume handed to the audio player")
	muted := flag.Bool("mute", false, "Mute sounds")
	verboseAudio := flag.Bool("log-audio", false, "Log every sound played")
	highScore := flag.Bool("highscore", true, "Save the high score")
	flag.Parse()

	cfg.Debug.Assertions = *assertions
	cfg.C.TickRate = *tickRate

	if *list {
		names, err := assets.StageNames()
		if err != nil {
			log.Fatalf("Failed to list stages: %v", err)
		}
		for _, n := range names {
			log.Println(n)
		}
		return
	}

	st, err := assets.LoadStage(*stage)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}

	s, err := sim.New(sim.Options{
		Stage:       st,
		Library:     content.Library(),
		PlayerShot:  content.PlayerShot,
		Animatables: content.Catalog(),
		Sound:       assets.LogPlayer{Verbose: *verboseAudio},
		Audio:       cfg.AudioSettings{Volume: *volume, Muted: *muted},
	})
	if err != nil {
		log.Fatalf("Failed to build simulation: %v", err)
	}

	metrics.Serve(*metricsAddr)

	loop := sim.NewGameLoop(s, *tickRate, *ticks)
	if *autopilot {
		loop.BeforeTick = func(s *sim.Simulation) {
			t := float64(s.Tick()) / float64(*tickRate)
			s.SetInput(math.Sin(t), 0, false, true)
		}
	}
	loop.AfterTick = func(s *sim.Simulation) bool {
		return !s.Cleared()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Stopping simulation...")
		loop.Stop()
	}()

	log.Printf("Running stage %q (tick rate: %d/s, ticks: %d, realtime: %v)", st.Name, *tickRate, *ticks, *realtime)
	start := time.Now()
	if *realtime {
		loop.Run()
	} else {
		loop.RunFast()
	}

	stats := s.Stats()
	log.Printf("Simulated %d ticks in %v: score %d, kills %d (boss %d), hits %d, player hits %d, cleared %v, player dead %v",
		s.Tick(), time.Since(start).Round(time.Millisecond), s.Score(), stats.Kills, stats.BossKills,
		stats.Hits, stats.PlayerHits, s.Cleared(), s.PlayerDead())
	log.Printf("World: %d entities, %d bullets, %d created", s.World.Len(), s.Bullets(), s.World.Created())

	if !*highScore {
		return
	}
	store, err := systems.OpenScoreStore("danmaku-sim")
	if err != nil {
		return
	}
	saved, err := store.Submit(s.Score(), st.Name)
	if err != nil {
		log.Printf("Warning: Could not submit high score: %v", err)
		return
	}
	if saved {
		log.Printf("New high score: %d", s.Score())
	}
}

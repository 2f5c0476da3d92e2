// Package assets holds the collaborators the simulation asks about content
// it does not own: animatable names, sound playback and stage files.
package assets

import (
	"embed"
	"fmt"
	"sort"

	"github.com/automoto/danmaku/assets/animations"
	"github.com/automoto/danmaku/shared/leveldata"
)

var (
	//go:embed all:stages
	stageFS embed.FS
)

// Handle is an opaque reference to a resolved animatable.
type Handle int

// NoHandle is the zero handle for unnamed or unresolved animatables.
const NoHandle Handle = -1

// Animatables resolves animatable names to handles and durations.
type Animatables interface {
	// Resolve returns the handle and the one-cycle duration in seconds.
	Resolve(name string) (Handle, float64, bool)
	// NewAnimation returns a fresh animation for a handle, or nil.
	NewAnimation(h Handle) *animations.Animation
}

// Animatable describes a sprite sheet strip by frame range and rate.
type Animatable struct {
	Name  string
	First int
	Last  int
	Step  int
	FPS   float64
	Loop  bool
}

// Duration is the length of one cycle in seconds.
func (a Animatable) Duration() float64 {
	return a.animation().Duration()
}

func (a Animatable) animation() *animations.Animation {
	step := a.Step
	if step <= 0 {
		step = 1
	}
	anim := animations.NewAnimation(a.First, a.Last, step, a.FPS)
	anim.FreezeOnComplete = !a.Loop
	return anim
}

// Catalog is a static Animatables implementation.
type Catalog struct {
	entries []Animatable
	byName  map[string]Handle
}

// NewCatalog builds a catalog from entries. Later entries replace earlier
// ones with the same name.
func NewCatalog(entries ...Animatable) *Catalog {
	c := &Catalog{byName: make(map[string]Handle)}
	for _, e := range entries {
		c.Add(e)
	}
	return c
}

// Add registers an animatable and returns its handle.
func (c *Catalog) Add(a Animatable) Handle {
	if h, ok := c.byName[a.Name]; ok {
		c.entries[h] = a
		return h
	}
	h := Handle(len(c.entries))
	c.entries = append(c.entries, a)
	c.byName[a.Name] = h
	return h
}

func (c *Catalog) Resolve(name string) (Handle, float64, bool) {
	h, ok := c.byName[name]
	if !ok {
		return NoHandle, 0, false
	}
	return h, c.entries[h].Duration(), true
}

func (c *Catalog) NewAnimation(h Handle) *animations.Animation {
	if h < 0 || int(h) >= len(c.entries) {
		return nil
	}
	return c.entries[h].animation()
}

// Known reports whether name resolves. It matches the signature content
// validation expects.
func (c *Catalog) Known(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Names returns every registered name, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadStage loads an embedded stage by stem name.
func LoadStage(name string) (*leveldata.Stage, error) {
	stage, err := leveldata.LoadStage(stageFS, "stages/"+name+".tmx")
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", name, err)
	}
	return stage, nil
}

// StageNames lists the embedded stages.
func StageNames() ([]string, error) {
	_, names, err := leveldata.LoadAllStages(stageFS, "stages")
	return names, err
}

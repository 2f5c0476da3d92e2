package spawntree

import "sort"

// Pattern is a spawn tree ready to be started by a spawner.
type Pattern struct {
	Arena *Arena
	Root  NodeID
}

// Valid reports whether the pattern points at a node.
func (p Pattern) Valid() bool {
	return p.Arena != nil && p.Arena.Valid(p.Root)
}

// Library maps pattern names to trees.
type Library map[string]Pattern

// Names returns the pattern names in sorted order.
func (l Library) Names() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate runs Validate over every pattern and keys the problems by name.
func (l Library) Validate(known func(string) bool) map[string][]ValidationError {
	out := make(map[string][]ValidationError)
	for name, p := range l {
		if !p.Valid() {
			out[name] = []ValidationError{{Node: p.Root, Problem: CyclicTree, Detail: "root out of range"}}
			continue
		}
		if errs := Validate(p.Arena, p.Root, known); len(errs) > 0 {
			out[name] = errs
		}
	}
	return out
}

// MaxRadius is the largest hitbox radius across every pattern.
func (l Library) MaxRadius() float64 {
	var max float64
	seen := make(map[*Arena]bool)
	for _, p := range l {
		if p.Arena == nil || seen[p.Arena] {
			continue
		}
		seen[p.Arena] = true
		if r := p.Arena.MaxRadius(); r > max {
			max = r
		}
	}
	return max
}

package spawntree

import "fmt"

// Problem classifies a content error found by Validate.
type Problem int

const (
	MissingAnimatable Problem = iota
	ZeroDuration
	NegativeRadius
	UnsortedChildren
	CyclicTree
	UnknownModel
	BadBezier
)

var problemNames = map[Problem]string{
	MissingAnimatable: "missing animatable",
	ZeroDuration:      "zero duration",
	NegativeRadius:    "negative radius",
	UnsortedChildren:  "children out of order",
	CyclicTree:        "cyclic tree",
	UnknownModel:      "unknown bullet model",
	BadBezier:         "bad bezier",
}

func (p Problem) String() string {
	if s, ok := problemNames[p]; ok {
		return s
	}
	return "unknown problem"
}

// ValidationError describes one problem with one node.
type ValidationError struct {
	Node    NodeID
	Name    string
	Problem Problem
	Detail  string
}

func (e ValidationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("node %d (%s): %s", e.Node, e.Name, e.Problem)
	}
	return fmt.Sprintf("node %d (%s): %s: %s", e.Node, e.Name, e.Problem, e.Detail)
}

// Validate checks the tree under root once, before play. known reports
// whether an animatable name resolves; a nil known skips that check.
func Validate(a *Arena, root NodeID, known func(string) bool) []ValidationError {
	var errs []ValidationError
	if !a.Valid(root) {
		return []ValidationError{{Node: root, Problem: CyclicTree, Detail: "root out of range"}}
	}

	report := func(id NodeID, p Problem, detail string) {
		errs = append(errs, ValidationError{Node: id, Name: a.nodes[id].Name, Problem: p, Detail: detail})
	}

	onPath := make(map[NodeID]bool)
	done := make(map[NodeID]bool)
	var visit func(id NodeID)
	visit = func(id NodeID) {
		if onPath[id] {
			report(id, CyclicTree, "")
			return
		}
		if done[id] {
			return
		}
		onPath[id] = true
		defer func() {
			onPath[id] = false
			done[id] = true
		}()

		n := &a.nodes[id]
		if n.Radius < 0 {
			report(id, NegativeRadius, fmt.Sprintf("%g", n.Radius))
		}
		if n.Model != NoModel && !a.validModel(n.Model) {
			report(id, UnknownModel, fmt.Sprintf("model %d", n.Model))
		}
		if known != nil {
			if n.Sprite != "" && !known(n.Sprite) {
				report(id, MissingAnimatable, n.Sprite)
			}
			if n.DeathEffect != "" && !known(n.DeathEffect) {
				report(id, MissingAnimatable, n.DeathEffect)
			}
		}
		// A node with nothing to spawn and nothing to do would vanish on
		// its first tick.
		if len(n.children) == 0 && n.RuntimeDespawnTime() <= 0 {
			report(id, ZeroDuration, "")
		}
		for i, act := range n.Actions {
			if b, ok := act.(BezierMove); ok && len(b.Points) != 3 && len(b.Points) != 4 {
				report(id, BadBezier, fmt.Sprintf("action %d has %d control points", i, len(b.Points)))
			}
		}

		prev := -1.0
		for _, c := range n.children {
			if !a.Valid(c) {
				report(id, CyclicTree, fmt.Sprintf("child %d out of range", c))
				continue
			}
			off := a.nodes[c].SpawnOffset()
			if off < prev {
				report(id, UnsortedChildren, fmt.Sprintf("child %d at %g after %g", c, off, prev))
			}
			prev = off
			visit(c)
		}
	}
	visit(root)
	return errs
}

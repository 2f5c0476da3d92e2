// Package spawntree holds authored bullet patterns: an arena of nodes, each
// a bullet or visual spawner with its child bullets, plus the shared bullet
// models nodes inherit attributes from. It is pure data with no dependency
// on the entity store.
package spawntree

import "sort"

// NodeID addresses a node inside its Arena.
type NodeID int

// NoNode is the parent of a root node.
const NoNode NodeID = -1

// Node is one bullet or visual spawner ("movable point") and its children.
type Node struct {
	Name string

	// IsBullet separates real bullets from purely visual spawners. A main
	// node that is not a bullet despawns once its last child is gone.
	IsBullet bool

	Radius         float64 // hitbox radius, <= 0 means no hitbox
	DespawnTime    float64 // <= 0 derives the lifetime from the actions
	Damage         int
	OnCollision    CollisionPolicy
	ShadowInterval float64 // seconds between shadow copies, <= 0 disables
	ShadowLifespan float64
	Sprite         string
	DeathEffect    string
	Actions        []Action
	Spawn          SpawnType
	Repeat         float64 // restart the children every Repeat seconds, 0 runs once

	Model   ModelID
	Inherit Inherit

	parent   NodeID
	children []NodeID
}

// Parent returns the node's parent or NoNode.
func (n *Node) Parent() NodeID {
	return n.parent
}

// TotalActionTime is the summed duration of the node's actions.
func (n *Node) TotalActionTime() float64 {
	return TotalDuration(n.Actions)
}

// RuntimeDespawnTime is the lifetime of a runtime entity spawned from n:
// the declared despawn time capped by the total action time, or the total
// action time when nothing is declared.
func (n *Node) RuntimeDespawnTime() float64 {
	total := n.TotalActionTime()
	if n.DespawnTime > 0 {
		if total > 0 && total < n.DespawnTime {
			return total
		}
		return n.DespawnTime
	}
	return total
}

// SpawnOffset is the time after its parent appeared at which n spawns.
func (n *Node) SpawnOffset() float64 {
	return spawnOffset(n.Spawn)
}

// Arena owns every node and bullet model of a content set.
type Arena struct {
	nodes  []Node
	models []BulletModel
	users  map[ModelID][]NodeID
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{
		users: make(map[ModelID][]NodeID),
	}
}

// Len returns the number of nodes.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Valid reports whether id addresses a node.
func (a *Arena) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(a.nodes)
}

// Node returns the node for id. The pointer stays valid until the next
// AddNode or AddChild call.
func (a *Arena) Node(id NodeID) *Node {
	return &a.nodes[id]
}

// Children returns the children of id ordered by spawn offset. The slice
// must not be modified.
func (a *Arena) Children(id NodeID) []NodeID {
	return a.nodes[id].children
}

// AddNode adds a root node and returns its id. If n links a bullet model
// the inherited fields are resolved immediately.
func (a *Arena) AddNode(n Node) NodeID {
	return a.add(n, NoNode)
}

// AddChild adds n under parent, keeping siblings sorted by spawn offset.
// Siblings with equal offsets keep insertion order.
func (a *Arena) AddChild(parent NodeID, n Node) NodeID {
	id := a.add(n, parent)
	a.insertSorted(parent, id)
	return id
}

func (a *Arena) add(n Node, parent NodeID) NodeID {
	id := NodeID(len(a.nodes))
	model := n.Model
	n.parent = parent
	n.children = nil
	n.Actions = cloneActions(n.Actions)
	n.Model = NoModel
	a.nodes = append(a.nodes, n)
	if model != NoModel && a.validModel(model) {
		a.SetModel(id, model)
	}
	return id
}

func (a *Arena) insertSorted(parent, id NodeID) {
	p := &a.nodes[parent]
	offset := a.nodes[id].SpawnOffset()
	i := sort.Search(len(p.children), func(i int) bool {
		return a.nodes[p.children[i]].SpawnOffset() > offset
	})
	p.children = append(p.children, 0)
	copy(p.children[i+1:], p.children[i:])
	p.children[i] = id
}

// SetSpawnType changes when and where id spawns and re-sorts its siblings.
func (a *Arena) SetSpawnType(id NodeID, s SpawnType) {
	a.nodes[id].Spawn = s
	parent := a.nodes[id].parent
	if parent == NoNode {
		return
	}
	p := &a.nodes[parent]
	sort.SliceStable(p.children, func(i, j int) bool {
		return a.nodes[p.children[i]].SpawnOffset() < a.nodes[p.children[j]].SpawnOffset()
	})
}

// Walk visits root and its descendants depth first. Returning false from
// fn skips the node's subtree.
func (a *Arena) Walk(root NodeID, fn func(id NodeID, n *Node) bool) {
	if !a.Valid(root) {
		return
	}
	stack := []NodeID{root}
	seen := make(map[NodeID]bool)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			continue
		}
		seen[id] = true
		n := &a.nodes[id]
		if !fn(id, n) {
			continue
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
}

// MaxRadius returns the largest hitbox radius of any node in the arena.
func (a *Arena) MaxRadius() float64 {
	var max float64
	for i := range a.nodes {
		if a.nodes[i].Radius > max {
			max = a.nodes[i].Radius
		}
	}
	return max
}

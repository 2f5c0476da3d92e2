package spawntree

// PolicyKind is what a bullet does to itself when it hits something.
type PolicyKind int

const (
	// DestroySelf strips the bullet down to its position and despawn state;
	// children it already spawned keep going.
	DestroySelf PolicyKind = iota
	// DestroySelfAndChildren removes the bullet and every runtime child.
	DestroySelfAndChildren
	// Pierce keeps the bullet alive; it cannot hit the same target again
	// until ResetTime has elapsed.
	Pierce
)

func (k PolicyKind) String() string {
	switch k {
	case DestroySelf:
		return "destroy-self"
	case DestroySelfAndChildren:
		return "destroy-self-and-children"
	case Pierce:
		return "pierce"
	}
	return "unknown"
}

// CollisionPolicy is the on-collision behaviour of a bullet.
type CollisionPolicy struct {
	Kind      PolicyKind
	ResetTime float64 // seconds, Pierce only
}

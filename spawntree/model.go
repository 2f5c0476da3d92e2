package spawntree

// ModelID addresses a BulletModel inside its Arena.
type ModelID int

// NoModel marks a node that inherits nothing. It is the zero value, so
// nodes built without a model stay unlinked.
const NoModel ModelID = 0

// Inherit selects which node fields come from the linked bullet model.
type Inherit uint16

const (
	InheritRadius Inherit = 1 << iota
	InheritDespawnTime
	InheritDamage
	InheritPolicy
	InheritShadow
	InheritAnimatables
	InheritActions

	InheritNone Inherit = 0
	InheritAll          = InheritRadius | InheritDespawnTime | InheritDamage |
		InheritPolicy | InheritShadow | InheritAnimatables | InheritActions
)

// Has reports whether every flag in f is set.
func (i Inherit) Has(f Inherit) bool {
	return i&f == f
}

// BulletModel is a named template of bullet attributes shared by nodes.
type BulletModel struct {
	Name           string
	Radius         float64
	DespawnTime    float64
	Damage         int
	OnCollision    CollisionPolicy
	ShadowInterval float64
	ShadowLifespan float64
	Sprite         string
	DeathEffect    string
	Actions        []Action
}

// AddModel registers a bullet model.
func (a *Arena) AddModel(m BulletModel) ModelID {
	m.Actions = cloneActions(m.Actions)
	a.models = append(a.models, m)
	return ModelID(len(a.models))
}

func (a *Arena) validModel(id ModelID) bool {
	return id > NoModel && int(id) <= len(a.models)
}

// Model returns a copy of the model.
func (a *Arena) Model(id ModelID) BulletModel {
	m := a.models[id-1]
	m.Actions = cloneActions(m.Actions)
	return m
}

// ModelUsers returns the nodes linked to a model.
func (a *Arena) ModelUsers(id ModelID) []NodeID {
	return a.users[id]
}

// SetModel links node to model (or unlinks it with NoModel) and resolves
// the inherited fields right away.
func (a *Arena) SetModel(node NodeID, model ModelID) {
	n := &a.nodes[node]
	if n.Model == model {
		a.resolve(node)
		return
	}
	if n.Model != NoModel {
		a.users[n.Model] = removeID(a.users[n.Model], node)
	}
	n.Model = model
	if model != NoModel {
		a.users[model] = append(a.users[model], node)
	}
	a.resolve(node)
}

// SetInherit changes which fields node inherits and re-resolves it.
func (a *Arena) SetInherit(node NodeID, flags Inherit) {
	a.nodes[node].Inherit = flags
	a.resolve(node)
}

// EditModel applies edit to the model and propagates the result to every
// node linked to it before returning.
func (a *Arena) EditModel(id ModelID, edit func(m *BulletModel)) {
	edit(&a.models[id-1])
	for _, node := range a.users[id] {
		a.resolve(node)
	}
}

func (a *Arena) resolve(node NodeID) {
	n := &a.nodes[node]
	if n.Model == NoModel || !a.validModel(n.Model) {
		return
	}
	m := &a.models[n.Model-1]
	if n.Inherit.Has(InheritRadius) {
		n.Radius = m.Radius
	}
	if n.Inherit.Has(InheritDespawnTime) {
		n.DespawnTime = m.DespawnTime
	}
	if n.Inherit.Has(InheritDamage) {
		n.Damage = m.Damage
	}
	if n.Inherit.Has(InheritPolicy) {
		n.OnCollision = m.OnCollision
	}
	if n.Inherit.Has(InheritShadow) {
		n.ShadowInterval = m.ShadowInterval
		n.ShadowLifespan = m.ShadowLifespan
	}
	if n.Inherit.Has(InheritAnimatables) {
		n.Sprite = m.Sprite
		n.DeathEffect = m.DeathEffect
	}
	if n.Inherit.Has(InheritActions) {
		n.Actions = cloneActions(m.Actions)
	}
}

func removeID(ids []NodeID, id NodeID) []NodeID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

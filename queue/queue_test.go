package queue

import (
	"testing"

	"github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/store"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type markData struct{ ID int }

var mark = donburi.NewComponentType[markData]()

type createCmd struct {
	n, declared int
	id          int
	log         *[]int
	then        []Command
	thenFront   []Command
}

func (c *createCmd) EntitiesQueued() int                  { return c.declared }
func (c *createCmd) Components() []donburi.IComponentType { return []donburi.IComponentType{mark} }
func (c *createCmd) Execute(e *ecs.ECS, q *Queue) {
	for i := 0; i < c.n; i++ {
		en := e.World.Entry(e.World.Create(mark))
		mark.Get(en).ID = c.id
	}
	if c.log != nil {
		*c.log = append(*c.log, c.id)
	}
	for _, cmd := range c.then {
		q.Enqueue(cmd)
	}
	for _, cmd := range c.thenFront {
		q.EnqueueFront(cmd)
	}
}

func newTestQueue() (*ecs.ECS, *Queue) {
	w := store.NewWorld()
	return ecs.NewECS(w), New(w)
}

func TestFlushCreatedWithinDeclared(t *testing.T) {
	e, q := newTestQueue()
	for i := 0; i < 10; i++ {
		q.Enqueue(&createCmd{n: 3, declared: 3, id: i})
	}
	stats := q.Flush(e)
	if stats.Commands != 10 {
		t.Errorf("Commands = %d, want 10", stats.Commands)
	}
	if stats.Created > stats.Declared {
		t.Errorf("created %d > declared %d", stats.Created, stats.Declared)
	}
	if stats.Created != 30 || e.World.Len() != 30 {
		t.Errorf("created %d, live %d, want 30", stats.Created, e.World.Len())
	}
	if stats.Overflows != 0 {
		t.Errorf("Overflows = %d", stats.Overflows)
	}
	if q.Len() != 0 {
		t.Errorf("Len() after flush = %d", q.Len())
	}
}

func TestFlushDrainsNestedCommands(t *testing.T) {
	e, q := newTestQueue()
	var order []int
	grandchild := &createCmd{n: 1, declared: 1, id: 3, log: &order}
	child := &createCmd{n: 1, declared: 1, id: 2, log: &order, then: []Command{grandchild}}
	q.Enqueue(&createCmd{n: 1, declared: 1, id: 1, log: &order, then: []Command{child}})

	stats := q.Flush(e)
	if stats.Commands != 3 || e.World.Len() != 3 {
		t.Fatalf("commands %d, live %d, want 3 and 3", stats.Commands, e.World.Len())
	}
	want := []int{1, 2, 3}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestEnqueueFrontRunsFirst(t *testing.T) {
	e, q := newTestQueue()
	var order []int
	ref := &createCmd{id: 10, log: &order}
	q.Enqueue(&createCmd{id: 1, log: &order, thenFront: []Command{ref}, then: []Command{&createCmd{id: 3, log: &order}}})
	q.Enqueue(&createCmd{id: 2, log: &order})
	q.EnqueueFront(&createCmd{id: 0, log: &order})

	q.Flush(e)
	want := []int{0, 1, 10, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestOverflowLogsWithoutAssertions(t *testing.T) {
	config.Debug.Assertions = false
	e, q := newTestQueue()
	q.Enqueue(&createCmd{n: 2, declared: 1})
	stats := q.Flush(e)
	if stats.Overflows != 1 {
		t.Errorf("Overflows = %d, want 1", stats.Overflows)
	}
	if e.World.Len() != 2 {
		t.Errorf("live = %d, want 2", e.World.Len())
	}
}

func TestOverflowPanicsWithAssertions(t *testing.T) {
	config.Debug.Assertions = true
	defer func() { config.Debug.Assertions = false }()

	e, q := newTestQueue()
	q.Enqueue(&createCmd{n: 2, declared: 1})
	defer func() {
		if recover() == nil {
			t.Error("expected panic on overflow")
		}
	}()
	q.Flush(e)
}

func TestFuncCommand(t *testing.T) {
	e, q := newTestQueue()
	ent := e.World.Create(mark)
	q.Enqueue(Func(func(e *ecs.ECS, _ *Queue) {
		e.World.Remove(ent)
	}))
	if !e.World.Valid(ent) {
		t.Fatal("entity removed before flush")
	}
	q.Flush(e)
	if e.World.Valid(ent) {
		t.Error("entity still valid after flush")
	}
}

// Package queue defers structural world changes made while systems iterate.
// Every create, destroy, add or remove that happens during a phase is wrapped
// in a Command and executed when the phase's queue is flushed.
package queue

import (
	"fmt"
	"log"

	"github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/metrics"
	"github.com/automoto/danmaku/store"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Command is one deferred world mutation.
type Command interface {
	// EntitiesQueued is the number of entities Execute will create.
	EntitiesQueued() int
	// Components is the archetype the created entities will have.
	Components() []donburi.IComponentType
	// Execute applies the command. It may enqueue follow-up commands.
	Execute(e *ecs.ECS, q *Queue)
}

// Func is a Command that creates no entities.
type Func func(e *ecs.ECS, q *Queue)

func (f Func) EntitiesQueued() int                  { return 0 }
func (f Func) Components() []donburi.IComponentType { return nil }
func (f Func) Execute(e *ecs.ECS, q *Queue)         { f(e, q) }

// FlushStats summarises one flush.
type FlushStats struct {
	Commands  int
	Declared  int
	Created   int
	Overflows int
}

// Queue holds pending commands. Commands queued with EnqueueFront run
// before every command queued with Enqueue.
type Queue struct {
	world *store.World

	front     []Command
	back      []Command
	frontHead int
	backHead  int
	flushing  bool
}

// New creates a queue that executes against w.
func New(w *store.World) *Queue {
	return &Queue{
		world: w,
		back:  make([]Command, 0, config.Queue.InitialCapacity),
	}
}

// World returns the store the queue executes against.
func (q *Queue) World() *store.World {
	return q.world
}

// Enqueue appends cmd.
func (q *Queue) Enqueue(cmd Command) {
	q.back = append(q.back, cmd)
}

// EnqueueFront queues cmd ahead of every Enqueue'd command. Front commands
// keep their order among themselves.
func (q *Queue) EnqueueFront(cmd Command) {
	q.front = append(q.front, cmd)
}

// Len returns the number of pending commands.
func (q *Queue) Len() int {
	return len(q.front) - q.frontHead + len(q.back) - q.backHead
}

// Flush executes pending commands until none are left, including commands
// enqueued by commands. Calling Flush from inside a command is a no-op; the
// outer flush drains whatever the command queued.
func (q *Queue) Flush(e *ecs.ECS) FlushStats {
	var stats FlushStats
	if q.flushing {
		return stats
	}
	q.flushing = true
	defer func() { q.flushing = false }()

	for {
		cmd, ok := q.pop()
		if !ok {
			break
		}
		q.run(e, cmd, &stats)
	}
	metrics.RecordFlush(stats.Commands, stats.Created)
	return stats
}

func (q *Queue) pop() (Command, bool) {
	if q.frontHead < len(q.front) {
		cmd := q.front[q.frontHead]
		q.front[q.frontHead] = nil
		q.frontHead++
		return cmd, true
	}
	if q.backHead < len(q.back) {
		cmd := q.back[q.backHead]
		q.back[q.backHead] = nil
		q.backHead++
		return cmd, true
	}
	q.front, q.frontHead = q.front[:0], 0
	q.back, q.backHead = q.back[:0], 0
	return nil, false
}

func (q *Queue) run(e *ecs.ECS, cmd Command, stats *FlushStats) {
	declared := cmd.EntitiesQueued()
	if declared > 0 {
		cs := cmd.Components()
		q.world.Reserve(q.world.CountExact(cs...)+declared, cs...)
	}

	before := q.world.Created()
	cmd.Execute(e, q)
	created := q.world.Created() - before

	stats.Commands++
	stats.Declared += declared
	stats.Created += created

	if created > declared {
		stats.Overflows++
		msg := fmt.Sprintf("queue: %T created %d entities but declared %d", cmd, created, declared)
		if config.Debug.Assertions {
			panic(msg)
		}
		log.Printf("%s; storage may reallocate", msg)
		metrics.RecordOverflow()
	}
}

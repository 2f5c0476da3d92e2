// Package metrics exposes simulation metrics to prometheus.
package metrics

import (
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Labels are bounded: phase names and policy kinds only.
var (
	tickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "danmaku_tick_duration_seconds",
		Help:    "Time spent in one simulation tick",
		Buckets: []float64{0.0005, 0.001, 0.002, 0.004, 0.008, 0.016, 0.033},
	})

	phaseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "danmaku_phase_duration_seconds",
		Help:    "Time spent in one simulation phase including its queue flush",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.002, 0.004, 0.008},
	}, []string{"phase"})

	entityCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "danmaku_entities",
		Help: "Live entities in the world",
	})

	bulletCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "danmaku_bullets",
		Help: "Live hazards in the world",
	})

	queueCommands = promauto.NewCounter(prometheus.CounterOpts{
		Name: "danmaku_queue_commands_total",
		Help: "Commands executed by the creation queue",
	})

	queueCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "danmaku_queue_created_total",
		Help: "Entities created by queued commands",
	})

	queueOverflows = promauto.NewCounter(prometheus.CounterOpts{
		Name: "danmaku_queue_overflows_total",
		Help: "Commands that created more entities than they declared",
	})

	collisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "danmaku_collisions_total",
		Help: "Resolved hazard hits by policy",
	}, []string{"policy"})

	spawns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "danmaku_spawns_total",
		Help: "Spawn tree nodes instantiated",
	})
)

// RecordTick records the duration of a full tick.
func RecordTick(d time.Duration) {
	tickDuration.Observe(d.Seconds())
}

// RecordPhase records the duration of one phase.
func RecordPhase(phase string, d time.Duration) {
	phaseDuration.WithLabelValues(phase).Observe(d.Seconds())
}

// UpdateEntityCounts sets the live entity gauges.
func UpdateEntityCounts(entities, bullets int) {
	entityCount.Set(float64(entities))
	bulletCount.Set(float64(bullets))
}

// RecordFlush adds the totals of one queue flush.
func RecordFlush(commands, created int) {
	queueCommands.Add(float64(commands))
	queueCreated.Add(float64(created))
}

// RecordOverflow counts a command that created more than it declared.
func RecordOverflow() {
	queueOverflows.Inc()
}

// RecordCollision counts a resolved hit. policy is a spawntree.PolicyKind name.
func RecordCollision(policy string) {
	collisions.WithLabelValues(policy).Inc()
}

// RecordSpawn counts an instantiated spawn tree node.
func RecordSpawn() {
	spawns.Inc()
}

// Serve starts the /metrics endpoint in the background. An empty address
// disables it.
func Serve(addr string) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	go func() {
		log.Printf("Metrics server starting on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("Metrics server error: %v", err)
		}
	}()
}

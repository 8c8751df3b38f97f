package metrics

import (
	"sync/atomic"

	"github.com/coachhub/catalog/internal/model"
)

// KindSnapshot holds the counters of one catalog.
type KindSnapshot struct {
	Created         uint64
	Deleted         uint64
	Conflicts       uint64
	ListCacheHits   uint64
	ListCacheMisses uint64
}

// Snapshot captures current in-memory counters.
type Snapshot struct {
	Kinds           map[model.Kind]KindSnapshot
	EventsPublished uint64
	EventsDropped   uint64
}

type kindCounters struct {
	created         atomic.Uint64
	deleted         atomic.Uint64
	conflicts       atomic.Uint64
	listCacheHits   atomic.Uint64
	listCacheMisses atomic.Uint64
}

// InMemoryRecorder stores metrics in memory.
// The per-kind map is built once and only read afterwards.
type InMemoryRecorder struct {
	kinds           map[model.Kind]*kindCounters
	eventsPublished atomic.Uint64
	eventsDropped   atomic.Uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	kinds := make(map[model.Kind]*kindCounters, len(model.Kinds))
	for _, k := range model.Kinds {
		kinds[k] = &kindCounters{}
	}
	return &InMemoryRecorder{kinds: kinds}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	snap := Snapshot{
		Kinds:           make(map[model.Kind]KindSnapshot, len(m.kinds)),
		EventsPublished: m.eventsPublished.Load(),
		EventsDropped:   m.eventsDropped.Load(),
	}
	for k, c := range m.kinds {
		snap.Kinds[k] = KindSnapshot{
			Created:         c.created.Load(),
			Deleted:         c.deleted.Load(),
			Conflicts:       c.conflicts.Load(),
			ListCacheHits:   c.listCacheHits.Load(),
			ListCacheMisses: c.listCacheMisses.Load(),
		}
	}
	return snap
}

// IncCreated increments the created counter for kind.
func (m *InMemoryRecorder) IncCreated(kind model.Kind) {
	if c, ok := m.kinds[kind]; ok {
		c.created.Add(1)
	}
}

// IncDeleted increments the deleted counter for kind.
func (m *InMemoryRecorder) IncDeleted(kind model.Kind) {
	if c, ok := m.kinds[kind]; ok {
		c.deleted.Add(1)
	}
}

// IncConflict increments the duplicate-name counter for kind.
func (m *InMemoryRecorder) IncConflict(kind model.Kind) {
	if c, ok := m.kinds[kind]; ok {
		c.conflicts.Add(1)
	}
}

// IncListCacheHit increments the list cache hit counter for kind.
func (m *InMemoryRecorder) IncListCacheHit(kind model.Kind) {
	if c, ok := m.kinds[kind]; ok {
		c.listCacheHits.Add(1)
	}
}

// IncListCacheMiss increments the list cache miss counter for kind.
func (m *InMemoryRecorder) IncListCacheMiss(kind model.Kind) {
	if c, ok := m.kinds[kind]; ok {
		c.listCacheMisses.Add(1)
	}
}

// IncEventPublished counts change events by outcome.
func (m *InMemoryRecorder) IncEventPublished(status string) {
	if status == "success" {
		m.eventsPublished.Add(1)
		return
	}
	m.eventsDropped.Add(1)
}

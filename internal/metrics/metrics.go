// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "github.com/coachhub/catalog/internal/model"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Catalog mutations
	IncCreated(kind model.Kind)
	IncDeleted(kind model.Kind)
	IncConflict(kind model.Kind)

	// List cache
	IncListCacheHit(kind model.Kind)
	IncListCacheMiss(kind model.Kind)

	// Change events
	IncEventPublished(status string) // status: "success" or "dropped"
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}

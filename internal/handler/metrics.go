package handler

import (
	"fmt"
	"net/http"

	"github.com/coachhub/catalog/internal/metrics"
	"github.com/coachhub/catalog/internal/model"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	// Fixed kind order keeps the output stable between scrapes.
	for _, kind := range model.Kinds {
		k := snap.Kinds[kind]
		writeMetric(w, "catalog_entries_created_total{kind=%q} %d\n", kind, k.Created)
		writeMetric(w, "catalog_entries_deleted_total{kind=%q} %d\n", kind, k.Deleted)
		writeMetric(w, "catalog_name_conflicts_total{kind=%q} %d\n", kind, k.Conflicts)
		writeMetric(w, "catalog_list_cache_hits_total{kind=%q} %d\n", kind, k.ListCacheHits)
		writeMetric(w, "catalog_list_cache_misses_total{kind=%q} %d\n", kind, k.ListCacheMisses)
	}

	writeMetric(w, "catalog_events_published_total{status=\"success\"} %d\n", snap.EventsPublished)
	writeMetric(w, "catalog_events_published_total{status=\"dropped\"} %d\n", snap.EventsDropped)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}

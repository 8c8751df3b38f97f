package metrics

import "github.com/coachhub/catalog/internal/model"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

func (n *NoopRecorder) IncCreated(kind model.Kind)       {}
func (n *NoopRecorder) IncDeleted(kind model.Kind)       {}
func (n *NoopRecorder) IncConflict(kind model.Kind)      {}
func (n *NoopRecorder) IncListCacheHit(kind model.Kind)  {}
func (n *NoopRecorder) IncListCacheMiss(kind model.Kind) {}
func (n *NoopRecorder) IncEventPublished(status string)  {}

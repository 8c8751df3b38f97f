// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/coachhub/catalog/internal/cache"
	"github.com/coachhub/catalog/internal/events"
	"github.com/coachhub/catalog/internal/metrics"
	"github.com/coachhub/catalog/internal/model"
)

// Service errors.
var (
	ErrDuplicateName = errors.New("name already exists")
	ErrInvalidID     = errors.New("id does not identify an entry")
)

// CreditPackageStore persists credit packages.
type CreditPackageStore interface {
	ListCreditPackages(ctx context.Context) ([]*model.CreditPackage, error)
	FindCreditPackagesByName(ctx context.Context, name string) ([]*model.CreditPackage, error)
	CreateCreditPackage(ctx context.Context, pkg *model.CreditPackage) error
	DeleteCreditPackage(ctx context.Context, id string) (int64, error)
}

// SkillStore persists skills.
type SkillStore interface {
	ListSkills(ctx context.Context) ([]*model.Skill, error)
	FindSkillsByName(ctx context.Context, name string) ([]*model.Skill, error)
	CreateSkill(ctx context.Context, skill *model.Skill) error
	DeleteSkill(ctx context.Context, id string) (int64, error)
}

// Store is everything the catalog services persist.
type Store interface {
	CreditPackageStore
	SkillStore
}

// ListCache caches catalog listings.
type ListCache interface {
	GetList(ctx context.Context, kind model.Kind, dest any) error
	SetList(ctx context.Context, kind model.Kind, list any) error
	InvalidateList(ctx context.Context, kind model.Kind) error
}

// EventPublisher receives catalog change events.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event)
}

// CatalogService handles credit package and skill business logic.
type CatalogService struct {
	store     Store
	cache     ListCache
	publisher EventPublisher
	metrics   metrics.Recorder
	logger    *slog.Logger
}

// NewCatalogService creates a new CatalogService.
// cache and publisher may be nil to disable list caching and change events.
func NewCatalogService(store Store, listCache ListCache, publisher EventPublisher, recorder metrics.Recorder, logger *slog.Logger) *CatalogService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		store:     store,
		cache:     listCache,
		publisher: publisher,
		metrics:   recorder,
		logger:    logger.With("component", "catalog.service"),
	}
}

// cachedList loads a listing from the cache into dest and reports a hit.
// Cache errors other than a miss are logged and treated as a miss.
func (s *CatalogService) cachedList(ctx context.Context, kind model.Kind, dest any) bool {
	if s.cache == nil {
		return false
	}

	err := s.cache.GetList(ctx, kind, dest)
	if err == nil {
		s.metrics.IncListCacheHit(kind)
		return true
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("list_cache_read_failed", "kind", kind, "error", err)
	}
	s.metrics.IncListCacheMiss(kind)
	return false
}

func (s *CatalogService) storeList(ctx context.Context, kind model.Kind, list any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetList(ctx, kind, list); err != nil {
		s.logger.Warn("list_cache_write_failed", "kind", kind, "error", err)
	}
}

// changed runs after a successful mutation: drops the cached listing and
// announces the change.
func (s *CatalogService) changed(ctx context.Context, kind model.Kind, action events.Action, id, name string) {
	if s.cache != nil {
		if err := s.cache.InvalidateList(ctx, kind); err != nil {
			s.logger.Warn("list_cache_invalidate_failed", "kind", kind, "error", err)
		}
	}
	if s.publisher != nil {
		s.publisher.Publish(ctx, events.NewEvent(kind, action, id, name))
	}
}

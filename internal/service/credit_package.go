package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coachhub/catalog/internal/events"
	"github.com/coachhub/catalog/internal/model"
	"github.com/coachhub/catalog/internal/repository"
)

// CreateCreditPackageInput defines input for creating a credit package.
type CreateCreditPackageInput struct {
	Name         string
	CreditAmount int
	Price        decimal.Decimal
}

// ListCreditPackages returns all credit packages without creation times.
func (s *CatalogService) ListCreditPackages(ctx context.Context) ([]*model.CreditPackage, error) {
	var packages []*model.CreditPackage
	if s.cachedList(ctx, model.KindCreditPackage, &packages) {
		return packages, nil
	}

	packages, err := s.store.ListCreditPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit packages: %w", err)
	}

	s.storeList(ctx, model.KindCreditPackage, packages)
	return packages, nil
}

// CreateCreditPackage stores a new credit package unless the name is taken.
func (s *CatalogService) CreateCreditPackage(ctx context.Context, input CreateCreditPackageInput) (*model.CreditPackage, error) {
	existing, err := s.store.FindCreditPackagesByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up credit package name: %w", err)
	}
	if len(existing) > 0 {
		s.metrics.IncConflict(model.KindCreditPackage)
		return nil, ErrDuplicateName
	}

	pkg := &model.CreditPackage{
		ID:           uuid.NewString(),
		Name:         input.Name,
		CreditAmount: input.CreditAmount,
		Price:        input.Price,
	}

	if err := s.store.CreateCreditPackage(ctx, pkg); err != nil {
		// A concurrent create won the race past the lookup above.
		if errors.Is(err, repository.ErrDuplicateName) {
			s.metrics.IncConflict(model.KindCreditPackage)
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create credit package: %w", err)
	}

	s.metrics.IncCreated(model.KindCreditPackage)
	s.changed(ctx, model.KindCreditPackage, events.ActionCreated, pkg.ID, pkg.Name)

	return pkg, nil
}

// DeleteCreditPackage removes a credit package by id.
func (s *CatalogService) DeleteCreditPackage(ctx context.Context, id string) error {
	n, err := s.store.DeleteCreditPackage(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return ErrInvalidID
		}
		return fmt.Errorf("failed to delete credit package: %w", err)
	}
	if n == 0 {
		return ErrInvalidID
	}

	s.metrics.IncDeleted(model.KindCreditPackage)
	s.changed(ctx, model.KindCreditPackage, events.ActionDeleted, id, "")

	return nil
}

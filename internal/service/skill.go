package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/coachhub/catalog/internal/events"
	"github.com/coachhub/catalog/internal/model"
	"github.com/coachhub/catalog/internal/repository"
)

// ListSkills returns all skills without creation times.
func (s *CatalogService) ListSkills(ctx context.Context) ([]*model.Skill, error) {
	var skills []*model.Skill
	if s.cachedList(ctx, model.KindSkill, &skills) {
		return skills, nil
	}

	skills, err := s.store.ListSkills(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}

	s.storeList(ctx, model.KindSkill, skills)
	return skills, nil
}

// CreateSkill stores a new skill unless the name is taken.
func (s *CatalogService) CreateSkill(ctx context.Context, name string) (*model.Skill, error) {
	existing, err := s.store.FindSkillsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up skill name: %w", err)
	}
	if len(existing) > 0 {
		s.metrics.IncConflict(model.KindSkill)
		return nil, ErrDuplicateName
	}

	skill := &model.Skill{
		ID:   uuid.NewString(),
		Name: name,
	}

	if err := s.store.CreateSkill(ctx, skill); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			s.metrics.IncConflict(model.KindSkill)
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}

	s.metrics.IncCreated(model.KindSkill)
	s.changed(ctx, model.KindSkill, events.ActionCreated, skill.ID, skill.Name)

	return skill, nil
}

// DeleteSkill removes a skill by id.
func (s *CatalogService) DeleteSkill(ctx context.Context, id string) error {
	n, err := s.store.DeleteSkill(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return ErrInvalidID
		}
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if n == 0 {
		return ErrInvalidID
	}

	s.metrics.IncDeleted(model.KindSkill)
	s.changed(ctx, model.KindSkill, events.ActionDeleted, id, "")

	return nil
}

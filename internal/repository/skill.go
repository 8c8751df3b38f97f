package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/coachhub/catalog/internal/model"
)

var skillTable = table(model.KindSkill)

// ListSkills returns every skill projected to id and name.
func (r *Repository) ListSkills(ctx context.Context) ([]*model.Skill, error) {
	query := fmt.Sprintf(`SELECT id::text, name FROM %s`, skillTable)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	skills := make([]*model.Skill, 0)
	for rows.Next() {
		var skill model.Skill
		if err := rows.Scan(&skill.ID, &skill.Name); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, &skill)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating skills: %w", err)
	}

	return skills, nil
}

// FindSkillsByName returns skills whose name equals name.
func (r *Repository) FindSkillsByName(ctx context.Context, name string) ([]*model.Skill, error) {
	query := fmt.Sprintf(`
		SELECT id::text, name, created_at
		FROM %s
		WHERE name = $1
	`, skillTable)

	rows, err := r.pool.Query(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to find skills by name: %w", err)
	}

	skills, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.Skill, error) {
		var skill model.Skill
		err := row.Scan(&skill.ID, &skill.Name, &skill.CreatedAt)
		return &skill, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan skill: %w", err)
	}

	return skills, nil
}

// CreateSkill inserts skill and sets CreatedAt from the stored row.
func (r *Repository) CreateSkill(ctx context.Context, skill *model.Skill) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name)
		VALUES ($1::text::uuid, $2)
		RETURNING created_at
	`, skillTable)

	err := r.pool.QueryRow(ctx, query, skill.ID, skill.Name).Scan(&skill.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateName
		}
		return fmt.Errorf("failed to create skill: %w", err)
	}

	return nil
}

// DeleteSkill deletes a skill by id and returns the rows removed.
func (r *Repository) DeleteSkill(ctx context.Context, id string) (int64, error) {
	return r.deleteByID(ctx, model.KindSkill, id)
}

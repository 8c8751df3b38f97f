package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/coachhub/catalog/internal/model"
)

var creditPackageTable = table(model.KindCreditPackage)

// ListCreditPackages returns every credit package projected to
// id, name, credit_amount and price. CreatedAt is left zero.
func (r *Repository) ListCreditPackages(ctx context.Context) ([]*model.CreditPackage, error) {
	query := fmt.Sprintf(`
		SELECT id::text, name, credit_amount, price::text
		FROM %s
	`, creditPackageTable)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit packages: %w", err)
	}
	defer rows.Close()

	packages := make([]*model.CreditPackage, 0)
	for rows.Next() {
		var pkg model.CreditPackage
		if err := rows.Scan(&pkg.ID, &pkg.Name, &pkg.CreditAmount, &pkg.Price); err != nil {
			return nil, fmt.Errorf("failed to scan credit package: %w", err)
		}
		packages = append(packages, &pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating credit packages: %w", err)
	}

	return packages, nil
}

// FindCreditPackagesByName returns credit packages whose name equals name.
func (r *Repository) FindCreditPackagesByName(ctx context.Context, name string) ([]*model.CreditPackage, error) {
	query := fmt.Sprintf(`
		SELECT id::text, name, credit_amount, price::text, created_at
		FROM %s
		WHERE name = $1
	`, creditPackageTable)

	rows, err := r.pool.Query(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to find credit packages by name: %w", err)
	}

	packages, err := pgx.CollectRows(rows, scanCreditPackage)
	if err != nil {
		return nil, fmt.Errorf("failed to scan credit package: %w", err)
	}

	return packages, nil
}

// CreateCreditPackage inserts pkg and sets CreatedAt from the stored row.
func (r *Repository) CreateCreditPackage(ctx context.Context, pkg *model.CreditPackage) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, credit_amount, price)
		VALUES ($1::text::uuid, $2, $3, $4::text::numeric)
		RETURNING created_at
	`, creditPackageTable)

	err := r.pool.QueryRow(ctx, query,
		pkg.ID,
		pkg.Name,
		pkg.CreditAmount,
		pkg.Price.String(),
	).Scan(&pkg.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateName
		}
		return fmt.Errorf("failed to create credit package: %w", err)
	}

	return nil
}

// DeleteCreditPackage deletes a credit package by id and returns the rows removed.
func (r *Repository) DeleteCreditPackage(ctx context.Context, id string) (int64, error) {
	return r.deleteByID(ctx, model.KindCreditPackage, id)
}

func scanCreditPackage(row pgx.CollectableRow) (*model.CreditPackage, error) {
	var pkg model.CreditPackage
	err := row.Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.CreditAmount,
		&pkg.Price,
		&pkg.CreatedAt,
	)
	return &pkg, err
}

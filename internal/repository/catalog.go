package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/coachhub/catalog/internal/model"
)

// table returns the quoted table name for a catalog kind.
func table(kind model.Kind) string {
	return pq.QuoteIdentifier(kind.Table())
}

// deleteByID removes a row by primary key and returns the number of rows removed.
// The id is cast server-side so malformed values are rejected by PostgreSQL.
func (r *Repository) deleteByID(ctx context.Context, kind model.Kind, id string) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1::text::uuid`, table(kind))

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		if isInvalidText(err) {
			return 0, ErrInvalidID
		}
		return 0, fmt.Errorf("failed to delete %s: %w", kind, err)
	}

	return result.RowsAffected(), nil
}

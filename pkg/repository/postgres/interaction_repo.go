package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/artem13815/hagrid/pkg/interaction"
)

// querier is the subset of *pgxpool.Pool the repository needs.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// InteractionRepository сохраняет записи сессий в таблицу prompts.
type InteractionRepository struct {
	pool querier
}

func NewInteractionRepository(pool querier) *InteractionRepository {
	return &InteractionRepository{pool: pool}
}

func (r *InteractionRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS prompts (
	topic TEXT,
	operation_type TEXT,
	subcategory_choice TEXT,
	enhanced_prompt TEXT,
	enhanced_res TEXT
);
`)
	return err
}

func (r *InteractionRepository) Insert(ctx context.Context, rec interaction.Record) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO prompts (topic, operation_type, subcategory_choice, enhanced_prompt, enhanced_res)
VALUES ($1, $2, $3, $4, $5)
`, rec.Topic, rec.Category, rec.Subcategory, rec.EnhancedPrompt, rec.EnhancedAnswer)
	return err
}

// List orders by ctid since the table has no key; that matches insertion
// order for an append-only table.
func (r *InteractionRepository) List(ctx context.Context, limit, offset int) ([]interaction.Record, error) {
	rows, err := r.pool.Query(ctx, `
SELECT topic, operation_type, subcategory_choice, enhanced_prompt, enhanced_res
FROM prompts
ORDER BY ctid
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []interaction.Record
	for rows.Next() {
		var rec interaction.Record
		if err := rows.Scan(&rec.Topic, &rec.Category, &rec.Subcategory, &rec.EnhancedPrompt, &rec.EnhancedAnswer); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

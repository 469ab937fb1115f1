package sqlite

import (
	"context"
	"database/sql"

	"github.com/artem13815/hagrid/pkg/interaction"
)

// InteractionRepository stores session records in a local SQLite file.
type InteractionRepository struct {
	db *sql.DB
}

func NewInteractionRepository(db *sql.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

func (r *InteractionRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
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
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
INSERT INTO prompts (topic, operation_type, subcategory_choice, enhanced_prompt, enhanced_res)
VALUES (?, ?, ?, ?, ?)
`, rec.Topic, rec.Category, rec.Subcategory, rec.EnhancedPrompt, rec.EnhancedAnswer)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (r *InteractionRepository) List(ctx context.Context, limit, offset int) ([]interaction.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT topic, operation_type, subcategory_choice, enhanced_prompt, enhanced_res
FROM prompts
ORDER BY rowid
LIMIT ? OFFSET ?
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

package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/hagrid/pkg/interaction"
)

type execCall struct {
	sql  string
	args []any
}

type fakeQuerier struct {
	calls []execCall
	err   error
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, execCall{sql: sql, args: args})
	return pgconn.NewCommandTag("INSERT 0 1"), f.err
}

func (f *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func TestInteractionRepository_EnsureSchema(t *testing.T) {
	q := &fakeQuerier{}
	r := NewInteractionRepository(q)

	require.NoError(t, r.EnsureSchema(context.Background()))
	require.Len(t, q.calls, 1)
	assert.Contains(t, q.calls[0].sql, "CREATE TABLE IF NOT EXISTS prompts")
	assert.NotContains(t, strings.ToUpper(q.calls[0].sql), "PRIMARY KEY")
}

func TestInteractionRepository_InsertColumnOrder(t *testing.T) {
	q := &fakeQuerier{}
	r := NewInteractionRepository(q)

	rec := interaction.Record{
		Topic:          "ducks",
		Category:       "Generative",
		Subcategory:    "Creative Writing",
		EnhancedPrompt: "Write a story about ducks",
		EnhancedAnswer: "Once upon a duck...",
	}
	require.NoError(t, r.Insert(context.Background(), rec))
	require.Len(t, q.calls, 1)
	assert.Contains(t, q.calls[0].sql, "(topic, operation_type, subcategory_choice, enhanced_prompt, enhanced_res)")
	assert.Equal(t, []any{"ducks", "Generative", "Creative Writing", "Write a story about ducks", "Once upon a duck..."}, q.calls[0].args)
}

func TestInteractionRepository_InsertError(t *testing.T) {
	boom := errors.New("connection reset")
	r := NewInteractionRepository(&fakeQuerier{err: boom})
	assert.ErrorIs(t, r.Insert(context.Background(), interaction.Record{}), boom)
}

package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/hagrid/pkg/interaction"
	sqlitestore "github.com/artem13815/hagrid/pkg/storage/sqlite"
)

func newRepo(t *testing.T) *InteractionRepository {
	t.Helper()
	db, err := sqlitestore.Open(context.Background(), filepath.Join(t.TempDir(), "hagrid.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewInteractionRepository(db)
}

func TestInteractionRepository_EnsureSchemaIdempotent(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()
	require.NoError(t, r.EnsureSchema(ctx))
	require.NoError(t, r.EnsureSchema(ctx))
}

func TestInteractionRepository_InsertAndList(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()
	require.NoError(t, r.EnsureSchema(ctx))

	first := interaction.Record{
		Topic:          "ducks",
		Category:       "Generative",
		Subcategory:    "Creative Writing",
		EnhancedPrompt: "Write a story about ducks",
		EnhancedAnswer: "Once upon a duck...",
	}
	// No key: identical rows are both kept.
	require.NoError(t, r.Insert(ctx, first))
	require.NoError(t, r.Insert(ctx, first))
	second := first
	second.Topic = "geese"
	require.NoError(t, r.Insert(ctx, second))

	all, err := r.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, first, all[0])
	assert.Equal(t, "geese", all[2].Topic)

	page, err := r.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []interaction.Record{second}, page)
}

func TestInteractionRepository_InsertWithoutSchemaFails(t *testing.T) {
	r := newRepo(t)
	err := r.Insert(context.Background(), interaction.Record{Topic: "x"})
	assert.Error(t, err)
}

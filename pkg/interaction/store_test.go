package interaction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeRepo struct {
	schemaErr error
	insertErr error
	panicMsg  string
	rows      []Record
}

func (f *fakeRepo) EnsureSchema(context.Context) error { return f.schemaErr }

func (f *fakeRepo) Insert(_ context.Context, rec Record) error {
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	if f.insertErr != nil {
		return f.insertErr
	}
	f.rows = append(f.rows, rec)
	return nil
}

func (f *fakeRepo) List(_ context.Context, limit, offset int) ([]Record, error) {
	if offset >= len(f.rows) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.rows) {
		end = len(f.rows)
	}
	return f.rows[offset:end], nil
}

func TestStore_AppendSwallowsFaults(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	repo := &fakeRepo{insertErr: errors.New("disk full")}
	s := NewStore(repo, zap.New(core))

	s.Append(context.Background(), Record{Topic: "ducks"})

	entries := logs.FilterMessage("persist interaction failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "ducks", entries[0].ContextMap()["topic"])
}

func TestStore_AppendRecoversPanics(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := NewStore(&fakeRepo{panicMsg: "driver bug"}, zap.New(core))

	assert.NotPanics(t, func() { s.Append(context.Background(), Record{Topic: "ducks"}) })
	assert.Equal(t, 1, logs.FilterMessage("persist interaction panicked").Len())
}

func TestStore_AppendAndList(t *testing.T) {
	repo := &fakeRepo{}
	s := NewStore(repo, nil)
	ctx := context.Background()

	require.NoError(t, s.EnsureReady(ctx))
	s.Append(ctx, Record{Topic: "a"})
	s.Append(ctx, Record{Topic: "b"})

	got, err := s.List(ctx, 10, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Topic)
}

func TestStore_EnsureReadyWrapsError(t *testing.T) {
	boom := errors.New("no such database")
	s := NewStore(&fakeRepo{schemaErr: boom}, nil)
	err := s.EnsureReady(context.Background())
	assert.ErrorIs(t, err, boom)
}

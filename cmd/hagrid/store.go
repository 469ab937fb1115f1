package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/artem13815/hagrid/pkg/config"
	"github.com/artem13815/hagrid/pkg/health"
	"github.com/artem13815/hagrid/pkg/health/checkers"
	"github.com/artem13815/hagrid/pkg/interaction"
	pgrepo "github.com/artem13815/hagrid/pkg/repository/postgres"
	sqliterepo "github.com/artem13815/hagrid/pkg/repository/sqlite"
	"github.com/artem13815/hagrid/pkg/storage/postgres"
	"github.com/artem13815/hagrid/pkg/storage/sqlite"
)

// openStore connects the configured backend and makes sure the table
// exists. The returned close func releases the connection.
func openStore(ctx context.Context, sc config.StoreConfig, log *zap.Logger) (*interaction.Store, health.Checker, func(), error) {
	var (
		repo    interaction.Repository
		checker health.Checker
		closeFn func()
	)
	switch sc.Driver {
	case config.DriverPostgres:
		pool, err := postgres.Connect(ctx, sc.DatabaseURL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("postgres connect: %w", err)
		}
		repo = pgrepo.NewInteractionRepository(pool)
		checker = checkers.NewPostgresChecker(pool)
		closeFn = pool.Close
	default:
		db, err := sqlite.Open(ctx, sc.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		repo = sqliterepo.NewInteractionRepository(db)
		checker = checkers.NewSQLChecker("sqlite", db)
		closeFn = func() { _ = db.Close() }
	}

	store := interaction.NewStore(repo, log.Named("store"))
	if err := store.EnsureReady(ctx); err != nil {
		closeFn()
		return nil, nil, nil, err
	}
	log.Debug("store ready", zap.String("driver", sc.Driver))
	return store, checker, closeFn, nil
}

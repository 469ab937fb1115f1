package interaction

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Store сохраняет записи по принципу best effort: неудачная запись
// логируется и отбрасывается, завершённая сессия остаётся успешной.
type Store struct {
	repo Repository
	log  *zap.Logger
}

func NewStore(repo Repository, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{repo: repo, log: log}
}

// EnsureReady создаёт таблицу, если её ещё нет.
func (s *Store) EnsureReady(ctx context.Context) error {
	if err := s.repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure interaction schema: %w", err)
	}
	return nil
}

// Append записывает rec. Ошибки вызывающему не возвращаются.
func (s *Store) Append(ctx context.Context, rec Record) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("persist interaction panicked", zap.Any("panic", r), zap.String("topic", rec.Topic))
		}
	}()
	if err := s.repo.Insert(ctx, rec); err != nil {
		s.log.Error("persist interaction failed",
			zap.Error(err),
			zap.String("topic", rec.Topic),
			zap.String("category", rec.Category),
			zap.String("subcategory", rec.Subcategory),
		)
		return
	}
	s.log.Info("interaction stored", zap.String("topic", rec.Topic))
}

// List возвращает записи в порядке вставки.
func (s *Store) List(ctx context.Context, limit, offset int) ([]Record, error) {
	return s.repo.List(ctx, limit, offset)
}

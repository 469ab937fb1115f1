package session

import (
	"context"
	"fmt"

	"github.com/artem13815/hagrid/pkg/taxonomy"
)

// Mode определяет, из какой таксономии выбирает пользователь.
// Фиксируется при создании Mediator.
type Mode interface {
	fmt.Stringer
	taxonomyFor(ctx context.Context, m *Mediator, topic string, base taxonomy.Taxonomy) (taxonomy.Taxonomy, error)
}

// DirectSelection показывает загруженную таксономию без изменений.
type DirectSelection struct{}

func (DirectSelection) String() string { return "direct" }

func (DirectSelection) taxonomyFor(_ context.Context, _ *Mediator, _ string, base taxonomy.Taxonomy) (taxonomy.Taxonomy, error) {
	return base, nil
}

// RefinedSelection запрашивает у модели таксономию под тему
// и показывает её.
type RefinedSelection struct{}

func (RefinedSelection) String() string { return "refined" }

func (RefinedSelection) taxonomyFor(ctx context.Context, m *Mediator, topic string, base taxonomy.Taxonomy) (taxonomy.Taxonomy, error) {
	answer, err := m.gateway.Send(ctx, RefinePrompt(topic, base), false)
	if err != nil {
		return taxonomy.Taxonomy{}, err
	}
	refined, err := taxonomy.ParseText(answer)
	if err != nil {
		return taxonomy.Taxonomy{}, err
	}
	if refined.Len() == 0 {
		return taxonomy.Taxonomy{}, &taxonomy.MalformedError{Reason: "refined taxonomy has no categories"}
	}
	return refined, nil
}

// ModeFor maps the one-shot switch onto a Mode.
func ModeFor(oneShot bool) Mode {
	if oneShot {
		return DirectSelection{}
	}
	return RefinedSelection{}
}

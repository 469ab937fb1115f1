package session

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/artem13815/hagrid/pkg/interaction"
	"github.com/artem13815/hagrid/pkg/llm"
	"github.com/artem13815/hagrid/pkg/taxonomy"
)

var ErrAlreadyRun = errors.New("session already run")

// Console — порт взаимодействия с пользователем. Choose возвращает только
// имена из t; повторный запрос при неверном вводе на его стороне.
type Console interface {
	Topic(ctx context.Context) (string, error)
	Choose(ctx context.Context, t taxonomy.Taxonomy) (category, subcategory string, err error)
}

// Recorder — порт сохранения завершённой сессии. Ошибок не возвращает.
type Recorder interface {
	Append(ctx context.Context, rec interaction.Record)
}

type Options struct {
	Mode Mode
	// SkipBootstrap leaves the model without the taxonomy preamble.
	SkipBootstrap bool
	// OnLoaded, when set, is called as soon as the model acknowledges the
	// bootstrap, before the topic is asked for.
	OnLoaded func()
	Logger   *zap.Logger
}

// Result — итог успешной сессии.
type Result struct {
	Selection      taxonomy.Selection
	EnhancedPrompt string
	Answer         string
	// TaxonomyLoaded is true when the bootstrap call was acknowledged.
	TaxonomyLoaded bool
}

// Mediator ведёт одну сессию: таксономия → bootstrap → тема → выбор →
// улучшенный промпт → ответ → запись. Каждый шаг выполняется один раз,
// первая ошибка переводит сессию в Failed.
type Mediator struct {
	document []string
	gateway  llm.Gateway
	console  Console
	store    Recorder

	mode          Mode
	skipBootstrap bool
	onLoaded      func()
	log           *zap.Logger

	state State
}

func New(document []string, gateway llm.Gateway, console Console, store Recorder, opts Options) *Mediator {
	if opts.Mode == nil {
		opts.Mode = DirectSelection{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Mediator{
		document:      document,
		gateway:       gateway,
		console:       console,
		store:         store,
		mode:          opts.Mode,
		skipBootstrap: opts.SkipBootstrap,
		onLoaded:      opts.OnLoaded,
		log:           opts.Logger.With(zap.Stringer("mode", opts.Mode)),
		state:         Init,
	}
}

// State returns the current state.
func (m *Mediator) State() State { return m.state }

// Run executes the session. Errors are returned as produced by the failing
// collaborator, wrapped with the step name.
func (m *Mediator) Run(ctx context.Context) (Result, error) {
	if m.state != Init {
		return Result{}, ErrAlreadyRun
	}
	var res Result

	base, err := taxonomy.Parse(m.document)
	if err != nil {
		return Result{}, m.fail("parse taxonomy", err)
	}
	m.advance(TaxonomyLoaded)

	if !m.skipBootstrap {
		ack, err := m.gateway.Send(ctx, BootstrapPrompt(base), true)
		if err != nil {
			return Result{}, m.fail("bootstrap", err)
		}
		res.TaxonomyLoaded = acknowledged(ack)
		if !res.TaxonomyLoaded {
			m.log.Warn("bootstrap not acknowledged", zap.String("answer", ack))
		}
	}
	m.advance(Bootstrapped)
	if res.TaxonomyLoaded && m.onLoaded != nil {
		m.onLoaded()
	}

	topic, err := m.console.Topic(ctx)
	if err != nil {
		return Result{}, m.fail("collect topic", err)
	}
	m.advance(TopicCollected)

	active, err := m.mode.taxonomyFor(ctx, m, topic, base)
	if err != nil {
		return Result{}, m.fail("refine taxonomy", err)
	}
	category, subcategory, err := m.console.Choose(ctx, active)
	if err != nil {
		return Result{}, m.fail("select", err)
	}
	sel, err := taxonomy.NewSelection(active, topic, category, subcategory)
	if err != nil {
		return Result{}, m.fail("select", err)
	}
	res.Selection = sel
	m.advance(SelectionMade)

	res.EnhancedPrompt, err = m.gateway.Send(ctx, EnhancePrompt(sel), false)
	if err != nil {
		return Result{}, m.fail("enhance prompt", err)
	}
	m.advance(EnhancedPromptObtained)

	res.Answer, err = m.gateway.Send(ctx, res.EnhancedPrompt, false)
	if err != nil {
		return Result{}, m.fail("answer", err)
	}
	m.advance(AnswerObtained)

	m.store.Append(ctx, interaction.Record{
		Topic:          sel.Topic,
		Category:       sel.Category,
		Subcategory:    sel.Subcategory,
		EnhancedPrompt: res.EnhancedPrompt,
		EnhancedAnswer: res.Answer,
	})
	m.advance(Done)
	return res, nil
}

func (m *Mediator) advance(next State) {
	m.log.Debug("session transition", zap.Stringer("from", m.state), zap.Stringer("to", next))
	m.state = next
}

func (m *Mediator) fail(step string, err error) error {
	m.log.Error("session failed",
		zap.String("step", step),
		zap.Stringer("state", m.state),
		zap.Stringer("kind", llm.KindOf(err)),
		zap.Error(err),
	)
	m.state = Failed
	return fmt.Errorf("%s: %w", step, err)
}

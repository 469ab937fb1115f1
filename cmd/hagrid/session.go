package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/artem13815/hagrid/pkg/console"
	"github.com/artem13815/hagrid/pkg/llm/openai"
	"github.com/artem13815/hagrid/pkg/session"
	"github.com/artem13815/hagrid/pkg/taxonomy"
)

func runSession(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.With(zap.String("session", uuid.NewString()))
	log.Info("app initialised",
		zap.Bool("skip", skipBootstrap),
		zap.Bool("one_shot", oneShot),
		zap.String("model", cfg.OpenAI.Model),
		zap.String("store", cfg.Store.Driver),
	)

	con := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), console.WithMarkdown(80))

	document, err := taxonomyDocument(cfg.Taxonomy)
	if err != nil {
		con.Error(err)
		return shownError{err}
	}

	store, _, closeStore, err := openStore(ctx, cfg.Store, log)
	if err != nil {
		con.Error(err)
		return shownError{err}
	}
	defer closeStore()

	gateway := openai.New(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Organization,
		cfg.OpenAI.BaseURL,
		cfg.OpenAI.Model,
		cfg.OpenAI.Temperature,
		openai.WithTimeout(cfg.OpenAI.Timeout),
		openai.WithNotifier(con),
		openai.WithLogger(log.Named("gateway")),
	)

	m := session.New(document, gateway, con, store, session.Options{
		Mode:          session.ModeFor(oneShot),
		SkipBootstrap: skipBootstrap,
		OnLoaded:      con.Loaded,
		Logger:        log.Named("session"),
	})
	res, err := m.Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info("session interrupted", zap.Stringer("state", m.State()))
		con.Interrupted()
		return shownError{err}
	}
	if err != nil {
		con.Error(err)
		return shownError{err}
	}
	con.Answer(res.Answer)
	log.Info("session done", zap.String("topic", res.Selection.Topic))
	return nil
}

// taxonomyDocument returns the lines of the configured taxonomy file, or
// the built-in document when none is set.
func taxonomyDocument(path string) ([]string, error) {
	if path == "" {
		return strings.Split(taxonomy.DefaultDocument, "\n"), nil
	}
	return taxonomy.ReadLines(path)
}

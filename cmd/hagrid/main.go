package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/artem13815/hagrid/pkg/config"
	"github.com/artem13815/hagrid/pkg/logging"
)

var (
	// Global flags
	configPath   string
	taxonomyPath string
	debug        bool
	noLogs       bool

	// Session flags
	skipBootstrap bool
	oneShot       bool

	cfg      config.Config
	logger   *zap.Logger
	closeLog func() error
)

var rootCmd = &cobra.Command{
	Use:   "hagrid",
	Short: "Interactive prompt refinement against a chat model",
	Long: `hagrid walks you through choosing a topic and an operation from a
taxonomy of text-generation operations, asks the model to turn that choice
into an enhanced prompt, answers the enhanced prompt and stores the
transcript.

By default the model first rewrites the taxonomy for your topic; use
--one-shot to pick straight from the loaded taxonomy.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if taxonomyPath != "" {
			cfg.Taxonomy = taxonomyPath
		}
		logger, closeLog, err = logging.New(logging.Options{
			Dir:      cfg.LogDir,
			Debug:    debug,
			Disabled: noLogs,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: runSession,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&taxonomyPath, "taxonomy", "", "taxonomy document (default: built-in)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug.log")
	rootCmd.PersistentFlags().BoolVar(&noLogs, "no-logs", false, "disable log files")

	rootCmd.Flags().BoolVar(&skipBootstrap, "skip", false, "skip loading the taxonomy into the model")
	rootCmd.Flags().BoolVar(&oneShot, "one-shot", false, "select from the loaded taxonomy instead of a refined one")

	rootCmd.AddCommand(historyCmd, serveCmd)
	// Finalizers run even when RunE fails; PersistentPostRun does not.
	cobra.OnFinalize(closeLogger)
}

func closeLogger() {
	if closeLog != nil {
		_ = closeLog()
		closeLog = nil
	}
}

// shownError wraps an error the command already printed to the user.
type shownError struct{ error }

func (e shownError) Unwrap() error { return e.error }

func reportError(w io.Writer, err error) {
	var shown shownError
	if errors.As(err, &shown) {
		return
	}
	fmt.Fprintln(w, err)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls where and how much the application logs.
type Options struct {
	// Dir receives debug.log, info.log and error.log.
	Dir string
	// Debug enables the debug.log sink.
	Debug bool
	// Disabled returns a no-op logger.
	Disabled bool
}

// New builds a logger that tees into per-level files. The returned close
// function syncs and closes the files.
func New(opts Options) (*zap.Logger, func() error, error) {
	if opts.Disabled {
		return zap.NewNop(), func() error { return nil }, nil
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	enc := zapcore.NewConsoleEncoder(encCfg)

	sinks := []struct {
		name  string
		level zapcore.Level
		on    bool
	}{
		{"debug.log", zapcore.DebugLevel, opts.Debug},
		{"info.log", zapcore.InfoLevel, true},
		{"error.log", zapcore.ErrorLevel, true},
	}

	var (
		cores []zapcore.Core
		files []*os.File
	)
	closeAll := func() error {
		var first error
		for _, f := range files {
			_ = f.Sync()
			if err := f.Close(); err != nil && first == nil {
				first = err
			}
		}
		return first
	}
	for _, s := range sinks {
		if !s.on {
			continue
		}
		f, err := os.OpenFile(filepath.Join(dir, s.name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			_ = closeAll()
			return nil, nil, fmt.Errorf("open %s: %w", s.name, err)
		}
		files = append(files, f)
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(f), s.level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Named("hagrid")
	return logger, func() error {
		_ = logger.Sync()
		return closeAll()
	}, nil
}

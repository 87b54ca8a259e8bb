package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/orris-inc/socialdash/internal/shared/config"
)

// Init builds the process logger from cfg, installs it as the slog default
// and returns it. In "debug" mode every record carries its source location;
// otherwise only warnings and errors do.
func Init(cfg *config.LoggerConfig, mode string) (Interface, error) {
	w, err := openOutput(cfg.OutputPath)
	if err != nil {
		return nil, err
	}

	level := parseLevel(cfg.Level)
	var base slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		base = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		base = newTintHandler(w, level)
	}

	l := slog.New(NewSourceHandler(base, sourceLevels(mode)...))
	slog.SetDefault(l)
	return NewLoggerWithSlog(l), nil
}

func openOutput(path string) (io.Writer, error) {
	switch strings.ToLower(path) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log output %s: %w", path, err)
	}
	return f, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newTintHandler renders colored console output when w is a terminal and
// plain text otherwise. Errors logged under "error" get tint's highlighting.
func newTintHandler(w io.Writer, level slog.Leveler) slog.Handler {
	colored := false
	if f, ok := w.(*os.File); ok {
		colored = term.IsTerminal(int(f.Fd()))
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    !colored,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if err, ok := a.Value.Any().(error); ok && a.Key == "error" {
				return tint.Err(err)
			}
			return a
		},
	})
}

package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Config controls how Setup builds the process logger.
type Config struct {
	// Debug lowers the level to Debug and adds source locations.
	Debug bool
	// JSON switches from the text handler to the JSON handler.
	JSON bool
	// Output defaults to stderr so reports on stdout stay clean.
	Output io.Writer
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup replaces the process logger. Info and below are dropped unless
// Debug is set.
func Setup(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	level := slog.LevelWarn
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}

	l := slog.New(h)

	mu.Lock()
	global = l
	mu.Unlock()

	l.Debug("logger.initialized", "debug", cfg.Debug, "json", cfg.JSON)
	return l
}

// L returns the process logger. It discards everything until Setup runs.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Reset puts back the discard logger.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	global = discard()
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

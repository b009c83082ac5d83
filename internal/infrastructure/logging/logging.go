package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"pix_direct_sales/internal/config"

	"github.com/rs/zerolog"
)

// New builds the service logger. Level is one of trace|debug|info|warn|error;
// format is json or console (console is forced in development).
func New(cfg config.Log, dev bool) *zerolog.Logger {
	return newWithWriter(cfg, dev, os.Stdout)
}

func newWithWriter(cfg config.Log, dev bool, w io.Writer) *zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := w
	if strings.EqualFold(cfg.Format, "console") || dev {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	l := zerolog.New(out).Level(level).With().Timestamp().Str("service", "pix-direct-sales").Logger()
	return &l
}

// Nop is used by tests and by components built without a logger.
func Nop() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

// Redact hides secrets such as access tokens outside development.
func Redact(s string) string {
	if len(s) <= 8 {
		return "***"
	}
	return s[:4] + "..." + s[len(s)-2:]
}

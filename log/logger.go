package log

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) zerolog.Logger {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		w = zerolog.ConsoleWriter{Out: f, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

// SetOutput redirects all logging to w, keeping the current level.
func SetOutput(w io.Writer) {
	logger = newLogger(w).Level(logger.GetLevel())
}

// SetLevel accepts zerolog level names. An empty name keeps the level.
func SetLevel(name string) error {
	if name == "" {
		return nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return err
	}
	logger = logger.Level(level)
	return nil
}

func Debug() *zerolog.Event {
	return logger.Debug()
}

func Info() *zerolog.Event {
	return logger.Info()
}

func Warn() *zerolog.Event {
	return logger.Warn()
}

// Fatal logs v at error level and exits with status 1.
func Fatal(v ...interface{}) {
	logger.Error().Msg(fmt.Sprint(v...))
	os.Exit(1)
}

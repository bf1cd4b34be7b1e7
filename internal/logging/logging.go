// Package logging configures the process-wide zerolog logger: console
// output for interactive use plus a size-rotated file sink.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup installs the global logger. Level falls back to info when the
// supplied string is not a recognized zerolog level.
func Setup(level, file string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	var out io.Writer = console
	if file != "" {
		out = zerolog.MultiLevelWriter(console, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}

	log.Logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

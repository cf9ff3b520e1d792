package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger returns a console logger writing to w. Verbosity 0 logs
// warnings, -v INFO, -vv DEBUG, -vvv TRACE.
func newLogger(verbosity int, w io.Writer) zerolog.Logger {
	var level zerolog.Level
	switch verbosity {
	case 0:
		level = zerolog.WarnLevel
	case 1:
		level = zerolog.InfoLevel
	case 2:
		level = zerolog.DebugLevel
	default:
		level = zerolog.TraceLevel
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    true,
	}
	logger := zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()
	if verbosity >= 2 {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

package config

import (
	"io"

	"github.com/kataras/golog"
)

// Loggers lists the prefixes of the package loggers that Apply configures.
var Loggers = []string{"[config]", "[window]", "[dom]", "[term]", "[bridge]"}

// Apply sets the level of the default logger and of every package logger.
// When w is non-nil it also becomes their output.
func (l LoggingConfig) Apply(w io.Writer) {
	loggers := []*golog.Logger{golog.Default}
	for _, prefix := range Loggers {
		loggers = append(loggers, golog.Child(prefix))
	}
	for _, lg := range loggers {
		lg.SetLevel(l.Level)
		if w != nil {
			lg.SetOutput(w)
		}
	}
}

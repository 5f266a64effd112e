// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/rs/zerolog"
)

// newLogger returns a console logger on w filtered at level.
func newLogger(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	out := zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.TimeFormat = "15:04:05.000"
	})
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// SPDX-License-Identifier: MIT

// Command tablegen rebuilds the CMR32 and CERS32 checkpoint tables with
// subcycle.Build and writes them as Go literals. It is run by go generate in
// the subcycle package:
//
//	go generate ./subcycle
//
// Settings come from TABLEGEN_* environment variables or a .env file; run
// with -h for the list. With TABLEGEN_VERIFY=true (the default) each cycle is
// walked to its end, about six billion steps in total.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/lvrng/subcycle"
	"github.com/rs/zerolog"
)

// target names the literal a component's table is written to.
type target struct {
	Var       string
	Component subcycle.Component[uint32]
}

var targets = []target{
	{Var: "cmrEntries", Component: subcycle.CMR32},
	{Var: "cersEntries", Component: subcycle.CERS32},
}

func main() {
	conf, err := loadConfiguration(os.Args[1:], os.Stdout)
	if err != nil {
		if !errors.Is(err, errHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}

	log, err := newLogger(conf.LogLevel, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(conf, targets, log); err != nil {
		log.Fatal().Err(err).Msg("table generation failed")
	}
}

// exitCode maps a configuration error to the process status: requested help
// is a success, anything else a failure.
func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, errHelp):
		return 0
	default:
		return 1
	}
}

// run builds every target and writes the rendered file.
func run(conf *Configuration, targets []target, log zerolog.Logger) error {
	tables := make([]table, 0, len(targets))
	for _, t := range targets {
		tab, err := build(t.Component, conf.Verify, log)
		if err != nil {
			return err
		}
		tables = append(tables, newTable(t.Var, tab))
	}

	src, err := render(conf.Package, tables)
	if err != nil {
		return err
	}
	if err := os.WriteFile(conf.Output, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", conf.Output, err)
	}
	log.Info().Str("output", conf.Output).Int("bytes", len(src)).Msg("tables written")
	return nil
}

// build runs subcycle.Build with progress logging.
func build(c subcycle.Component[uint32], verify bool, log zerolog.Logger) (*subcycle.Table[uint32], error) {
	start := time.Now()
	clog := log.With().Str("component", c.Name).Uint64("period", c.Period).Logger()
	clog.Info().Bool("verify", verify).Msg("building table")

	opts := []subcycle.Option{subcycle.WithProgress(func(entry int) {
		ev := clog.Debug()
		if entry%16 == 15 {
			ev = clog.Info()
		}
		ev.Int("entry", entry).Dur("elapsed", time.Since(start)).Msg("checkpoint")
	})}
	if verify {
		opts = append(opts, subcycle.WithVerify())
	}

	tab, err := subcycle.Build(c, opts...)
	if err != nil {
		clog.Error().Err(err).Msg("build failed")
		return nil, err
	}
	clog.Info().Uint64("block", tab.BlockSize()).Dur("elapsed", time.Since(start)).Msg("table built")
	return tab, nil
}

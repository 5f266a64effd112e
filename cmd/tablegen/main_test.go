// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvrng/subcycle"
	"github.com/stretchr/testify/require"
)

// TestRender_MatchesShippedFile regenerates the checked-in file from the
// shipped tables; any template drift shows up as a diff.
func TestRender_MatchesShippedFile(t *testing.T) {
	t.Parallel()

	tables := []table{
		newTable("cmrEntries", subcycle.CMRTable()),
		newTable("cersEntries", subcycle.CERSTable()),
	}
	src, err := render("subcycle", tables)
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join("..", "..", "subcycle", "tables_gen.go"))
	require.NoError(t, err)
	require.Equal(t, string(want), string(src))
}

// TestRender_BadPackage surfaces gofmt failures.
func TestRender_BadPackage(t *testing.T) {
	t.Parallel()

	_, err := render("not a package", nil)
	require.Error(t, err)
}

// TestRun_ToyComponent runs the whole pipeline on a tiny full-period LCG.
func TestRun_ToyComponent(t *testing.T) {
	t.Parallel()

	toy := subcycle.Component[uint32]{
		Name:   "lcg4096",
		Next:   func(s uint32) uint32 { return (5*s + 3) & 0xFFF },
		Start:  0,
		Period: 4096,
	}
	out := filepath.Join(t.TempDir(), "toy_gen.go")
	conf := &Configuration{Output: out, Package: "toy", Verify: true, LogLevel: "debug"}

	var logs bytes.Buffer
	log, err := newLogger(conf.LogLevel, &logs)
	require.NoError(t, err)
	require.NoError(t, run(conf, []target{{Var: "toyEntries", Component: toy}}, log))

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(src)
	require.True(t, strings.HasPrefix(text, "// Code generated by tablegen; DO NOT EDIT.\n\npackage toy\n"))
	require.Contains(t, text, "// toyEntries holds the lcg4096 checkpoints, block size 32.\n")
	require.Contains(t, text, "\t0x00000000, 0x000003A0,")
	require.Equal(t, subcycle.Entries/perRow, strings.Count(text, "\n\t0x"))

	require.Contains(t, logs.String(), "checkpoint")
	require.Contains(t, logs.String(), "tables written")
}

// TestRun_VerifyFailure stops before writing when a period is wrong.
func TestRun_VerifyFailure(t *testing.T) {
	t.Parallel()

	bad := subcycle.Component[uint32]{
		Name:   "half",
		Next:   func(s uint32) uint32 { return (5*s + 3) & 0xFFF },
		Period: 2048,
	}
	out := filepath.Join(t.TempDir(), "bad_gen.go")
	log, err := newLogger("error", io.Discard)
	require.NoError(t, err)

	err = run(&Configuration{Output: out, Package: "bad", Verify: true}, []target{{Var: "x", Component: bad}}, log)
	require.ErrorIs(t, err, subcycle.ErrPeriodMismatch)
	_, statErr := os.Stat(out)
	require.ErrorIs(t, statErr, os.ErrNotExist)
}

// TestNewLogger_Levels accepts known levels and rejects others.
func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := newLogger("warn", &buf)
	require.NoError(t, err)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")

	_, err = newLogger("loud", io.Discard)
	require.Error(t, err)
}

// The configuration tests change the environment and cannot run in parallel.

func TestLoadConfiguration_Defaults(t *testing.T) {
	conf, err := loadConfiguration(nil, io.Discard)
	require.NoError(t, err)
	require.Equal(t, &Configuration{
		Output:   "tables_gen.go",
		Package:  "subcycle",
		Verify:   true,
		LogLevel: "info",
	}, conf)
}

func TestLoadConfiguration_Environment(t *testing.T) {
	t.Setenv("TABLEGEN_OUTPUT", "/tmp/out.go")
	t.Setenv("TABLEGEN_VERIFY", "false")
	t.Setenv("TABLEGEN_LOG_LEVEL", "debug")

	conf, err := loadConfiguration([]string{"-v"}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, "/tmp/out.go", conf.Output)
	require.False(t, conf.Verify)
	require.Equal(t, "debug", conf.LogLevel)

	t.Setenv("TABLEGEN_VERIFY", "maybe")
	_, err = loadConfiguration(nil, io.Discard)
	require.Error(t, err)
}

func TestLoadConfiguration_Help(t *testing.T) {
	var buf bytes.Buffer
	_, err := loadConfiguration([]string{"--help"}, &buf)
	require.ErrorIs(t, err, errHelp)
	require.Contains(t, buf.String(), "TABLEGEN_OUTPUT")
	require.Contains(t, buf.String(), "TABLEGEN_LOG_LEVEL")
	require.Contains(t, buf.String(), "tables_gen.go")
}

// TestExitCode keeps -h successful and configuration errors failing.
func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"short help", []string{"-h"}},
		{"long help", []string{"--help"}},
		{"help after other args", []string{"-v", "--help"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := loadConfiguration(tc.args, io.Discard)
			require.ErrorIs(t, err, errHelp)
			require.Equal(t, 0, exitCode(err))
		})
	}

	require.Equal(t, 0, exitCode(nil))
	require.Equal(t, 1, exitCode(fmt.Errorf("load: %w", errors.New("bad value"))))
	require.Equal(t, 0, exitCode(fmt.Errorf("load: %w", errHelp)))
}

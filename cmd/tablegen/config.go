// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix for environment variable names, so OUTPUT becomes TABLEGEN_OUTPUT.
const envprefix = "TABLEGEN"

// Configuration via environment variables with github.com/kelseyhightower/envconfig.
type Configuration struct {

	// OUTPUT is the generated file, relative to the working directory.
	// go generate runs in the package directory, hence the bare file name.
	Output string `default:"tables_gen.go" desc:"Path of the generated Go file"`

	// PACKAGE is the package clause written at the top of the file.
	Package string `default:"subcycle" desc:"Package name of the generated file"`

	// VERIFY walks every cycle to its end and checks the declared period.
	// This doubles the work but catches a component edited without its period.
	Verify bool `default:"true" desc:"Check that every cycle closes at its declared period"`

	// LOG_LEVEL is one of trace, debug, info, warn, error.
	LogLevel string `split_words:"true" default:"info" desc:"Minimum log level"`
}

// errHelp reports that usage was printed instead of loading a configuration.
var errHelp = errors.New("tablegen: help requested")

// loadConfiguration prints usage to out and returns errHelp if args contain
// -h or --help. Otherwise it loads an optional .env file and parses the
// environment.
func loadConfiguration(args []string, out io.Writer) (*Configuration, error) {
	conf := &Configuration{}

	if slices.ContainsFunc(args, func(arg string) bool {
		return arg == "-h" || arg == "--help"
	}) {
		tabs := tabwriter.NewWriter(out, 1, 0, 4, ' ', 0)
		if err := envconfig.Usagef(envprefix, conf, tabs, usageHelpFormat); err != nil {
			return nil, err
		}
		if err := tabs.Flush(); err != nil {
			return nil, err
		}
		return nil, errHelp
	}

	// a missing .env is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load dotenv: %w", err)
	}

	if err := envconfig.Process(envprefix, conf); err != nil {
		return nil, fmt.Errorf("failed parsing config: %w", err)
	}
	return conf, nil
}

// see https://github.com/kelseyhightower/envconfig/blob/v1.4.0/usage.go#L31
const usageHelpFormat = `tablegen regenerates the subcycle checkpoint tables.
It is configured with the following environment variables:
KEY	DESCRIPTION	DEFAULT
{{range .}}{{usage_key .}}	{{usage_description .}}	{{usage_default .}}
{{end}}`

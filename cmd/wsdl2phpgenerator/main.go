// Package main implements the wsdl2phpgenerator naming preview CLI. It
// loads a manifest of raw schema names, sanitizes them into legal PHP
// identifiers and reports every rename the generator would perform.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/o-c-d/wsdl2phpgenerator/internal/cli"
	"github.com/o-c-d/wsdl2phpgenerator/internal/config"
	"github.com/o-c-d/wsdl2phpgenerator/internal/diagnostics"
	"github.com/o-c-d/wsdl2phpgenerator/internal/logging"
	"github.com/o-c-d/wsdl2phpgenerator/internal/pipeline"
)

func main() {
	code := run(os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := cli.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			_, _ = fmt.Fprintln(stdout, err.Error())
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err.Error())
		return 1
	}

	logger := logging.New(logging.Options{
		Verbose: opts.Verbose,
		Writer:  stderr,
	})

	manifest, err := config.Load(opts.ConfigPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err.Error())
		return 1
	}
	logger.Debug("manifest loaded", "path", opts.ConfigPath, "names", manifest.NameCount())

	summary := pipeline.Runner{Logger: logger}.Run(manifest)

	for _, result := range summary.Results {
		if result.Hint != "" {
			_, _ = fmt.Fprintf(stdout, "%s %s -> %s (hint: %s)\n",
				result.Category, result.Raw, result.Identifier, result.Hint)
			continue
		}
		_, _ = fmt.Fprintf(stdout, "%s %s -> %s\n", result.Category, result.Raw, result.Identifier)
	}

	formatter := diagnostics.NewFormatter()
	formatter.ShowInfo = opts.ShowAll
	if err := formatter.WriteAll(stderr, summary.Diagnostics); err != nil {
		_, _ = fmt.Fprintln(stderr, err.Error())
		return 1
	}
	formatter.WriteSummary(stderr, summary.Diagnostics)

	counts := diagnostics.CountBySeverity(summary.Diagnostics)
	if counts[diagnostics.SeverityError] > 0 {
		return 1
	}
	if opts.Strict && counts[diagnostics.SeverityWarning] > 0 {
		return 1
	}
	return 0
}

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

type Options struct {
	ConfigPath string
	Strict     bool
	ShowAll    bool
	Verbose    bool
	Args       []string
}

func Parse(args []string) (Options, error) {
	const defaultConfig = "wsdl2phpgenerator.toml"

	opts := Options{
		ConfigPath: defaultConfig,
	}

	fs := flag.NewFlagSet("wsdl2phpgenerator", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "Path to the naming manifest (.toml, .yaml or .yml)")
	fs.StringVar(&opts.ConfigPath, "c", opts.ConfigPath, "Path to the naming manifest (.toml, .yaml or .yml)")
	fs.BoolVar(&opts.Strict, "strict", false, "Treat rename warnings as errors")
	fs.BoolVar(&opts.ShowAll, "all", false, "Also report names that passed through unchanged")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&opts.Verbose, "v", false, "Enable verbose logging")

	if err := fs.Parse(args); err != nil {
		usage := Usage(fs)
		if errors.Is(err, flag.ErrHelp) {
			return Options{}, fmt.Errorf("%w\n\n%s", err, usage)
		}
		return Options{}, fmt.Errorf("%w\n\n%s", err, usage)
	}

	opts.Args = fs.Args()
	return opts, nil
}

func Usage(fs *flag.FlagSet) string {
	if fs == nil {
		return ""
	}
	var buf strings.Builder
	fmt.Fprintf(&buf, "Usage of %s:\n", fs.Name())
	out := fs.Output()
	fs.SetOutput(&buf)
	fs.PrintDefaults()
	fs.SetOutput(out)
	return strings.TrimRight(buf.String(), "\n")
}

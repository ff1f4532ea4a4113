package cli

import (
	"errors"
	"flag"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	opts, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if opts.ConfigPath != "wsdl2phpgenerator.toml" {
		t.Errorf("ConfigPath = %q, want default", opts.ConfigPath)
	}
	if opts.Strict || opts.ShowAll || opts.Verbose {
		t.Errorf("boolean flags should default to false: %+v", opts)
	}
}

func TestParseFlags(t *testing.T) {
	opts, err := Parse([]string{"-c", "names.yaml", "-strict", "-all", "-v", "extra"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if opts.ConfigPath != "names.yaml" {
		t.Errorf("ConfigPath = %q, want names.yaml", opts.ConfigPath)
	}
	if !opts.Strict {
		t.Error("Strict = false, want true")
	}
	if !opts.ShowAll {
		t.Error("ShowAll = false, want true")
	}
	if !opts.Verbose {
		t.Error("Verbose = false, want true")
	}
	if len(opts.Args) != 1 || opts.Args[0] != "extra" {
		t.Errorf("Args = %v, want [extra]", opts.Args)
	}
}

func TestParseHelp(t *testing.T) {
	_, err := Parse([]string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("Parse(-h) error = %v, want flag.ErrHelp", err)
	}
}

func TestParseUnknownFlag(t *testing.T) {
	_, err := Parse([]string{"-nope"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

package diagnostics

import (
	"errors"
	"testing"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{Severity(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeverityFromString(t *testing.T) {
	tests := []struct {
		input string
		want  Severity
	}{
		{"info", SeverityInfo},
		{"warning", SeverityWarning},
		{"warn", SeverityWarning},
		{"ERROR", SeverityError},
		{"err", SeverityError},
		{"bogus", SeverityWarning},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SeverityFromString(tt.input); got != tt.want {
				t.Errorf("SeverityFromString(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenamed(t *testing.T) {
	d := Renamed("operation", "class", "aClass")
	if d.Severity != SeverityWarning {
		t.Errorf("Severity = %v, want warning", d.Severity)
	}
	if d.Raw != "class" || d.Result != "aClass" {
		t.Errorf("Renamed() = %+v, want raw class, result aClass", d)
	}
}

func TestInvalid(t *testing.T) {
	d := Invalid("class", "", errors.New("sanitized identifier is empty"))
	if d.Severity != SeverityError {
		t.Errorf("Severity = %v, want error", d.Severity)
	}
	if d.Result != "" {
		t.Errorf("Result = %q, want empty", d.Result)
	}
}

func TestHasErrors(t *testing.T) {
	diags := []Diagnostic{
		{Severity: SeverityInfo},
		{Severity: SeverityWarning},
	}
	if HasErrors(diags) {
		t.Error("HasErrors = true without errors")
	}

	diags = append(diags, Diagnostic{Severity: SeverityError})
	if !HasErrors(diags) {
		t.Error("HasErrors = false with an error present")
	}
}

func TestCountBySeverity(t *testing.T) {
	diags := []Diagnostic{
		{Severity: SeverityInfo},
		{Severity: SeverityWarning},
		{Severity: SeverityWarning},
		{Severity: SeverityError},
	}
	counts := CountBySeverity(diags)
	if counts[SeverityInfo] != 1 || counts[SeverityWarning] != 2 || counts[SeverityError] != 1 {
		t.Errorf("CountBySeverity = %v", counts)
	}
}

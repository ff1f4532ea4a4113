package diagnostics

import (
	"fmt"
	"io"
	"strings"
)

// Formatter renders diagnostics for terminal display.
type Formatter struct {
	// ShowInfo controls whether unchanged names are listed too.
	ShowInfo bool
	// Colorize controls whether to use ANSI color codes.
	Colorize bool
}

// NewFormatter creates a formatter with default settings: warnings and
// errors only, no color.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format renders a single diagnostic as one line.
func (f *Formatter) Format(d Diagnostic) string {
	var b strings.Builder
	b.WriteString(f.colorize(d.Severity.String(), severityColor(d.Severity)))
	b.WriteString(": ")
	b.WriteString(d.Category)
	b.WriteString(" ")
	b.WriteString(fmt.Sprintf("%q", d.Raw))
	if d.Result != "" && d.Result != d.Raw {
		b.WriteString(" -> ")
		b.WriteString(d.Result)
	}
	if d.Message != "" {
		b.WriteString(": ")
		b.WriteString(d.Message)
	}
	return b.String()
}

// WriteAll writes the diagnostics the formatter is configured to show,
// one per line.
func (f *Formatter) WriteAll(w io.Writer, diags []Diagnostic) error {
	for _, d := range diags {
		if d.Severity == SeverityInfo && !f.ShowInfo {
			continue
		}
		if _, err := fmt.Fprintln(w, f.Format(d)); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary writes a one-line tally of warnings and errors. Nothing is
// written when the run was clean.
func (f *Formatter) WriteSummary(w io.Writer, diags []Diagnostic) {
	counts := CountBySeverity(diags)
	parts := make([]string, 0, 2)
	if n := counts[SeverityError]; n > 0 {
		parts = append(parts, f.colorize(fmt.Sprintf("%d error(s)", n), colorRed))
	}
	if n := counts[SeverityWarning]; n > 0 {
		parts = append(parts, f.colorize(fmt.Sprintf("%d warning(s)", n), colorYellow))
	}
	if len(parts) == 0 {
		return
	}
	fmt.Fprintln(w, strings.Join(parts, ", "))
}

const (
	colorRed    = "\x1b[31m"
	colorYellow = "\x1b[33m"
	colorReset  = "\x1b[0m"
)

func severityColor(s Severity) string {
	switch s {
	case SeverityError:
		return colorRed
	case SeverityWarning:
		return colorYellow
	default:
		return ""
	}
}

func (f *Formatter) colorize(s, color string) string {
	if !f.Colorize || color == "" {
		return s
	}
	return color + s + colorReset
}

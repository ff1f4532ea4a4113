// Package diagnostics records the naming decisions made while sanitizing a
// manifest: renames forced by reserved words or illegal characters, and
// names that failed validation outright.
package diagnostics

import "strings"

// Severity indicates the seriousness of a diagnostic.
type Severity int

const (
	// SeverityInfo reports a name that passed through unchanged.
	SeverityInfo Severity = iota
	// SeverityWarning reports a name the sanitizer had to rewrite.
	SeverityWarning
	// SeverityError reports a name that could not be sanitized.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// SeverityFromString parses a severity level from a string.
func SeverityFromString(s string) Severity {
	switch strings.ToLower(s) {
	case "info":
		return SeverityInfo
	case "warning", "warn":
		return SeverityWarning
	case "error", "err":
		return SeverityError
	default:
		return SeverityWarning
	}
}

// Diagnostic captures one naming decision.
type Diagnostic struct {
	Severity Severity
	// Category is the identifier category: class, operation, attribute,
	// constant or type.
	Category string
	// Raw is the name as it appeared in the schema.
	Raw string
	// Result is the sanitized identifier; empty when validation failed.
	Result string
	// Message explains the decision.
	Message string
}

// Renamed records that raw had to be rewritten to result.
func Renamed(category, raw, result string) Diagnostic {
	return Diagnostic{
		Severity: SeverityWarning,
		Category: category,
		Raw:      raw,
		Result:   result,
		Message:  "name rewritten to a legal identifier",
	}
}

// Invalid records that raw failed validation.
func Invalid(category, raw string, err error) Diagnostic {
	return Diagnostic{
		Severity: SeverityError,
		Category: category,
		Raw:      raw,
		Message:  err.Error(),
	}
}

// HasErrors reports whether any diagnostic carries error severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// CountBySeverity tallies diagnostics per severity level.
func CountBySeverity(diags []Diagnostic) map[Severity]int {
	counts := make(map[Severity]int)
	for _, d := range diags {
		counts[d.Severity]++
	}
	return counts
}

// Package pipeline drives a naming run: it feeds every raw name in a
// manifest through the category-specific validators and collects the
// sanitized identifiers plus diagnostics for each decision.
package pipeline

import (
	"io"
	"log/slog"

	"github.com/o-c-d/wsdl2phpgenerator/internal/config"
	"github.com/o-c-d/wsdl2phpgenerator/internal/diagnostics"
	"github.com/o-c-d/wsdl2phpgenerator/internal/naming"
	"github.com/o-c-d/wsdl2phpgenerator/internal/registry"
	"github.com/o-c-d/wsdl2phpgenerator/internal/types"
)

// Identifier categories as they appear in reports and diagnostics.
const (
	CategoryClass     = "class"
	CategoryOperation = "operation"
	CategoryAttribute = "attribute"
	CategoryConstant  = "constant"
	CategoryType      = "type"
)

// Result is one sanitized name.
type Result struct {
	Category   string
	Raw        string
	Identifier string
	// Hint is the static type hint for type results, when one exists.
	Hint string
}

// Summary aggregates the outcome of a run.
type Summary struct {
	Results     []Result
	Diagnostics []diagnostics.Diagnostic
}

// Runner executes naming runs. The zero value is usable and silent.
type Runner struct {
	Logger *slog.Logger
}

// Run sanitizes every name listed in the manifest. Names the validators
// reject become error diagnostics; names that had to be rewritten become
// warnings. Class names are declared in a per-run registry scoped by the
// manifest namespace, so duplicate classes come out numbered.
func (r Runner) Run(manifest *config.Manifest) Summary {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	reg := registry.New()
	mapper := types.NewMapper(manifest.CustomTypes)

	var summary Summary
	record := func(category, raw, ident string, err error) {
		if err != nil {
			logger.Debug("name rejected", "category", category, "raw", raw, "error", err)
			summary.Diagnostics = append(summary.Diagnostics, diagnostics.Invalid(category, raw, err))
			return
		}
		if ident != raw {
			summary.Diagnostics = append(summary.Diagnostics, diagnostics.Renamed(category, raw, ident))
		} else {
			summary.Diagnostics = append(summary.Diagnostics, diagnostics.Diagnostic{
				Severity: diagnostics.SeverityInfo,
				Category: category,
				Raw:      raw,
				Result:   ident,
			})
		}
		result := Result{Category: category, Raw: raw, Identifier: ident}
		if category == CategoryType {
			result.Hint, _ = mapper.Hint(raw)
		}
		summary.Results = append(summary.Results, result)
	}

	for _, raw := range manifest.Classes {
		ident, err := reg.ClassName(manifest.Namespace, raw)
		record(CategoryClass, raw, ident, err)
	}
	for _, raw := range manifest.Operations {
		ident, err := naming.ValidateOperation(raw)
		record(CategoryOperation, raw, ident, err)
	}
	for _, raw := range manifest.Attributes {
		ident, err := naming.ValidateAttribute(raw)
		record(CategoryAttribute, raw, ident, err)
	}
	for _, raw := range manifest.Constants {
		ident, err := naming.ValidateConstant(raw)
		record(CategoryConstant, raw, ident, err)
	}
	for _, raw := range manifest.Types {
		ident, err := mapper.Validate(raw)
		record(CategoryType, raw, ident, err)
	}

	logger.Debug("naming run finished",
		"names", manifest.NameCount(),
		"results", len(summary.Results),
		"diagnostics", len(summary.Diagnostics))
	return summary
}

// Package types maps schema type names onto PHP builtin types and answers
// which types support a static type hint in generated signatures.
package types

import (
	"strings"

	"github.com/o-c-d/wsdl2phpgenerator/internal/config"
	"github.com/o-c-d/wsdl2phpgenerator/internal/naming"
)

// ArraySuffix marks an array-of-element schema type, e.g. "Widget[]".
const ArraySuffix = "[]"

// DateTimeClass is the PHP builtin backing every date/time schema type.
const DateTimeClass = `\DateTime`

// ArrayHint is the type hint emitted for array parameters.
const ArrayHint = "array"

// builtins maps lowercased XSD primitive names onto PHP builtins. The XSD
// integer family collapses to int and the floating family to float; PHP has
// no narrower numeric types to preserve the distinctions.
var builtins = map[string]string{
	"int":                "int",
	"integer":            "int",
	"long":               "int",
	"byte":               "int",
	"short":              "int",
	"negativeinteger":    "int",
	"nonnegativeinteger": "int",
	"nonpositiveinteger": "int",
	"positiveinteger":    "int",
	"unsignedbyte":       "int",
	"unsignedint":        "int",
	"unsignedlong":       "int",
	"unsignedshort":      "int",
	"float":              "float",
	"double":             "float",
	"decimal":            "float",
	"string":             "string",
	"token":              "string",
	"normalizedstring":   "string",
	"hexbinary":          "string",
	"datetime":           DateTimeClass,
}

// Mapper resolves schema type names against the builtin table plus any
// configured custom mappings. The zero value uses the builtin table alone.
type Mapper struct {
	custom map[string]string
}

// NewMapper builds a Mapper from configured custom type mappings. Custom
// entries are matched case-insensitively and win over the builtin table.
func NewMapper(mappings []config.TypeMapping) *Mapper {
	custom := make(map[string]string, len(mappings))
	for _, m := range mappings {
		custom[strings.ToLower(m.SchemaType)] = m.PHPType
	}
	return &Mapper{custom: custom}
}

// Validate maps raw onto the PHP type generated code should reference:
// a configured custom type, a builtin, an array of a sanitized element
// type, or the sanitized name itself. Non-builtin names that collide with
// a reserved word gain the Custom suffix.
func (m *Mapper) Validate(raw string) (string, error) {
	lower := strings.ToLower(raw)
	if php, ok := m.custom[lower]; ok {
		return php, nil
	}
	if php, ok := builtins[lower]; ok {
		return php, nil
	}
	if strings.HasSuffix(raw, ArraySuffix) {
		element, err := naming.Identifier(strings.TrimSuffix(raw, ArraySuffix))
		if err != nil {
			return "", err
		}
		return element + ArraySuffix, nil
	}
	name, err := naming.Identifier(raw)
	if err != nil {
		return "", err
	}
	if naming.IsReserved(name) {
		name += naming.NameSuffix
	}
	return name, nil
}

// Hint returns the static type hint PHP accepts for raw. Only array
// parameters and \DateTime support hints in generated signatures; every
// other type reports ok=false and is left unhinted.
func (m *Mapper) Hint(raw string) (hint string, ok bool) {
	if strings.EqualFold(raw, "datetime") {
		return DateTimeClass, true
	}
	if strings.HasSuffix(raw, ArraySuffix) {
		return ArrayHint, true
	}
	return "", false
}

// defaultMapper backs the package-level helpers: builtin table only.
var defaultMapper = &Mapper{}

// Validate maps raw using the builtin table without custom mappings.
func Validate(raw string) (string, error) { return defaultMapper.Validate(raw) }

// Hint reports the type hint for raw without custom mappings.
func Hint(raw string) (string, bool) { return defaultMapper.Hint(raw) }

package naming

import "strings"

// reservedWords is the fixed PHP reserved-word list: keywords plus the
// compile-time magic constants. PHP matches these case-insensitively, so
// membership is tested on the lowercased candidate.
var reservedWords = map[string]struct{}{
	"abstract":        {},
	"and":             {},
	"array":           {},
	"as":              {},
	"break":           {},
	"callable":        {},
	"case":            {},
	"catch":           {},
	"cfunction":       {},
	"class":           {},
	"clone":           {},
	"const":           {},
	"continue":        {},
	"declare":         {},
	"default":         {},
	"die":             {},
	"do":              {},
	"echo":            {},
	"else":            {},
	"elseif":          {},
	"empty":           {},
	"enddeclare":      {},
	"endfor":          {},
	"endforeach":      {},
	"endif":           {},
	"endswitch":       {},
	"endwhile":        {},
	"eval":            {},
	"exception":       {},
	"exit":            {},
	"extends":         {},
	"final":           {},
	"finally":         {},
	"for":             {},
	"foreach":         {},
	"function":        {},
	"global":          {},
	"goto":            {},
	"if":              {},
	"implements":      {},
	"include":         {},
	"include_once":    {},
	"instanceof":      {},
	"insteadof":       {},
	"interface":       {},
	"isset":           {},
	"list":            {},
	"namespace":       {},
	"new":             {},
	"old_function":    {},
	"or":              {},
	"php_user_filter": {},
	"print":           {},
	"private":         {},
	"protected":       {},
	"public":          {},
	"require":         {},
	"require_once":    {},
	"return":          {},
	"static":          {},
	"switch":          {},
	"this":            {},
	"throw":           {},
	"trait":           {},
	"try":             {},
	"unset":           {},
	"use":             {},
	"var":             {},
	"while":           {},
	"xor":             {},
	"yield":           {},
	"__class__":       {},
	"__dir__":         {},
	"__file__":        {},
	"__function__":    {},
	"__line__":        {},
	"__method__":      {},
	"__namespace__":   {},
	"__trait__":       {},
}

// IsReserved reports whether name collides with a PHP reserved word.
// The check is case-insensitive: PHP accepts keywords in any casing.
func IsReserved(name string) bool {
	_, ok := reservedWords[strings.ToLower(name)]
	return ok
}

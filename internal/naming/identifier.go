// Package naming rewrites raw schema names into identifiers that are legal
// and non-conflicting in generated PHP source. All tables are fixed at
// compile time; every function is a pure string computation, safe for
// concurrent use.
package naming

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// namePrefix opens identifiers whose raw form cannot start a PHP identifier,
// and renames reserved operation and constant names.
const namePrefix = "a"

// NameSuffix disambiguates class and type names that collide with a
// reserved word.
const NameSuffix = "Custom"

// ErrEmptyIdentifier reports that sanitization consumed the entire input.
// Generated code requires non-empty identifiers, so this surfaces as an
// error instead of an empty return value.
var ErrEmptyIdentifier = errors.New("sanitized identifier is empty")

// Identifier rewrites raw into a syntactically legal bare PHP identifier:
// transliterate, fix the leading character, then strip everything the
// identifier grammar rejects. PHP identifiers run over bytes
// [A-Za-z_\x7f-\xff][A-Za-z0-9_\x7f-\xff]*, so the strip passes operate
// byte-wise and multibyte UTF-8 sequences survive intact.
func Identifier(raw string) (string, error) {
	name := Transliterate(raw)
	if !startsIdentifier(name) {
		name = namePrefix + capitalize(name)
	}
	name = stripLeading(name)
	name = stripIllegal(name)
	if name == "" {
		return "", fmt.Errorf("sanitize %q: %w", raw, ErrEmptyIdentifier)
	}
	return name, nil
}

// startsIdentifier reports whether s opens with an ASCII letter or
// underscore. The empty string does not.
func startsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// capitalize uppercases the first rune of s.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// leadByte reports whether c may open a PHP identifier.
func leadByte(c byte) bool {
	return c == '_' || c >= 0x7F || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// identByte reports whether c may appear after the first byte.
func identByte(c byte) bool {
	return leadByte(c) || ('0' <= c && c <= '9')
}

// stripLeading drops the leading run of bytes that cannot open an
// identifier; residual punctuation and digits go here even after the
// prefix step.
func stripLeading(s string) string {
	i := 0
	for i < len(s) && !leadByte(s[i]) {
		i++
	}
	return s[i:]
}

// stripIllegal drops every remaining byte the identifier grammar rejects.
func stripIllegal(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if identByte(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

package naming

import "strconv"

// Predicate reports whether a candidate identifier is still free in the
// caller's scope. The caller decides what "already exists" means: a registry
// of names emitted this run, members already declared on a class, and so on.
type Predicate func(candidate string) bool

// Unique returns the first candidate derived from base that free reports
// available. The base name is tried first; retries then append either a
// counter (base2, base3, ... — never base1) or, when suffix is non-empty,
// the suffix followed by a counter (baseSuffix, baseSuffix2, ...).
//
// A nil predicate treats every candidate as free. The loop is unbounded:
// a predicate that never reports free does not terminate, which is the
// caller's contract to uphold — collision universes are bounded by schema
// size in practice.
func Unique(base string, free Predicate, suffix string) string {
	if free == nil || free(base) {
		return base
	}
	for i := 1; ; i++ {
		var candidate string
		switch {
		case suffix == "":
			candidate = base + strconv.Itoa(i+1)
		case i == 1:
			candidate = base + suffix
		default:
			candidate = base + suffix + strconv.Itoa(i)
		}
		if free == nil || free(candidate) {
			return candidate
		}
	}
}

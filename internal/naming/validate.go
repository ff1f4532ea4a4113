package naming

// ValidateClass sanitizes a class or interface name. Reserved words are
// resolved through Unique with the Custom suffix; free scopes the existence
// check to the caller's namespace ("does anything already named this way
// exist"). A reserved word is never considered free, so the resolver cannot
// hand the keyword back even under a nil predicate.
func ValidateClass(raw string, free Predicate) (string, error) {
	name, err := Identifier(raw)
	if err != nil {
		return "", err
	}
	if !IsReserved(name) {
		return name, nil
	}
	return Unique(name, notReserved(free), NameSuffix), nil
}

// ValidateOperation sanitizes a method name. A reserved word gets a single
// deterministic rename: prefix plus capitalized name, no retry loop.
func ValidateOperation(raw string) (string, error) {
	return renameReserved(raw)
}

// ValidateConstant sanitizes a constant name with the same rename rule as
// operations.
func ValidateConstant(raw string) (string, error) {
	return renameReserved(raw)
}

// ValidateAttribute sanitizes a member name. Attributes skip the keyword
// guard: generated models render them as string keys, not bare identifiers,
// so a field legally named "class" stays "class".
func ValidateAttribute(raw string) (string, error) {
	return Identifier(raw)
}

func renameReserved(raw string) (string, error) {
	name, err := Identifier(raw)
	if err != nil {
		return "", err
	}
	if IsReserved(name) {
		name = namePrefix + capitalize(name)
	}
	return name, nil
}

func notReserved(free Predicate) Predicate {
	return func(candidate string) bool {
		if IsReserved(candidate) {
			return false
		}
		return free == nil || free(candidate)
	}
}

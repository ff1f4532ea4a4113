package naming

import "testing"

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already valid", "Widget", "Widget"},
		{"underscore prefix kept", "_internal", "_internal"},
		{"leading digit prefixed", "1stElement", "a1stElement"},
		{"punctuation stripped", "user-name", "username"},
		{"spaces stripped", "get user", "getuser"},
		{"dots stripped", "ns.Widget", "nsWidget"},
		{"accents transliterated", "École", "Ecole"},
		{"accented member", "prénom", "prenom"},
		{"leading symbol", "$amount", "aamount"},
		{"all punctuation degenerates to prefix", "!!!", "a"},
		{"empty degenerates to prefix", "", "a"},
		{"digits only", "123", "a123"},
		{"utf8 outside table survives", "Пример", "aПример"},
		{"trailing digits kept", "field2", "field2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Identifier(tt.input)
			if err != nil {
				t.Fatalf("Identifier(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Identifier(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIdentifierIdempotent(t *testing.T) {
	inputs := []string{
		"Widget", "1stElement", "user-name", "École", "$amount", "!!!", "",
		"a", "_x", "Пример", "straße", "foo.bar.baz", "12 monkeys",
	}
	for _, input := range inputs {
		first, err := Identifier(input)
		if err != nil {
			t.Fatalf("Identifier(%q) error = %v", input, err)
		}
		second, err := Identifier(first)
		if err != nil {
			t.Fatalf("Identifier(%q) error = %v", first, err)
		}
		if second != first {
			t.Errorf("Identifier not idempotent: %q -> %q -> %q", input, first, second)
		}
	}
}

func TestIdentifierCharset(t *testing.T) {
	// Adversarial inputs must still come out matching the PHP identifier
	// grammar at the byte level and must never come out empty.
	inputs := []string{
		"", " ", "\t\n", "!!!", "123", "@#$%^", "a b c", "---", "...",
		"<xml>", "Ωmega", "日本語", "mixed 123 !@#", "\x00\x01", "9lives",
	}
	for _, input := range inputs {
		got, err := Identifier(input)
		if err != nil {
			t.Fatalf("Identifier(%q) error = %v", input, err)
		}
		if got == "" {
			t.Fatalf("Identifier(%q) produced empty identifier", input)
		}
		if !leadByte(got[0]) {
			t.Errorf("Identifier(%q) = %q starts with illegal byte %#x", input, got, got[0])
		}
		for i := 1; i < len(got); i++ {
			if !identByte(got[i]) {
				t.Errorf("Identifier(%q) = %q contains illegal byte %#x", input, got, got[i])
			}
		}
	}
}

func TestIdentifierPreservesHighBytes(t *testing.T) {
	// PHP identifiers accept bytes \x7f-\xff, so multibyte UTF-8 content
	// must survive the strip passes untouched.
	got, err := Identifier("café")
	if err != nil {
		t.Fatalf("Identifier error = %v", err)
	}
	// é is in the transliteration table, so it becomes plain e first.
	if got != "cafe" {
		t.Errorf("Identifier(%q) = %q, want %q", "café", got, "cafe")
	}

	// The prefix step uppercases the first rune; the rest of the UTF-8
	// bytes must pass through the strip passes untouched.
	got, err = Identifier("данные")
	if err != nil {
		t.Fatalf("Identifier error = %v", err)
	}
	if got != "aДанные" {
		t.Errorf("Identifier(%q) = %q, want %q", "данные", got, "aДанные")
	}
}

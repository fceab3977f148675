package grapheme

import "testing"

func TestTokenizeIdempotentJoin(t *testing.T) {
	cases := []string{
		"hello",
		"I ♥ cake",
		"You smell like 💩.",
		"",
		"áb", // combining acute accent, still one grapheme with 'a'
	}
	for _, s := range cases {
		symbols := Tokenize(s, Options{})
		if got := Join(symbols); got != s {
			t.Errorf("Join(Tokenize(%q)) = %q, want %q", s, got, s)
		}
	}
}

func TestTokenizeMultiCodepointClusterNeverClass(t *testing.T) {
	symbols := Tokenize("á", Options{Digits: true, Words: true})
	if len(symbols) != 1 {
		t.Fatalf("expected 1 grapheme cluster, got %d", len(symbols))
	}
	if symbols[0].IsClass() {
		t.Error("multi-codepoint cluster must never become a shorthand class")
	}
}

func TestTokenizeShorthandPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
		want  []Symbol
	}{
		{
			name:  "digit wins over word",
			input: "1",
			opts:  Options{Digits: true, Words: true},
			want:  []Symbol{NewClass(ClassDigit)},
		},
		{
			name:  "word wins over non-digit and non-space",
			input: "a",
			opts:  Options{Words: true, NonDigits: true, NonWhitespace: true},
			want:  []Symbol{NewClass(ClassWord)},
		},
		{
			name:  "space wins over non-digit and non-word",
			input: " ",
			opts:  Options{Whitespace: true, NonDigits: true, NonWords: true},
			want:  []Symbol{NewClass(ClassSpace)},
		},
		{
			name:  "non-word dominates non-whitespace for punctuation",
			input: "!",
			opts:  Options{NonWords: true, NonWhitespace: true},
			want:  []Symbol{NewClass(ClassNonWord)},
		},
		{
			name:  "non-digit dominates non-word for punctuation",
			input: "!",
			opts:  Options{NonDigits: true, NonWords: true},
			want:  []Symbol{NewClass(ClassNonDigit)},
		},
		{
			name:  "three-way cycle pins to non-digit",
			input: "!",
			opts:  Options{NonDigits: true, NonWords: true, NonWhitespace: true},
			want:  []Symbol{NewClass(ClassNonDigit)},
		},
		{
			name:  "no conversions leaves grapheme untouched",
			input: "1",
			opts:  Options{},
			want:  []Symbol{NewGrapheme("1")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input, tt.opts)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d symbols, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if !Equal(got[i], tt.want[i]) {
					t.Errorf("symbol %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEmptyStringContributesAcceptingEmptyWord(t *testing.T) {
	symbols := Tokenize("", Options{})
	if len(symbols) != 0 {
		t.Errorf("expected zero symbols for empty string, got %d", len(symbols))
	}
}

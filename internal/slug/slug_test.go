package slug

import "testing"

func TestMake(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips diacritics and punctuation",
			input:    "Hambúrguer Especial!",
			expected: "hamburguer-especial",
		},
		{
			name:     "lowercases",
			input:    "Pizza Margherita",
			expected: "pizza-margherita",
		},
		{
			name:     "collapses repeated separators",
			input:    "X -- Burger  Duplo",
			expected: "x-burger-duplo",
		},
		{
			name:     "keeps digits",
			input:    "Combo 2 por 1",
			expected: "combo-2-por-1",
		},
		{
			name:     "trims leading and trailing separators",
			input:    "  Açaí  ",
			expected: "acai",
		},
		{
			name:     "cedilla and tilde",
			input:    "Porção de Pão",
			expected: "porcao-de-pao",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "all symbols",
			input:    "!!! ???",
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			result := Make(tt.input)
			if result != tt.expected {
				t.Errorf("Make(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{"Hambúrguer Especial!", "Combo 2 por 1", "Água com Gás", ""}
	for _, in := range inputs {
		once := Make(in)
		twice := Make(once)
		if once != twice {
			t.Errorf("Make is not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

package naming

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Lowercases", "Tomato", "tomato"},
		{"StripsPackSize", "Amul Milk 500 ml", "amul milk"},
		{"StripsPackSizeNoSpace", "Basmati Rice 5kg", "basmati rice"},
		{"StripsPunctuation", "Mother's Recipe (Hot & Sweet)", "mother s recipe hot sweet"},
		{"CollapsesWhitespace", "  green   chilli  ", "green chilli"},
		{"Empty", "", ""},
		{"OnlyPackSize", "500 g", ""},
		{"KeepsLooseNumbers", "2 minute noodles", "2 minute noodles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, input := range []string{"Amul Butter 100 g", "fresh CORIANDER!", "paneer"} {
		once := Normalize(input)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestTokens(t *testing.T) {
	tokens := Tokens("Whole Wheat Atta 5 kg")
	for _, want := range []string{"whole", "wheat", "atta"} {
		if _, ok := tokens[want]; !ok {
			t.Errorf("Tokens missing %q, got %v", want, tokens)
		}
	}
	if _, ok := tokens["5"]; ok {
		t.Errorf("Tokens should not contain the stripped pack size, got %v", tokens)
	}
}

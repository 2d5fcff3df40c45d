package domain

import (
	"errors"
	"testing"
)

func TestValidateWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		word    string
		wantErr bool
	}{
		{name: "simple word", word: "cat", wantErr: false},
		{name: "mixed case", word: "Apple", wantErr: false},
		{name: "single letter", word: "a", wantErr: false},
		{name: "accented", word: "café", wantErr: false},
		{name: "cyrillic", word: "слово", wantErr: false},
		{name: "trailing digit", word: "Zz1", wantErr: true},
		{name: "hyphenated", word: "well-known", wantErr: true},
		{name: "internal space", word: "ice cream", wantErr: true},
		{name: "apostrophe", word: "don't", wantErr: true},
		{name: "punctuation", word: "cat!", wantErr: true},
		{name: "empty", word: "", wantErr: true},
		{name: "only digits", word: "123", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateWord(tt.word)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateWord(%q) error = %v, wantErr %v", tt.word, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrValidation) {
				t.Errorf("ValidateWord(%q) error should wrap ErrValidation, got %v", tt.word, err)
			}
		})
	}
}

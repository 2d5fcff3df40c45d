package domain

import "unicode"

// ValidateWord checks that a lookup word is usable: non-empty and made up
// entirely of letters. Letters are classified by unicode.IsLetter rather
// than an ASCII range, so accented and non-Latin alphabetic words pass.
func ValidateWord(word string) error {
	if word == "" {
		return NewValidationError("word", "must not be empty")
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return NewValidationError("word", "must contain only alphabetic characters")
		}
	}
	return nil
}

package domain

import "fmt"

// Validate checks that a decoded definition carries every required
// collection of the shard format: etymologies, a partsOfSpeech list in
// each etymology, and a senses list in each part of speech. Only absence
// is an error; present-but-empty collections and empty strings occur in
// legacy shard files and simply render as nothing. encoding/json leaves
// an absent slice nil and decodes [] to an empty non-nil slice, which is
// what distinguishes the two. Fields are addressed by their JSON path
// within the definition.
func (d Definition) Validate() error {
	var errs []FieldError

	if d.Etymologies == nil {
		errs = append(errs, FieldError{Field: "etymologies", Message: "missing"})
	}

	for i, et := range d.Etymologies {
		if et.PartsOfSpeech == nil {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("etymologies[%d].partsOfSpeech", i),
				Message: "missing",
			})
			continue
		}

		for j, pos := range et.PartsOfSpeech {
			if pos.Senses == nil {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("etymologies[%d].partsOfSpeech[%d].senses", i, j),
					Message: "missing",
				})
			}
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Package shard decodes dictionary shard files into the domain schema.
package shard

import (
	"encoding/json"
	"fmt"

	"github.com/taranathan/dibble/internal/domain"
)

// Parse decodes one shard file into its word-to-definition mapping and
// validates every definition against the required nested shape. The
// top-level value must be an object; a JSON null is a shape error even
// though the decoder accepts it. Senses with no examples in the source
// get an empty slice, so callers never see nil. The shard is rejected as
// a whole on the first invalid definition.
func Parse(data []byte) (domain.Shard, error) {
	var s domain.Shard
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode shard: %w", err)
	}
	if s == nil {
		return nil, fmt.Errorf("decode shard: top-level value is null, expected an object")
	}

	for word, def := range s {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("shard entry %q: %w", word, err)
		}
		s[word] = withDefaults(def)
	}

	return s, nil
}

// withDefaults fills in the fields the on-disk format allows to be absent.
func withDefaults(def domain.Definition) domain.Definition {
	for i := range def.Etymologies {
		for j := range def.Etymologies[i].PartsOfSpeech {
			senses := def.Etymologies[i].PartsOfSpeech[j].Senses
			for k := range senses {
				if senses[k].Examples == nil {
					senses[k].Examples = []string{}
				}
			}
		}
	}
	return def
}

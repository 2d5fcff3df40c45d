package domain

// Shard is the decoded form of one dictionary shard file: a mapping from
// word (case-sensitive, exactly as stored) to its definition. A shard is
// loaded fresh per invocation, read once, and discarded.
type Shard map[string]Definition

// Definition is a single dictionary entry: the word plus its etymologies.
// Slice order throughout the tree is display order and is never sorted.
type Definition struct {
	Word        string      `json:"word"`
	Etymologies []Etymology `json:"etymologies"`
}

// Etymology is one historical origin or meaning cluster of a word. A word
// with several origins carries several etymologies.
type Etymology struct {
	PartsOfSpeech []PartOfSpeech `json:"partsOfSpeech"`
}

// PartOfSpeech groups the senses a word has under one grammatical role,
// e.g. "Noun".
type PartOfSpeech struct {
	PartOfSpeech string  `json:"partOfSpeech"`
	Senses       []Sense `json:"senses"`
}

// Sense is one specific meaning. Date is the usage period and may be
// empty; it is omitted on marshal when empty. Examples is normalized to an
// empty slice when the source shard omits the field.
type Sense struct {
	Sense    string   `json:"sense"`
	Date     string   `json:"date,omitempty"`
	Examples []string `json:"examples"`
}

package types

// ParsedToken is one token as emitted by the dependency parser.
// Id and Head are document level positions; a sentence root is its own head.
type ParsedToken struct {
	Id         int       `json:"id"`
	Head       int       `json:"head"`
	Text       string    `json:"text"`
	Whitespace string    `json:"ws"`
	Lemma      string    `json:"lemma"`
	Pos        string    `json:"pos"`
	Tag        string    `json:"tag"`
	Dep        string    `json:"dep"`
	EntIOB     string    `json:"ent_iob"`
	EntType    string    `json:"ent_type"`
	Sentence   int       `json:"sent"`
	IsPunct    *bool     `json:"is_punct,omitempty"`
	LikeNum    *bool     `json:"like_num,omitempty"`
	Vector     []float32 `json:"vector,omitempty"`
}

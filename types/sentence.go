package types

// ParsedEntity is a named entity given in token offsets, End is exclusive.
type ParsedEntity struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
}

type ParsedDoc struct {
	Text   string         `json:"text"`
	Lang   string         `json:"lang"`
	Tokens []ParsedToken  `json:"tokens"`
	Ents   []ParsedEntity `json:"ents"`
}

// RawText returns Text or, when it is empty, the text rebuilt from the tokens.
func (doc ParsedDoc) RawText() string {
	if doc.Text != "" {
		return doc.Text
	}
	n := 0
	for _, tok := range doc.Tokens {
		n += len(tok.Text) + len(tok.Whitespace)
	}
	buf := make([]byte, 0, n)
	for _, tok := range doc.Tokens {
		buf = append(buf, tok.Text...)
		buf = append(buf, tok.Whitespace...)
	}
	return string(buf)
}

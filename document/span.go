package document

import (
	"fmt"
	"strings"

	"text2phenotype.com/relex/types"
)

// Span is a half-open token range [Start, End) of one Doc. Two spans are
// equal iff they denote the same range of the same document.
type Span struct {
	doc   *Doc
	Start int
	End   int
}

func (s Span) Doc() *Doc {
	return s.doc
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) IsEmpty() bool {
	return s.End <= s.Start
}

// At returns the i-th token of the span.
func (s Span) At(i int) Token {
	if i < 0 || i >= s.Len() {
		panic(fmt.Sprintf("document: index %d out of span [%d, %d)", i, s.Start, s.End))
	}
	return Token{doc: s.doc, i: s.Start + i}
}

func (s Span) Tokens() []Token {
	tokens := make([]Token, 0, s.Len())
	for i := s.Start; i < s.End; i++ {
		tokens = append(tokens, Token{doc: s.doc, i: i})
	}
	return tokens
}

func (s Span) Contains(t Token) bool {
	return t.doc == s.doc && t.i >= s.Start && t.i < s.End
}

// Root is the span token closest to the sentence root; the first one wins ties.
func (s Span) Root() Token {
	if s.IsEmpty() {
		return Token{doc: s.doc, i: s.Start}
	}
	root := s.Start
	for i := s.Start + 1; i < s.End; i++ {
		if s.doc.tokens[i].depth < s.doc.tokens[root].depth {
			root = i
		}
	}
	return Token{doc: s.doc, i: root}
}

// Text joins token texts with their whitespace, without the trailing one.
func (s Span) Text() string {
	var sb strings.Builder
	for i := s.Start; i < s.End; i++ {
		sb.WriteString(s.doc.tokens[i].Text)
		if i < s.End-1 {
			sb.WriteString(s.doc.tokens[i].Whitespace)
		}
	}
	return sb.String()
}

func (s Span) Lower() string {
	return strings.ToLower(s.Text())
}

// Lemma is the space separated token lemmas.
func (s Span) Lemma() string {
	lemmas := make([]string, 0, s.Len())
	for i := s.Start; i < s.End; i++ {
		lemmas = append(lemmas, s.doc.tokens[i].Lemma)
	}
	return strings.TrimSpace(strings.Join(lemmas, " "))
}

// Vector is the mean of the token vectors.
func (s Span) Vector() []float32 {
	var mean []float32
	n := 0
	for i := s.Start; i < s.End; i++ {
		vec := s.doc.tokens[i].Vector
		if len(vec) == 0 {
			continue
		}
		if mean == nil {
			mean = make([]float32, len(vec))
		}
		if len(vec) != len(mean) {
			continue
		}
		for k, v := range vec {
			mean[k] += v
		}
		n++
	}
	for k := range mean {
		mean[k] /= float32(n)
	}
	return mean
}

func (s Span) VectorNorm() float64 {
	if s.Len() == 1 {
		return s.doc.tokens[s.Start].vectorNorm
	}
	return vectorNorm(s.Vector())
}

// Sent is the sentence containing the span start.
func (s Span) Sent() Span {
	return Token{doc: s.doc, i: s.Start}.Sent()
}

// SentStart is Start relative to the sentence.
func (s Span) SentStart() int {
	return s.Start - s.Sent().Start
}

func (s Span) SentEnd() int {
	return s.End - s.Sent().Start
}

// Ents returns the entities lying inside the span.
func (s Span) Ents() []Span {
	var ents []Span
	for _, ent := range s.doc.ents {
		if ent.start >= s.Start && ent.end <= s.End {
			ents = append(ents, Span{doc: s.doc, Start: ent.start, End: ent.end})
		}
	}
	return ents
}

// Label is the label of the entity with exactly this range, or "".
func (s Span) Label() string {
	label, _ := s.doc.entityLabel(s.Start, s.End)
	return label
}

func (s Span) ID() string {
	return fmt.Sprintf("%s__%d__%d", s.doc.ID(), s.Start, s.End)
}

func (s Span) Polarity() types.PolarityScores {
	return s.doc.scores([2]int{s.Start, s.End}, s.Text())
}

func (s Span) Valence() float64 {
	return s.Polarity().Valence()
}

func (s Span) Sentiment() float64 {
	return s.Polarity().Sentiment()
}

func (s Span) String() string {
	return s.Text()
}

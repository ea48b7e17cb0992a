package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"sync"

	"text2phenotype.com/relex/types"
	"text2phenotype.com/relex/utils"
)

var ErrInvalidDocument = errors.New("document: invalid parse")

// Scorer maps text to polarity scores.
type Scorer interface {
	PolarityScores(text string) types.PolarityScores
}

type token struct {
	types.ParsedToken
	sent       int
	depth      int
	isPunct    bool
	likeNum    bool
	vectorNorm float64
}

type sentence struct {
	start int
	end   int
}

type entity struct {
	start int
	end   int
	label string
}

// Doc owns the parsed tokens of one document. Tokens are addressed by
// position; heads and children are index links into the same arena.
type Doc struct {
	text     string
	lang     string
	tokens   []token
	children [][]int
	sents    []sentence
	ents     []entity
	scorer   Scorer

	idOnce sync.Once
	id     string

	mu       sync.Mutex
	polarity map[[2]int]types.PolarityScores
}

// Decode reads a parsed document in JSON form.
func Decode(r io.Reader, scorer Scorer) (*Doc, error) {
	var parsed types.ParsedDoc
	if err := json.NewDecoder(r).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return New(parsed, scorer)
}

func New(parsed types.ParsedDoc, scorer Scorer) (*Doc, error) {
	n := len(parsed.Tokens)
	doc := &Doc{
		text:     parsed.RawText(),
		lang:     parsed.Lang,
		tokens:   make([]token, n),
		children: make([][]int, n),
		scorer:   scorer,
		polarity: make(map[[2]int]types.PolarityScores),
	}

	for i, pt := range parsed.Tokens {
		if pt.Id != i {
			return nil, fmt.Errorf("%w: token %d has id %d", ErrInvalidDocument, i, pt.Id)
		}
		tok := token{ParsedToken: pt}
		if pt.IsPunct != nil {
			tok.isPunct = *pt.IsPunct
		} else {
			tok.isPunct = pt.Pos == "PUNCT"
		}
		if pt.LikeNum != nil {
			tok.likeNum = *pt.LikeNum
		} else {
			tok.likeNum = likeNumber(pt.Text)
		}
		tok.vectorNorm = vectorNorm(pt.Vector)
		doc.tokens[i] = tok
	}

	if err := doc.buildSentences(); err != nil {
		return nil, err
	}
	if err := doc.buildTree(); err != nil {
		return nil, err
	}
	if err := doc.buildEntities(parsed.Ents); err != nil {
		return nil, err
	}
	return doc, nil
}

func (doc *Doc) buildSentences() error {
	seen := make(map[int]bool)
	for i := 0; i < len(doc.tokens); {
		label := doc.tokens[i].Sentence
		if seen[label] {
			return fmt.Errorf("%w: sentence %d is not contiguous", ErrInvalidDocument, label)
		}
		seen[label] = true
		j := i
		for j < len(doc.tokens) && doc.tokens[j].Sentence == label {
			doc.tokens[j].sent = len(doc.sents)
			j++
		}
		doc.sents = append(doc.sents, sentence{start: i, end: j})
		i = j
	}
	return nil
}

func (doc *Doc) buildTree() error {
	for si, sent := range doc.sents {
		roots := 0
		for i := sent.start; i < sent.end; i++ {
			head := doc.tokens[i].Head
			if head < sent.start || head >= sent.end {
				return fmt.Errorf("%w: head %d of token %d is outside its sentence", ErrInvalidDocument, head, i)
			}
			if head == i {
				roots++
				continue
			}
			doc.children[head] = append(doc.children[head], i)
		}
		if roots != 1 {
			return fmt.Errorf("%w: sentence %d has %d roots", ErrInvalidDocument, si, roots)
		}

		for i := sent.start; i < sent.end; i++ {
			depth := 0
			for j := i; doc.tokens[j].Head != j; j = doc.tokens[j].Head {
				depth++
				if depth > sent.end-sent.start {
					return fmt.Errorf("%w: cycle through token %d", ErrInvalidDocument, i)
				}
			}
			doc.tokens[i].depth = depth
		}
	}
	return nil
}

func (doc *Doc) buildEntities(ents []types.ParsedEntity) error {
	for _, ent := range ents {
		if ent.Start < 0 || ent.End > len(doc.tokens) || ent.Start >= ent.End {
			return fmt.Errorf("%w: entity [%d, %d) is out of range", ErrInvalidDocument, ent.Start, ent.End)
		}
		if doc.tokens[ent.Start].sent != doc.tokens[ent.End-1].sent {
			return fmt.Errorf("%w: entity [%d, %d) crosses a sentence boundary", ErrInvalidDocument, ent.Start, ent.End)
		}
		doc.ents = append(doc.ents, entity{start: ent.Start, end: ent.End, label: ent.Label})
	}
	sort.SliceStable(doc.ents, func(i, j int) bool {
		return doc.ents[i].start < doc.ents[j].start
	})
	return nil
}

func (doc *Doc) Len() int {
	return len(doc.tokens)
}

func (doc *Doc) Text() string {
	return doc.text
}

func (doc *Doc) Lang() string {
	return doc.lang
}

func (doc *Doc) Token(i int) Token {
	if i < 0 || i >= len(doc.tokens) {
		panic(fmt.Sprintf("document: token index %d out of range [0, %d)", i, len(doc.tokens)))
	}
	return Token{doc: doc, i: i}
}

func (doc *Doc) Span(start, end int) Span {
	if start < 0 || end > len(doc.tokens) || start > end {
		panic(fmt.Sprintf("document: span [%d, %d) out of range [0, %d)", start, end, len(doc.tokens)))
	}
	return Span{doc: doc, Start: start, End: end}
}

func (doc *Doc) Sents() []Span {
	sents := make([]Span, len(doc.sents))
	for i, sent := range doc.sents {
		sents[i] = Span{doc: doc, Start: sent.start, End: sent.end}
	}
	return sents
}

func (doc *Doc) Ents() []Span {
	return doc.All().Ents()
}

// All is the span covering the whole document.
func (doc *Doc) All() Span {
	return Span{doc: doc, Start: 0, End: len(doc.tokens)}
}

// ID is the content hash of the raw document text.
func (doc *Doc) ID() string {
	doc.idOnce.Do(func() {
		doc.id = utils.HexHash(doc.text)
	})
	return doc.id
}

func (doc *Doc) Polarity() types.PolarityScores {
	return doc.scores([2]int{-1, -1}, doc.text)
}

func (doc *Doc) Valence() float64 {
	return doc.Polarity().Valence()
}

func (doc *Doc) Sentiment() float64 {
	return doc.Polarity().Sentiment()
}

func (doc *Doc) scores(key [2]int, text string) types.PolarityScores {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	if scores, ok := doc.polarity[key]; ok {
		return scores
	}
	var scores types.PolarityScores
	if doc.scorer != nil {
		scores = doc.scorer.PolarityScores(text)
	}
	doc.polarity[key] = scores
	return scores
}

func (doc *Doc) entityLabel(start, end int) (string, bool) {
	for _, ent := range doc.ents {
		if ent.start == start && ent.end == end {
			return ent.label, true
		}
	}
	return "", false
}

func vectorNorm(vector []float32) float64 {
	var sum float64
	for _, v := range vector {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum)
}

package document

import (
	"strings"
)

// Token is a read-only handle to one token of a Doc. Handles are comparable.
type Token struct {
	doc *Doc
	i   int
}

func (t Token) data() *token {
	return &t.doc.tokens[t.i]
}

func (t Token) Doc() *Doc {
	return t.doc
}

// I is the document level position.
func (t Token) I() int {
	return t.i
}

func (t Token) Text() string {
	return t.data().Text
}

func (t Token) Lower() string {
	return strings.ToLower(t.data().Text)
}

func (t Token) Whitespace() string {
	return t.data().Whitespace
}

func (t Token) Lemma() string {
	return t.data().Lemma
}

func (t Token) Pos() string {
	return t.data().Pos
}

func (t Token) Tag() string {
	return t.data().Tag
}

func (t Token) Dep() string {
	return t.data().Dep
}

func (t Token) EntIOB() string {
	return t.data().EntIOB
}

func (t Token) EntType() string {
	return t.data().EntType
}

func (t Token) IsPunct() bool {
	return t.data().isPunct
}

func (t Token) LikeNum() bool {
	return t.data().likeNum
}

func (t Token) Vector() []float32 {
	return t.data().Vector
}

func (t Token) VectorNorm() float64 {
	return t.data().vectorNorm
}

func (t Token) Head() Token {
	return Token{doc: t.doc, i: t.data().Head}
}

func (t Token) IsSentRoot() bool {
	return t.data().Head == t.i
}

// Depth is the number of head links between the token and its sentence root.
func (t Token) Depth() int {
	return t.data().depth
}

// Children returns the syntactic children in sentence order.
func (t Token) Children() []Token {
	idx := t.doc.children[t.i]
	children := make([]Token, len(idx))
	for k, c := range idx {
		children[k] = Token{doc: t.doc, i: c}
	}
	return children
}

// Ancestors returns the head chain, nearest first.
func (t Token) Ancestors() []Token {
	var ancestors []Token
	for cur := t; !cur.IsSentRoot(); {
		cur = cur.Head()
		ancestors = append(ancestors, cur)
	}
	return ancestors
}

// Subtree returns the token and all its descendants in document order.
func (t Token) Subtree() []Token {
	sent := t.doc.sents[t.data().sent]
	in := make([]bool, sent.end-sent.start)
	stack := []int{t.i}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		in[cur-sent.start] = true
		stack = append(stack, t.doc.children[cur]...)
	}
	var subtree []Token
	for k, ok := range in {
		if ok {
			subtree = append(subtree, Token{doc: t.doc, i: sent.start + k})
		}
	}
	return subtree
}

// Nbor returns the token at the given offset within the same sentence.
// The second value is false when the offset leaves the sentence.
func (t Token) Nbor(offset int) (Token, bool) {
	sent := t.doc.sents[t.data().sent]
	j := t.i + offset
	if j < sent.start || j >= sent.end {
		return Token{}, false
	}
	return Token{doc: t.doc, i: j}, true
}

func (t Token) Sent() Span {
	sent := t.doc.sents[t.data().sent]
	return Span{doc: t.doc, Start: sent.start, End: sent.end}
}

// SentIndex is the position of the token within its sentence.
func (t Token) SentIndex() int {
	return t.i - t.doc.sents[t.data().sent].start
}

// Span wraps the token as a one-token span.
func (t Token) Span() Span {
	return Span{doc: t.doc, Start: t.i, End: t.i + 1}
}

func (t Token) String() string {
	return t.Text()
}

package relations

import (
	"text2phenotype.com/relex/document"
	"text2phenotype.com/relex/predicates"
	"text2phenotype.com/relex/types"
)

// Drive is the operative token of a span: the last verb of a verb headed
// span, the span root otherwise.
func Drive(span document.Span) document.Token {
	root := span.Root()
	if predicates.IsVerb(root) {
		for i := span.Len() - 1; i >= 0; i-- {
			if tok := span.At(i); predicates.IsVerb(tok) {
				return tok
			}
		}
	}
	return root
}

// Root is the span root when it is wordlike, else its first verb child.
func Root(span document.Span) (document.Token, bool) {
	root := span.Root()
	if predicates.IsWordlike(root) {
		return root, true
	}
	for _, c := range root.Children() {
		if predicates.IsVerb(c) {
			return c, true
		}
	}
	return document.Token{}, false
}

func IsNeg(span document.Span) bool {
	for _, tok := range span.Tokens() {
		if predicates.IsNegDep(tok) {
			return true
		}
	}
	return false
}

func IsEnt(span document.Span) bool {
	for _, tok := range span.Tokens() {
		if predicates.IsEnt(tok) {
			return true
		}
	}
	return false
}

func IsCompound(span document.Span) bool {
	return span.Len() > 1
}

// Lead narrows a verb span to its drive, the last negation and a particle
// right after the drive. Other spans are their own lead.
func Lead(span document.Span) document.Span {
	drive := Drive(span)
	if !predicates.IsVerb(drive) {
		return span
	}
	start, end := drive.I(), drive.I()+1
	for i := span.Len() - 1; i >= 0; i-- {
		if neg := span.At(i); predicates.IsNegDep(neg) {
			if neg.I() < start {
				start = neg.I()
			}
			if neg.I()+1 > end {
				end = neg.I() + 1
			}
			break
		}
	}
	if next, ok := drive.Nbor(1); ok && predicates.IsPart(next) && next.I()+1 > end {
		end = next.I() + 1
	}
	return span.Doc().Span(start, end)
}

// Lemma of a verb span is the drive lemma, prefixed with "not" when negated.
func Lemma(span document.Span) string {
	drive := Drive(span)
	if predicates.IsVerb(drive) {
		if IsNeg(span) {
			return "not " + drive.Lemma()
		}
		return drive.Lemma()
	}
	return Lead(span).Lemma()
}

func (e *Extractor) IsDrive(t document.Token) bool {
	return Drive(e.Compound(t)) == t
}

func (e *Extractor) IsTerm(t document.Token) bool {
	return e.IsDrive(t) && predicates.IsSemantic(t) &&
		(predicates.IsDescription(t) || predicates.IsNoun(t) || predicates.IsVerb(t))
}

func (e *Extractor) IsObj(t document.Token) bool {
	return e.IsDrive(t) && (predicates.IsObjDep(t) || predicates.IsCompDep(t) || predicates.IsAttrDep(t))
}

// VParent is the compound of the nearest verb ancestor of the span root.
func (e *Extractor) VParent(span document.Span) (document.Span, bool) {
	for _, anc := range span.Root().Ancestors() {
		if predicates.IsVerb(anc) {
			return e.Compound(anc), true
		}
	}
	return document.Span{}, false
}

// Tense of a span. Descriptive and conjunct verbs take the tense of their
// head, non verb spans the tense of their verb parent.
// A sentence root labelled conj or as a clause is its own head and is
// detected directly.
func (e *Extractor) Tense(span document.Span) (types.Tense, types.Mode) {
	return e.tense(span, make(map[document.Span]bool))
}

func (e *Extractor) tense(span document.Span, visited map[document.Span]bool) (types.Tense, types.Mode) {
	visited[span] = true
	root := span.Root()
	if predicates.IsVerb(root) {
		if !root.IsSentRoot() && (predicates.IsDescVerb(root) || predicates.IsConjDep(root)) {
			if head := e.Compound(root.Head()); !visited[head] {
				return e.tense(head, visited)
			}
		}
		return e.detector.Detect(span)
	}
	if vparent, ok := e.VParent(span); ok && !visited[vparent] {
		return e.tense(vparent, visited)
	}
	return types.TensePresent, types.ModeNormal
}

// Conjuncts returns the conj children of t, depth first.
func Conjuncts(t document.Token) []document.Token {
	var conjuncts []document.Token
	for _, c := range t.Children() {
		if predicates.IsConjDep(c) {
			conjuncts = append(conjuncts, c)
			conjuncts = append(conjuncts, Conjuncts(c)...)
		}
	}
	return conjuncts
}

// Subterms returns the compounds of the term tokens in the subtree of t,
// excluding the compound of t itself.
func (e *Extractor) Subterms(t document.Token) []document.Span {
	own := e.Compound(t)
	var terms []document.Span
	for _, st := range t.Subtree() {
		if e.IsTerm(st) && !own.Contains(st) {
			terms = append(terms, e.Compound(st))
		}
	}
	return terms
}

// VObjects returns the objects, complements and attributes of a verb span,
// following coordinated objects and conjunct verbs.
func (e *Extractor) VObjects(span document.Span) []document.Span {
	var objects []document.Span
	e.collectObjects(span, make(map[document.Span]bool), make(map[document.Span]bool), &objects)
	return objects
}

func (e *Extractor) collectObjects(span document.Span, visited, seen map[document.Span]bool, objects *[]document.Span) {
	if visited[span] {
		return
	}
	visited[span] = true

	add := func(obj document.Span) {
		if !seen[obj] {
			seen[obj] = true
			*objects = append(*objects, obj)
		}
	}
	for _, child := range Drive(span).Children() {
		if e.IsObj(child) {
			add(e.Compound(child))
			for _, conj := range Conjuncts(child) {
				if e.IsDrive(conj) {
					add(e.Compound(conj))
				}
			}
		} else if predicates.IsConjDep(child) && predicates.IsVerb(child) {
			e.collectObjects(e.Compound(child), visited, seen, objects)
		}
		for _, conj := range Conjuncts(child) {
			if e.IsObj(conj) {
				add(e.Compound(conj))
			}
		}
	}
}

// Verbs returns the compound verbs of a span from left to right.
func (e *Extractor) Verbs(span document.Span) []document.Span {
	var verbs []document.Span
	for i := span.Start; i < span.End; {
		tok := span.Doc().Token(i)
		if !predicates.IsVerb(tok) {
			i++
			continue
		}
		compound := e.Compound(tok)
		verbs = append(verbs, compound)
		i = compound.End
	}
	return verbs
}

func (e *Extractor) Nouns(span document.Span) []document.Span {
	var nouns []document.Span
	for _, tok := range span.Tokens() {
		if predicates.IsNoun(tok) && e.IsDrive(tok) {
			nouns = append(nouns, e.Compound(tok))
		}
	}
	return nouns
}

// Tokens steps through a span by compounds and keeps those whose drive is wordlike.
func (e *Extractor) Tokens(span document.Span) []document.Span {
	var tokens []document.Span
	for i := span.Start; i < span.End; {
		compound := e.Compound(span.Doc().Token(i))
		if predicates.IsWordlike(Drive(compound)) {
			tokens = append(tokens, compound)
		}
		i = compound.End
	}
	return tokens
}

// DocTokens is Tokens over every sentence of the document.
func (e *Extractor) DocTokens() []document.Span {
	var tokens []document.Span
	for _, sent := range e.doc.Sents() {
		tokens = append(tokens, e.Tokens(sent)...)
	}
	return tokens
}

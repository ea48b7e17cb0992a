package relations

import (
	"text2phenotype.com/relex/document"
	"text2phenotype.com/relex/predicates"
)

// Compound resolves the entity, compound verb or compound noun a token
// belongs to, falling back to the token itself. The result always
// contains the token.
func (e *Extractor) Compound(t document.Token) document.Span {
	if span, ok := e.compounds[t.I()]; ok {
		return span
	}
	span := resolveCompound(t)
	e.compounds[t.I()] = span
	return span
}

func resolveCompound(t document.Token) document.Span {
	if predicates.IsEnt(t) {
		if ent, ok := entityOf(t); ok {
			return ent
		}
	}
	if predicates.IsVerblike(t) {
		if verb := compoundVerb(t); !verb.IsEmpty() {
			return verb
		}
	}
	if predicates.IsNounlike(t) {
		if noun, ok := compoundNoun(t); ok {
			return noun
		}
	}
	return t.Span()
}

// entityOf expands an entity marked token over its contiguous I tokens and
// matches the result against the sentence entities.
func entityOf(t document.Token) (document.Span, bool) {
	start, end := t.I(), t.I()+1
	for next, ok := t.Nbor(1); ok && next.EntIOB() == "I"; next, ok = next.Nbor(1) {
		end = next.I() + 1
	}
	if t.EntIOB() != "B" {
		cur := t
		for {
			prev, ok := cur.Nbor(-1)
			if !ok || (prev.EntIOB() != "B" && prev.EntIOB() != "I") {
				return document.Span{}, false
			}
			if prev.EntIOB() == "B" {
				start = prev.I()
				break
			}
			cur = prev
		}
	}
	for _, ent := range t.Sent().Ents() {
		if ent.Start == start && ent.End == end {
			return ent, true
		}
	}
	return document.Span{}, false
}

func compoundVerb(t document.Token) document.Span {
	next := t
	for predicates.IsVerblike(next) {
		n, ok := next.Nbor(1)
		if !ok {
			break
		}
		next = n
	}
	end := next.I()
	if predicates.IsVerblike(next) {
		// the run reaches the end of the sentence
		end++
	}

	prev := t
	for predicates.IsVerblike(prev) {
		p, ok := prev.Nbor(-1)
		if !ok {
			break
		}
		prev = p
	}
	for !predicates.IsVerb(prev) && prev != t {
		n, ok := prev.Nbor(1)
		if !ok {
			break
		}
		prev = n
	}

	doc := t.Doc()
	start := prev.I()
	for start < end-1 && start < t.I() && !predicates.IsVerb(doc.Token(start)) {
		start++
	}
	return doc.Span(start, end)
}

func compoundNoun(t document.Token) (document.Span, bool) {
	if !predicates.IsInCompoundNoun(t) {
		return document.Span{}, false
	}
	sent := t.Sent()
	end := sent.End
	for next, ok := t.Nbor(1); ok; next, ok = next.Nbor(1) {
		if !predicates.IsInCompoundNoun(next) {
			end = next.I()
			break
		}
	}
	start := sent.Start
	for prev, ok := t.Nbor(-1); ok; prev, ok = prev.Nbor(-1) {
		if !predicates.IsInCompoundNoun(prev) {
			start = prev.I() + 1
			break
		}
	}

	doc := t.Doc()
	for start < end-1 && predicates.IsDet(doc.Token(start)) {
		start++
	}
	return doc.Span(start, end), true
}

package relations

import (
	"text2phenotype.com/relex/document"
	"text2phenotype.com/relex/predicates"
)

// Relations returns the relations of every sentence in document order.
func (e *Extractor) Relations() []Relation {
	var relations []Relation
	for _, sent := range e.doc.Sents() {
		relations = append(relations, e.SentenceRelations(sent)...)
	}
	return relations
}

// SentenceRelations walks the tree from the sentence root.
func (e *Extractor) SentenceRelations(sent document.Span) []Relation {
	root, ok := Root(sent)
	if !ok {
		return nil
	}
	return e.TokenRelations(root)
}

// TokenRelations returns the relations inside the compound of t and between
// t and its subtree, depth first with children in sentence order.
func (e *Extractor) TokenRelations(t document.Token) []Relation {
	return e.walk(t, nil)
}

func (e *Extractor) walk(t document.Token, relations []Relation) []Relation {
	tc := e.Compound(t)
	if !predicates.IsVerblike(t) && e.IsDrive(t) && IsCompound(tc) {
		members := tc.Tokens()
		for _, t1 := range members {
			for _, t2 := range members {
				if t1 == t2 || !predicates.IsWordlike(t1) || !predicates.IsWordlike(t2) {
					continue
				}
				relations = append(relations, e.Relate(t1.Span(), t2.Span()))
			}
		}
	}

	for _, child := range t.Children() {
		if !predicates.IsWordlike(child) {
			continue
		}
		cc := e.Compound(child)
		conj := predicates.IsConjDep(child)
		if !conj {
			for _, conjunct := range Conjuncts(child) {
				relations = append(relations, e.Relate(tc, e.Compound(conjunct)))
				for _, gc := range conjunct.Children() {
					if predicates.IsObjDep(gc) {
						relations = append(relations, e.Relate(cc, e.Compound(gc)))
					}
				}
			}
		}
		if tc != cc && !conj {
			relations = append(relations, e.Relate(tc, cc))
		}
		relations = e.walk(child, relations)
	}
	return relations
}

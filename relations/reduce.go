package relations

import (
	"text2phenotype.com/relex/predicates"
	"text2phenotype.com/relex/types"
)

// Reduce drops misc and right adposition relations and lifts left
// adpositions to the nearest non adposition ancestor.
func (e *Extractor) Reduce(relations []Relation) []Relation {
	reduced := make([]Relation, 0, len(relations))
	for _, r := range relations {
		switch r.Type {
		case types.RelationMisc, types.RelationRightAdposition:
			continue
		case types.RelationLeftAdposition:
			var ok bool
			if r, ok = e.reduceLeftAdposition(r); !ok {
				continue
			}
		}
		if r.Type == types.RelationMisc || r.Type == types.RelationRightAdposition {
			continue
		}
		reduced = append(reduced, r)
	}
	return reduced
}

func (e *Extractor) reduceLeftAdposition(r Relation) (Relation, bool) {
	for _, c := range Drive(r.Head).Children() {
		if predicates.IsAdp(c) {
			return Relation{}, false
		}
	}
	head := r.Head.Root()
	for predicates.IsAdp(head) && !head.IsSentRoot() {
		head = head.Head()
	}
	return e.Relate(e.Compound(head), r.Sub), true
}

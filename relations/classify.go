package relations

import (
	"fmt"

	"text2phenotype.com/relex/document"
	"text2phenotype.com/relex/predicates"
	"text2phenotype.com/relex/types"
)

// Relate classifies the relation between two compound spans. Subjects are
// moved to the head side.
func (e *Extractor) Relate(head, sub document.Span) Relation {
	ht, st := Drive(head), Drive(sub)
	if (predicates.IsNoun(st) && predicates.IsSubjDep(st)) ||
		(predicates.IsVerb(ht) && predicates.IsSubjDep(st)) {
		head, sub = sub, head
		ht, st = st, ht
	}

	hr, sr := head.Root(), sub.Root()
	rel := Relation{
		Rel:  fmt.Sprintf("%s.%s=>%s.%s", hr.Pos(), hr.Dep(), sr.Pos(), sr.Dep()),
		Type: e.relationType(ht, st),
		Head: head,
		Sub:  sub,
	}
	if predicates.IsVerb(hr) || !predicates.IsVerb(sr) {
		rel.Tense, rel.Mode = e.Tense(head)
	} else {
		rel.Tense, rel.Mode = e.Tense(sub)
	}
	return rel
}

// relationType applies the rules in priority order; the first match wins.
func (e *Extractor) relationType(ht, st document.Token) types.RelationType {
	switch {
	case predicates.IsVerb(ht) && predicates.IsVerb(st):
		return types.RelationVerbVerb
	case (predicates.IsNoun(ht) || predicates.IsSubjDep(ht)) && predicates.IsVerb(st):
		return types.RelationSubjectVerb
	case predicates.IsCompDep(ht) && predicates.IsVerb(st):
		return types.RelationComplementVerb
	case (predicates.IsVerb(ht) || predicates.IsAdjVerb(ht)) &&
		(predicates.IsNoun(st) || predicates.IsObjDep(st)):
		return types.RelationVerbObject
	case predicates.IsVerb(ht) && predicates.IsCompDep(st):
		return types.RelationVerbComplement
	case predicates.IsAdp(ht):
		return types.RelationLeftAdposition
	case predicates.IsAdp(st):
		return types.RelationRightAdposition
	case predicates.IsInCompoundNoun(ht) && e.Compound(ht) == e.Compound(st):
		return types.RelationCompound
	case predicates.IsNoun(ht) && predicates.IsNoun(st):
		return types.RelationNounNoun
	case predicates.IsDescription(st):
		return types.RelationDescription
	}
	return types.RelationMisc
}

package relations

import (
	"text2phenotype.com/relex/document"
	"text2phenotype.com/relex/predicates"
	"text2phenotype.com/relex/types"
)

// SVO is a subject-verb-object or subject-verb-complement triple.
type SVO struct {
	Tense     types.Tense
	Mode      types.Mode
	Neg       bool
	Type      types.SVOType
	Subj      document.Span
	SubjTerms []document.Span
	Verb      document.Span
	Obj       document.Span
	ObjTerms  []document.Span
	// Excerpt covers the subject, verb, object and all sub-terms.
	Excerpt document.Span
}

func (svo SVO) Sentiment() float64 {
	return svo.Excerpt.Sentiment()
}

func (svo SVO) Valence() float64 {
	return svo.Excerpt.Valence()
}

func (svo SVO) SentSentiment() float64 {
	return svo.Excerpt.Sent().Sentiment()
}

func (svo SVO) SentValence() float64 {
	return svo.Excerpt.Sent().Valence()
}

// SVOs derives triples from the subject-verb relations. Subjects whose
// drive is not semantic, such as bare pronouns, are skipped.
func (e *Extractor) SVOs(relations []Relation) []SVO {
	var svos []SVO
	for _, r := range relations {
		if r.Type != types.RelationSubjectVerb {
			continue
		}
		subj, verb := r.Head, r.Sub
		subjDrive := Drive(subj)
		if !predicates.IsSemantic(subjDrive) {
			continue
		}
		tense, mode := e.Tense(verb)
		neg := IsNeg(verb)

		var subjTerms []document.Span
		for _, st := range e.Subterms(subjDrive) {
			if st == verb {
				break
			}
			subjTerms = append(subjTerms, st)
		}

		for _, obj := range e.VObjects(verb) {
			objDrive := Drive(obj)
			svoType := types.SVOComplement
			if predicates.IsObjDep(objDrive) || predicates.IsNoun(objDrive) {
				svoType = types.SVOObject
			}
			var objTerms []document.Span
			for _, st := range e.Subterms(objDrive) {
				if st != verb {
					objTerms = append(objTerms, st)
				}
			}
			svos = append(svos, SVO{
				Tense:     tense,
				Mode:      mode,
				Neg:       neg,
				Type:      svoType,
				Subj:      subj,
				SubjTerms: subjTerms,
				Verb:      verb,
				Obj:       obj,
				ObjTerms:  objTerms,
				Excerpt:   excerpt(subj, verb, obj, subjTerms, objTerms),
			})
		}
	}
	return svos
}

func excerpt(subj, verb, obj document.Span, terms ...[]document.Span) document.Span {
	start, end := subj.Start, subj.End
	extend := func(s document.Span) {
		if s.Start < start {
			start = s.Start
		}
		if s.End > end {
			end = s.End
		}
	}
	extend(verb)
	extend(obj)
	for _, group := range terms {
		for _, s := range group {
			extend(s)
		}
	}
	return subj.Doc().Span(start, end)
}

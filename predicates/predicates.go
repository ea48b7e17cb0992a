// Package predicates classifies single tokens by their part of speech,
// tag and dependency label. All predicates are total and look at most one
// neighbor away.
package predicates

import (
	"text2phenotype.com/relex/document"
)

// IsWordlike is false for punctuation, numbers, possessive markers and whitespace.
func IsWordlike(t document.Token) bool {
	return !t.IsPunct() && !t.LikeNum() && !possTags[t.Tag()] && !nonWordPos[t.Pos()]
}

func IsSemantic(t document.Token) bool {
	return IsWordlike(t) && !notSemanticPos[t.Pos()] && !IsPossDep(t)
}

func IsNoun(t document.Token) bool {
	return nounPos[t.Pos()]
}

func IsNounlike(t document.Token) bool {
	return IsNoun(t)
}

// IsVerb is true for verbs that are not used as modifiers or subjects.
func IsVerb(t document.Token) bool {
	return verbPos[t.Pos()] && !nonVerbDeps[t.Dep()] && !subjDeps[t.Dep()] && !IsAdjVerb(t)
}

func IsVerblike(t document.Token) bool {
	return IsVerb(t) || IsPart(t) || IsPrepDep(t) || IsNegDep(t)
}

// IsAdjVerb is a participle used as an adjectival modifier.
func IsAdjVerb(t document.Token) bool {
	return adjectivalDeps[t.Dep()] && participleTags[t.Tag()]
}

func IsClauseVerb(t document.Token) bool {
	return IsVerb(t) && clauseVerbDeps[t.Dep()]
}

// IsDescVerb is a clause verb directly preceded by an auxiliary particle.
func IsDescVerb(t document.Token) bool {
	if !IsClauseVerb(t) {
		return false
	}
	prev, ok := t.Nbor(-1)
	return ok && IsAuxPart(prev)
}

func IsPart(t document.Token) bool {
	return t.Pos() == "PART"
}

func IsDet(t document.Token) bool {
	return t.Pos() == "DET"
}

func IsAuxPart(t document.Token) bool {
	return IsPart(t) && IsAuxDep(t)
}

func IsAdp(t document.Token) bool {
	return t.Pos() == "ADP"
}

func IsAdj(t document.Token) bool {
	return t.Pos() == "ADJ"
}

func IsAdv(t document.Token) bool {
	return t.Pos() == "ADV"
}

func IsDescription(t document.Token) bool {
	return IsAdj(t) || IsAdv(t) || IsAdjVerb(t)
}

// IsInCompoundNoun is true for compound modifiers, hyphens inside compounds
// and the tokens they modify.
func IsInCompoundNoun(t document.Token) bool {
	if IsCompoundDep(t) || IsCompoundTag(t) {
		return true
	}
	for _, c := range t.Children() {
		if IsCompoundDep(c) {
			return true
		}
	}
	return false
}

func IsEnt(t document.Token) bool {
	return entIOB[t.EntIOB()]
}

func IsPrepDep(t document.Token) bool {
	return t.Dep() == depPrep
}

func IsAuxDep(t document.Token) bool {
	return t.Dep() == depAux
}

func IsConjDep(t document.Token) bool {
	return t.Dep() == depConj
}

func IsObjDep(t document.Token) bool {
	return objDeps[t.Dep()]
}

func IsCompoundDep(t document.Token) bool {
	return t.Dep() == depCompound
}

func IsSubjDep(t document.Token) bool {
	return subjDeps[t.Dep()]
}

func IsCompDep(t document.Token) bool {
	return t.Dep() == depComp
}

func IsAttrDep(t document.Token) bool {
	return t.Dep() == depAttr
}

func IsNegDep(t document.Token) bool {
	return t.Dep() == depNeg
}

func IsPossDep(t document.Token) bool {
	return t.Dep() == depPoss
}

func IsCompoundTag(t document.Token) bool {
	return compoundTags[t.Tag()]
}

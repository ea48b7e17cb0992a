package tenses

import (
	"text2phenotype.com/relex/document"
	"text2phenotype.com/relex/types"
)

func getPastTags() map[string]bool {
	return map[string]bool{
		"VBD": true,
		"VBN": true,
	}
}

func getHaveWords() map[string]bool {
	return map[string]bool{
		"have": true,
		"has":  true,
		"had":  true,
	}
}

func getPastWords() map[string]bool {
	return map[string]bool{
		"did":  true,
		"was":  true,
		"were": true,
	}
}

func getFutureWords() map[string]bool {
	return map[string]bool{
		"will":  true,
		"shall": true,
	}
}

func getModalWords() map[string]bool {
	return map[string]bool{
		"should": true,
		"would":  true,
		"may":    true,
		"might":  true,
		"can":    true,
		"could":  true,
		"must":   true,
		"ought":  true,
		"need":   true,
		"needs":  true,
		"want":   true,
		"wants":  true,
	}
}

var (
	pastTags    = getPastTags()
	haveWords   = getHaveWords()
	pastWords   = getPastWords()
	futureWords = getFutureWords()
	modalWords  = getModalWords()
)

type English struct{}

// followedByTo reports whether the token right after t is "to". The
// neighbor may lie outside the phrase.
func followedByTo(t document.Token) bool {
	next, ok := t.Nbor(1)
	return ok && next.Lower() == "to"
}

func (English) Detect(phrase document.Span) (types.Tense, types.Mode) {
	tense, mode := types.TensePresent, types.ModeNormal
	if phrase.IsEmpty() {
		return tense, mode
	}

	first := phrase.At(0)
	switch text := first.Lower(); {
	case modalWords[text]:
		mode = types.ModeModal
		if phrase.Len() > 1 {
			first = phrase.At(1)
		}
	case haveWords[text] && followedByTo(first):
		mode = types.ModeModal
		if phrase.Len() > 2 {
			first = phrase.At(2)
		}
	}

	text := first.Lower()
	switch {
	case pastWords[text]:
		tense = types.TensePast
	case haveWords[text] && !followedByTo(first):
		tense = types.TensePast
	case pastTags[first.Tag()]:
		tense = types.TensePast
	case futureWords[text]:
		tense = types.TenseFuture
	case followedByTo(first):
		tense = types.TenseFuture
	}
	return tense, mode
}

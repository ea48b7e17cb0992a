// Package tenses detects grammatical tense and mode of verb phrases.
package tenses

import (
	"text2phenotype.com/relex/document"
	"text2phenotype.com/relex/types"
)

// Detector returns the tense and mode of a verb phrase. An empty phrase
// is (PRESENT, NORMAL).
type Detector interface {
	Detect(phrase document.Span) (types.Tense, types.Mode)
}

// Default reports every phrase as present and normal. It serves languages
// without a dedicated detector.
type Default struct{}

func (Default) Detect(document.Span) (types.Tense, types.Mode) {
	return types.TensePresent, types.ModeNormal
}

// ForLanguage picks the detector for a language code.
func ForLanguage(lang string) Detector {
	switch lang {
	case "en":
		return English{}
	}
	return Default{}
}

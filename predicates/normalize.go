package predicates

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
	"text2phenotype.com/relex/document"
)

var (
	isRx   = regexp.MustCompile(`(?i)^\Ws$`)
	willRx = regexp.MustCompile(`(?i)^\Wll$`)
	notRx  = regexp.MustCompile(`(?i)^n\Wt$`)
)

func normalizeToken(t document.Token) string {
	switch {
	case t.IsPunct():
		return t.Lemma()
	case IsVerb(t) && isRx.MatchString(t.Text()):
		return " is"
	case IsVerb(t) && willRx.MatchString(t.Text()):
		return " will"
	case IsNegDep(t) && notRx.MatchString(t.Text()):
		return " not"
	}
	return t.Text()
}

// NormalizeText rewrites verb and negation contractions to full words,
// replaces punctuation with its lemma and applies NFC normalization.
// The result is meant to be parsed again.
func NormalizeText(doc *document.Doc) string {
	var sb strings.Builder
	for i := 0; i < doc.Len(); i++ {
		t := doc.Token(i)
		sb.WriteString(norm.NFC.String(normalizeToken(t)))
		sb.WriteString(t.Whitespace())
	}
	return sb.String()
}

package relations

import (
	"fmt"
	"testing"

	"text2phenotype.com/relex/document"
	"text2phenotype.com/relex/document/doctest"
)

// TheyDidNotGo is "They did not go"
func theyDidNotGo() doctest.Sentence {
	return doctest.Sentence{
		{Text: "They", Lemma: "they", Pos: "PRON", Tag: "PRP", Dep: "nsubj", Head: 3, Ent: ""},
		{Text: "did", Lemma: "do", Pos: "AUX", Tag: "VBD", Dep: "aux", Head: 3, Ent: ""},
		{Text: "not", Lemma: "not", Pos: "PART", Tag: "RB", Dep: "neg", Head: 3, Ent: ""},
		{Text: "go", Lemma: "go", Pos: "VERB", Tag: "VB", Dep: "ROOT", Head: 3, Ent: ""},
	}
}

// stoppedToHelp is "He stopped the car to help"
func stoppedToHelp() doctest.Sentence {
	return doctest.Sentence{
		{Text: "He", Lemma: "he", Pos: "PRON", Tag: "PRP", Dep: "nsubj", Head: 1, Ent: ""},
		{Text: "stopped", Lemma: "stop", Pos: "VERB", Tag: "VBD", Dep: "ROOT", Head: 1, Ent: ""},
		{Text: "the", Lemma: "the", Pos: "DET", Tag: "DT", Dep: "det", Head: 3, Ent: ""},
		{Text: "car", Lemma: "car", Pos: "NOUN", Tag: "NN", Dep: "dobj", Head: 1, Ent: ""},
		{Text: "to", Lemma: "to", Pos: "PART", Tag: "TO", Dep: "aux", Head: 5, Ent: ""},
		{Text: "help", Lemma: "help", Pos: "VERB", Tag: "VB", Dep: "advcl", Head: 1, Ent: ""},
	}
}

// gaveUp is "He gave up smoking."
func gaveUp() doctest.Sentence {
	return doctest.Sentence{
		{Text: "He", Lemma: "he", Pos: "PRON", Tag: "PRP", Dep: "nsubj", Head: 1, Ent: ""},
		{Text: "gave", Lemma: "give", Pos: "VERB", Tag: "VBD", Dep: "ROOT", Head: 1, Ent: ""},
		{Text: "up", Lemma: "up", Pos: "PART", Tag: "RP", Dep: "prt", Head: 1, Ent: ""},
		{Text: "smoking", Lemma: "smoking", Pos: "NOUN", Tag: "NN", Dep: "dobj", Head: 1, Ent: ""},
		{Text: ".", Lemma: ".", Pos: "PUNCT", Tag: ".", Dep: "punct", Head: 1, Ent: ""},
	}
}

// soupTastesGood is "The soup tastes good."
func soupTastesGood() doctest.Sentence {
	return doctest.Sentence{
		{Text: "The", Lemma: "the", Pos: "DET", Tag: "DT", Dep: "det", Head: 1, Ent: ""},
		{Text: "soup", Lemma: "soup", Pos: "NOUN", Tag: "NN", Dep: "nsubj", Head: 2, Ent: ""},
		{Text: "tastes", Lemma: "taste", Pos: "VERB", Tag: "VBZ", Dep: "ROOT", Head: 2, Ent: ""},
		{Text: "good", Lemma: "good", Pos: "ADJ", Tag: "JJ", Dep: "acomp", Head: 2, Ent: ""},
		{Text: ".", Lemma: ".", Pos: "PUNCT", Tag: ".", Dep: "punct", Head: 2, Ent: ""},
	}
}

// cooksAndEats is "John cooks and eats apples."
func cooksAndEats() doctest.Sentence {
	return doctest.Sentence{
		{Text: "John", Lemma: "John", Pos: "PROPN", Tag: "NNP", Dep: "nsubj", Head: 1, Ent: ""},
		{Text: "cooks", Lemma: "cook", Pos: "VERB", Tag: "VBZ", Dep: "ROOT", Head: 1, Ent: ""},
		{Text: "and", Lemma: "and", Pos: "CCONJ", Tag: "CC", Dep: "cc", Head: 1, Ent: ""},
		{Text: "eats", Lemma: "eat", Pos: "VERB", Tag: "VBZ", Dep: "conj", Head: 1, Ent: ""},
		{Text: "apples", Lemma: "apple", Pos: "NOUN", Tag: "NNS", Dep: "dobj", Head: 3, Ent: ""},
		{Text: ".", Lemma: ".", Pos: "PUNCT", Tag: ".", Dep: "punct", Head: 1, Ent: ""},
	}
}

func allSentences() map[string]doctest.Sentence {
	return map[string]doctest.Sentence{
		"spider web":        doctest.SpiderWeb(),
		"great development": doctest.GreatDevelopment(),
		"apples and pears":  doctest.ApplesAndPears(),
		"depends on":        doctest.DependsOn(),
		"depends heavily":   doctest.DependsHeavilyOn(),
		"new york times":    doctest.NewYorkTimes(),
		"data science":      doctest.DataScience(),
		"did not go":        theyDidNotGo(),
		"stopped to help":   stoppedToHelp(),
		"gave up":           gaveUp(),
		"soup":              soupTastesGood(),
		"cooks and eats":    cooksAndEats(),
	}
}

func newExtractor(t *testing.T, sents ...doctest.Sentence) *Extractor {
	return New(doctest.Doc(t, nil, "en", sents...))
}

func summarize(relations []Relation) []string {
	result := make([]string, len(relations))
	for i, r := range relations {
		result[i] = fmt.Sprintf("%s(%s, %s)", r.Type.Name(), r.Head.Text(), r.Sub.Text())
	}
	return result
}

func spanTexts(spans []document.Span) []string {
	result := make([]string, len(spans))
	for i, s := range spans {
		result[i] = s.Text()
	}
	return result
}

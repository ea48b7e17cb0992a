// Package doctest builds parsed documents for tests.
package doctest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"text2phenotype.com/relex/document"
	"text2phenotype.com/relex/types"
)

// Tok describes one token. Head is relative to the sentence; a root points at itself.
// Ent is an IOB marker with an optional label, e.g. "B-PERSON" or "I".
type Tok struct {
	Text  string
	Lemma string
	Pos   string
	Tag   string
	Dep   string
	Head  int
	Ent   string
}

type Sentence []Tok

// Build assembles a parsed document from sentences in order.
func Build(lang string, sents ...Sentence) types.ParsedDoc {
	parsed := types.ParsedDoc{Lang: lang}
	var open *types.ParsedEntity
	closeEnt := func() {
		if open != nil {
			parsed.Ents = append(parsed.Ents, *open)
			open = nil
		}
	}

	offset := 0
	for si, sent := range sents {
		for i, tok := range sent {
			id := offset + i
			iob, label := splitEnt(tok.Ent)
			switch iob {
			case "B":
				closeEnt()
				open = &types.ParsedEntity{Start: id, End: id + 1, Label: label}
			case "I":
				if open != nil {
					open.End = id + 1
				}
			default:
				closeEnt()
			}
			parsed.Tokens = append(parsed.Tokens, types.ParsedToken{
				Id:       id,
				Head:     offset + tok.Head,
				Text:     tok.Text,
				Lemma:    tok.Lemma,
				Pos:      tok.Pos,
				Tag:      tok.Tag,
				Dep:      tok.Dep,
				EntIOB:   iob,
				EntType:  label,
				Sentence: si,
			})
		}
		closeEnt()
		offset += len(sent)
	}

	for i := range parsed.Tokens {
		if i+1 < len(parsed.Tokens) && !attaches(parsed.Tokens[i+1]) {
			parsed.Tokens[i].Whitespace = " "
		}
	}
	return parsed
}

// Doc builds and validates a document.
func Doc(t testing.TB, scorer document.Scorer, lang string, sents ...Sentence) *document.Doc {
	t.Helper()
	doc, err := document.New(Build(lang, sents...), scorer)
	require.NoError(t, err)
	return doc
}

func splitEnt(ent string) (string, string) {
	if ent == "" {
		return "O", ""
	}
	parts := strings.SplitN(ent, "-", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func attaches(next types.ParsedToken) bool {
	if next.Pos == "PUNCT" && next.Text != "(" && next.Text != "\"" {
		return true
	}
	return strings.HasPrefix(next.Text, "'") || strings.HasPrefix(next.Text, "’") ||
		strings.EqualFold(next.Text, "n't")
}

// StaticScorer returns fixed scores per text and Default for everything else.
// It counts calls so tests can check memoization.
type StaticScorer struct {
	Scores  map[string]types.PolarityScores
	Default types.PolarityScores
	Calls   int
}

func (s *StaticScorer) PolarityScores(text string) types.PolarityScores {
	s.Calls++
	if scores, ok := s.Scores[text]; ok {
		return scores
	}
	return s.Default
}

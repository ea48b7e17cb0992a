package relations

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"text2phenotype.com/relex/document/doctest"
	"text2phenotype.com/relex/types"
)

type svoSummary struct {
	Type      string
	Subj      string
	Verb      string
	Obj       string
	SubjTerms []string
	ObjTerms  []string
	Excerpt   string
	Tense     string
	Mode      string
	Neg       bool
}

func summarizeSVOs(svos []SVO) []svoSummary {
	result := make([]svoSummary, len(svos))
	for i, svo := range svos {
		result[i] = svoSummary{
			Type:      svo.Type.Name(),
			Subj:      svo.Subj.Text(),
			Verb:      svo.Verb.Text(),
			Obj:       svo.Obj.Text(),
			SubjTerms: spanTexts(svo.SubjTerms),
			ObjTerms:  spanTexts(svo.ObjTerms),
			Excerpt:   svo.Excerpt.Text(),
			Tense:     svo.Tense.Name(),
			Mode:      svo.Mode.Name(),
			Neg:       svo.Neg,
		}
	}
	return result
}

func TestSVOs(t *testing.T) {
	tests := []struct {
		name     string
		sentence doctest.Sentence
		expected []svoSummary
	}{
		{
			name:     "coordinated objects",
			sentence: doctest.ApplesAndPears(),
			expected: []svoSummary{
				{"svo", "John", "eats", "apples", []string{}, []string{"pears"}, "John eats apples and pears", "PRESENT", "NORMAL", false},
				{"svo", "John", "eats", "pears", []string{}, []string{}, "John eats apples and pears", "PRESENT", "NORMAL", false},
			},
		},
		{
			name:     "modal verb with described object",
			sentence: doctest.DataScience(),
			expected: []svoSummary{
				{"svo", "Data science", "should give", "answers", []string{}, []string{"better"}, "Data science should give us better answers", "PRESENT", "MODAL", false},
			},
		},
		{
			name:     "entity subject",
			sentence: doctest.NewYorkTimes(),
			expected: []svoSummary{
				{"svo", "The New York Times", "has reported", "it", []string{}, []string{}, "The New York Times has reported it", "PAST", "NORMAL", false},
			},
		},
		{
			name:     "complement",
			sentence: soupTastesGood(),
			expected: []svoSummary{
				{"svc", "soup", "tastes", "good", []string{}, []string{}, "soup tastes good", "PRESENT", "NORMAL", false},
			},
		},
		{
			name:     "objects of conjunct verbs",
			sentence: cooksAndEats(),
			expected: []svoSummary{
				{"svo", "John", "cooks", "apples", []string{}, []string{}, "John cooks and eats apples", "PRESENT", "NORMAL", false},
			},
		},
		{
			name:     "pronoun subject is skipped",
			sentence: doctest.SpiderWeb(),
			expected: []svoSummary{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			e := newExtractor(t, test.sentence)
			got := summarizeSVOs(e.SVOs(e.Relations()))
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("svos mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSVOsFromReducedRelations(t *testing.T) {
	e := newExtractor(t, doctest.DependsHeavilyOn())
	raw := e.Relations()
	require.Empty(t, e.SVOs(raw), "Mary is not a direct child of the verb")

	e = newExtractor(t, doctest.DependsOn())
	svos := e.SVOs(e.Reduce(e.Relations()))
	require.Len(t, svos, 0, "pobj attaches to the preposition, not the verb drive")
}

func TestSVOSentiment(t *testing.T) {
	scorer := &doctest.StaticScorer{
		Scores: map[string]types.PolarityScores{
			"John eats apples and pears":  {Positive: 0.4, Neutral: 0.6, Compound: 0.5},
			"John eats apples and pears.": {Positive: 0.3, Neutral: 0.7, Compound: 0.4},
		},
	}
	e := New(doctest.Doc(t, scorer, "en", doctest.ApplesAndPears()))
	svos := e.SVOs(e.Relations())
	require.Len(t, svos, 2)
	require.InDelta(t, 0.2, svos[0].Sentiment(), 1e-9)
	require.InDelta(t, 0.12, svos[0].SentSentiment(), 1e-9)
	require.Greater(t, svos[0].Valence(), 0.0)
	require.Greater(t, svos[1].SentValence(), 0.0)
}

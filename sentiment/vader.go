// Package sentiment scores text polarity with the VADER lexicon.
package sentiment

import (
	"github.com/jonreiter/govader"
	"text2phenotype.com/relex/types"
)

// Vader is a document.Scorer backed by the VADER sentiment analyzer. The
// analyzer only reads its lexicon, so a single Vader can be shared between
// documents and goroutines.
type Vader struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVader() *Vader {
	return &Vader{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *Vader) PolarityScores(text string) types.PolarityScores {
	scores := v.analyzer.PolarityScores(text)
	return types.PolarityScores{
		Positive: scores.Positive,
		Negative: scores.Negative,
		Neutral:  scores.Neutral,
		Compound: scores.Compound,
	}
}

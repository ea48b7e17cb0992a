package sentiment

import "text2phenotype.com/relex/types"

// Neutral scores every text as fully neutral, which zeroes sentiment and
// valence. It is used when sentiment scoring is switched off.
type Neutral struct{}

func (Neutral) PolarityScores(string) types.PolarityScores {
	return types.PolarityScores{Neutral: 1}
}

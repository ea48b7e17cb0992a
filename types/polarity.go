package types

import "math"

// PolarityScores is the output of a sentiment scorer. Positive, Negative and
// Neutral sum to roughly one, Compound lies in [-1, 1].
type PolarityScores struct {
	Positive float64 `json:"pos"`
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Compound float64 `json:"compound"`
}

func (p PolarityScores) Valence() float64 {
	return (math.Sqrt(p.Positive) - math.Pow(p.Negative, 5)) * math.Sqrt(1-p.Neutral)
}

func (p PolarityScores) Sentiment() float64 {
	return p.Compound * (1 - p.Neutral)
}

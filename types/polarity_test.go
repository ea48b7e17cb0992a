package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolarityScores(t *testing.T) {
	scores := PolarityScores{Positive: 0.506, Negative: 0, Neutral: 0.494, Compound: 0.6249}
	require.InDelta(t, 0.3161994, scores.Sentiment(), 1e-6)
	require.InDelta(t, 0.506, scores.Valence(), 1e-3)

	neutral := PolarityScores{Neutral: 1}
	require.Zero(t, neutral.Sentiment())
	require.Zero(t, neutral.Valence())
}

func TestEnumNames(t *testing.T) {
	require.Equal(t, "PAST", TensePast.Name())
	require.Equal(t, "FUTURE", TenseFuture.Name())
	require.Equal(t, "PRESENT", TensePresent.Name())
	require.Equal(t, "MODAL", ModeModal.Name())
	require.Equal(t, "NORMAL", ModeNormal.Name())
	require.Equal(t, "subject-verb", RelationSubjectVerb.Name())
	require.Equal(t, "left_adposition", RelationLeftAdposition.Name())
	require.Equal(t, "misc", RelationType(42).Name())
	require.False(t, RelationType(42).IsValid())
	require.Equal(t, "svc", SVOComplement.Name())
}

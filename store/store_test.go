package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"text2phenotype.com/relex/export"
)

func TestWrite(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	table := &export.Table{
		Name:    "tokens",
		Columns: []string{"token", "neg", "start", "vector_norm", "vector"},
		Data: [][]interface{}{
			{"this", false, 0, 0.0, []float32(nil)},
			{"is not", true, 1, 1.5, []float32{1, 2}},
		},
	}
	ctx := context.Background()
	require.NoError(t, s.Write(ctx, table))
	// appends to the existing table
	require.NoError(t, s.Write(ctx, table))

	var count int
	require.NoError(t, s.DB().QueryRow(`SELECT COUNT(*) FROM tokens`).Scan(&count))
	require.Equal(t, 4, count)

	var (
		token  string
		neg    bool
		start  int
		norm   float64
		vector string
	)
	row := s.DB().QueryRow(`SELECT token, neg, start, vector_norm, vector FROM tokens WHERE start = 1 LIMIT 1`)
	require.NoError(t, row.Scan(&token, &neg, &start, &norm, &vector))
	require.Equal(t, "is not", token)
	require.True(t, neg)
	require.Equal(t, 1.5, norm)
	require.Equal(t, "[1,2]", vector)
}

func TestWriteQuotesNames(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	table := &export.Table{
		Name:    `svo "table"`,
		Columns: []string{"end", "select"},
		Data:    [][]interface{}{{3, "x"}},
	}
	require.NoError(t, s.Write(context.Background(), table))

	var end int
	require.NoError(t, s.DB().QueryRow(`SELECT "end" FROM "svo ""table"""`).Scan(&end))
	require.Equal(t, 3, end)
}

func TestWriteRejectsMismatchedRows(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	table := &export.Table{
		Name:    "broken",
		Columns: []string{"a", "b"},
		Data:    [][]interface{}{{1, 2}, {1, 2, 3}},
	}
	require.Error(t, s.Write(context.Background(), table))

	var count int
	require.NoError(t, s.DB().QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE name = 'broken'`).Scan(&count))
	require.Equal(t, 0, count, "failed writes are rolled back")
}

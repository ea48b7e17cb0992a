package pipeline

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"text2phenotype.com/relex/document"
	"text2phenotype.com/relex/document/doctest"
	"text2phenotype.com/relex/sentiment"
	"text2phenotype.com/relex/types"
)

type testTable struct {
	Name    string          `json:"name"`
	Columns []string        `json:"columns"`
	Data    [][]interface{} `json:"data"`
}

type testResponse struct {
	DocId  string               `json:"docId"`
	Lang   string               `json:"lang"`
	Tables map[string]testTable `json:"tables"`
}

func parsedJSON(t *testing.T, sents ...doctest.Sentence) string {
	buf, err := json.Marshal(doctest.Build("en", sents...))
	require.NoError(t, err)
	return string(buf)
}

func run(t *testing.T, ppln Pipeline, text string) (map[string]testResponse, bool) {
	res, ok := <-ppln(Request{Text: text, Tid: t.Name()})
	if !ok {
		return nil, false
	}
	response := make(map[string]testResponse)
	require.NoError(t, json.Unmarshal([]byte(res), &response))
	return response, true
}

func TestPipeline(t *testing.T) {
	raw := false
	cfgs := []types.Configuration{
		types.DefaultConfiguration(),
		{
			Name:    "raw",
			Outputs: []string{types.OutputRelations},
			Reduced: &raw,
			Columns: map[string][]string{types.OutputRelations: {"rtype", "head", "sub"}},
		},
		{
			Name:      "reduced_svos",
			Outputs:   []string{types.OutputSVOs},
			SVOSource: types.SourceReduced,
		},
	}
	ppln, err := New(GetParams(cfgs), sentiment.Neutral{})
	require.NoError(t, err)

	text := parsedJSON(t, doctest.SpiderWeb(), doctest.ApplesAndPears())
	response, ok := run(t, ppln, text)
	require.True(t, ok)
	require.Len(t, response, 3)

	def := response[types.DefaultConfigurationName]
	require.Equal(t, "en", def.Lang)
	require.Len(t, def.DocId, 16)
	require.Len(t, def.Tables, 3)
	require.Len(t, def.Tables[types.OutputRelations].Data, 6)
	require.Len(t, def.Tables[types.OutputSVOs].Data, 2)
	require.Len(t, def.Tables[types.OutputTokens].Data, 10)

	rawTable := response["raw"].Tables[types.OutputRelations]
	require.Equal(t, []string{"rtype", "head", "sub"}, rawTable.Columns)
	require.Len(t, rawTable.Data, 8)
	require.Equal(t, []interface{}{"misc", "web", "a"}, rawTable.Data[2])

	require.Len(t, response["reduced_svos"].Tables, 1)
	require.Len(t, response["reduced_svos"].Tables[types.OutputSVOs].Data, 2)
	require.Equal(t, def.DocId, response["raw"].DocId)
}

func TestPipelineRejectsInvalidDocument(t *testing.T) {
	ppln, err := New(GetParams(nil), sentiment.Neutral{})
	require.NoError(t, err)

	tests := []struct {
		name string
		text string
	}{
		{"not json", "This is not a spider's web."},
		{"head outside sentence", `{"tokens": [{"id": 0, "head": 3, "text": "web", "sent": 0}]}`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, ok := run(t, ppln, test.text)
			require.False(t, ok)
		})
	}
}

func TestNewRejectsInvalidConfiguration(t *testing.T) {
	_, err := New(GetParams([]types.Configuration{{Name: "broken", Outputs: []string{"graphs"}}}), nil)
	require.True(t, errors.Is(err, types.ErrUnknownOutput))
}

func TestBuildTablesWithSentiment(t *testing.T) {
	scorer := &doctest.StaticScorer{
		Scores: map[string]types.PolarityScores{
			"This is a great new development.": {Positive: 0.6, Neutral: 0.4, Compound: 0.527},
		},
		Default: types.PolarityScores{Neutral: 1},
	}
	doc := doctest.Doc(t, scorer, "en", doctest.GreatDevelopment())
	cfg := types.Configuration{
		Name:    "sentiment",
		Outputs: []string{types.OutputRelations},
		Columns: map[string][]string{types.OutputRelations: {"rtype", "sent_sentiment"}},
	}

	response, err := BuildTables(doc, cfg)
	require.NoError(t, err)
	require.Equal(t, doc.ID(), response.DocId)

	data, err := json.Marshal(response.Tables[types.OutputRelations])
	require.NoError(t, err)
	var table testTable
	require.NoError(t, json.Unmarshal(data, &table))
	require.Len(t, table.Data, 4)
	for _, row := range table.Data {
		require.InDelta(t, 0.3162, row[1], 1e-9)
	}
	require.InDelta(t, 0.3162, doc.Sentiment(), 1e-9)
}

type panickingScorer struct{}

func (panickingScorer) PolarityScores(string) types.PolarityScores {
	panic("scorer unavailable")
}

func TestPipelineRecoversFromPanics(t *testing.T) {
	cfgs := []types.Configuration{
		types.DefaultConfiguration(),
		{Name: "relations", Outputs: []string{types.OutputRelations}},
	}
	ppln, err := New(GetParams(cfgs), panickingScorer{})
	require.NoError(t, err)

	_, ok := run(t, ppln, parsedJSON(t, doctest.SpiderWeb()))
	require.False(t, ok)

	doc := doctest.Doc(t, panickingScorer{}, "en", doctest.SpiderWeb())
	_, err = recoveredTables(doc, types.DefaultConfiguration())
	require.Error(t, err)
	require.Contains(t, err.Error(), "scorer unavailable")
}

func TestDocumentChannelSplitter(t *testing.T) {
	doc := doctest.Doc(t, nil, "en", doctest.DependsOn())
	in := make(chan *document.Doc)
	outs := NewDocumentChannelSplitter(3)(in)
	require.Len(t, outs, 3)

	go func() {
		in <- doc
		close(in)
	}()
	for _, out := range outs {
		require.Same(t, doc, <-out)
	}
	for _, out := range outs {
		_, ok := <-out
		require.False(t, ok)
	}
}

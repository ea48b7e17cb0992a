package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
	"text2phenotype.com/relex/document/doctest"
	"text2phenotype.com/relex/sentiment"
	"text2phenotype.com/relex/store"
	"text2phenotype.com/relex/types"
)

type testTable struct {
	Columns []string        `json:"columns"`
	Data    [][]interface{} `json:"data"`
}

type testResponse struct {
	Tables map[string]testTable `json:"tables"`
}

func writeParsed(t *testing.T, dir string) {
	docs := map[string]doctest.Sentence{
		"spider.json": doctest.SpiderWeb(),
		"apples.json": doctest.ApplesAndPears(),
	}
	for name, sent := range docs {
		buf, err := json.Marshal(doctest.Build("en", sent))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path.Join(dir, name), buf, 0o644))
	}
	require.NoError(t, os.WriteFile(path.Join(dir, "notes.txt"), []byte("skip me"), 0o644))
}

func newOffline(input string) *offline {
	return &offline{
		Input:          input,
		Configurations: []types.Configuration{types.DefaultConfiguration()},
		Scorer:         sentiment.Neutral{},
		Stdout:         &bytes.Buffer{},
	}
}

func TestOfflineJSON(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeParsed(t, in)

	run := newOffline(in)
	run.OutDir = out
	n, err := run.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, n)

	buf, err := os.ReadFile(path.Join(out, "spider.json"))
	require.NoError(t, err)
	var responses map[string]testResponse
	require.NoError(t, json.Unmarshal(buf, &responses))
	require.Contains(t, responses, types.DefaultConfigurationName)
	tables := responses[types.DefaultConfigurationName].Tables
	require.Len(t, tables[types.OutputRelations].Data, 3)
	require.Empty(t, tables[types.OutputSVOs].Data)
	require.Len(t, tables[types.OutputTokens].Data, 5)

	_, err = os.Stat(path.Join(out, "notes.json"))
	require.True(t, os.IsNotExist(err))
}

func TestOfflineCSV(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeParsed(t, in)

	run := newOffline(path.Join(in, "spider.json"))
	run.OutDir = out
	run.Format = formatCSV
	n, err := run.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)

	f, err := os.Open(path.Join(out, "spider.default.tokens.csv"))
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)
	column := -1
	for i, name := range records[0] {
		if name == "token" {
			column = i
		}
	}
	require.NotEqual(t, -1, column)
	require.Equal(t, "is not", records[2][column])

	_, err = os.Stat(path.Join(out, "spider.json"))
	require.True(t, os.IsNotExist(err))
}

func TestOfflineSQLite(t *testing.T) {
	in := t.TempDir()
	writeParsed(t, in)
	dbPath := path.Join(t.TempDir(), "relex.db")

	run := newOffline(in)
	run.SQLite = dbPath
	_, err := run.Run(context.Background())
	require.NoError(t, err)
	require.Empty(t, run.Stdout.(*bytes.Buffer).String())

	db, err := store.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.DB().QueryRow(`SELECT COUNT(*) FROM "default_relations"`).Scan(&count))
	require.Equal(t, 6, count)
	require.NoError(t, db.DB().QueryRow(`SELECT COUNT(*) FROM "default_tokens"`).Scan(&count))
	require.Equal(t, 10, count)
}

func TestOfflineStdout(t *testing.T) {
	in := t.TempDir()
	writeParsed(t, in)

	t.Run("tables", func(t *testing.T) {
		run := newOffline(path.Join(in, "apples.json"))
		_, err := run.Run(context.Background())
		require.NoError(t, err)

		var responses map[string]testResponse
		require.NoError(t, json.Unmarshal(run.Stdout.(*bytes.Buffer).Bytes(), &responses))
		require.Len(t, responses[types.DefaultConfigurationName].Tables[types.OutputSVOs].Data, 2)
	})

	t.Run("normalize", func(t *testing.T) {
		run := newOffline(path.Join(in, "spider.json"))
		run.Normalize = true
		_, err := run.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, "This is not a spider's web.\n", run.Stdout.(*bytes.Buffer).String())
	})
}

func TestOfflineErrors(t *testing.T) {
	in := t.TempDir()
	require.NoError(t, os.WriteFile(path.Join(in, "broken.json"), []byte("{"), 0o644))

	_, err := newOffline(path.Join(in, "missing.json")).Run(context.Background())
	require.Error(t, err)

	n, err := newOffline(in).Run(context.Background())
	require.Error(t, err)
	require.Equal(t, 0, n)

	run := newOffline(in)
	run.Format = "xml"
	_, err = run.Run(context.Background())
	require.Error(t, err)
}

func TestLoadConfigurationsDefault(t *testing.T) {
	cfgs, err := loadConfigurations("")
	require.NoError(t, err)
	require.Len(t, cfgs, 1)
	require.Equal(t, types.DefaultConfigurationName, cfgs[0].Name)
}

func TestOfflineFileList(t *testing.T) {
	in := t.TempDir()
	writeParsed(t, in)
	list := path.Join(in, "docs.list")
	content := path.Join(in, "apples.json") + "\n\n" + path.Join(in, "spider.json") + "\n"
	require.NoError(t, os.WriteFile(list, []byte(content), 0o644))

	run := newOffline(list)
	run.Normalize = true
	n, err := run.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "John eats apples and pears.\nThis is not a spider's web.\n", run.Stdout.(*bytes.Buffer).String())
}

package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/require"
	"text2phenotype.com/relex/document/doctest"
	"text2phenotype.com/relex/pipeline"
	"text2phenotype.com/relex/sentiment"
	"text2phenotype.com/relex/tasks"
)

func relationsWorker(t *testing.T, parsed []byte) (*Worker, *fakes) {
	worker, f := newTestWorker(newRecorder(), submittedChunk(), tasks.JobTask{}, nil)
	f.objects.objects["parsed/chunk-1.json"] = parsed
	ppln, err := pipeline.New(pipeline.GetParams(nil), sentiment.Neutral{})
	require.NoError(t, err)
	worker.ppln = ppln
	return worker, f
}

func TestWorkerRunsRelationsPipeline(t *testing.T) {
	parsed, err := json.Marshal(doctest.Build("en", doctest.DependsHeavilyOn()))
	require.NoError(t, err)
	worker, f := relationsWorker(t, parsed)

	worker.handle(context.Background(), &amqp.Delivery{Body: []byte(testBody)})

	info := f.tasks.chunkTask.TaskStatuses.Relex
	require.Equal(t, tasks.TaskStatusCompletedSuccess, info.Status)
	require.Equal(t, 3, info.Tables["default"]["relations"])
	require.True(t, f.rec.has("ack"))

	result, ok := f.objects.objects[info.ResultsFileKey]
	require.True(t, ok, "results key %s", info.ResultsFileKey)

	var response map[string]struct {
		Tables map[string]struct {
			Columns []string        `json:"columns"`
			Data    [][]interface{} `json:"data"`
		} `json:"tables"`
	}
	require.NoError(t, json.Unmarshal(result, &response))
	relations := response["default"].Tables["relations"]
	require.Len(t, relations.Data, 3)
	require.Equal(t, "rtype", relations.Columns[4])
	require.Equal(t, "verb-object", relations.Data[2][4])
}

func TestWorkerFailsOnInvalidParse(t *testing.T) {
	worker, f := relationsWorker(t, []byte(`{"tokens": [{"id": 1}]}`))

	worker.handle(context.Background(), &amqp.Delivery{Body: []byte(testBody)})

	info := f.tasks.chunkTask.TaskStatuses.Relex
	require.Equal(t, tasks.TaskStatusFailed, info.Status)
	require.Equal(t, []string{ErrPipelineFailed.Error()}, info.ErrorMessages)
	require.False(t, f.rec.has("upload"))
	require.True(t, f.rec.has("ack"))
}

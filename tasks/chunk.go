package tasks

import (
	"context"

	"text2phenotype.com/relex/redis"
)

const ChunksDB redis.DB = 2

type ChunkTask struct {
	redis.Partial
	DocID         string            `json:"document_id"`
	JobID         string            `json:"job_id"`
	TextFileKey   string            `json:"text_file_key"`
	ParsedFileKey string            `json:"parsed_file_key"`
	TaskStatuses  ChunkTaskStatuses `json:"task_statuses"`
}

type ChunkTaskStatuses struct {
	Relex TaskInfo `json:"relex"`
}

type ChunkTasks struct {
	store store
}

func (chunks ChunkTasks) Get(ctx context.Context, key string) (*ChunkTask, error) {
	var task ChunkTask
	if err := chunks.store.Get(ctx, key, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateStatus changes the relations status of the chunk under the chunk lock.
func (chunks ChunkTasks) UpdateStatus(ctx context.Context, key string, update func(info *TaskInfo)) error {
	var task ChunkTask
	return chunks.store.Update(ctx, key, &task, func() {
		update(&task.TaskStatuses.Relex)
	})
}

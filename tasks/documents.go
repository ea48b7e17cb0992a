package tasks

import (
	"context"

	"text2phenotype.com/relex/redis"
)

const DocumentsDB redis.DB = 0

type DocumentTask struct {
	redis.Partial
	FailedTasks  []string            `json:"failed_tasks"`
	FailedChunks map[string][]string `json:"failed_chunks"`
}

type DocumentTaskCached struct {
	redis.Partial
	DocInfo     map[string]interface{} `json:"document_info"`
	FailedTasks []string               `json:"failed_tasks"`
	JobID       string                 `json:"job_id"`
	WorkType    string                 `json:"work_type"`
}

type DocumentTasks struct {
	store store
}

func (docs DocumentTasks) Get(ctx context.Context, docID string) (*DocumentTask, error) {
	var task DocumentTask
	if err := docs.store.Get(ctx, docID, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (docs DocumentTasks) GetCached(ctx context.Context, docID string) (*DocumentTaskCached, error) {
	var task DocumentTaskCached
	if err := docs.store.Get(ctx, cachedPropertiesKey(docID), &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// MarkFailed records that taskName gave up on chunkKey. The failed task list
// is mirrored into the cached properties, which are created when missing.
func (docs DocumentTasks) MarkFailed(ctx context.Context, docID, chunkKey, taskName string) (err error) {
	release, err := docs.store.Lock(ctx, docID)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := release(); err == nil {
			err = releaseErr
		}
	}()

	var task DocumentTask
	if err = docs.store.Get(ctx, docID, &task); err != nil {
		return err
	}
	var cached DocumentTaskCached
	if err = docs.store.Get(ctx, cachedPropertiesKey(docID), &cached); err != nil && !redis.IsNotFound(err) {
		return err
	}

	task.FailedTasks = append(task.FailedTasks, taskName)
	if task.FailedChunks == nil {
		task.FailedChunks = make(map[string][]string)
	}
	task.FailedChunks[chunkKey] = append(task.FailedChunks[chunkKey], taskName)
	cached.FailedTasks = task.FailedTasks

	if err = docs.store.Save(ctx, docID, &task); err != nil {
		return err
	}
	return docs.store.Save(ctx, cachedPropertiesKey(docID), &cached)
}

package tasks

import (
	"context"

	"text2phenotype.com/relex/redis"
)

const JobsDB redis.DB = 1

type JobTask struct {
	redis.Partial
	UserCanceled           bool `json:"user_canceled"`
	StopDocumentsOnFailure bool `json:"stop_documents_on_failure"`
}

type JobTasks struct {
	store store
}

// GetCached reads the cached properties of the job.
func (jobs JobTasks) GetCached(ctx context.Context, jobID string) (*JobTask, error) {
	var task JobTask
	if err := jobs.store.Get(ctx, cachedPropertiesKey(jobID), &task); err != nil {
		return nil, err
	}
	return &task, nil
}

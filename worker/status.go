package worker

import (
	"fmt"
	"time"

	"text2phenotype.com/relex/tasks"
)

const RFC3339Micro = "2006-01-02T15:04:05.000000-07:00"

func timestamp(t time.Time) *string {
	formatted := t.UTC().Format(RFC3339Micro)
	return &formatted
}

func started(at time.Time) statusUpdate {
	return func(info *tasks.TaskInfo) {
		info.Status = tasks.TaskStatusStarted
		info.Attempts++
		info.StartedAt = timestamp(at)
		info.CompletedAt = nil
	}
}

// canceled closes a task that will not run.
func canceled(at time.Time, reasons ...string) statusUpdate {
	return func(info *tasks.TaskInfo) {
		info.Status = tasks.TaskStatusCanceled
		info.Attempts++
		info.StartedAt = timestamp(at)
		info.CompletedAt = timestamp(at)
		info.ErrorMessages = append(info.ErrorMessages, reasons...)
	}
}

func exhausted(at time.Time, maxRetries int) statusUpdate {
	return func(info *tasks.TaskInfo) {
		info.Status = tasks.TaskStatusCompletedFailure
		info.Attempts++
		info.StartedAt = timestamp(at)
		info.CompletedAt = timestamp(at)
		info.ErrorMessages = append(info.ErrorMessages, fmt.Sprintf(
			"Task has exceeded retries. (Attempts: %d, max retries: %d )",
			info.Attempts,
			maxRetries,
		))
	}
}

// failed leaves the task open for another attempt.
func failed(at time.Time, err error) statusUpdate {
	return func(info *tasks.TaskInfo) {
		info.Status = tasks.TaskStatusFailed
		info.CompletedAt = timestamp(at)
		info.ErrorMessages = append(info.ErrorMessages, err.Error())
	}
}

func completed(at time.Time, resultsKey string, tables map[string]map[string]int) statusUpdate {
	return func(info *tasks.TaskInfo) {
		if !info.Status.Complete() {
			info.Status = tasks.TaskStatusCompletedSuccess
		}
		info.CompletedAt = timestamp(at)
		info.ResultsFileKey = resultsKey
		info.Tables = tables
	}
}

package tasks

type TaskStatus string

const (
	TaskStatusProcessing       TaskStatus = "processing"
	TaskStatusSubmitted        TaskStatus = "submitted"
	TaskStatusStarted          TaskStatus = "started"
	TaskStatusFailed           TaskStatus = "failed"
	TaskStatusCompletedSuccess TaskStatus = "completed - success"
	TaskStatusCompletedFailure TaskStatus = "completed - failure"
	TaskStatusCanceled         TaskStatus = "canceled"
)

// Complete reports whether the status is final.
func (s TaskStatus) Complete() bool {
	return s == TaskStatusCompletedSuccess || s == TaskStatusCompletedFailure || s == TaskStatusCanceled
}

func (s TaskStatus) Submitted() bool {
	return s == TaskStatusSubmitted || s == TaskStatusStarted || s == TaskStatusProcessing
}

// TaskInfo is the status record of one worker for one chunk.
type TaskInfo struct {
	ResultsFileKey    string     `json:"results_file_key"`
	StartedAt         *string    `json:"started_at"`
	CompletedAt       *string    `json:"completed_at"`
	Attempts          int        `json:"attempts"`
	Status            TaskStatus `json:"status"`
	Dependencies      []string   `json:"dependencies"`
	ModelDependencies []float64  `json:"model_dependencies"`
	ErrorMessages     []string   `json:"error_messages"`
	// Tables counts the exported rows per configuration and output.
	Tables map[string]map[string]int `json:"tables,omitempty"`
}

package pipeline

// Request carries a parsed document as JSON together with the task id used
// for logging.
type Request struct {
	Text string `json:"text"`
	Tid  string `json:"tid"`
}

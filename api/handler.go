package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"text2phenotype.com/relex/logger"
	"text2phenotype.com/relex/pipeline"
)

const (
	RequestIDHeader = "X-Request-Id"

	defaultMaxBodyBytes = 32 << 20
)

var defaultLogger = logger.NewLogger("API")

// Handler runs the pipeline over a parsed document posted as JSON and
// answers with the tables of every configuration.
type Handler struct {
	Pipeline     pipeline.Pipeline
	MaxBodyBytes int64
}

type errorResponse struct {
	Error string `json:"error"`
	Tid   string `json:"tid,omitempty"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tid := r.Header.Get(RequestIDHeader)
	if tid == "" {
		tid = uuid.NewString()
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(RequestIDHeader, tid)

	log := defaultLogger.With().
		Str("tid", tid).
		Str("method", r.Method).
		Str("url", r.URL.String()).
		Logger()

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, log, http.StatusMethodNotAllowed, tid, "only POST is allowed")
		return
	}

	limit := h.MaxBodyBytes
	if limit <= 0 {
		limit = defaultMaxBodyBytes
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		writeError(w, log, status, tid, "could not read request body")
		return
	}

	log.Info().Int("bytes", len(body)).Msg("Starting pipeline for request from API")
	resp, ok := <-h.Pipeline(pipeline.Request{Tid: tid, Text: string(body)})
	if !ok {
		writeError(w, log, http.StatusUnprocessableEntity, tid, "invalid parsed document")
		return
	}
	_, _ = io.WriteString(w, resp)
	log.Info().Int("status", http.StatusOK).Msg("Finished processing request")
}

func writeError(w http.ResponseWriter, log zerolog.Logger, status int, tid, message string) {
	log.Error().Int("status", status).Msg(message)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Tid: tid})
}

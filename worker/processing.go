package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
	"text2phenotype.com/relex/pipeline"
	"text2phenotype.com/relex/tasks"
	"text2phenotype.com/relex/utils"
)

var (
	ErrPipelineFailed  = errors.New("pipeline channel was closed before returning anything")
	ErrMissingDocument = errors.New("document task not found")
)

type Message struct {
	WorkType string `json:"work_type"`
	RedisKey string `json:"redis_key"`
	Sender   string `json:"sender"`
	Version  string `json:"version"`
}

// job is one delivery with the chunk task it points at.
type job struct {
	delivery *amqp.Delivery
	message  Message
	chunk    *tasks.ChunkTask
	logger   zerolog.Logger
}

func (j *job) key() string {
	return j.message.RedisKey
}

func (j *job) status() tasks.TaskInfo {
	return j.chunk.TaskStatuses.Relex
}

type verdict int

const (
	verdictRun verdict = iota
	verdictDone
	verdictCanceledByUser
	verdictCanceledByFailure
	verdictExhausted
)

func (worker *Worker) handle(ctx context.Context, delivery *amqp.Delivery) {
	queue := worker.currentQueue()
	deliveryLogger := worker.logger.With().Str("message_id", delivery.MessageId).Logger()

	j, err := worker.newJob(ctx, delivery)
	if err != nil {
		deliveryLogger.Err(err).Str("body", string(delivery.Body)).Msg("Failed to create task for delivery")
		worker.reject(queue, delivery, deliveryLogger)
		return
	}
	if err = worker.process(ctx, j); err != nil {
		worker.reject(queue, delivery, j.logger)
		return
	}
	if err = worker.notifySequencer(queue, j); err != nil {
		j.logger.Err(err).Msg("Got error while sending message to sequencer queue")
		worker.reject(queue, delivery, j.logger)
		return
	}
	if err = queue.ack(delivery); err != nil {
		j.logger.Err(err).Msg("Failed to acknowledge delivery")
		return
	}
	j.logger.Info().Msg("Finished processing RMQ message")
}

func (worker *Worker) newJob(ctx context.Context, delivery *amqp.Delivery) (*job, error) {
	var message Message
	if err := json.Unmarshal(delivery.Body, &message); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message: %w", err)
	}
	chunk, err := worker.tasks.chunk(ctx, message.RedisKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query chunk task %s: %w", message.RedisKey, err)
	}
	return &job{
		delivery: delivery,
		message:  message,
		chunk:    chunk,
		logger: worker.logger.With().
			Str("tid", message.RedisKey).
			Str("doc_id", chunk.DocID).
			Logger(),
	}, nil
}

// process returns an error only when the delivery should be rejected.
func (worker *Worker) process(ctx context.Context, j *job) error {
	v, failedTask, err := worker.decide(ctx, j)
	if err != nil {
		j.logger.Err(err).Msg("Got error while trying to decide whether to run task")
		return err
	}
	now := worker.now()
	switch v {
	case verdictDone:
		j.logger.Info().Msg("Task is already done. Sending back to Sequencer.")
		return nil
	case verdictCanceledByUser:
		j.logger.Info().Msg("Job was canceled, no need to perform this task. Sending back to Sequencer.")
		return worker.tasks.updateStatus(ctx, j.key(), canceled(now))
	case verdictCanceledByFailure:
		j.logger.Info().Str("failed_task", failedTask).
			Msg("Document already failed in another worker. Sending back to Sequencer.")
		return worker.tasks.updateStatus(ctx, j.key(), canceled(now, fmt.Sprintf(
			"Task was marked as \"%s\" because of the current document has failed "+
				"in the \"%s\" worker and won't be processed successfully.",
			tasks.TaskStatusCanceled,
			failedTask,
		)))
	case verdictExhausted:
		j.logger.Info().Int("attempts", j.status().Attempts).Msg("Task has exceeded retries. Sending back to Sequencer.")
		if err := worker.tasks.markDocumentFailed(ctx, j.chunk.DocID, j.key()); err != nil {
			return err
		}
		return worker.tasks.updateStatus(ctx, j.key(), exhausted(now, worker.config.TaskMaxRetries))
	}

	if err := worker.tasks.updateStatus(ctx, j.key(), started(now)); err != nil {
		j.logger.Err(err).Msg("Failed to mark task as started")
		return fmt.Errorf("failed to update task status: %w", err)
	}
	counts, err := worker.extract(ctx, j)
	if err != nil {
		j.logger.Err(err).Msg("Got error while running pipeline")
		return worker.tasks.updateStatus(ctx, j.key(), failed(worker.now(), err))
	}
	j.logger.Info().Interface("tables", counts).Msg("Saved results, marking task as complete")
	if err := worker.tasks.updateStatus(ctx, j.key(), completed(worker.now(), resultsFileKey(j.chunk.DocID, j.key()), counts)); err != nil {
		j.logger.Err(err).Msg("Got error while trying to mark task as complete")
		return err
	}
	return nil
}

func (worker *Worker) decide(ctx context.Context, j *job) (verdict, string, error) {
	if j.status().Status.Complete() {
		return verdictDone, "", nil
	}
	jobTask, err := worker.tasks.job(ctx, j.chunk.JobID)
	if err != nil {
		return verdictRun, "", fmt.Errorf("failed to query job task: %w", err)
	}
	if jobTask.UserCanceled {
		return verdictCanceledByUser, "", nil
	}
	if jobTask.StopDocumentsOnFailure {
		docTask, err := worker.tasks.document(ctx, j.chunk.DocID)
		if err != nil {
			return verdictRun, "", fmt.Errorf("failed to query document task: %w", err)
		}
		if docTask == nil {
			return verdictRun, "", ErrMissingDocument
		}
		if len(docTask.FailedTasks) > 0 {
			return verdictCanceledByFailure, docTask.FailedTasks[0], nil
		}
	}
	if j.status().Attempts >= worker.config.TaskMaxRetries {
		return verdictExhausted, "", nil
	}
	return verdictRun, "", nil
}

// extract runs the pipeline on the parsed chunk and uploads the tables.
func (worker *Worker) extract(ctx context.Context, j *job) (counts map[string]map[string]int, err error) {
	defer utils.RecoverWithError(&err)
	j.logger.Info().Int("attempt", j.status().Attempts+1).Msg("Processing parsed chunk")

	parsed, err := worker.objects.download(ctx, j.chunk.ParsedFileKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch parsed document from s3: %w", err)
	}
	result, ok := <-worker.ppln(pipeline.Request{Tid: j.key(), Text: string(parsed)})
	if !ok {
		return nil, ErrPipelineFailed
	}
	if counts, err = tableCounts(result); err != nil {
		return nil, err
	}
	if err = worker.objects.upload(ctx, resultsFileKey(j.chunk.DocID, j.key()), []byte(result)); err != nil {
		return nil, fmt.Errorf("failed to save results: %w", err)
	}
	return counts, nil
}

func (worker *Worker) notifySequencer(queue messageQueue, j *job) error {
	message := j.message
	message.Sender = TaskName
	body, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return queue.publish(j.delivery.ContentType, body)
}

// reject requeues a delivery once and drops it when it comes back.
func (worker *Worker) reject(queue messageQueue, delivery *amqp.Delivery, log zerolog.Logger) {
	requeue := !delivery.Redelivered
	if requeue {
		log.Info().Msg("Requeuing delivery as it has not been redelivered yet")
	} else {
		log.Info().Msg("Rejecting delivery as it already has been redelivered")
	}
	if err := queue.reject(delivery, requeue); err != nil {
		log.Err(err).Msg("Failed to reject delivery")
	}
}

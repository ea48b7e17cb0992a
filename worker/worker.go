package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"text2phenotype.com/relex/logger"
	"text2phenotype.com/relex/pipeline"
	"text2phenotype.com/relex/s3client"
	"text2phenotype.com/relex/tasks"
)

// TaskName identifies this worker in task statuses and sequencer messages.
const TaskName = "relex"

type Config struct {
	TaskMaxRetries int `envconfig:"MDL_COMN_RETRY_TASK_COUNT_MAX" default:"3"`
}

type Worker struct {
	config  Config
	tasks   taskStore
	objects objectStore
	ppln    pipeline.Pipeline
	logger  zerolog.Logger
	now     func() time.Time

	connectQueue func() (messageQueue, error)
	mu           sync.RWMutex
	queue        messageQueue
}

func New(ppln pipeline.Pipeline) (*Worker, error) {
	relexLogger := logger.NewLogger("Worker")

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		relexLogger.Err(err).Msg("Could not read config")
		return nil, err
	}
	tasksClient, err := tasks.NewClient()
	if err != nil {
		relexLogger.Err(err).Msg("Could not create Redis client")
		return nil, err
	}
	s3Client, err := s3client.New()
	if err != nil {
		tasksClient.Close()
		relexLogger.Err(err).Msg("Could not create S3 client")
		return nil, err
	}
	worker := &Worker{
		config:       config,
		tasks:        redisTasks{tasksClient},
		objects:      s3Objects{s3Client},
		ppln:         ppln,
		logger:       relexLogger,
		now:          time.Now,
		connectQueue: connectRMQ,
	}
	if err := worker.reconnectQueue(); err != nil {
		worker.Close()
		return nil, err
	}
	return worker, nil
}

// Run handles deliveries until ctx is done or the queue cannot be reopened.
func (worker *Worker) Run(ctx context.Context) error {
	defer worker.Close()
	for {
		queue := worker.currentQueue()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-queue.deliveries():
			if ok {
				go worker.handle(ctx, &delivery)
				continue
			}
			worker.logger.Error().Msg("Deliveries channel closed, reconnecting to RMQ")
			if err := worker.reconnectQueue(); err != nil {
				return fmt.Errorf("deliveries channel closed and reconnect failed: %w", err)
			}
		case amqpErr := <-queue.errors():
			if amqpErr == nil {
				continue
			}
			worker.logger.Error().Str("reason", amqpErr.Reason).Int("code", amqpErr.Code).
				Msg("RMQ channel closed, reconnecting")
			if err := worker.reconnectQueue(); err != nil {
				return fmt.Errorf("rmq channel closed (%s) and reconnect failed: %w", amqpErr.Reason, err)
			}
		}
	}
}

func (worker *Worker) Close() {
	worker.tasks.close()
	worker.objects.close()
	if queue := worker.currentQueue(); queue != nil {
		queue.close()
	}
}

func (worker *Worker) currentQueue() messageQueue {
	worker.mu.RLock()
	defer worker.mu.RUnlock()
	return worker.queue
}

func (worker *Worker) reconnectQueue() error {
	worker.logger.Info().Msg("Connecting to RMQ")
	queue, err := worker.connectQueue()
	if err != nil {
		worker.logger.Err(err).Msg("Failed to connect to RMQ")
		return err
	}
	worker.mu.Lock()
	old := worker.queue
	worker.queue = queue
	worker.mu.Unlock()
	if old != nil {
		old.close()
	}
	worker.logger.Info().Msg("Connected to RMQ")
	return nil
}

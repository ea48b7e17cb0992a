package worker

import (
	"context"

	"github.com/streadway/amqp"
	"text2phenotype.com/relex/rmq"
	"text2phenotype.com/relex/s3client"
	"text2phenotype.com/relex/tasks"
)

type statusUpdate func(info *tasks.TaskInfo)

type taskStore interface {
	chunk(ctx context.Context, key string) (*tasks.ChunkTask, error)
	job(ctx context.Context, jobID string) (*tasks.JobTask, error)
	document(ctx context.Context, docID string) (*tasks.DocumentTaskCached, error)
	updateStatus(ctx context.Context, key string, update statusUpdate) error
	markDocumentFailed(ctx context.Context, docID, chunkKey string) error
	close()
}

type objectStore interface {
	download(ctx context.Context, key string) ([]byte, error)
	upload(ctx context.Context, key string, body []byte) error
	close()
}

type messageQueue interface {
	deliveries() <-chan amqp.Delivery
	errors() <-chan *amqp.Error
	publish(contentType string, body []byte) error
	ack(delivery *amqp.Delivery) error
	reject(delivery *amqp.Delivery, requeue bool) error
	close()
}

type redisTasks struct {
	client *tasks.Client
}

func (r redisTasks) chunk(ctx context.Context, key string) (*tasks.ChunkTask, error) {
	return r.client.Chunks.Get(ctx, key)
}

func (r redisTasks) job(ctx context.Context, jobID string) (*tasks.JobTask, error) {
	return r.client.Jobs.GetCached(ctx, jobID)
}

func (r redisTasks) document(ctx context.Context, docID string) (*tasks.DocumentTaskCached, error) {
	return r.client.Documents.GetCached(ctx, docID)
}

func (r redisTasks) updateStatus(ctx context.Context, key string, update statusUpdate) error {
	return r.client.Chunks.UpdateStatus(ctx, key, update)
}

func (r redisTasks) markDocumentFailed(ctx context.Context, docID, chunkKey string) error {
	return r.client.Documents.MarkFailed(ctx, docID, chunkKey, TaskName)
}

func (r redisTasks) close() {
	r.client.Close()
}

type s3Objects struct {
	client *s3client.Client
}

func (s s3Objects) download(ctx context.Context, key string) ([]byte, error) {
	return s.client.Download(ctx, key)
}

func (s s3Objects) upload(ctx context.Context, key string, body []byte) error {
	return s.client.Upload(ctx, key, body, resultsContentType)
}

func (s s3Objects) close() {
	s.client.Close()
}

type rmqQueue struct {
	client *rmq.Client
}

func connectRMQ() (messageQueue, error) {
	client, err := rmq.NewClient()
	if err != nil {
		return nil, err
	}
	return rmqQueue{client}, nil
}

func (q rmqQueue) deliveries() <-chan amqp.Delivery {
	return q.client.Deliveries()
}

func (q rmqQueue) errors() <-chan *amqp.Error {
	return q.client.Errors()
}

func (q rmqQueue) publish(contentType string, body []byte) error {
	return q.client.Publish(contentType, body)
}

func (q rmqQueue) ack(delivery *amqp.Delivery) error {
	return delivery.Ack(false)
}

func (q rmqQueue) reject(delivery *amqp.Delivery, requeue bool) error {
	return delivery.Reject(requeue)
}

func (q rmqQueue) close() {
	q.client.Close()
}

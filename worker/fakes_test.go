package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/streadway/amqp"
	"text2phenotype.com/relex/logger"
	"text2phenotype.com/relex/pipeline"
	"text2phenotype.com/relex/tasks"
)

// recorder keeps the order of calls across fakes. A name in fail makes every
// such call fail, "name#n" only the n-th one.
type recorder struct {
	mu     sync.Mutex
	calls  []string
	counts map[string]int
	fail   map[string]bool
}

func newRecorder(fail ...string) *recorder {
	r := &recorder{counts: make(map[string]int), fail: make(map[string]bool)}
	for _, name := range fail {
		r.fail[name] = true
	}
	return r
}

func (r *recorder) call(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, name)
	r.counts[name]++
	if r.fail[name] || r.fail[fmt.Sprintf("%s#%d", name, r.counts[name])] {
		return fmt.Errorf("mock: %s failed", name)
	}
	return nil
}

func (r *recorder) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func (r *recorder) has(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[name] > 0
}

type fakeTasks struct {
	*recorder
	chunkTask tasks.ChunkTask
	jobTask   tasks.JobTask
	docTask   *tasks.DocumentTaskCached
}

func (f *fakeTasks) chunk(_ context.Context, key string) (*tasks.ChunkTask, error) {
	if err := f.call("chunk"); err != nil {
		return nil, err
	}
	task := f.chunkTask
	return &task, nil
}

func (f *fakeTasks) job(_ context.Context, jobID string) (*tasks.JobTask, error) {
	if err := f.call("job"); err != nil {
		return nil, err
	}
	task := f.jobTask
	return &task, nil
}

func (f *fakeTasks) document(_ context.Context, docID string) (*tasks.DocumentTaskCached, error) {
	if err := f.call("document"); err != nil {
		return nil, err
	}
	if f.docTask == nil {
		return &tasks.DocumentTaskCached{}, nil
	}
	return f.docTask, nil
}

func (f *fakeTasks) updateStatus(_ context.Context, key string, update statusUpdate) error {
	if err := f.call("status"); err != nil {
		return err
	}
	update(&f.chunkTask.TaskStatuses.Relex)
	return nil
}

func (f *fakeTasks) markDocumentFailed(_ context.Context, docID, chunkKey string) error {
	return f.call("documentFailed")
}

func (f *fakeTasks) close() {}

type fakeObjects struct {
	*recorder
	objects map[string][]byte
}

func (f *fakeObjects) download(_ context.Context, key string) ([]byte, error) {
	if err := f.call("download"); err != nil {
		return nil, err
	}
	return f.objects[key], nil
}

func (f *fakeObjects) upload(_ context.Context, key string, body []byte) error {
	if err := f.call("upload"); err != nil {
		return err
	}
	f.mu.Lock()
	f.objects[key] = body
	f.mu.Unlock()
	return nil
}

func (f *fakeObjects) close() {}

type fakeQueue struct {
	*recorder
	deliveriesCh chan amqp.Delivery
	errorsCh     chan *amqp.Error
	published    [][]byte
}

func newFakeQueue(rec *recorder) *fakeQueue {
	return &fakeQueue{
		recorder:     rec,
		deliveriesCh: make(chan amqp.Delivery),
		errorsCh:     make(chan *amqp.Error, 1),
	}
}

func (f *fakeQueue) deliveries() <-chan amqp.Delivery {
	return f.deliveriesCh
}

func (f *fakeQueue) errors() <-chan *amqp.Error {
	return f.errorsCh
}

func (f *fakeQueue) publish(contentType string, body []byte) error {
	if err := f.call("publish"); err != nil {
		return err
	}
	f.mu.Lock()
	f.published = append(f.published, body)
	f.mu.Unlock()
	return nil
}

func (f *fakeQueue) ack(delivery *amqp.Delivery) error {
	return f.call("ack")
}

func (f *fakeQueue) reject(delivery *amqp.Delivery, requeue bool) error {
	if requeue {
		return f.call("requeue")
	}
	return f.call("reject")
}

func (f *fakeQueue) close() {
	_ = f.call("close")
}

const fakeResult = `{"default": {"docId": "d", "tables": {
	"relations": {"columns": ["head"], "data": [["is"], ["web"]]},
	"svos": {"columns": ["subj"], "data": []}}}}`

func fakePipeline(rec *recorder) pipeline.Pipeline {
	return func(request pipeline.Request) <-chan string {
		ch := make(chan string, 1)
		if err := rec.call("pipeline"); err == nil {
			ch <- fakeResult
		}
		close(ch)
		return ch
	}
}

var testNow = time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)

type fakes struct {
	rec     *recorder
	tasks   *fakeTasks
	objects *fakeObjects
	queue   *fakeQueue
}

func newTestWorker(rec *recorder, chunk tasks.ChunkTask, job tasks.JobTask, doc *tasks.DocumentTaskCached) (*Worker, *fakes) {
	f := &fakes{
		rec:     rec,
		tasks:   &fakeTasks{recorder: rec, chunkTask: chunk, jobTask: job, docTask: doc},
		objects: &fakeObjects{recorder: rec, objects: make(map[string][]byte)},
		queue:   newFakeQueue(rec),
	}
	worker := &Worker{
		config:  Config{TaskMaxRetries: 3},
		tasks:   f.tasks,
		objects: f.objects,
		ppln:    fakePipeline(rec),
		logger:  logger.NewLogger("Test Worker"),
		now:     func() time.Time { return testNow },
		queue:   f.queue,
	}
	return worker, f
}

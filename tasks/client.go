package tasks

import (
	"context"

	"text2phenotype.com/relex/redis"
)

// store is the part of redis.Client the task collections use.
type store interface {
	Get(ctx context.Context, key string, doc redis.PartialDocument) error
	Save(ctx context.Context, key string, doc redis.PartialDocument) error
	Update(ctx context.Context, key string, doc redis.PartialDocument, update func()) error
	Lock(ctx context.Context, key string) (redis.ReleaseLock, error)
	Close() error
}

// Client gives access to the task documents shared by the pipeline workers.
type Client struct {
	Documents DocumentTasks
	Chunks    ChunkTasks
	Jobs      JobTasks
}

func NewClient() (*Client, error) {
	stores := make(map[redis.DB]store, 3)
	for _, db := range []redis.DB{DocumentsDB, JobsDB, ChunksDB} {
		client, err := redis.NewClient(db)
		if err != nil {
			for _, opened := range stores {
				_ = opened.Close()
			}
			return nil, err
		}
		stores[db] = client
	}
	return newClient(stores[DocumentsDB], stores[JobsDB], stores[ChunksDB]), nil
}

func newClient(documents, jobs, chunks store) *Client {
	return &Client{
		Documents: DocumentTasks{store: documents},
		Jobs:      JobTasks{store: jobs},
		Chunks:    ChunkTasks{store: chunks},
	}
}

func (client *Client) Close() {
	_ = client.Chunks.store.Close()
	_ = client.Documents.store.Close()
	_ = client.Jobs.store.Close()
}

func cachedPropertiesKey(key string) string {
	return key + "-cached-properties"
}

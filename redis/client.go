package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/go-redis/redis/v8"
	"github.com/kelseyhightower/envconfig"
)

// DB selects one of the logical databases shared with the other workers.
type DB int

type ReleaseLock func() error

const (
	maxRetries   = 6
	lockAttempts = 20
)

// ErrNotFound is returned when a key does not exist.
var ErrNotFound = errors.New("redis: key not found")

type Config struct {
	LockExpirationSeconds   int     `envconfig:"MDL_COMN_REDIS_LOCK_EXPIRATION" default:"3"`
	Host                    string  `envconfig:"MDL_COMN_REDIS_HOST" required:"true"`
	Port                    string  `envconfig:"MDL_COMN_REDIS_PORT" required:"true"`
	HASentinelPort          string  `envconfig:"MDL_COMN_REDIS_HA_SENTINEL_PORT" default:"26379"`
	HASentinelMasterName    string  `envconfig:"MDL_COMN_REDIS_HA_MASTER_NAME" default:"mymaster"`
	Password                string  `envconfig:"MDL_COMN_REDIS_AUTH_PASSWORD" default:"0"`
	AuthRequired            bool    `envconfig:"MDL_COMN_REDIS_AUTH_REQUIRED" default:"false"`
	HAMode                  bool    `envconfig:"MDL_COMN_REDIS_HA_MODE" default:"false"`
	HASentinelSocketTimeout float32 `envconfig:"MDL_COMN_REDIS_SOCKET_TIMEOUT" default:"0.5"`
}

// Client stores JSON task documents in one database.
type Client struct {
	rdb            redis.UniversalClient
	locker         *redislock.Client
	lockExpiration time.Duration
}

func NewClient(db DB) (*Client, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return Wrap(newUniversalClient(cfg, db), time.Duration(cfg.LockExpirationSeconds)*time.Second), nil
}

// Wrap builds a Client over an existing connection.
func Wrap(rdb redis.UniversalClient, lockExpiration time.Duration) *Client {
	return &Client{
		rdb:            rdb,
		locker:         redislock.New(rdb),
		lockExpiration: lockExpiration,
	}
}

func newUniversalClient(cfg Config, db DB) redis.UniversalClient {
	var password string
	if cfg.AuthRequired {
		password = cfg.Password
	}
	if cfg.HAMode {
		timeout := time.Duration(cfg.HASentinelSocketTimeout * float32(time.Second))
		return redis.NewFailoverClusterClient(&redis.FailoverOptions{
			SentinelAddrs: []string{fmt.Sprintf("%s:%s", cfg.Host, cfg.HASentinelPort)},
			MasterName:    cfg.HASentinelMasterName,
			ReadTimeout:   timeout,
			WriteTimeout:  timeout,
			MaxRetries:    maxRetries,
			DB:            int(db),
			Password:      password,
		})
	}
	return redis.NewClient(&redis.Options{
		Addr:       fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		MaxRetries: maxRetries,
		DB:         int(db),
		Password:   password,
	})
}

// Get reads the document stored under key into doc.
func (c *Client) Get(ctx context.Context, key string, doc PartialDocument) error {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return err
	}
	if err = fillPartial(doc, raw); err != nil {
		return fmt.Errorf("failed to read document %s: %w", key, err)
	}
	return nil
}

// Save writes the fields of doc over the stored document.
func (c *Client) Save(ctx context.Context, key string, doc PartialDocument) error {
	b, err := mergedDocument(doc)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, 0).Err()
}

// Update reads the document under a lock, lets update change it and saves
// the result.
func (c *Client) Update(ctx context.Context, key string, doc PartialDocument, update func()) (err error) {
	release, err := c.Lock(ctx, key)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := release(); err == nil {
			err = releaseErr
		}
	}()
	if err = c.Get(ctx, key, doc); err != nil {
		return err
	}
	update()
	return c.Save(ctx, key, doc)
}

// Lock takes the lock shared with the other workers for key.
func (c *Client) Lock(ctx context.Context, key string) (ReleaseLock, error) {
	retry := redislock.LimitRetry(redislock.LinearBackoff(time.Second), lockAttempts)
	lock, err := c.locker.Obtain(ctx, "lock:"+key, c.lockExpiration, &redislock.Options{RetryStrategy: retry})
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", key, err)
	}
	return func() error {
		return lock.Release(ctx)
	}, nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

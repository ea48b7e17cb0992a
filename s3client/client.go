package s3client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/sts"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"text2phenotype.com/relex/logger"
)

const (
	devEnv     = "dev"
	maxRetries = 4
)

var ErrNoSession = errors.New("s3 session is not available")

type EnvironmentConfig struct {
	BucketName  string `envconfig:"MDL_COMN_STORAGE_CONTAINER_NAME" required:"true"`
	T2PEnv      string `envconfig:"T2P_ENV" required:"true"`
	Region      string `envconfig:"MDL_COMN_AWS_REGION_NAME" required:"true"`
	AwsEndpoint string `envconfig:"MDL_COMN_AWS_ENDPOINT_URL" default:""`
	AccessKeyID string `envconfig:"MDL_COMN_AWS_ACCESS_ID" default:""`
	AccessKey   string `envconfig:"MDL_COMN_AWS_ACCESS_KEY" default:""`
}

// Client reads parsed documents from and writes result tables to one bucket.
// The session is replaced once when a request fails.
type Client struct {
	env    EnvironmentConfig
	logger zerolog.Logger

	mu   sync.Mutex
	sess *session.Session
}

func New() (*Client, error) {
	var env EnvironmentConfig
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("s3 environment: %w", err)
	}
	client := &Client{
		env:    env,
		logger: logger.NewLogger("S3Client").With().Str("bucket", env.BucketName).Logger(),
	}
	if _, err := client.refresh(); err != nil {
		return nil, err
	}
	return client, nil
}

// Upload stores body under key. contentType may be empty.
func (client *Client) Upload(ctx context.Context, key string, body []byte, contentType string) error {
	input := &s3manager.UploadInput{
		Bucket: aws.String(client.env.BucketName),
		Key:    aws.String(key),
		Body:   bytes.NewReader(body),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	return client.withSession(ctx, key, func(sess *session.Session) error {
		// the body is read again when the first attempt fails
		input.Body = bytes.NewReader(body)
		client.logger.Debug().Str("key", key).Int("bytes", len(body)).Msg("Uploading object")
		_, err := s3manager.NewUploader(sess).UploadWithContext(ctx, input)
		return err
	})
}

func (client *Client) Download(ctx context.Context, key string) ([]byte, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(client.env.BucketName),
		Key:    aws.String(key),
	}
	var data []byte
	err := client.withSession(ctx, key, func(sess *session.Session) error {
		buf := aws.NewWriteAtBuffer(nil)
		size, err := s3manager.NewDownloader(sess).DownloadWithContext(ctx, buf, input)
		if err != nil {
			return err
		}
		client.logger.Debug().Str("key", key).Int64("bytes", size).Msg("Downloaded object")
		data = buf.Bytes()
		return nil
	})
	return data, err
}

func (client *Client) Close() {
	client.mu.Lock()
	client.sess = nil
	client.mu.Unlock()
}

func (client *Client) withSession(ctx context.Context, key string, op func(sess *session.Session) error) error {
	client.mu.Lock()
	sess := client.sess
	client.mu.Unlock()
	if sess == nil {
		return ErrNoSession
	}
	err := op(sess)
	if err == nil || ctx.Err() != nil {
		return err
	}
	client.logger.Warn().Err(err).Str("key", key).Msg("S3 request failed, refreshing session")
	if sess, err = client.refresh(); err != nil {
		return err
	}
	return op(sess)
}

func (client *Client) refresh() (*session.Session, error) {
	sess, err := client.newSession()
	client.mu.Lock()
	defer client.mu.Unlock()
	if err != nil {
		client.sess = nil
		client.logger.Err(err).Msg("Could not initialize S3 session")
		return nil, err
	}
	client.sess = sess
	return sess, nil
}

// newSession prefers the instance role and falls back to the credentials
// from the environment.
func (client *Client) newSession() (*session.Session, error) {
	base := aws.NewConfig().
		WithRegion(client.env.Region).
		WithMaxRetries(maxRetries).
		WithLogLevel(aws.LogDebug).
		WithLogger(sdkLogger(client.logger))

	if sess, err := verifiedSession(base); err == nil {
		client.logger.Info().Msg("S3 session initialized using EC2")
		return sess, nil
	}
	client.logger.Info().Msg("Could not initialize S3 session using EC2, trying env credentials")

	withEnv := base.Copy().WithCredentials(
		credentials.NewStaticCredentials(client.env.AccessKeyID, client.env.AccessKey, ""),
	)
	if client.env.T2PEnv == devEnv && client.env.AwsEndpoint != "" {
		withEnv = withEnv.WithEndpoint(client.env.AwsEndpoint).WithS3ForcePathStyle(true)
	}
	sess, err := verifiedSession(withEnv)
	if err != nil {
		return nil, fmt.Errorf("could not initialize S3 session: %w", err)
	}
	client.logger.Info().Msg("S3 session initialized using env credentials")
	return sess, nil
}

func verifiedSession(cfg *aws.Config) (*session.Session, error) {
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, err
	}
	if _, err = sts.New(sess).GetCallerIdentity(&sts.GetCallerIdentityInput{}); err != nil {
		return nil, err
	}
	return sess, nil
}

// sdkLogger routes aws sdk logs to zerolog.
func sdkLogger(parent zerolog.Logger) aws.Logger {
	sdkLog := parent.With().Str("source", "aws-sdk").Logger()
	return aws.LoggerFunc(func(args ...interface{}) {
		sdkLog.Debug().Msg(fmt.Sprint(args...))
	})
}

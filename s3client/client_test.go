package s3client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSDKLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := zerolog.New(&buf).Level(zerolog.DebugLevel)

	sdkLogger(parent).Log("DEBUG: Request ", "s3/GetObject")
	require.Contains(t, buf.String(), `"source":"aws-sdk"`)
	require.Contains(t, buf.String(), `DEBUG: Request s3/GetObject`)

	buf.Reset()
	sdkLogger(parent.Level(zerolog.InfoLevel)).Log("hidden")
	require.Empty(t, buf.String())
}

func TestClosedClient(t *testing.T) {
	client := &Client{env: EnvironmentConfig{BucketName: "bucket"}, logger: zerolog.Nop()}
	client.Close()

	_, err := client.Download(context.Background(), "parsed/chunk-1.json")
	require.True(t, errors.Is(err, ErrNoSession))
	err = client.Upload(context.Background(), "results/chunk-1.json", []byte("{}"), "application/json")
	require.True(t, errors.Is(err, ErrNoSession))
}

package rmq

import (
	"testing"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/require"
)

func TestConfigURL(t *testing.T) {
	cfg := Config{Host: "rabbit", Port: 5673, Username: "relex", Password: "p@ss"}

	uri, err := amqp.ParseURI(cfg.URL())
	require.NoError(t, err)
	require.Equal(t, "amqp", uri.Scheme)
	require.Equal(t, "rabbit", uri.Host)
	require.Equal(t, 5673, uri.Port)
	require.Equal(t, "relex", uri.Username)
	require.Equal(t, "p@ss", uri.Password)
	require.Equal(t, "/", uri.Vhost)
}

func TestForwardErrors(t *testing.T) {
	c := &Client{errors: make(chan *amqp.Error, 2)}
	consumer := make(chan *amqp.Error, 1)
	producer := make(chan *amqp.Error, 1)
	c.forwardErrors(consumer)
	c.forwardErrors(producer)

	producer <- &amqp.Error{Code: amqp.ConnectionForced, Reason: "shutdown"}
	close(producer)
	close(consumer)

	amqpErr := <-c.Errors()
	require.Equal(t, amqp.ConnectionForced, amqpErr.Code)
	require.Equal(t, "shutdown", amqpErr.Reason)
}

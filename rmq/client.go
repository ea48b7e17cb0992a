package rmq

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
	"text2phenotype.com/relex/logger"
)

type Config struct {
	Host                    string `envconfig:"MDL_COMN_RMQ_HOST" required:"true"`
	Port                    int    `envconfig:"MDL_COMN_RMQ_PORT" required:"true"`
	Username                string `envconfig:"MDL_COMN_RMQ_USERNAME" required:"true"`
	Password                string `envconfig:"MDL_COMN_RMQ_PASSWORD" required:"true"`
	Exchange                string `envconfig:"MDL_COMN_RMQ_DEFAULT_EXCHANGE" default:"text2phenotype-default-exchange"`
	MaxParallelRequestCount int    `envconfig:"RELEX_MQ_MAX_PARALLEL_REQUESTS" default:"5"`
	RelexTaskQueue          string `envconfig:"MDL_COMN_RELEX_TASK_QUEUE" required:"true"`
	SequencerTaskQueue      string `envconfig:"MDL_COMN_SEQUENCER_TASK_QUEUE" required:"true"`
}

func (cfg Config) URL() string {
	return amqp.URI{
		Scheme:   "amqp",
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
		Vhost:    "/",
	}.String()
}

// link is one connection with its channel. Consuming and publishing use
// separate links so a slow consumer does not block replies.
type link struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func dial(url string) (*link, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return &link{conn: conn, ch: ch}, nil
}

func (l *link) close() {
	if l != nil {
		_ = l.conn.Close()
	}
}

// Client consumes relations tasks and reports back to the sequencer.
type Client struct {
	config     Config
	consumer   *link
	producer   *link
	deliveries <-chan amqp.Delivery
	errors     chan *amqp.Error
	logger     zerolog.Logger
}

func NewClient() (*Client, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("rmq environment: %w", err)
	}
	return Dial(config)
}

func Dial(config Config) (*Client, error) {
	c := &Client{
		config: config,
		errors: make(chan *amqp.Error, 2),
		logger: logger.NewLogger("RMQ client").With().Str("queue", config.RelexTaskQueue).Logger(),
	}
	if err := c.open(); err != nil {
		c.Close()
		return nil, err
	}
	c.forwardErrors(c.consumer.ch.NotifyClose(make(chan *amqp.Error, 1)))
	c.forwardErrors(c.producer.ch.NotifyClose(make(chan *amqp.Error, 1)))
	c.logger.Info().Int("prefetch", config.MaxParallelRequestCount).Msg("Consuming relations tasks")
	return c, nil
}

func (c *Client) open() (err error) {
	if c.consumer, err = dial(c.config.URL()); err != nil {
		return fmt.Errorf("consumer connection: %w", err)
	}
	if c.producer, err = dial(c.config.URL()); err != nil {
		return fmt.Errorf("producer connection: %w", err)
	}
	c.deliveries, err = c.consume()
	return err
}

func (c *Client) consume() (<-chan amqp.Delivery, error) {
	ch := c.consumer.ch
	q, err := ch.QueueDeclarePassive(c.config.RelexTaskQueue, true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("declare %s: %w", c.config.RelexTaskQueue, err)
	}
	if err = ch.QueueBind(q.Name, q.Name, c.config.Exchange, false, nil); err != nil {
		return nil, fmt.Errorf("bind %s: %w", q.Name, err)
	}
	if err = ch.Qos(c.config.MaxParallelRequestCount, 0, false); err != nil {
		return nil, fmt.Errorf("qos: %w", err)
	}
	deliveries, err := ch.Consume(q.Name, "", false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("consume deliveries: %w", err)
	}
	return deliveries, nil
}

// forwardErrors passes the close reason of one channel on. A channel closed
// by Close sends nothing.
func (c *Client) forwardErrors(closed <-chan *amqp.Error) {
	go func() {
		for amqpErr := range closed {
			c.errors <- amqpErr
		}
	}()
}

func (c *Client) Deliveries() <-chan amqp.Delivery {
	return c.deliveries
}

// Errors reports channels closed by the broker.
func (c *Client) Errors() <-chan *amqp.Error {
	return c.errors
}

// Publish sends a message to the sequencer queue.
func (c *Client) Publish(contentType string, body []byte) error {
	return c.producer.ch.Publish(
		c.config.Exchange,
		c.config.SequencerTaskQueue,
		false,
		false,
		amqp.Publishing{ContentType: contentType, Body: body},
	)
}

func (c *Client) Close() {
	c.consumer.close()
	c.producer.close()
}

package redis

import (
	"context"
	"strings"

	"github.com/spf13/viper"

	"github.com/pankajvermacr7/rediskit/logging"
)

// Connector turns a configured connection URL into a registered RedisClient.
// It reads "{PREFIX}_URL" from the host application's configuration, resolves
// it, builds the client through its provider and stores the wrapper in a
// registry under the lowercased prefix for later lookup.
type Connector struct {
	prefix   string
	provider Provider
	opts     *Options
	metrics  *ConnectionMetrics
	client   *RedisClient
}

// ConnectorOption customizes a Connector.
type ConnectorOption func(*Connector)

// WithPrefix overrides the configuration namespace (default "REDIS").
func WithPrefix(prefix string) ConnectorOption {
	return func(c *Connector) { c.prefix = prefix }
}

// WithProvider substitutes the client provider, e.g. a test double or an
// instrumented construction path.
func WithProvider(provider Provider) ConnectorOption {
	return func(c *Connector) { c.provider = provider }
}

// WithOptions sets the construction knobs passed through to the provider.
func WithOptions(opts *Options) ConnectorOption {
	return func(c *Connector) { c.opts = opts }
}

// WithMetrics enables connection counters.
func WithMetrics(metrics *ConnectionMetrics) ConnectorOption {
	return func(c *Connector) { c.metrics = metrics }
}

// NewConnector creates a Connector with the standard go-redis provider.
func NewConnector(options ...ConnectorOption) *Connector {
	c := &Connector{
		prefix:   DefaultConfigPrefix,
		provider: StandardProvider{},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Prefix returns the configuration namespace of this connector.
func (c *Connector) Prefix() string {
	return c.prefix
}

// Client returns the most recently initialized client, or nil before the
// first successful InitFromConfig call.
func (c *Connector) Client() *RedisClient {
	return c.client
}

// InitFromConfig looks up "{PREFIX}_URL" in cfg (the global viper when nil),
// falls back to DefaultURL when the key is absent, connects, verifies the
// connection with a ping and registers the wrapper. Re-initialization under
// the same prefix replaces the registered client; the previous one is not
// closed. Callers that may initialize the same prefix concurrently must
// synchronize themselves.
func (c *Connector) InitFromConfig(ctx context.Context, cfg *viper.Viper, reg *Registry) (*RedisClient, error) {
	if cfg == nil {
		cfg = viper.GetViper()
	}
	if reg == nil {
		reg = DefaultRegistry
	}

	rawURL := cfg.GetString(c.prefix + "_URL")
	if rawURL == "" {
		rawURL = DefaultURL
	}

	logger := logging.NewLogger()

	target, err := ResolveURL(rawURL)
	if err != nil {
		return nil, err
	}

	client, err := Build(target, c.opts, c.provider)
	if err != nil {
		c.countError(target.Kind)
		return nil, err
	}
	if err := client.Ping(ctx).Err(); err != nil {
		c.countError(target.Kind)
		return nil, WrapError("connecting to Redis", rawURL, err)
	}

	wrapped := Wrap(client, c.opts)
	c.client = wrapped
	reg.Register(strings.ToLower(c.prefix), wrapped)

	if c.metrics != nil {
		c.metrics.ConnectionsOpened.WithLabelValues(target.Kind.String()).Inc()
	}
	logger.Info().
		Str("prefix", c.prefix).
		Str("mode", target.Kind.String()).
		Msg("Connected to Redis")

	return wrapped, nil
}

func (c *Connector) countError(kind TargetKind) {
	if c.metrics != nil {
		c.metrics.ConnectionErrors.WithLabelValues(kind.String()).Inc()
	}
}

package redis

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"os"

	"github.com/go-redis/redis/v8"
)

// Provider constructs clients from resolved connection targets. The default
// implementation is StandardProvider; supplying a custom provider allows
// substituting a test double or an instrumented client without touching the
// resolution logic.
type Provider interface {
	// Direct builds a client from a connection URL, passed through unchanged.
	Direct(rawURL string, opts *Options) (Client, error)
}

// SentinelProvider is the optional sentinel capability of a Provider.
// Build fails with ErrSentinelUnsupported when a sentinel URL meets a
// provider that does not implement it.
type SentinelProvider interface {
	Provider

	// Sentinel builds a discovery handle bound to the target's sentinel
	// hosts, timeout, security and credential parameters. No connection is
	// established until the handle is asked for a master.
	Sentinel(target *SentinelTarget, opts *Options) (SentinelConnector, error)
}

// SentinelConnector selects the current master of a monitored group.
type SentinelConnector interface {
	MasterFor(masterName string, db int) (Client, error)
}

// StandardProvider builds go-redis clients.
type StandardProvider struct{}

func (StandardProvider) Direct(rawURL string, opts *Options) (Client, error) {
	redisOpts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, WrapError("parsing redis URL", rawURL, err)
	}
	if opts != nil {
		redisOpts.PoolSize = opts.PoolSize
		redisOpts.MinIdleConns = opts.MinIdleConns
		redisOpts.MaxRetries = opts.MaxRetries
	}
	return redis.NewClient(redisOpts), nil
}

func (StandardProvider) Sentinel(target *SentinelTarget, opts *Options) (SentinelConnector, error) {
	tlsConfig, err := target.Security.tlsConfig()
	if err != nil {
		return nil, err
	}
	return &failoverConnector{target: target, opts: opts, tlsConfig: tlsConfig}, nil
}

// failoverConnector holds the sentinel-level parameters and produces the
// master client on demand via go-redis failover support.
type failoverConnector struct {
	target    *SentinelTarget
	opts      *Options
	tlsConfig *tls.Config
}

func (c *failoverConnector) MasterFor(masterName string, db int) (Client, error) {
	failoverOpts := &redis.FailoverOptions{
		MasterName:    masterName,
		SentinelAddrs: c.target.Addrs(),
		DB:            db,
		TLSConfig:     c.tlsConfig,
	}
	if creds := c.target.Credentials; creds.Username != "" || creds.Password != "" {
		failoverOpts.Username = creds.Username
		failoverOpts.Password = creds.Password
		// Sentinels are authenticated with the same password as the master.
		failoverOpts.SentinelPassword = creds.Password
	}
	if timeout := c.target.SocketTimeout; timeout > 0 {
		failoverOpts.DialTimeout = timeout
		failoverOpts.ReadTimeout = timeout
		failoverOpts.WriteTimeout = timeout
	}
	if c.opts != nil {
		failoverOpts.PoolSize = c.opts.PoolSize
		failoverOpts.MinIdleConns = c.opts.MinIdleConns
		failoverOpts.MaxRetries = c.opts.MaxRetries
	}
	return redis.NewFailoverClient(failoverOpts), nil
}

// tlsConfig materializes the security parameters, loading certificate files
// from disk. Resolution stays I/O-free; file access happens here, at build
// time.
func (s SecurityParams) tlsConfig() (*tls.Config, error) {
	if !s.Enabled {
		return nil, nil
	}
	config := &tls.Config{MinVersion: tls.VersionTLS12}
	switch s.CertReqs {
	case CertOptional, CertNone:
		config.InsecureSkipVerify = true // #nosec G402
	}
	if s.CertFile != "" && s.KeyFile != "" {
		cert, err := tls.LoadX509KeyPair(s.CertFile, s.KeyFile)
		if err != nil {
			return nil, WrapError("loading client certificate", s.CertFile, err)
		}
		config.Certificates = []tls.Certificate{cert}
	}
	if s.CACerts != "" {
		pem, err := os.ReadFile(s.CACerts)
		if err != nil {
			return nil, WrapError("reading CA certificates", s.CACerts, err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, WrapError("parsing CA certificates", s.CACerts, errors.New("no certificates found"))
		}
		config.RootCAs = pool
	}
	return config, nil
}

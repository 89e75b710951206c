package redis

import (
	"net"
	"strconv"
	"time"
)

const (
	// DefaultConfigPrefix is the configuration namespace used when none is given.
	DefaultConfigPrefix = "REDIS"

	// DefaultURL is used when the "{PREFIX}_URL" configuration key is absent.
	DefaultURL = "redis://localhost:6379/0"

	// DefaultSentinelPort is applied to sentinel host tokens without an explicit port.
	DefaultSentinelPort = 26379
)

// Options holds the construction knobs passed through to the underlying
// go-redis client. Zero values leave the client library defaults in place.
type Options struct {
	PoolSize     int           // Maximum number of connections in the pool
	MinIdleConns int           // Minimum number of idle connections
	MaxRetries   int           // Maximum number of command retries
	DefaultTTL   time.Duration // Default expiration time for keys set via the wrapper
}

// TargetKind tags a ConnectionTarget variant.
type TargetKind int

const (
	// TargetDirect connects to a single endpoint using the URL unchanged.
	TargetDirect TargetKind = iota
	// TargetSentinel discovers the master through a set of sentinel nodes.
	TargetSentinel
)

func (k TargetKind) String() string {
	if k == TargetSentinel {
		return "sentinel"
	}
	return "direct"
}

// HostPort is a single sentinel endpoint.
type HostPort struct {
	Host string
	Port int
}

// Addr returns the endpoint in the host:port form go-redis expects.
func (hp HostPort) Addr() string {
	return net.JoinHostPort(hp.Host, strconv.Itoa(hp.Port))
}

// CertRequirement mirrors the ssl_cert_reqs levels of the connection URL.
type CertRequirement int

const (
	CertUnspecified CertRequirement = iota
	CertRequired
	CertOptional
	CertNone
)

// SecurityParams carries transport security settings for sentinel targets.
// Fields other than Enabled are only populated when Enabled is true.
type SecurityParams struct {
	Enabled  bool
	CertReqs CertRequirement
	KeyFile  string
	CertFile string
	CACerts  string
}

// Credentials carries authentication extracted from the URL authority.
// Empty fields mean "not supplied" and are never forwarded downstream, so
// the client library defaults still apply.
type Credentials struct {
	Username string
	Password string
}

// SentinelTarget describes a sentinel-mediated topology resolved from a URL.
type SentinelTarget struct {
	Hosts         []HostPort // priority order, preserved from the URL
	MasterName    string
	DB            int
	SocketTimeout time.Duration // zero means no override
	Security      SecurityParams
	Credentials   Credentials
}

// Addrs returns the sentinel endpoints in priority order.
func (t *SentinelTarget) Addrs() []string {
	addrs := make([]string, 0, len(t.Hosts))
	for _, hp := range t.Hosts {
		addrs = append(addrs, hp.Addr())
	}
	return addrs
}

// ConnectionTarget is the resolved form of a connection URL. Exactly one of
// URL or Sentinel is meaningful, selected by Kind.
type ConnectionTarget struct {
	Kind     TargetKind
	URL      string          // TargetDirect: the input URL, unchanged
	Sentinel *SentinelTarget // TargetSentinel
}

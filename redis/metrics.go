package redis

import (
	"github.com/prometheus/client_golang/prometheus"
)

type ConnectionMetrics struct {
	ConnectionsOpened *prometheus.CounterVec
	ConnectionErrors  *prometheus.CounterVec
}

func NewConnectionMetrics() *ConnectionMetrics {
	return &ConnectionMetrics{
		ConnectionsOpened: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "redis_connections_opened_total",
			Help: "Total number of Redis clients initialized",
		}, []string{"mode"}),
		ConnectionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "redis_connection_errors_total",
			Help: "Total number of Redis client initialization failures",
		}, []string{"mode"}),
	}
}

// Register registers the collectors with the given registerer.
func (m *ConnectionMetrics) Register(reg prometheus.Registerer) error {
	if err := reg.Register(m.ConnectionsOpened); err != nil {
		return err
	}
	return reg.Register(m.ConnectionErrors)
}

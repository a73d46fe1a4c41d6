package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ace-ify/Blud-Dona/internal/infrastructure/gateway"
)

// Monitor probes the data gateway and Redis on a cron schedule and caches
// the last observed status for the health endpoint.
type Monitor struct {
	gateway *gateway.Client
	redis   *redis.Client

	status   Status
	mu       sync.RWMutex
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

func New(gw *gateway.Client, redisClient *redis.Client, schedule string, logger *zap.Logger) *Monitor {
	if schedule == "" {
		schedule = "@every 10s"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		gateway:  gw,
		redis:    redisClient,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger,
	}
}

// Start performs an initial probe and schedules periodic refreshes.
func (m *Monitor) Start() error {
	m.refresh()
	if _, err := m.cron.AddFunc(m.schedule, m.refresh); err != nil {
		return err
	}
	m.cron.Start()
	return nil
}

// Stop halts the schedule and waits for an in-flight probe to finish.
func (m *Monitor) Stop() {
	<-m.cron.Stop().Done()
}

// IsOnline reports whether the data gateway answered the last probe.
func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Gateway
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) refresh() {
	status := Status{
		Gateway:   m.checkGateway(),
		Redis:     m.checkRedis(),
		LastCheck: time.Now(),
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

func (m *Monitor) checkGateway() bool {
	if m.gateway == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := m.gateway.Ping(ctx); err != nil {
		m.logger.Warn("gateway probe failed", zap.Error(err))
		return false
	}
	return true
}

func (m *Monitor) checkRedis() bool {
	if m.redis == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return m.redis.Ping(ctx).Err() == nil
}

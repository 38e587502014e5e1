package uptime

import (
	"sync"
	"time"

	"github.com/aescanero/kvitems/pkg/ports"
	"go.uber.org/zap"
)

// DefaultInterval is how often the uptime gauge is refreshed
const DefaultInterval = 5 * time.Second

// Ticker periodically publishes process uptime
type Ticker struct {
	startedAt time.Time
	interval  time.Duration
	metrics   ports.MetricsCollector
	logger    *zap.Logger

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewTicker creates a new uptime ticker measuring from startedAt
func NewTicker(startedAt time.Time, interval time.Duration, metrics ports.MetricsCollector, logger *zap.Logger) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Ticker{
		startedAt: startedAt,
		interval:  interval,
		metrics:   metrics,
		logger:    logger,
	}
}

// Start sets the gauge and begins refreshing it every interval
func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return
	}
	t.running = true
	t.stopCh = make(chan struct{})
	t.doneCh = make(chan struct{})

	t.logger.Debug("starting uptime ticker", zap.Duration("interval", t.interval))

	t.update()
	go t.run(t.stopCh, t.doneCh)
}

// Stop stops the ticker and waits for its goroutine to exit
func (t *Ticker) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	stopCh, doneCh := t.stopCh, t.doneCh
	t.mu.Unlock()

	close(stopCh)
	<-doneCh
}

// run is the main update loop
func (t *Ticker) run(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			t.update()
		}
	}
}

// update publishes the elapsed time since start
func (t *Ticker) update() {
	t.metrics.SetUptime(time.Since(t.startedAt))
}

package jobs

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"showlink/internal/config"
)

const defaultPingInterval = 5 * time.Minute

// Pinger logs a heartbeat line on every tick so that idle instances stay warm
// and their liveness is visible in the logs.
type Pinger struct {
	interval time.Duration
	logger   *logrus.Entry
}

func NewPinger(conf config.PingConfig, logger *logrus.Entry) *Pinger {
	interval := conf.Interval
	if interval <= 0 {
		interval = defaultPingInterval
	}
	return &Pinger{
		interval: interval,
		logger:   logger,
	}
}

func (p *Pinger) Ping() {
	p.logger.Info("Ping success ...")
}

// Run blocks until ctx is cancelled.
func (p *Pinger) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer func() {
		ticker.Stop()
		p.logger.Info("ping job stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Ping()
		}
	}
}

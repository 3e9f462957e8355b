package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"showlink/internal/config"
)

func TestNewPinger_DefaultInterval(t *testing.T) {
	logger, _ := test.NewNullLogger()
	p := NewPinger(config.PingConfig{Enabled: true}, logrus.NewEntry(logger))
	if p.interval != defaultPingInterval {
		t.Errorf("interval = %v, want %v", p.interval, defaultPingInterval)
	}
}

func TestPinger_Run(t *testing.T) {
	logger, hook := test.NewNullLogger()
	p := NewPinger(config.PingConfig{Enabled: true, Interval: 5 * time.Millisecond}, logrus.NewEntry(logger))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for {
		pings := 0
		for _, e := range hook.AllEntries() {
			if e.Message == "Ping success ..." {
				pings++
			}
		}
		if pings >= 2 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("expected at least two pings, got %d", pings)
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/clambin/remeha-exporter/internal/remeha"
	"github.com/clambin/remeha-exporter/pkg/pubsub"
)

//go:generate mockery --name Poller
type Poller interface {
	Subscribe() <-chan Update
	Unsubscribe(ch <-chan Update)
	Refresh()
}

// EventKind identifies a change in the poller's state.
type EventKind int

const (
	Paused EventKind = iota
	Resumed
)

func (k EventKind) String() string {
	switch k {
	case Paused:
		return "paused"
	case Resumed:
		return "resumed"
	default:
		return "unknown"
	}
}

// Event is sent to the Notifier when the poller pauses or resumes.
type Event struct {
	Kind EventKind
	Err  error
}

//go:generate mockery --name Notifier
type Notifier interface {
	Notify(Event)
}

var _ Poller = &RemehaPoller{}

// RemehaPoller runs an update cycle at every interval and publishes the result to all subscribers.
//
// If the API rejects the credentials, scheduled cycles are skipped until Refresh is called.
type RemehaPoller struct {
	*Coordinator
	*pubsub.Publisher[Update]
	Notifier Notifier
	interval time.Duration
	logger   *slog.Logger
	refresh  chan struct{}
	lock     sync.Mutex
	paused   bool
}

func New(source remeha.DataSource, interval time.Duration, logger *slog.Logger) *RemehaPoller {
	return &RemehaPoller{
		Coordinator: NewCoordinator(source, logger.With(slog.String("component", "coordinator"))),
		Publisher:   pubsub.New[Update](logger.With(slog.String("component", "publisher"))),
		interval:    interval,
		logger:      logger,
		refresh:     make(chan struct{}, 1),
	}
}

func (p *RemehaPoller) Run(ctx context.Context) error {
	p.logger.Debug("started", slog.Duration("interval", p.interval))
	defer p.logger.Debug("stopped")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx, false)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.poll(ctx, false)
		case <-p.refresh:
			p.poll(ctx, true)
		}
	}
}

// Refresh requests an immediate update cycle. If a request is already pending, Refresh does nothing.
func (p *RemehaPoller) Refresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

// Paused reports whether scheduled update cycles are suspended.
func (p *RemehaPoller) Paused() bool {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.paused
}

func (p *RemehaPoller) poll(ctx context.Context, forced bool) {
	if p.Paused() && !forced {
		p.logger.Debug("polling paused. waiting for refresh")
		return
	}

	start := time.Now()
	update, err := p.Coordinator.Snapshot(ctx)
	if err != nil {
		p.logger.Error("failed to update remeha data", slog.Any("err", err))
		if errors.Is(err, ErrAuthRequired) && !p.setPaused(true) {
			p.notify(Event{Kind: Paused, Err: err})
		}
		return
	}
	if p.setPaused(false) {
		p.notify(Event{Kind: Resumed})
	}

	p.Publisher.Publish(update)
	p.logger.Debug("poll completed", slog.Duration("duration", time.Since(start)), slog.Any("update", update))
}

// setPaused sets the paused state and returns the previous one.
func (p *RemehaPoller) setPaused(paused bool) bool {
	p.lock.Lock()
	defer p.lock.Unlock()
	previous := p.paused
	p.paused = paused
	return previous
}

func (p *RemehaPoller) notify(event Event) {
	p.logger.Info("polling state changed", slog.String("state", event.Kind.String()), slog.Any("err", event.Err))
	if p.Notifier != nil {
		p.Notifier.Notify(event)
	}
}

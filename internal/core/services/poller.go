package services

import (
	"context"
	"errors"
	"time"

	"github.com/gabiest/hostsdash/internal/core/domain"
)

// Poller re-runs the fetch-and-replace path on a fixed interval. It shares the
// refresh guard inside InventoryService with manual refresh, so a tick that
// fires while another refresh is in flight is skipped, not queued.
type Poller struct {
	service  *InventoryService
	interval time.Duration

	// OnUpdate is called after every successful refresh with the new list.
	OnUpdate func(assets []domain.Asset)

	// OnError is called when a tick's refresh fails. Skipped ticks are not
	// errors.
	OnError func(err error)

	stop chan struct{}
	done chan struct{}
}

// NewPoller creates a poller around the dispatcher. It does not start ticking
// until Start is called.
func NewPoller(service *InventoryService, interval time.Duration) *Poller {
	return &Poller{
		service:  service,
		interval: interval,
	}
}

// Start begins polling in a background goroutine. The first fetch happens
// after one interval; callers wanting an immediate load run Refresh themselves
// first.
func (p *Poller) Start(ctx context.Context) {
	p.stop = make(chan struct{})
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				p.tick(ctx)
			case <-ctx.Done():
				return
			case <-p.stop:
				return
			}
		}
	}()
}

// Stop halts the poller and waits for the loop to exit. Safe to call once
// after Start.
func (p *Poller) Stop() {
	if p.stop == nil {
		return
	}
	close(p.stop)
	<-p.done
	p.stop = nil
}

func (p *Poller) tick(ctx context.Context) {
	err := p.service.Refresh(ctx)
	if errors.Is(err, ErrRefreshInFlight) {
		return
	}
	if err != nil {
		if p.OnError != nil {
			p.OnError(err)
		}
		return
	}
	if p.OnUpdate != nil {
		p.OnUpdate(p.service.Store().Current())
	}
}

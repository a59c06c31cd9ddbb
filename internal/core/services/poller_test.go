package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gabiest/hostsdash/internal/core/domain"
	"github.com/gabiest/hostsdash/internal/core/ports/mocks"
)

func TestPollerRefreshesOnInterval(t *testing.T) {
	api := mocks.NewMockInventoryAPI()
	api.Seed(testAssets())
	svc := NewInventoryService(api, NewStore())

	var updates atomic.Int32
	p := NewPoller(svc, 10*time.Millisecond)
	p.OnUpdate = func(assets []domain.Asset) {
		if len(assets) != 3 {
			t.Errorf("poller delivered %d assets, want 3", len(assets))
		}
		updates.Add(1)
	}

	p.Start(context.Background())
	time.Sleep(60 * time.Millisecond)
	p.Stop()

	if updates.Load() == 0 {
		t.Error("poller never delivered an update")
	}
	if svc.Store().Len() != 3 {
		t.Errorf("store not populated by poller, len=%d", svc.Store().Len())
	}
}

func TestPollerStopIsIdempotentBeforeStart(t *testing.T) {
	p := NewPoller(NewInventoryService(mocks.NewMockInventoryAPI(), NewStore()), time.Second)
	p.Stop() // must not panic when never started
}

func TestPollerStopsTicking(t *testing.T) {
	api := mocks.NewMockInventoryAPI()
	svc := NewInventoryService(api, NewStore())

	var updates atomic.Int32
	p := NewPoller(svc, 5*time.Millisecond)
	p.OnUpdate = func([]domain.Asset) { updates.Add(1) }

	p.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	p.Stop()

	after := updates.Load()
	time.Sleep(30 * time.Millisecond)
	if updates.Load() != after {
		t.Error("poller kept ticking after Stop")
	}
}

func TestPollerReportsErrors(t *testing.T) {
	api := mocks.NewMockInventoryAPI()
	api.Err = context.DeadlineExceeded
	svc := NewInventoryService(api, NewStore())

	errCh := make(chan error, 1)
	p := NewPoller(svc, 5*time.Millisecond)
	p.OnError = func(err error) {
		select {
		case errCh <- err:
		default:
		}
	}

	p.Start(context.Background())
	defer p.Stop()

	select {
	case <-errCh:
	case <-time.After(200 * time.Millisecond):
		t.Error("poller never reported the fetch error")
	}
}

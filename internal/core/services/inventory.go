package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gabiest/hostsdash/internal/core/domain"
	"github.com/gabiest/hostsdash/internal/core/ports"
)

// ErrRefreshInFlight is returned when a refresh is requested while another one
// is still running. Callers that poll treat it as "skip this tick".
var ErrRefreshInFlight = errors.New("refresh already in flight")

// ErrScanInFlight is returned when a scan is triggered while another scan is
// still running.
var ErrScanInFlight = errors.New("scan already running")

// InventoryService maps user intents to backend calls and store refreshes.
// A failed mutation never touches the store; the next successful refresh is
// the only path back to a consistent view.
type InventoryService struct {
	api   ports.InventoryAPI
	store *Store

	refreshMu sync.Mutex
	scanMu    sync.Mutex
	scanning  bool
}

// NewInventoryService creates the dispatcher around a backend port and the
// store it refreshes.
func NewInventoryService(api ports.InventoryAPI, store *Store) *InventoryService {
	return &InventoryService{api: api, store: store}
}

// Store exposes the service's asset cache.
func (s *InventoryService) Store() *Store {
	return s.store
}

// Refresh fetches the full asset list and replaces the store wholesale.
// Manual refresh and the poller share this path, so at most one fetch runs at
// a time; a second caller gets ErrRefreshInFlight instead of a duplicate
// request.
func (s *InventoryService) Refresh(ctx context.Context) error {
	if !s.refreshMu.TryLock() {
		return ErrRefreshInFlight
	}
	defer s.refreshMu.Unlock()

	assets, err := s.api.ListAssets(ctx)
	if err != nil {
		return fmt.Errorf("failed to load assets: %w", err)
	}

	s.store.Replace(assets)
	return nil
}

// SaveResult tells the caller whether Save created or updated.
type SaveResult struct {
	Asset   domain.Asset
	Created bool
}

// Save validates the record, issues a POST when it has no id and a PUT when it
// does, and refreshes the store on success. On failure nothing changes.
func (s *InventoryService) Save(ctx context.Context, asset domain.Asset) (*SaveResult, error) {
	if asset.Name == "" {
		return nil, fmt.Errorf("o campo nome é obrigatório")
	}
	if asset.Status == "" {
		asset.Status = domain.StatusOnline
	}
	if asset.Condition == "" {
		asset.Condition = domain.ConditionAvailable
	}
	if asset.Type == "" {
		asset.Type = CategoryOther
	}

	var (
		saved   *domain.Asset
		created bool
		err     error
	)
	if asset.IsNew() {
		saved, err = s.api.CreateAsset(ctx, asset)
		created = true
	} else {
		saved, err = s.api.UpdateAsset(ctx, asset.ID, asset)
	}
	if err != nil {
		return nil, err
	}

	if err := s.Refresh(ctx); err != nil && !errors.Is(err, ErrRefreshInFlight) {
		return nil, err
	}

	result := &SaveResult{Created: created}
	if saved != nil {
		result.Asset = *saved
	} else {
		result.Asset = asset
	}
	return result, nil
}

// Delete removes the asset and refreshes the store. Confirmation is the
// caller's job; by the time Delete runs the user has already said yes.
func (s *InventoryService) Delete(ctx context.Context, id int) error {
	if err := s.api.DeleteAsset(ctx, id); err != nil {
		return err
	}

	if err := s.Refresh(ctx); err != nil && !errors.Is(err, ErrRefreshInFlight) {
		return err
	}
	return nil
}

// Reset wipes the whole inventory and clears the store.
func (s *InventoryService) Reset(ctx context.Context) error {
	if err := s.api.ResetAssets(ctx); err != nil {
		return err
	}
	s.store.Replace(nil)
	return nil
}

// ScanStatus triggers the backend ping sweep. Only one scan runs at a time;
// the guard is always released, success or failure.
func (s *InventoryService) ScanStatus(ctx context.Context) error {
	return s.scan(ctx, s.api.ScanStatus)
}

// ScanNetwork triggers the full discovery scan under the same guard.
func (s *InventoryService) ScanNetwork(ctx context.Context) error {
	return s.scan(ctx, s.api.ScanNetwork)
}

// Scanning reports whether a scan is currently in flight, so the UI can keep
// the triggering control disabled.
func (s *InventoryService) Scanning() bool {
	s.scanMu.Lock()
	defer s.scanMu.Unlock()
	return s.scanning
}

func (s *InventoryService) scan(ctx context.Context, run func(context.Context) error) error {
	s.scanMu.Lock()
	if s.scanning {
		s.scanMu.Unlock()
		return ErrScanInFlight
	}
	s.scanning = true
	s.scanMu.Unlock()

	defer func() {
		s.scanMu.Lock()
		s.scanning = false
		s.scanMu.Unlock()
	}()

	if err := run(ctx); err != nil {
		return err
	}

	if err := s.Refresh(ctx); err != nil && !errors.Is(err, ErrRefreshInFlight) {
		return err
	}
	return nil
}

// Search narrows the cached list synchronously; it never issues a request.
func (s *InventoryService) Search(term string) []domain.Asset {
	return s.store.Filter(term)
}

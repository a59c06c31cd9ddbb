package services

import (
	"context"
	"errors"
	"testing"

	"github.com/gabiest/hostsdash/internal/core/domain"
	"github.com/gabiest/hostsdash/internal/core/ports/mocks"
)

func newTestService(seed []domain.Asset) (*InventoryService, *mocks.MockInventoryAPI) {
	api := mocks.NewMockInventoryAPI()
	api.Seed(seed)
	return NewInventoryService(api, NewStore()), api
}

func TestRefreshReplacesStore(t *testing.T) {
	svc, _ := newTestService(testAssets())
	ctx := context.Background()

	if err := svc.Refresh(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	if svc.Store().Len() != 3 {
		t.Errorf("store should hold 3 assets, has %d", svc.Store().Len())
	}
}

func TestRefreshFailureLeavesStoreUntouched(t *testing.T) {
	svc, api := newTestService(testAssets())
	ctx := context.Background()

	if err := svc.Refresh(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	api.Err = errors.New("backend down")
	if err := svc.Refresh(ctx); err == nil {
		t.Fatal("expected refresh error")
	}

	// The store still shows the last successful fetch
	if svc.Store().Len() != 3 {
		t.Errorf("failed refresh must not clear the store, len=%d", svc.Store().Len())
	}
}

func TestSaveWithoutIDCreates(t *testing.T) {
	svc, api := newTestService(nil)
	ctx := context.Background()

	result, err := svc.Save(ctx, domain.Asset{Name: "Notebook Dell", IPAddress: "10.0.0.5"})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if !result.Created {
		t.Error("save without id should create")
	}
	if api.CreateCalls != 1 || api.UpdateCalls != 0 {
		t.Errorf("expected 1 create / 0 updates, got %d/%d", api.CreateCalls, api.UpdateCalls)
	}
	if result.Asset.ID == 0 {
		t.Error("created asset should carry the backend-assigned id")
	}

	// A successful save triggers a fresh fetch
	if api.ListCalls != 1 {
		t.Errorf("save should refresh the store, list calls = %d", api.ListCalls)
	}
	if svc.Store().Len() != 1 {
		t.Errorf("store should reflect the new asset, len=%d", svc.Store().Len())
	}
}

func TestSaveWithIDUpdates(t *testing.T) {
	svc, api := newTestService(testAssets())
	ctx := context.Background()

	edited := domain.Asset{ID: 2, Name: "Notebook Dell XPS", Status: "Online", Condition: "Disponível", Type: "Notebook"}
	result, err := svc.Save(ctx, edited)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if result.Created {
		t.Error("save with id should update, not create")
	}
	if api.UpdateCalls != 1 || api.CreateCalls != 0 {
		t.Errorf("expected 1 update / 0 creates, got %d/%d", api.UpdateCalls, api.CreateCalls)
	}

	got, ok := svc.Store().Find(2)
	if !ok || got.Name != "Notebook Dell XPS" {
		t.Errorf("store should reflect the update after refresh, got %+v", got)
	}
}

func TestSaveFailureIssuesNoRefresh(t *testing.T) {
	svc, api := newTestService(nil)
	ctx := context.Background()

	api.Err = errors.New("erro no servidor")
	if _, err := svc.Save(ctx, domain.Asset{Name: "Switch Core"}); err == nil {
		t.Fatal("expected save error")
	}

	if api.ListCalls != 0 {
		t.Errorf("failed save must not trigger a refresh, list calls = %d", api.ListCalls)
	}
}

func TestSaveRejectsEmptyName(t *testing.T) {
	svc, api := newTestService(nil)

	if _, err := svc.Save(context.Background(), domain.Asset{}); err == nil {
		t.Fatal("expected validation error for empty name")
	}

	// Local validation blocks the operation before any network call
	if api.CreateCalls != 0 && api.UpdateCalls != 0 {
		t.Error("validation failure must not reach the backend")
	}
}

func TestDeleteRemovesAndRefreshes(t *testing.T) {
	svc, api := newTestService(testAssets())
	ctx := context.Background()

	if err := svc.Delete(ctx, 2); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if api.LastDeletedID != 2 {
		t.Errorf("deleted id = %d, want 2", api.LastDeletedID)
	}
	if _, ok := svc.Store().Find(2); ok {
		t.Error("deleted asset still in store after refresh")
	}
	if svc.Store().Len() != 2 {
		t.Errorf("store len = %d, want 2", svc.Store().Len())
	}
}

func TestScanGuardsAgainstDuplicates(t *testing.T) {
	svc, api := newTestService(testAssets())
	ctx := context.Background()

	if err := svc.ScanStatus(ctx); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if api.ScanStatusN != 1 {
		t.Errorf("scan-status calls = %d, want 1", api.ScanStatusN)
	}

	// The guard is released after completion, so a second scan is allowed
	if err := svc.ScanNetwork(ctx); err != nil {
		t.Fatalf("second scan failed: %v", err)
	}
	if svc.Scanning() {
		t.Error("scanning flag should be cleared after completion")
	}
}

func TestScanGuardReleasedOnFailure(t *testing.T) {
	svc, api := newTestService(nil)
	ctx := context.Background()

	api.Err = errors.New("scan blew up")
	if err := svc.ScanStatus(ctx); err == nil {
		t.Fatal("expected scan error")
	}

	// Re-enabled unconditionally on failure
	if svc.Scanning() {
		t.Error("scanning flag must be cleared even when the scan fails")
	}

	api.Err = nil
	if err := svc.ScanStatus(ctx); err != nil {
		t.Fatalf("scan after failure should work: %v", err)
	}
}

func TestResetClearsStore(t *testing.T) {
	svc, api := newTestService(testAssets())
	ctx := context.Background()

	if err := svc.Refresh(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if err := svc.Reset(ctx); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	if api.ResetCalls != 1 {
		t.Errorf("reset calls = %d, want 1", api.ResetCalls)
	}
	if svc.Store().Len() != 0 {
		t.Errorf("store should be empty after reset, len=%d", svc.Store().Len())
	}
}

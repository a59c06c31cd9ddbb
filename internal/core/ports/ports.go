package ports

import (
	"context"

	"github.com/gabiest/hostsdash/internal/core/domain"
)

// InventoryAPI defines the port for the asset inventory backend.
type InventoryAPI interface {
	// ListAssets returns all assets in server order.
	ListAssets(ctx context.Context) ([]domain.Asset, error)

	// ListOnlineAssets returns only assets whose status is Online.
	ListOnlineAssets(ctx context.Context) ([]domain.Asset, error)

	// Stats returns the aggregate dashboard counters.
	Stats(ctx context.Context) (*domain.Stats, error)

	// TypeCounts returns the per-type breakdown.
	TypeCounts(ctx context.Context) ([]domain.TypeCount, error)

	// CreateAsset persists a new asset. The backend assigns the id.
	CreateAsset(ctx context.Context, asset domain.Asset) (*domain.Asset, error)

	// UpdateAsset replaces the asset with the given id.
	UpdateAsset(ctx context.Context, id int, asset domain.Asset) (*domain.Asset, error)

	// DeleteAsset removes an asset by id.
	DeleteAsset(ctx context.Context, id int) error

	// ResetAssets wipes the whole inventory.
	ResetAssets(ctx context.Context) error

	// ScanStatus triggers a backend ping sweep updating Online/Offline.
	ScanStatus(ctx context.Context) error

	// ScanNetwork triggers a full backend discovery scan.
	ScanNetwork(ctx context.Context) error

	// Login authenticates and returns the user identity.
	Login(ctx context.Context, email, password string) (*domain.User, error)

	// ChangePassword swaps the user's password after verifying the current one.
	ChangePassword(ctx context.Context, userID int, current, next string) error
}

// SessionStore defines the port for the persisted login session.
type SessionStore interface {
	// Save persists the user record.
	Save(user domain.User) error

	// Load returns the stored user, or nil when nobody is logged in.
	Load() (*domain.User, error)

	// Clear removes the stored session.
	Clear() error
}

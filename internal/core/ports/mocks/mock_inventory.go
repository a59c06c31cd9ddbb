package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/gabiest/hostsdash/internal/core/domain"
)

// MockInventoryAPI is a mock implementation of the InventoryAPI port for testing
type MockInventoryAPI struct {
	mu     sync.RWMutex
	assets []domain.Asset
	nextID int
	users  map[string]string // email -> password

	// Err, when set, is returned by every call.
	Err error

	// Call counters so tests can assert on which requests were issued.
	ListCalls     int
	CreateCalls   int
	UpdateCalls   int
	DeleteCalls   int
	ScanStatusN   int
	ScanNetworkN  int
	ResetCalls    int
	LastDeletedID int
}

// NewMockInventoryAPI creates an empty mock backend
func NewMockInventoryAPI() *MockInventoryAPI {
	return &MockInventoryAPI{
		nextID: 1,
		users:  make(map[string]string),
	}
}

// Seed replaces the mock's asset table
func (m *MockInventoryAPI) Seed(assets []domain.Asset) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.assets = append([]domain.Asset(nil), assets...)
	for _, a := range assets {
		if a.ID >= m.nextID {
			m.nextID = a.ID + 1
		}
	}
}

// SeedUser registers a login credential
func (m *MockInventoryAPI) SeedUser(email, password string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[email] = password
}

// ListAssets returns all assets in insertion order
func (m *MockInventoryAPI) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	m.mu.Lock()
	m.ListCalls++
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Asset(nil), m.assets...), nil
}

// ListOnlineAssets returns only Online assets
func (m *MockInventoryAPI) ListOnlineAssets(ctx context.Context) ([]domain.Asset, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var online []domain.Asset
	for _, a := range m.assets {
		if a.Online() {
			online = append(online, a)
		}
	}
	return online, nil
}

// Stats derives the aggregate counters from the seeded assets
func (m *MockInventoryAPI) Stats(ctx context.Context) (*domain.Stats, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	s := &domain.Stats{TotalAssets: len(m.assets), TotalUsers: len(m.users)}
	for _, a := range m.assets {
		if a.Online() {
			s.OnlineAssets++
		} else {
			s.OfflineAssets++
		}
	}
	return s, nil
}

// TypeCounts groups the seeded assets by type
func (m *MockInventoryAPI) TypeCounts(ctx context.Context) ([]domain.TypeCount, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[string]int)
	var order []string
	for _, a := range m.assets {
		typ := a.Type
		if typ == "" {
			typ = "Não Classificado"
		}
		if _, seen := counts[typ]; !seen {
			order = append(order, typ)
		}
		counts[typ]++
	}

	result := make([]domain.TypeCount, 0, len(order))
	for _, typ := range order {
		result = append(result, domain.TypeCount{Type: typ, Count: counts[typ]})
	}
	return result, nil
}

// CreateAsset stores the asset and assigns the next id
func (m *MockInventoryAPI) CreateAsset(ctx context.Context, asset domain.Asset) (*domain.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateCalls++
	if m.Err != nil {
		return nil, m.Err
	}

	asset.ID = m.nextID
	m.nextID++
	m.assets = append(m.assets, asset)
	return &asset, nil
}

// UpdateAsset replaces the asset with the given id
func (m *MockInventoryAPI) UpdateAsset(ctx context.Context, id int, asset domain.Asset) (*domain.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.UpdateCalls++
	if m.Err != nil {
		return nil, m.Err
	}

	for i := range m.assets {
		if m.assets[i].ID == id {
			asset.ID = id
			m.assets[i] = asset
			return &asset, nil
		}
	}
	return nil, fmt.Errorf("ativo não encontrado: %d", id)
}

// DeleteAsset removes the asset with the given id
func (m *MockInventoryAPI) DeleteAsset(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.DeleteCalls++
	m.LastDeletedID = id
	if m.Err != nil {
		return m.Err
	}

	for i := range m.assets {
		if m.assets[i].ID == id {
			m.assets = append(m.assets[:i], m.assets[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("ativo não encontrado: %d", id)
}

// ResetAssets wipes the asset table
func (m *MockInventoryAPI) ResetAssets(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ResetCalls++
	if m.Err != nil {
		return m.Err
	}
	m.assets = nil
	return nil
}

// ScanStatus counts the call and returns
func (m *MockInventoryAPI) ScanStatus(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ScanStatusN++
	return m.Err
}

// ScanNetwork counts the call and returns
func (m *MockInventoryAPI) ScanNetwork(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ScanNetworkN++
	return m.Err
}

// Login checks the seeded credentials
func (m *MockInventoryAPI) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if stored, ok := m.users[email]; ok && stored == password {
		return &domain.User{ID: 1, Name: "Usuário Teste", Email: email}, nil
	}
	return nil, fmt.Errorf("email ou senha incorretos")
}

// ChangePassword verifies the current password for the single seeded user
func (m *MockInventoryAPI) ChangePassword(ctx context.Context, userID int, current, next string) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for email, pw := range m.users {
		if pw == current {
			m.users[email] = next
			return nil
		}
	}
	return fmt.Errorf("senha atual incorreta")
}

// MockSessionStore is an in-memory SessionStore for testing
type MockSessionStore struct {
	mu   sync.Mutex
	user *domain.User
}

// NewMockSessionStore creates an empty session store
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{}
}

// Save keeps the user in memory
func (m *MockSessionStore) Save(user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = &user
	return nil
}

// Load returns the stored user or nil
func (m *MockSessionStore) Load() (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil, nil
	}
	u := *m.user
	return &u, nil
}

// Clear forgets the stored user
func (m *MockSessionStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	return nil
}

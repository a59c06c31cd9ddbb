package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gabiest/hostsdash/internal/core/domain"
	"github.com/gabiest/hostsdash/internal/core/ports"
)

// APIError carries the backend's own error message when the response body has
// one, plus the HTTP status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("falha na requisição (HTTP %d)", e.StatusCode)
}

// Client talks to the inventory backend over its REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL. A timeout of 0 means
// requests are never cut short; a hung backend hangs the caller.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Ensure it implements the interface
var _ ports.InventoryAPI = (*Client)(nil)

// mutationResponse covers both response shapes the backend has used for
// writes: the current {ativo: {...}} and the older {mensagem, id}.
type mutationResponse struct {
	Asset   *domain.Asset `json:"ativo"`
	ID      int           `json:"id"`
	Message string        `json:"mensagem"`
	Erro    string        `json:"erro"`
}

// ListAssets fetches all assets in server order
func (c *Client) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	var assets []domain.Asset
	if err := c.getJSON(ctx, "/api/ativos", &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

// ListOnlineAssets fetches only assets the backend reports as Online
func (c *Client) ListOnlineAssets(ctx context.Context) ([]domain.Asset, error) {
	var assets []domain.Asset
	if err := c.getJSON(ctx, "/api/ativos-online", &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

// Stats fetches the aggregate counters
func (c *Client) Stats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	if err := c.getJSON(ctx, "/api/estatisticas", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// TypeCounts fetches the per-type breakdown
func (c *Client) TypeCounts(ctx context.Context) ([]domain.TypeCount, error) {
	var counts []domain.TypeCount
	if err := c.getJSON(ctx, "/api/estatisticas/tipos", &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

// CreateAsset POSTs a new asset
func (c *Client) CreateAsset(ctx context.Context, asset domain.Asset) (*domain.Asset, error) {
	return c.writeAsset(ctx, http.MethodPost, "/api/ativos", asset)
}

// UpdateAsset PUTs the asset with the given id
func (c *Client) UpdateAsset(ctx context.Context, id int, asset domain.Asset) (*domain.Asset, error) {
	return c.writeAsset(ctx, http.MethodPut, fmt.Sprintf("/api/ativos/%d", id), asset)
}

func (c *Client) writeAsset(ctx context.Context, method, path string, asset domain.Asset) (*domain.Asset, error) {
	body, err := c.do(ctx, method, path, asset)
	if err != nil {
		return nil, err
	}

	var resp mutationResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// Some backend generations report write failures with a 200 and an
	// {erro} body instead of an error status.
	if resp.Erro != "" {
		return nil, &APIError{StatusCode: http.StatusOK, Message: resp.Erro}
	}

	if resp.Asset != nil {
		return resp.Asset, nil
	}
	// Older backend generations answer {mensagem, id} instead of the record
	if resp.ID != 0 {
		asset.ID = resp.ID
	}
	return &asset, nil
}

// DeleteAsset removes an asset
func (c *Client) DeleteAsset(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/ativos/%d", id), nil)
	return err
}

// ResetAssets wipes the inventory
func (c *Client) ResetAssets(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/ativos/reset", nil)
	return err
}

// ScanStatus triggers the backend ping sweep
func (c *Client) ScanStatus(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/scan-status", nil)
	return err
}

// ScanNetwork triggers the full discovery scan
func (c *Client) ScanNetwork(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/scan-rede", nil)
	return err
}

// Login authenticates and returns the user record
func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, error) {
	payload := map[string]string{"email": email, "senha": password}
	body, err := c.do(ctx, http.MethodPost, "/api/login", payload)
	if err != nil {
		return nil, err
	}

	var resp struct {
		User *domain.User `json:"usuario"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	if resp.User == nil {
		return nil, &APIError{StatusCode: http.StatusOK, Message: "resposta de login sem usuário"}
	}
	return resp.User, nil
}

// ChangePassword swaps the user's password
func (c *Client) ChangePassword(ctx context.Context, userID int, current, next string) error {
	payload := map[string]any{
		"id":          userID,
		"senha_atual": current,
		"nova_senha":  next,
	}
	_, err := c.do(ctx, http.MethodPost, "/api/trocar-senha", payload)
	return err
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// do runs one request and returns the raw body. Non-2xx responses become an
// APIError carrying the backend's "erro" message when the body has one.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar com o servidor: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp.StatusCode, body)
	}
	return body, nil
}

func decodeAPIError(status int, body []byte) error {
	var payload struct {
		Erro     string `json:"erro"`
		Mensagem string `json:"mensagem"`
	}
	apiErr := &APIError{StatusCode: status}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Erro != "" {
			apiErr.Message = payload.Erro
		} else if payload.Mensagem != "" {
			apiErr.Message = payload.Mensagem
		}
	}
	return apiErr
}

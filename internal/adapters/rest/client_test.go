package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gabiest/hostsdash/internal/core/domain"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second), srv
}

func TestListAssets(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/ativos" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "nome": "Servidor SQL", "ip_address": "10.0.0.10", "status": "Online", "condicao": "Disponível"},
			{"id": 2, "nome": "Notebook Dell", "status": "Offline"},
		})
	})

	assets, err := client.ListAssets(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(assets) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(assets))
	}
	if assets[0].Name != "Servidor SQL" || assets[0].IPAddress != "10.0.0.10" {
		t.Errorf("wire fields decoded wrong: %+v", assets[0])
	}
	// Server order preserved
	if assets[0].ID != 1 || assets[1].ID != 2 {
		t.Errorf("order not preserved: %+v", assets)
	}
}

func TestCreateAssetIssuesPost(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path

		var payload domain.Asset
		json.NewDecoder(r.Body).Decode(&payload)
		payload.ID = 42
		json.NewEncoder(w).Encode(map[string]any{"ativo": payload})
	})

	saved, err := client.CreateAsset(context.Background(), domain.Asset{Name: "Switch Core"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/ativos" {
		t.Errorf("expected POST /api/ativos, got %s %s", gotMethod, gotPath)
	}
	if saved.ID != 42 {
		t.Errorf("backend id not picked up: %+v", saved)
	}
}

func TestCreateAssetLegacyResponse(t *testing.T) {
	// Older backend generations answer {mensagem, id} instead of {ativo}
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"mensagem": "Ativo adicionado!", "id": 7})
	})

	saved, err := client.CreateAsset(context.Background(), domain.Asset{Name: "Impressora HP"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if saved.ID != 7 || saved.Name != "Impressora HP" {
		t.Errorf("legacy response not merged: %+v", saved)
	}
}

func TestUpdateAssetIssuesPut(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{"mensagem": "ok"})
	})

	if _, err := client.UpdateAsset(context.Background(), 3, domain.Asset{ID: 3, Name: "Roteador"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/ativos/3" {
		t.Errorf("expected PUT /api/ativos/3, got %s %s", gotMethod, gotPath)
	}
}

func TestDeleteAsset(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{"mensagem": "Ativo deletado!"})
	})

	if err := client.DeleteAsset(context.Background(), 9); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/ativos/9" {
		t.Errorf("expected DELETE /api/ativos/9, got %s %s", gotMethod, gotPath)
	}
}

func TestBackendErrorMessageSurfaces(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"erro": "O campo 'nome' é obrigatório"})
	})

	_, err := client.CreateAsset(context.Background(), domain.Asset{})
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Message != "O campo 'nome' é obrigatório" {
		t.Errorf("backend message lost: %q", apiErr.Message)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", apiErr.StatusCode)
	}
}

func TestWriteErrorWithOKStatusSurfaces(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"erro": "MAC já cadastrado"})
	})

	_, err := client.CreateAsset(context.Background(), domain.Asset{Name: "Notebook Dell"})
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Message != "MAC já cadastrado" {
		t.Errorf("backend message lost: %q", apiErr.Message)
	}
}

func TestGenericErrorWhenBodyHasNoMessage(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})

	err := client.ScanStatus(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Error() == "" {
		t.Error("fallback message should not be empty")
	}
}

func TestLogin(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		json.NewDecoder(r.Body).Decode(&payload)
		if payload["email"] != "gabi@example.com" || payload["senha"] != "1234" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"erro": "email ou senha incorretos"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"usuario": map[string]any{"id": 1, "nome": "Gabi", "email": "gabi@example.com"},
		})
	})

	user, err := client.Login(context.Background(), "gabi@example.com", "1234")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Name != "Gabi" || user.ID != 1 {
		t.Errorf("user decoded wrong: %+v", user)
	}

	if _, err := client.Login(context.Background(), "gabi@example.com", "bad"); err == nil {
		t.Error("expected 401 to surface as error")
	}
}

func TestScanEndpoints(t *testing.T) {
	var paths []string
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("scans must POST, got %s", r.Method)
		}
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	ctx := context.Background()
	if err := client.ScanStatus(ctx); err != nil {
		t.Fatalf("scan-status failed: %v", err)
	}
	if err := client.ScanNetwork(ctx); err != nil {
		t.Fatalf("scan-rede failed: %v", err)
	}

	if len(paths) != 2 || paths[0] != "/api/scan-status" || paths[1] != "/api/scan-rede" {
		t.Errorf("unexpected scan paths: %v", paths)
	}
}

func TestStats(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]int{
			"total_ativos": 10, "ativos_online": 7, "ativos_offline": 3, "total_usuarios": 2,
		})
	})

	stats, err := client.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalAssets != 10 || stats.OnlineAssets != 7 {
		t.Errorf("stats decoded wrong: %+v", stats)
	}
	if stats.Availability() != 70 {
		t.Errorf("availability = %f, want 70", stats.Availability())
	}
}

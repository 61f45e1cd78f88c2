package intelligence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexanderramin/ventureos/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHTTPTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("skipping HTTP integration test: local listener unavailable (%v)", r)
			}
		}()
		srv = httptest.NewServer(handler)
	}()
	return srv
}

// TestVentureService_Generate_WithHTTPTestServer exercises the full path:
// httptest → OllamaClient → VentureService → schema check → record.
func TestVentureService_Generate_WithHTTPTestServer(t *testing.T) {
	srv := newHTTPTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "json", body["format"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"model":    "test-model",
			"response": pawPathJSON,
		})
	}))
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.Model = "test-model"

	svc := NewVentureService(llm.NewOllamaClient(cfg, llm.NoopObserver{}))
	data, err := svc.Generate(context.Background(), "dog walking app")
	require.NoError(t, err)
	assert.Equal(t, "PawPath", data.Config.ProjectName)
}

func TestVentureService_Generate_HTTPTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := newHTTPTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(block)

	cfg := llm.DefaultConfig().WithTaskTimeout(llm.TaskVenture, 50)
	cfg.Endpoint = srv.URL

	svc := NewVentureService(llm.NewOllamaClient(cfg, llm.NoopObserver{}))
	_, err := svc.Generate(context.Background(), "dog walking app")
	assert.ErrorIs(t, err, llm.ErrTimeout)
}

func TestNewReachableVentureService_ClosedServerFallsBack(t *testing.T) {
	srv := newHTTPTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	srv.Close()

	svc := NewReachableVentureService(context.Background(), llm.NewOllamaClient(cfg, llm.NoopObserver{}), nil)
	assert.IsType(t, fallbackVentureService{}, svc)
}

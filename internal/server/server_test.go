package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackzampolin/chapterize/internal/home"
)

func testServer(t *testing.T, port string) *Server {
	t.Helper()
	h, err := home.New(t.TempDir())
	if err != nil {
		t.Fatalf("home.New() error = %v", err)
	}
	srv, err := New(Config{
		Host: "127.0.0.1",
		Port: port,
		Home: h,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv
}

func TestServer_Lifecycle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	srv := testServer(t, "18090")

	serverErr := make(chan error, 1)
	serverCtx, serverCancel := context.WithCancel(ctx)
	go func() {
		serverErr <- srv.Start(serverCtx)
	}()

	baseURL := "http://" + srv.Addr()
	if err := waitForServer(ctx, baseURL, 15*time.Second); err != nil {
		serverCancel()
		t.Fatalf("server did not start: %v", err)
	}

	t.Run("health_endpoint", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/health")
		if err != nil {
			t.Fatalf("health check failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("health status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
	})

	t.Run("ready_endpoint", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/ready")
		if err != nil {
			t.Fatalf("ready check failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("ready status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
	})

	t.Run("swagger_spec", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/swagger.json")
		if err != nil {
			t.Fatalf("swagger fetch failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("swagger status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
		var spec map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&spec); err != nil {
			t.Fatalf("spec is not JSON: %v", err)
		}
	})

	t.Run("jobs_list_empty", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/api/jobs")
		if err != nil {
			t.Fatalf("jobs list failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("jobs status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
	})

	t.Run("unknown_document", func(t *testing.T) {
		for _, path := range []string{
			"/api/documents/nope",
			"/api/documents/nope/toc",
			"/api/jobs/nope",
		} {
			resp, err := http.Get(baseURL + path)
			if err != nil {
				t.Fatalf("GET %s failed: %v", path, err)
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusNotFound {
				t.Errorf("GET %s status = %d, want %d", path, resp.StatusCode, http.StatusNotFound)
			}
		}
	})

	t.Run("upload_rejects_non_pdf", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("file", "notes.txt")
		if err != nil {
			t.Fatal(err)
		}
		fw.Write([]byte("not a pdf"))
		mw.Close()

		resp, err := http.Post(baseURL+"/api/documents", mw.FormDataContentType(), &buf)
		if err != nil {
			t.Fatalf("upload failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("upload status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
		}
	})

	t.Run("delete_unknown_document", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, baseURL+"/api/documents/nope", nil)
		if err != nil {
			t.Fatal(err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("delete status = %d, want %d", resp.StatusCode, http.StatusNotFound)
		}
	})

	t.Run("split_unknown_document", func(t *testing.T) {
		resp, err := http.Post(baseURL+"/api/documents/nope/split", "application/json", nil)
		if err != nil {
			t.Fatalf("split failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("split status = %d, want %d", resp.StatusCode, http.StatusNotFound)
		}
	})

	serverCancel()
	select {
	case err := <-serverErr:
		if err != nil {
			t.Errorf("Start() returned error on shutdown: %v", err)
		}
	case <-time.After(35 * time.Second):
		t.Fatal("server did not shut down within timeout")
	}

	if srv.IsRunning() {
		t.Error("IsRunning() = true after shutdown, want false")
	}
}

func TestServer_RequireInitBeforeStart(t *testing.T) {
	srv := testServer(t, "18091")

	// Not started: initialized endpoints should report 503.
	req := httptest.NewRequest("GET", "/api/documents", nil)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestServer_DoubleStart(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	srv := testServer(t, "18092")

	serverCtx, serverCancel := context.WithCancel(ctx)
	defer serverCancel()
	go func() {
		_ = srv.Start(serverCtx)
	}()

	baseURL := "http://" + srv.Addr()
	if err := waitForServer(ctx, baseURL, 15*time.Second); err != nil {
		t.Fatalf("server did not start: %v", err)
	}

	if err := srv.Start(ctx); err == nil {
		t.Error("second Start() should return error")
	}
}

// waitForServer polls the server until it responds or timeout.
func waitForServer(ctx context.Context, baseURL string, timeout time.Duration) error {
	client := &http.Client{Timeout: 2 * time.Second}
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		req, err := http.NewRequestWithContext(ctx, "GET", baseURL+"/health", nil)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(200 * time.Millisecond)
	}

	return fmt.Errorf("server not ready after %s", timeout)
}

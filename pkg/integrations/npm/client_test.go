package npm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/addonscan/pkg/cache"
	apperrors "github.com/matzehuels/addonscan/pkg/errors"
	"github.com/matzehuels/addonscan/pkg/integrations"
)

func testServer(t *testing.T, counts map[string]int) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	serve := func(w http.ResponseWriter, pkg string) {
		n, ok := counts[pkg]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"package ` + pkg + ` not found"}`))
			return
		}
		json.NewEncoder(w).Encode(Downloads{Package: pkg, Downloads: n, Start: "2026-09-17", End: "2026-10-16"})
	}
	r.Get("/downloads/point/{period}/{pkg}", func(w http.ResponseWriter, r *http.Request) {
		serve(w, chi.URLParam(r, "pkg"))
	})
	r.Get("/downloads/point/{period}/{scope}/{pkg}", func(w http.ResponseWriter, r *http.Request) {
		serve(w, chi.URLParam(r, "scope")+"/"+chi.URLParam(r, "pkg"))
	})
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func testClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	client := NewClient(c, time.Hour)
	client.SetBaseURL(serverURL + "/")
	return client
}

func TestFetchDownloads(t *testing.T) {
	server := testServer(t, map[string]int{
		"sharp":                    2_400_000,
		"@serialport/bindings-cpp": 90_000,
	})
	client := testClient(t, server.URL)

	tests := []struct {
		pkg  string
		want int
	}{
		{"sharp", 2_400_000},
		{"@serialport/bindings-cpp", 90_000},
	}

	for _, tt := range tests {
		t.Run(tt.pkg, func(t *testing.T) {
			d, err := client.FetchDownloads(context.Background(), tt.pkg, false)
			if err != nil {
				t.Fatalf("FetchDownloads(%q) error: %v", tt.pkg, err)
			}
			if d.Downloads != tt.want {
				t.Errorf("Downloads = %d, want %d", d.Downloads, tt.want)
			}
			if d.Package != tt.pkg {
				t.Errorf("Package = %q, want %q", d.Package, tt.pkg)
			}
		})
	}
}

func TestFetchDownloadsNotFound(t *testing.T) {
	server := testServer(t, nil)
	client := testClient(t, server.URL)

	_, err := client.FetchDownloads(context.Background(), "does-not-exist", false)
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestFetchDownloadsInvalidName(t *testing.T) {
	client := testClient(t, "http://127.0.0.1:1")

	_, err := client.FetchDownloads(context.Background(), "../../etc/passwd", false)
	if !apperrors.Is(err, apperrors.ErrCodeInvalidPackage) {
		t.Errorf("error = %v, want INVALID_PACKAGE", err)
	}
}

func TestFetchDownloadsCached(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(Downloads{Package: "leveldown", Downloads: 1234})
	}))
	defer server.Close()
	client := testClient(t, server.URL)

	for i := 0; i < 3; i++ {
		if _, err := client.FetchDownloads(context.Background(), "leveldown", false); err != nil {
			t.Fatalf("FetchDownloads error: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("server calls = %d, want 1", calls)
	}

	if _, err := client.FetchDownloads(context.Background(), "leveldown", true); err != nil {
		t.Fatalf("FetchDownloads(refresh) error: %v", err)
	}
	if calls != 2 {
		t.Errorf("server calls after refresh = %d, want 2", calls)
	}
}

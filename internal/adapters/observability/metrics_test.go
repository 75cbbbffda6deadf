package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotel_packages/internal/adapters/observability"
)

func scrape(t *testing.T) string {
	t.Helper()
	reg := observability.InitRegistry()
	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	return string(body)
}

func TestMetricsRegistryAndHandler(t *testing.T) {
	// record samples so vectors are exported
	observability.ObserveHTTP("/test", "GET", 200, 12*time.Millisecond)
	observability.ObserveGeneration("ok", 4)
	observability.ObserveClipboard("redis", "write")

	out := scrape(t)
	for _, name := range []string{
		"packager_http_requests_total",
		`packager_generations_total{outcome="ok"}`,
		"packager_packages_generated_total",
		`packager_clipboard_events_total{backend="redis",event="write"}`,
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in output", name)
		}
	}
}

func TestServe_ExposesRegistry(t *testing.T) {
	reg := observability.InitRegistry()
	observability.ObserveGeneration("missing_entries", 0)

	srv, err := observability.Serve("127.0.0.1:0", reg)
	if err != nil {
		t.Fatalf("Serve: %v", err)
	}
	t.Cleanup(func() { srv.Close() })

	res, err := http.Get("http://" + srv.Addr + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	if !strings.Contains(string(body), `packager_generations_total{outcome="missing_entries"}`) {
		t.Fatalf("custom collectors not exported:\n%s", body)
	}
}

func TestServe_EmptyAddrDisabled(t *testing.T) {
	srv, err := observability.Serve("", observability.InitRegistry())
	if err != nil || srv != nil {
		t.Fatalf("want disabled, got %v, %v", srv, err)
	}
}

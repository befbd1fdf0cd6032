package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"

	apperrors "pvzadmin/pkg/errors"
	"pvzadmin/pkg/logger"
)

type stubResolver struct {
	coords Coords
	err    error
	calls  int
}

func (s *stubResolver) Resolve(ctx context.Context, address string) (Coords, error) {
	s.calls++
	if s.err != nil {
		return Coords{}, s.err
	}
	return s.coords, nil
}

func newTestCache(t *testing.T, ttl time.Duration) *Cache {
	t.Helper()
	c := NewCache(ttl)
	t.Cleanup(c.Stop)
	return c
}

func TestCacheGetSetAndExpiry(t *testing.T) {
	c := newTestCache(t, 20*time.Millisecond)

	if _, ok := c.Get("miss"); ok {
		t.Error("empty cache should miss")
	}

	c.Set("Москва", Coords{Lon: 37.6, Lat: 55.7})
	if coords, ok := c.Get("Москва"); !ok || coords.Lat != 55.7 {
		t.Errorf("expected cached coords, got ok=%v coords=%+v", ok, coords)
	}

	time.Sleep(30 * time.Millisecond)
	if _, ok := c.Get("Москва"); ok {
		t.Error("entry should expire after ttl")
	}
}

func TestServiceCachesResolvedAddresses(t *testing.T) {
	resolver := &stubResolver{coords: Coords{Lon: 37.6, Lat: 55.7}}
	svc := NewService(newTestCache(t, time.Hour), resolver, logger.Discard())

	for i := 0; i < 3; i++ {
		coords, err := svc.Lookup(context.Background(), "Москва, ул. Ленина, д. 1")
		if err != nil {
			t.Fatalf("lookup %d failed: %v", i, err)
		}
		if coords.Lon != 37.6 {
			t.Errorf("lookup %d: unexpected coords %+v", i, coords)
		}
	}
	if resolver.calls != 1 {
		t.Errorf("expected a single upstream call, got %d", resolver.calls)
	}
}

func TestServiceUnresolvedAddress(t *testing.T) {
	resolver := &stubResolver{err: ErrNotResolved}
	svc := NewService(newTestCache(t, time.Hour), resolver, logger.Discard())

	_, err := svc.Lookup(context.Background(), "нигде")
	appErr := apperrors.AsAppError(err)
	if appErr.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected 404 for unresolved address, got %d", appErr.HTTPStatus)
	}
}

func TestServiceUpstreamFailure(t *testing.T) {
	resolver := &stubResolver{err: context.DeadlineExceeded}
	svc := NewService(newTestCache(t, time.Hour), resolver, logger.Discard())

	_, err := svc.Lookup(context.Background(), "Москва")
	appErr := apperrors.AsAppError(err)
	if appErr.HTTPStatus != http.StatusBadGateway {
		t.Errorf("expected 502 for upstream failure, got %d", appErr.HTTPStatus)
	}
}

func newStubNominatim(t *testing.T, results []map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("provider request missing User-Agent")
		}
		if got := r.URL.Query().Get("accept-language"); got != "ru" {
			t.Errorf("expected accept-language=ru, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(results)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClientResolve(t *testing.T) {
	upstream := newStubNominatim(t, []map[string]any{
		{"lat": "55.7558", "lon": "37.6173", "display_name": "Москва"},
	})
	client := NewClient(upstream.URL, "test-agent", time.Second)

	coords, err := client.Resolve(context.Background(), "Москва")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if coords.Lat != 55.7558 || coords.Lon != 37.6173 {
		t.Errorf("unexpected coords: %+v", coords)
	}
}

func TestClientResolveNoResults(t *testing.T) {
	upstream := newStubNominatim(t, []map[string]any{})
	client := NewClient(upstream.URL, "test-agent", time.Second)

	if _, err := client.Resolve(context.Background(), "нигде"); err != ErrNotResolved {
		t.Errorf("expected ErrNotResolved, got %v", err)
	}
}

func TestClientSuggestAssemblesAddresses(t *testing.T) {
	upstream := newStubNominatim(t, []map[string]any{
		{
			"lat": "55.7", "lon": "37.6",
			"display_name": "длинное имя",
			"address": map[string]string{
				"city": "Москва", "road": "улица Ленина", "house_number": "1",
			},
		},
		{
			"lat": "55.8", "lon": "37.7",
			"display_name": "Россия, где-то",
			"address":      map[string]string{},
		},
	})
	client := NewClient(upstream.URL, "test-agent", time.Second)

	out, err := client.Suggest(context.Background(), "лени", 8)
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(out))
	}
	if out[0] != "г. Москва, улица Ленина, д. 1" {
		t.Errorf("unexpected assembled address: %q", out[0])
	}
	if out[1] != "Россия, где-то" {
		t.Errorf("expected display_name fallback, got %q", out[1])
	}
}

func TestHandler(t *testing.T) {
	resolver := &stubResolver{coords: Coords{Lon: 37.6, Lat: 55.7}}
	svc := NewService(newTestCache(t, time.Hour), resolver, logger.Discard())

	router := httprouter.New()
	NewHandler(svc, logger.Discard()).RegisterRoutes(router)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/geocode?address=Москва")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var coords Coords
	if err := json.NewDecoder(resp.Body).Decode(&coords); err != nil {
		t.Fatal(err)
	}
	if coords.Lat != 55.7 {
		t.Errorf("unexpected payload: %+v", coords)
	}

	resp, err = http.Get(srv.URL + "/geocode")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing address should be 400, got %d", resp.StatusCode)
	}
}

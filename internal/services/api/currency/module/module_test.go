package module

import (
	"net/http"
	"sync"
	"net/http/httptest"
	"strings"
	"testing"

	"dollarwords/internal/core/currency"
	modkit "dollarwords/internal/modkit"
	"dollarwords/internal/platform/config"
	"dollarwords/internal/platform/logger"
	phttp "dollarwords/internal/platform/net/http"
	kit "dollarwords/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func deps() modkit.Deps {
	return modkit.Deps{Log: *logger.Named("test"), Cfg: config.New()}
}

func TestFromConfig(t *testing.T) {
	t.Setenv("CORE_CURRENCY_MIN_BOUNDARY", "-5")
	t.Setenv("CORE_CURRENCY_MAX_BOUNDARY", "500")
	t.Setenv("CORE_CURRENCY_MAX_SESSIONS", "3")
	t.Setenv("CORE_CURRENCY_MAX_INFLIGHT", "8")
	t.Setenv("CORE_API_TOKEN", "tok")

	o := FromConfig(config.New())
	if o.Policy != (currency.Policy{Min: -5, Max: 500}) || o.MaxSessions != 3 || o.MaxInFlight != 8 || o.Token != "tok" {
		t.Fatalf("unexpected options %+v", o)
	}
}

func TestFromConfig_Defaults(t *testing.T) {
	o := FromConfig(config.New())
	if o.Policy != currency.DefaultPolicy() || o.MaxSessions != 1024 || o.MaxInFlight != 0 || o.Token != "" {
		t.Fatalf("unexpected defaults %+v", o)
	}
}

func TestNew_PortsAndRoutes(t *testing.T) {
	m := New(deps(), Options{Policy: currency.Policy{Min: 0, Max: 100}})
	if m.Name() != "currency" || m.Prefix() != "/currency" {
		t.Fatalf("name/prefix = %q %q", m.Name(), m.Prefix())
	}

	p, ok := m.Ports().(Ports)
	if !ok || p.Converter == nil || p.Sessions == nil {
		t.Fatalf("unexpected ports %#v", m.Ports())
	}
	if got := p.Converter.Policy(); got.Max != 100 {
		t.Fatalf("policy override ignored: %+v", got)
	}

	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/currency/convert", strings.NewReader(`{"value":101}`))
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("convert status %d: %s", rec.Code, rec.Body.String())
	}
	kit.MustContain(t, rec.Body.String(), `"valid":false`)
}

func TestNew_TokenGuardsSessions(t *testing.T) {
	m := New(deps(), Options{Token: "s3cret"})
	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/currency/sessions", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/currency/sessions", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestTokenPort_EmptyIsNil(t *testing.T) {
	if tokenPort("") != nil {
		t.Fatalf("empty token must disable auth")
	}
}

func TestNew_InvalidPolicyPanics(t *testing.T) {
	kit.MustPanic(t, func() { New(deps(), Options{Policy: currency.Policy{Min: 5, Max: 1}}) })
}

func TestNew_MaxInFlightThrottles(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	hold := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Hold") != "" {
				close(entered)
				<-release
			}
			next.ServeHTTP(w, r)
		})
	}
	m := New(deps(), Options{MaxInFlight: 1}, modkit.WithMiddlewares(hold))
	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		req := httptest.NewRequest(http.MethodPost, "/currency/convert", strings.NewReader(`{"value":1}`))
		req.Header.Set("X-Hold", "1")
		mux.ServeHTTP(httptest.NewRecorder(), req)
	}()
	<-entered

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/currency/convert", strings.NewReader(`{"value":2}`)))
	close(release)
	wg.Wait()

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second in flight request = %d want 429", rec.Code)
	}
}

func TestNew_NoThrottleByDefault(t *testing.T) {
	m := New(deps(), Options{})
	if len(m.b.Mw) != 0 {
		t.Fatalf("unexpected middleware %d", len(m.b.Mw))
	}
	if len(New(deps(), Options{MaxInFlight: 4}).b.Mw) != 1 {
		t.Fatalf("throttle not installed")
	}
}

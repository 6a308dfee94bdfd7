package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/ncobase/echoapi/config"
	"github.com/ncobase/echoapi/consts"
	"github.com/ncobase/echoapi/ecode"
	"github.com/ncobase/echoapi/logging/logger"
	"github.com/ncobase/echoapi/net/resp"
	"github.com/ncobase/echoapi/router"
)

func newTestApp(t *testing.T, kind string) *App {
	t.Helper()
	l := logger.StdLogger()
	l.SetOutput(io.Discard)

	cfg := &config.Config{
		RunMode: "release",
		Server:  &config.Server{Host: "127.0.0.1", Port: 0, Router: kind},
		Errors:  &config.Errors{},
	}
	return NewApp(cfg, l, NewHandler(resp.New(ecode.Default()), l))
}

func serve(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("invalid JSON body %q: %v", w.Body.String(), err)
	}
	return m
}

func TestRoutes(t *testing.T) {
	for _, kind := range []string{router.KindGin, router.KindMux} {
		t.Run(kind, func(t *testing.T) {
			h, err := newTestApp(t, kind).Handler()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			w := serve(t, h, http.MethodGet, "/health", "")
			if w.Code != http.StatusOK || w.Body.String() != `{"success":true,"status":"healthy"}` {
				t.Errorf("unexpected health response %d %s", w.Code, w.Body.String())
			}
			if w.Header().Get(consts.TraceHeader) == "" {
				t.Error("expected trace id header")
			}

			w = serve(t, h, http.MethodGet, "/api/errors?code=EXTENDED_EXAMPLE", "")
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
			want := `{"success":false,"error":{"code":"EXTENDED_EXAMPLE","message":"Example of error data structure"}}`
			if w.Body.String() != want {
				t.Errorf("expected %s, got %s", want, w.Body.String())
			}
			if w.Header().Get("Status") != "400" {
				t.Errorf("expected entry data as headers, got %v", w.Header())
			}

			w = serve(t, h, http.MethodGet, "/missing", "")
			if w.Code != http.StatusNotFound || w.Body.String() != `{"success":false,"error":{"code":404,"message":"Not Found"}}` {
				t.Errorf("unexpected not found response %d %s", w.Code, w.Body.String())
			}

			w = serve(t, h, http.MethodPost, "/health", "")
			if w.Code != http.StatusNotFound || w.Body.String() != `{"success":false,"error":{"code":404,"message":"Not Found"}}` {
				t.Errorf("unexpected method mismatch response %d %s", w.Code, w.Body.String())
			}

			w = serve(t, h, http.MethodGet, "/api/errors?code=MISSING", "")
			if w.Code != http.StatusNotFound {
				t.Errorf("expected status 404, got %d", w.Code)
			}

			w = serve(t, h, http.MethodGet, "/api/status?code=503", "")
			if w.Code != http.StatusServiceUnavailable {
				t.Errorf("expected status 503, got %d", w.Code)
			}
			if errObj, _ := decode(t, w)["error"].(map[string]any); errObj["message"] != "Service Unavailable" {
				t.Errorf("unexpected error object %v", errObj)
			}

			for _, q := range []string{"abc", "999"} {
				w = serve(t, h, http.MethodGet, "/api/status?code="+q, "")
				if w.Code != http.StatusBadRequest {
					t.Errorf("code %s: expected status 400, got %d", q, w.Code)
				}
			}
		})
	}
}

func TestValidateRoute(t *testing.T) {
	for _, kind := range []string{router.KindGin, router.KindMux} {
		t.Run(kind, func(t *testing.T) {
			h, err := newTestApp(t, kind).Handler()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			w := serve(t, h, http.MethodPost, "/api/validate", `{"name":"alice","email":"alice@example.com","age":30}`)
			if w.Code != http.StatusOK || w.Body.String() != `{"success":true,"name":"alice"}` {
				t.Errorf("unexpected response %d %s", w.Code, w.Body.String())
			}

			w = serve(t, h, http.MethodPost, "/api/validate", `{"name":"al","email":"nope","age":30}`)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", w.Code)
			}
			errObj, _ := decode(t, w)["error"].(map[string]any)
			if errObj["code"] != ecode.ValidationFailed {
				t.Errorf("unexpected code %v", errObj["code"])
			}
			list, _ := errObj["validator"].([]any)
			if len(list) != 2 {
				t.Fatalf("expected 2 field errors, got %v", errObj["validator"])
			}
			if first, _ := list[0].(map[string]any); first["field"] != "name" {
				t.Errorf("expected name first, got %v", list[0])
			}

			w = serve(t, h, http.MethodPost, "/api/validate", `{bad`)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
			errObj, _ = decode(t, w)["error"].(map[string]any)
			if errObj["code"] != float64(http.StatusBadRequest) || errObj["detail"] == nil {
				t.Errorf("unexpected error object %v", errObj)
			}
		})
	}
}

func TestMiddlewareReusesTraceID(t *testing.T) {
	h, err := newTestApp(t, router.KindGin).Handler()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(consts.TraceHeader, "trace-1")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if got := w.Header().Get(consts.TraceHeader); got != "trace-1" {
		t.Errorf("expected trace-1, got %q", got)
	}
}

func TestUnknownRouter(t *testing.T) {
	if _, err := newTestApp(t, "chi").Handler(); err == nil {
		t.Error("expected error for unknown router")
	}
}

func TestServeShutdown(t *testing.T) {
	app := newTestApp(t, router.KindMux)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/health"
	var res *http.Response
	for i := 0; i < 50; i++ {
		res, err = http.Get(url)
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("server not reachable: %v", err)
	}
	_ = res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", res.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

package resp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestEnvelopeMap(t *testing.T) {
	r := Error("X", "msg", map[string]any{"status": 9})
	m := r.Body.Map()
	if m["success"] != false || m["status"] != 9 {
		t.Errorf("unexpected map %v", m)
	}
	errObj, ok := m["error"].(map[string]any)
	if !ok || errObj["code"] != "X" {
		t.Errorf("unexpected error object %v", m["error"])
	}

	if _, ok := Success(nil).Body.Map()["error"]; ok {
		t.Error("success map must not contain error")
	}

	manual := &Envelope{Success: true, Data: map[string]any{"error": "x", "n": 1}}
	if _, ok := manual.Map()["error"]; ok {
		t.Error("success map must not contain error from data")
	}
	body, err := manual.MarshalJSON()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(body) != `{"success":true,"n":1}` {
		t.Errorf("unexpected body %s", body)
	}
	if Success(nil).Body.Code() != nil {
		t.Error("success envelope has no code")
	}
}

func TestHeaderConversion(t *testing.T) {
	h := headerFrom(map[string]any{
		"x-flag":   true,
		"x-count":  2,
		"x-list":   []any{"a", "b"},
		"x-plain":  []string{"c"},
		"x-nested": map[string]any{"b": "2", "a": "1"},
		"x-nil":    nil,
		"x-off":    false,
		"x-typed":  map[string]int{"b": 2, "a": 1},
	})

	if h.Get("X-Flag") != "1" || h.Get("X-Count") != "2" {
		t.Errorf("unexpected scalar headers %v", h)
	}
	if got := h.Values("X-List"); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("unexpected list header %v", got)
	}
	if got := h.Values("X-Plain"); len(got) != 1 || got[0] != "c" {
		t.Errorf("unexpected string list header %v", got)
	}
	if got := h.Values("X-Nested"); len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Errorf("unexpected nested header %v", got)
	}
	if _, ok := h["X-Nil"]; ok {
		t.Error("nil header value must be skipped")
	}
	if got, ok := h["X-Off"]; !ok || len(got) != 1 || got[0] != "" {
		t.Errorf("expected empty X-Off header, got %v", got)
	}
	if got := h.Values("X-Typed"); len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Errorf("unexpected typed map header %v", got)
	}
}

func TestHeaderConversionIsDeterministic(t *testing.T) {
	in := map[string]any{"x-foo": "1", "X-Foo": "2", "X-FOO": "3"}
	for i := 0; i < 50; i++ {
		got := headerFrom(in).Values("X-Foo")
		if len(got) != 3 || got[0] != "3" || got[1] != "2" || got[2] != "1" {
			t.Fatalf("run %d: unexpected header order %v", i, got)
		}
	}
}

func TestResponseWrite(t *testing.T) {
	r := Error("X", "msg", nil, WithStatus(http.StatusConflict), WithHeaders(map[string]any{"x-foo": true}))
	w := httptest.NewRecorder()

	if err := r.Write(w); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if w.Code != http.StatusConflict {
		t.Errorf("expected status 409, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != contentTypeJSON {
		t.Errorf("unexpected content type %q", got)
	}
	if got := w.Header().Get("X-Foo"); got != "1" {
		t.Errorf("unexpected X-Foo header %q", got)
	}
	want := `{"success":false,"error":{"code":"X","message":"msg"}}`
	if got := w.Body.String(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestResponseWriteEncodeFailure(t *testing.T) {
	r := Success(map[string]any{"bad": make(chan int)})
	w := httptest.NewRecorder()

	if err := r.Write(w); err == nil {
		t.Fatal("expected encode error")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
}

func TestResponseGin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	r, err := HTTPError(http.StatusNotFound, nil, map[string]any{"x-trace": "t1"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	r.Abort(c)

	if !c.IsAborted() {
		t.Error("expected handler chain to be aborted")
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
	if w.Header().Get("X-Trace") != "t1" {
		t.Errorf("unexpected headers %v", w.Header())
	}
	want := `{"success":false,"error":{"code":404,"message":"Not Found"}}`
	if got := w.Body.String(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestResponseGinHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.GET("/ok", func(c *gin.Context) {
		Success(gin.H{"count": 3}).JSON(c)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if got := w.Body.String(); got != `{"success":true,"count":3}` {
		t.Errorf("unexpected body %s", got)
	}
}

func TestResponseString(t *testing.T) {
	if got := Success(nil).String(); got != `200 {"success":true}` {
		t.Errorf("unexpected string %q", got)
	}
}

package resp

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

const contentTypeJSON = "application/json; charset=utf-8"

// Envelope is the JSON response body.
type Envelope struct {
	Success bool
	Error   map[string]any // nil when Success is true
	Data    map[string]any // extra top-level keys
}

// Code returns the error code, or nil for success envelopes.
func (e *Envelope) Code() any {
	if e == nil || e.Error == nil {
		return nil
	}
	return e.Error["code"]
}

// Map returns the envelope as one flat map.
func (e *Envelope) Map() map[string]any {
	m := make(map[string]any, len(e.Data)+2)
	for k, v := range e.Data {
		m[k] = v
	}
	m["success"] = e.Success
	if e.Success {
		delete(m, "error")
	} else {
		m["error"] = e.Error
	}
	return m
}

// MarshalJSON writes success first, then error, then the remaining keys sorted.
func (e *Envelope) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"success":`)
	if e.Success {
		buf.WriteString("true")
	} else {
		buf.WriteString("false")
		buf.WriteString(`,"error":`)
		if err := writeObject(&buf, e.Error, "code", "message"); err != nil {
			return nil, err
		}
	}
	for _, k := range sortedKeys(e.Data) {
		if k == "success" || k == "error" {
			continue
		}
		buf.WriteByte(',')
		if err := writePair(&buf, k, e.Data[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeObject writes m with the leading keys first, in the order given.
func writeObject(buf *bytes.Buffer, m map[string]any, leading ...string) error {
	buf.WriteByte('{')
	first := true
	seen := make(map[string]bool, len(leading))
	next := func(k string) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		return writePair(buf, k, m[k])
	}
	for _, k := range leading {
		if _, ok := m[k]; !ok {
			continue
		}
		seen[k] = true
		if err := next(k); err != nil {
			return err
		}
	}
	for _, k := range sortedKeys(m) {
		if seen[k] {
			continue
		}
		if err := next(k); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writePair(buf *bytes.Buffer, k string, v any) error {
	key, err := json.Marshal(k)
	if err != nil {
		return err
	}
	val, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", k, err)
	}
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(val)
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Response is a serialized envelope ready to be handed to a transport.
type Response struct {
	Status int
	Header http.Header
	Body   *Envelope
}

// Bytes returns the encoded body.
func (r *Response) Bytes() ([]byte, error) {
	return json.Marshal(r.Body)
}

// Write writes headers, status and body to w.
func (r *Response) Write(w http.ResponseWriter) error {
	body, err := r.Bytes()
	if err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
		return fmt.Errorf("failed to encode response: %w", err)
	}
	copyHeader(w.Header(), r.Header)
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(r.Status)
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

// JSON renders the response on a gin context.
func (r *Response) JSON(c *gin.Context) {
	body, err := r.Bytes()
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	copyHeader(c.Writer.Header(), r.Header)
	c.Data(r.Status, contentTypeJSON, body)
}

// Abort renders the response and stops the remaining gin handlers.
func (r *Response) Abort(c *gin.Context) {
	r.JSON(c)
	c.Abort()
}

func copyHeader(dst, src http.Header) {
	for k, vs := range src {
		for _, v := range vs {
			dst.Add(k, v)
		}
	}
}

// String implements fmt.Stringer for logging.
func (r *Response) String() string {
	body, err := r.Bytes()
	if err != nil {
		return fmt.Sprintf("%d <unencodable: %v>", r.Status, err)
	}
	return fmt.Sprintf("%d %s", r.Status, body)
}

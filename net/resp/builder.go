package resp

import (
	"net/http"

	"github.com/ncobase/echoapi/ecode"
)

// Option customizes the HTTP side of a response.
type Option func(*options)

type options struct {
	status  int
	headers map[string]any
}

// WithStatus sets the HTTP status code.
func WithStatus(status int) Option {
	return func(o *options) {
		o.status = status
	}
}

// WithHeaders sets the HTTP headers.
func WithHeaders(headers map[string]any) Option {
	return func(o *options) {
		o.headers = headers
	}
}

// ValidationResult reports per-field validation failures in field order.
type ValidationResult interface {
	Fails() bool
	Fields() []string
	Messages(field string) []string
}

// FieldError is one entry of the validator list. Message is nil when the
// field reported no message.
type FieldError struct {
	Field   string  `json:"field"`
	Message *string `json:"message"`
}

// Builder builds response envelopes. The zero value has an empty error table.
type Builder struct {
	table *ecode.Table
}

// New creates a builder backed by table. A nil table is treated as empty.
func New(table *ecode.Table) *Builder {
	return &Builder{table: table}
}

// Table returns the builder's error table.
func (b *Builder) Table() *ecode.Table {
	return b.table
}

// Success builds {"success": true, ...data}. Default status is 200.
// The success and error keys of data are ignored.
func (b *Builder) Success(data map[string]any, opts ...Option) *Response {
	env := &Envelope{Success: true}
	for k, v := range data {
		if k == "success" || k == "error" {
			continue
		}
		if env.Data == nil {
			env.Data = make(map[string]any, len(data))
		}
		env.Data[k] = v
	}
	return serialize(env, http.StatusOK, opts)
}

// Error builds {"success": false, "error": {code, message}, ...data}.
// A mapping under data["error"] is merged into the error object and may
// override code and message. Default status is 400.
func (b *Builder) Error(code any, message string, data map[string]any, opts ...Option) *Response {
	env := &Envelope{
		Error: map[string]any{
			"code":    code,
			"message": message,
		},
	}
	for k, v := range data {
		switch k {
		case "success":
			continue
		case "error":
			if nested, ok := asMap(v); ok {
				for nk, nv := range nested {
					env.Error[nk] = nv
				}
			}
			continue
		}
		if env.Data == nil {
			env.Data = make(map[string]any, len(data))
		}
		env.Data[k] = v
	}
	return serialize(env, http.StatusBadRequest, opts)
}

// HTTPError builds an error envelope whose code and status are both status,
// with the standard reason phrase as message.
func (b *Builder) HTTPError(status int, data, headers map[string]any) (*Response, error) {
	text, err := ecode.StatusText(status)
	if err != nil {
		return nil, err
	}
	return b.Error(status, text, data, WithStatus(status), WithHeaders(headers)), nil
}

// ValidatorError builds a VALIDATION_FAILED envelope listing the first
// message of every failed field. It returns nil when validation passed.
func (b *Builder) ValidatorError(result ValidationResult) *Response {
	if result == nil || !result.Fails() {
		return nil
	}

	var list []FieldError
	for _, field := range result.Fields() {
		fe := FieldError{Field: field}
		if msgs := result.Messages(field); len(msgs) > 0 {
			msg := msgs[0]
			fe.Message = &msg
		}
		list = append(list, fe)
	}

	var validator any
	if len(list) > 0 {
		validator = list
	}
	data := map[string]any{
		"error": map[string]any{"validator": validator},
	}
	return b.Error(ecode.ValidationFailed, ecode.ValidationFailedMessage, data, WithStatus(http.StatusBadRequest))
}

// FindError builds the error envelope configured for code in the table.
//
// The entry's data is only used as a header fallback, and the headers
// argument is not consulted: headers resolve to the caller's data, then the
// entry's data, then the entry's headers. The body carries the caller's data.
func (b *Builder) FindError(code any, data, headers map[string]any) (*Response, error) {
	entry, err := b.table.Lookup(code)
	if err != nil {
		return nil, err
	}

	effective := firstNonEmpty(data, entry.Data)
	effective = firstNonEmpty(effective, entry.HTTP.Headers)

	return b.Error(code, entry.Message, data, WithStatus(entry.HTTP.Code), WithHeaders(effective)), nil
}

func firstNonEmpty(a, b map[string]any) map[string]any {
	if len(a) > 0 {
		return a
	}
	if len(b) > 0 {
		return b
	}
	return nil
}

func serialize(env *Envelope, status int, opts []Option) *Response {
	o := options{status: status}
	for _, opt := range opts {
		opt(&o)
	}
	return &Response{
		Status: o.status,
		Header: headerFrom(o.headers),
		Body:   env,
	}
}

var std = New(nil)

// Success builds a success envelope without an error table.
func Success(data map[string]any, opts ...Option) *Response {
	return std.Success(data, opts...)
}

// Error builds an error envelope without an error table.
func Error(code any, message string, data map[string]any, opts ...Option) *Response {
	return std.Error(code, message, data, opts...)
}

// HTTPError builds an HTTP error envelope without an error table.
func HTTPError(status int, data, headers map[string]any) (*Response, error) {
	return std.HTTPError(status, data, headers)
}

// ValidatorError builds a validation failure envelope without an error table.
func ValidatorError(result ValidationResult) *Response {
	return std.ValidatorError(result)
}

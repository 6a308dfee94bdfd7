package validator

// Result holds validation failures: an ordered set of fields, each with an
// ordered list of messages. A nil Result reports no failures.
type Result struct {
	fields   []string
	messages map[string][]string
}

// NewResult returns an empty result.
func NewResult() *Result {
	return &Result{messages: make(map[string][]string)}
}

// Add records messages for field. The field is registered on first use even
// when no message is given.
func (r *Result) Add(field string, messages ...string) {
	if r.messages == nil {
		r.messages = make(map[string][]string)
	}
	if _, exists := r.messages[field]; !exists {
		r.fields = append(r.fields, field)
		r.messages[field] = nil
	}
	r.messages[field] = append(r.messages[field], messages...)
}

// Fails reports whether any field failed.
func (r *Result) Fails() bool {
	return r != nil && len(r.fields) > 0
}

// Fields returns the failed fields in the order they were added.
func (r *Result) Fields() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

// Messages returns the messages recorded for field.
func (r *Result) Messages(field string) []string {
	if r == nil {
		return nil
	}
	msgs := r.messages[field]
	out := make([]string, len(msgs))
	copy(out, msgs)
	return out
}

// First returns the first message for field, or "".
func (r *Result) First(field string) string {
	if r == nil || len(r.messages[field]) == 0 {
		return ""
	}
	return r.messages[field][0]
}

// Map returns each failed field with its first message.
func (r *Result) Map() map[string]string {
	out := make(map[string]string, len(r.Fields()))
	for _, field := range r.Fields() {
		out[field] = r.First(field)
	}
	return out
}

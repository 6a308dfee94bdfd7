package router

import (
	"fmt"
	"net/http"
)

// Router kinds
const (
	KindGin = "gin"
	KindMux = "mux"
)

// Interface abstracts the routing mechanism
type Interface interface {
	Group(path string, middleware ...func(http.Handler) http.Handler) Interface
	GET(path string, handler http.HandlerFunc)
	POST(path string, handler http.HandlerFunc)
	// NotFound sets the handler for requests that match no route, including
	// a known path with an unregistered method.
	NotFound(handler http.HandlerFunc)
	Handler() http.Handler
}

// New returns the adapter for kind: "gin" or "mux".
func New(kind string) (Interface, error) {
	switch kind {
	case "", KindGin:
		return NewGinAdapter(newGinEngine()), nil
	case KindMux:
		return NewMuxAdapter(newMuxRouter()), nil
	default:
		return nil, fmt.Errorf("unknown router %q", kind)
	}
}

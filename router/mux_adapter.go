package router

import (
	"net/http"

	"github.com/gorilla/mux"
)

type MuxRouter struct {
	router *mux.Router
	group  *mux.Router
}

func newMuxRouter() *mux.Router {
	return mux.NewRouter()
}

func NewMuxAdapter(router *mux.Router) Interface {
	return &MuxRouter{router: router, group: router}
}

func (r *MuxRouter) Group(path string, middleware ...func(http.Handler) http.Handler) Interface {
	group := r.group.PathPrefix(path).Subrouter()
	for _, m := range middleware {
		group.Use(m)
	}
	return &MuxRouter{router: r.router, group: group}
}

func (r *MuxRouter) GET(path string, handler http.HandlerFunc) {
	r.group.HandleFunc(path, handler).Methods(http.MethodGet)
}

func (r *MuxRouter) POST(path string, handler http.HandlerFunc) {
	r.group.HandleFunc(path, handler).Methods(http.MethodPost)
}

func (r *MuxRouter) NotFound(handler http.HandlerFunc) {
	r.router.NotFoundHandler = handler
	r.router.MethodNotAllowedHandler = handler
}

func (r *MuxRouter) Handler() http.Handler {
	return r.router
}

package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type GinRouter struct {
	engine *gin.Engine
	group  *gin.RouterGroup
}

func newGinEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	return engine
}

func NewGinAdapter(engine *gin.Engine) Interface {
	return &GinRouter{engine: engine, group: &engine.RouterGroup}
}

// Group runs net/http middleware as gin handlers. A middleware that does not
// call the next handler aborts the chain.
func (r *GinRouter) Group(path string, middleware ...func(http.Handler) http.Handler) Interface {
	handlers := make([]gin.HandlerFunc, len(middleware))
	for i, m := range middleware {
		m := m // per-iteration copy; go directive is 1.21 (pre-1.22 loopvar semantics)
		handlers[i] = func(c *gin.Context) {
			called := false
			m(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				called = true
				c.Request = req
			})).ServeHTTP(c.Writer, c.Request)
			if !called {
				c.Abort()
			}
		}
	}
	return &GinRouter{engine: r.engine, group: r.group.Group(path, handlers...)}
}

func (r *GinRouter) GET(path string, handler http.HandlerFunc) {
	r.group.GET(path, gin.WrapF(handler))
}

func (r *GinRouter) POST(path string, handler http.HandlerFunc) {
	r.group.POST(path, gin.WrapF(handler))
}

func (r *GinRouter) NotFound(handler http.HandlerFunc) {
	r.engine.NoRoute(gin.WrapF(handler))
}

func (r *GinRouter) Handler() http.Handler {
	return r.engine
}

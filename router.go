package methodtree

import (
	"net/http"
	"strings"
)

// Route is a registered method and path pattern with its handler.
//
// Handler already has the router middleware applied.
type Route struct {
	Method  string
	Pattern string
	Handler http.Handler
}

type Router struct {
	state      *routerState
	middleware []Middleware
}

type routerState struct {
	table            *Table[*Route]
	routes           []*Route
	mounts           []registeredMount
	notFound         http.Handler
	methodNotAllowed http.Handler
}

type registeredMount struct {
	prefix  string
	handler http.Handler
}

type Option func(*Router)

// WithNotFound sets the handler used when no route matches.
func WithNotFound(h http.Handler) Option {
	return func(r *Router) {
		r.state.notFound = h
	}
}

// WithMethodNotAllowed sets the handler used when the path matches under
// another method only.
func WithMethodNotAllowed(h http.Handler) Option {
	return func(r *Router) {
		r.state.methodNotAllowed = h
	}
}

// New creates a new Router.
func New(opts ...Option) *Router {
	r := &Router{
		state: &routerState{
			table: NewTable[*Route](),
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Handle registers h for method and pattern.
//
// The route is inserted into the tree immediately. Registering the same
// method and pattern again replaces the previous handler.
func (r *Router) Handle(method, pattern string, h http.Handler) {
	if h == nil {
		panic("methodtree: nil handler for " + method + " " + pattern)
	}
	method = methodOrGet(method)
	rt := &Route{
		Method:  method,
		Pattern: pattern,
		Handler: chainMiddlewares(h, r.middleware),
	}
	r.state.table.Insert(method, pattern, rt)
	r.state.remember(rt)
}

func (s *routerState) remember(rt *Route) {
	for i, old := range s.routes {
		if old.Method == rt.Method && old.Pattern == rt.Pattern {
			s.routes[i] = rt
			return
		}
	}
	s.routes = append(s.routes, rt)
}

// HandleFunc is like Handle but accepts http.HandlerFunc.
func (r *Router) HandleFunc(method, pattern string, h http.HandlerFunc) {
	r.Handle(method, pattern, h)
}

// Get registers a GET route.
func (r *Router) Get(pattern string, h http.HandlerFunc) {
	r.HandleFunc(http.MethodGet, pattern, h)
}

// Post registers a POST route.
func (r *Router) Post(pattern string, h http.HandlerFunc) {
	r.HandleFunc(http.MethodPost, pattern, h)
}

// Put registers a PUT route.
func (r *Router) Put(pattern string, h http.HandlerFunc) {
	r.HandleFunc(http.MethodPut, pattern, h)
}

// Patch registers a PATCH route.
func (r *Router) Patch(pattern string, h http.HandlerFunc) {
	r.HandleFunc(http.MethodPatch, pattern, h)
}

// Delete registers a DELETE route.
func (r *Router) Delete(pattern string, h http.HandlerFunc) {
	r.HandleFunc(http.MethodDelete, pattern, h)
}

// Head registers a HEAD route.
func (r *Router) Head(pattern string, h http.HandlerFunc) {
	r.HandleFunc(http.MethodHead, pattern, h)
}

// Options registers an OPTIONS route.
func (r *Router) Options(pattern string, h http.HandlerFunc) {
	r.HandleFunc(http.MethodOptions, pattern, h)
}

// Use appends router-level middleware for subsequent route registrations.
func (r *Router) Use(mw ...Middleware) {
	r.middleware = append(r.middleware, mw...)
}

// With returns a derived router sharing the same route table, but with
// additional middleware applied to routes registered via the derived router.
func (r *Router) With(mw ...Middleware) *Router {
	combined := make([]Middleware, 0, len(r.middleware)+len(mw))
	combined = append(combined, r.middleware...)
	combined = append(combined, mw...)
	return &Router{
		state:      r.state,
		middleware: combined,
	}
}

// Group calls fn with a derived router (equivalent to fn(r.With())).
func (r *Router) Group(fn func(r *Router)) {
	if fn == nil {
		return
	}
	fn(r.With())
}

// Mount delegates a static path prefix to another handler for every method.
//
// Mounts are consulted only when no route matches. The longest prefix that
// ends at a segment boundary wins. Mounted handlers receive the original
// request path (no path stripping).
func (r *Router) Mount(prefix string, h http.Handler) {
	if h == nil {
		panic("methodtree: nil handler for mount " + prefix)
	}
	r.state.mounts = append(r.state.mounts, registeredMount{
		prefix:  strings.TrimSuffix(prefix, "/"),
		handler: h,
	})
}

// NotFound sets the handler used when no route matches.
//
// Router middleware added with Use is not applied to this handler.
func (r *Router) NotFound(h http.Handler) {
	r.state.notFound = h
}

// MethodNotAllowed sets the handler used when the path matches but the method does not.
//
// Router middleware added with Use is not applied to this handler.
func (r *Router) MethodNotAllowed(h http.Handler) {
	r.state.methodNotAllowed = h
}

// Table returns the underlying route table.
func (r *Router) Table() *Table[*Route] {
	return r.state.table
}

// Routes returns the registered routes in registration order.
func (r *Router) Routes() []Route {
	out := make([]Route, 0, len(r.state.routes))
	for _, rt := range r.state.routes {
		out = append(out, *rt)
	}
	return out
}

// ServeHTTP implements http.Handler.
//
// Path parameters are published with Request.SetPathValue and the matched
// pattern is stored in Request.Pattern before the handler runs.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req == nil || req.URL == nil {
		http.NotFound(w, req)
		return
	}
	path := req.URL.Path

	if rt, params, ok := r.state.table.Lookup(req.Method, path); ok {
		for _, p := range params {
			req.SetPathValue(p.Name, p.Value)
		}
		req.Pattern = rt.Pattern
		rt.Handler.ServeHTTP(w, req)
		return
	}

	if allowed := r.state.table.Allowed(path); len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
		r.serveMethodNotAllowed(w, req)
		return
	}

	if h := r.state.findMount(path); h != nil {
		h.ServeHTTP(w, req)
		return
	}

	r.serveNotFound(w, req)
}

func (s *routerState) findMount(path string) http.Handler {
	var (
		best    http.Handler
		bestLen = -1
	)
	for _, m := range s.mounts {
		if len(m.prefix) <= bestLen || !strings.HasPrefix(path, m.prefix) {
			continue
		}
		if rest := path[len(m.prefix):]; rest != "" && rest[0] != '/' {
			continue
		}
		best, bestLen = m.handler, len(m.prefix)
	}
	return best
}

func (r *Router) serveNotFound(w http.ResponseWriter, req *http.Request) {
	if r.state.notFound != nil {
		r.state.notFound.ServeHTTP(w, req)
		return
	}
	http.NotFound(w, req)
}

func (r *Router) serveMethodNotAllowed(w http.ResponseWriter, req *http.Request) {
	if r.state.methodNotAllowed != nil {
		r.state.methodNotAllowed.ServeHTTP(w, req)
		return
	}
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

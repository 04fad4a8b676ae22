package methodtree

import (
	"net/http"
	"slices"
)

// Table maps HTTP method tokens to independent compressed tries.
//
// All Insert calls are expected to happen before the table starts serving.
// Lookup never mutates the table, so concurrent lookups are safe once
// registration is over; Insert must not run concurrently with anything.
//
// The zero value is ready to use.
type Table[H any] struct {
	roots map[string]*node[H]
}

// NewTable creates an empty Table.
func NewTable[H any]() *Table[H] {
	return &Table[H]{
		roots: make(map[string]*node[H]),
	}
}

// Insert registers h for method and path.
//
// Registering the same method and path again replaces the handler. Method
// tokens are compared exactly, without case folding, with one exception: an
// empty method is stored as GET, as it is for http.Request.Method. Lookup
// applies the same default, so a route inserted under "" is reachable and
// Methods never reports an empty token.
func (t *Table[H]) Insert(method, path string, h H) {
	method = methodOrGet(method)
	if t.roots == nil {
		t.roots = make(map[string]*node[H])
	}
	root := t.roots[method]
	if root == nil {
		root = &node[H]{}
		t.roots[method] = root
	}
	root.insertPath(path, h, 0)
}

// Lookup finds the handler registered for method that matches path.
//
// ok is false when method has no routes or nothing matches. Params holds only
// bindings made along the successful branch. An empty method means GET.
func (t *Table[H]) Lookup(method, path string) (h H, ps Params, ok bool) {
	root := t.roots[methodOrGet(method)]
	if root == nil {
		return h, nil, false
	}
	h, ok = root.matchPath(path, 0, &ps)
	if !ok {
		return h, nil, false
	}
	return h, ps, true
}

// Get registers a GET route.
func (t *Table[H]) Get(path string, h H) { t.Insert(http.MethodGet, path, h) }

// Post registers a POST route.
func (t *Table[H]) Post(path string, h H) { t.Insert(http.MethodPost, path, h) }

// Put registers a PUT route.
func (t *Table[H]) Put(path string, h H) { t.Insert(http.MethodPut, path, h) }

// Delete registers a DELETE route.
func (t *Table[H]) Delete(path string, h H) { t.Insert(http.MethodDelete, path, h) }

// Patch registers a PATCH route.
func (t *Table[H]) Patch(path string, h H) { t.Insert(http.MethodPatch, path, h) }

// Head registers a HEAD route.
func (t *Table[H]) Head(path string, h H) { t.Insert(http.MethodHead, path, h) }

// Options registers an OPTIONS route.
func (t *Table[H]) Options(path string, h H) { t.Insert(http.MethodOptions, path, h) }

// Methods returns the method tokens that have at least one route, sorted.
func (t *Table[H]) Methods() []string {
	methods := make([]string, 0, len(t.roots))
	for m := range t.roots {
		methods = append(methods, m)
	}
	slices.Sort(methods)
	return methods
}

// Allowed returns the sorted methods under which path matches some route.
func (t *Table[H]) Allowed(path string) []string {
	var allowed []string
	var ps Params
	for _, m := range t.Methods() {
		ps = ps[:0]
		if _, ok := t.roots[m].matchPath(path, 0, &ps); ok {
			allowed = append(allowed, m)
		}
	}
	return allowed
}

func methodOrGet(method string) string {
	if method == "" {
		return http.MethodGet
	}
	return method
}

package bench

import (
	"net/http"

	"github.com/catatsuy/methodtree"
)

type methodtreeAdapter struct{}

func (methodtreeAdapter) Name() string { return "methodtree" }

func (methodtreeAdapter) BuildStatic(path string) (http.Handler, error) {
	r := methodtree.New()
	r.Get(path, func(w http.ResponseWriter, req *http.Request) {})
	return r, nil
}

func (methodtreeAdapter) BuildParam(_ string) (http.Handler, error) {
	r := methodtree.New()
	r.Get("/users/:id", func(w http.ResponseWriter, req *http.Request) {
		_ = req.PathValue("id")
	})
	return r, nil
}

func (methodtreeAdapter) BuildManyStatic(prefix string, n int) (http.Handler, string, error) {
	r := methodtree.New()
	for i := 0; i < n; i++ {
		r.Get(itemPath(prefix, i), func(w http.ResponseWriter, req *http.Request) {})
	}
	return r, itemPath(prefix, n-1), nil
}

func (methodtreeAdapter) BuildWildcard(prefix string) (http.Handler, string, error) {
	r := methodtree.New()
	r.Get(prefix+"/*path", func(w http.ResponseWriter, req *http.Request) {
		_ = req.PathValue("path")
	})
	return r, prefix + wildcardTarget, nil
}

// /users/newest walks into the static "new" child first and has to back out
// before the parameter matches.
func (methodtreeAdapter) BuildShadowed() (http.Handler, string, error) {
	r := methodtree.New()
	r.Get("/users/new", func(w http.ResponseWriter, req *http.Request) {})
	r.Get("/users/:id", func(w http.ResponseWriter, req *http.Request) {
		_ = req.PathValue("id")
	})
	return r, "/users/newest", nil
}

func init() {
	registerAdapter(methodtreeAdapter{})
}

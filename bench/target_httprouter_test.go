//go:build httprouter

package bench

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type httprouterAdapter struct{}

func (httprouterAdapter) Name() string { return "httprouter" }

func (httprouterAdapter) BuildStatic(path string) (http.Handler, error) {
	r := httprouter.New()
	r.GET(path, func(w http.ResponseWriter, req *http.Request, _ httprouter.Params) {})
	return r, nil
}

func (httprouterAdapter) BuildParam(_ string) (http.Handler, error) {
	r := httprouter.New()
	r.GET("/users/:id", func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {
		_ = ps.ByName("id")
	})
	return r, nil
}

func (httprouterAdapter) BuildManyStatic(prefix string, n int) (http.Handler, string, error) {
	r := httprouter.New()
	for i := 0; i < n; i++ {
		r.GET(itemPath(prefix, i), func(w http.ResponseWriter, req *http.Request, _ httprouter.Params) {})
	}
	return r, itemPath(prefix, n-1), nil
}

func (httprouterAdapter) BuildWildcard(prefix string) (http.Handler, string, error) {
	r := httprouter.New()
	r.GET(prefix+"/*path", func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {
		_ = ps.ByName("path")
	})
	return r, prefix + wildcardTarget, nil
}

// httprouter rejects a static segment next to a parameter at the same position.
func (httprouterAdapter) BuildShadowed() (http.Handler, string, error) {
	return nil, "", errUnsupported
}

func init() {
	registerAdapter(httprouterAdapter{})
}

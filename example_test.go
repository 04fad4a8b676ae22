package methodtree

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
)

func ExampleRouter_basic() {
	r := New()
	r.Get("/users/:id", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("user=" + req.PathValue("id")))
	})
	r.Get("/files/*path", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("file=" + req.PathValue("path")))
	})

	rec1 := httptest.NewRecorder()
	r.ServeHTTP(rec1, httptest.NewRequest(http.MethodGet, "/users/42", nil))
	fmt.Println(rec1.Body.String())

	rec2 := httptest.NewRecorder()
	r.ServeHTTP(rec2, httptest.NewRequest(http.MethodGet, "/files/css/site.css", nil))
	fmt.Println(rec2.Body.String())

	// Output:
	// user=42
	// file=css/site.css
}

func ExampleRouter_Group() {
	r := New()
	events := make([]string, 0, 4)

	loggingMiddleware := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			events = append(events, "log")
			next.ServeHTTP(w, req)
		})
	}
	authMiddleware := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			events = append(events, "auth")
			next.ServeHTTP(w, req)
		})
	}

	r.Use(loggingMiddleware)
	r.Group(func(api *Router) {
		api.Use(authMiddleware)
		api.Get("/me", func(w http.ResponseWriter, req *http.Request) {
			events = append(events, "handler")
			w.Write([]byte("ok"))
		})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

	fmt.Println(rec.Body.String())
	fmt.Println(events)

	// Output:
	// ok
	// [log auth handler]
}

func ExampleRouter_Mount() {
	r := New()
	r.Mount("/static", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("mounted:" + req.URL.Path))
	}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	fmt.Println(rec.Body.String())

	// Output:
	// mounted:/static/app.js
}

func ExampleTable() {
	t := NewTable[string]()
	t.Get("/users/:id", "show user")
	t.Get("/users/new", "new user form")

	h, ps, _ := t.Lookup(http.MethodGet, "/users/7")
	fmt.Println(h, ps.ByName("id"))

	h, _, _ = t.Lookup(http.MethodGet, "/users/new")
	fmt.Println(h)

	_, _, ok := t.Lookup(http.MethodPost, "/users/7")
	fmt.Println(ok)

	// Output:
	// show user 7
	// new user form
	// false
}

func ExampleTable_Dump() {
	t := NewTable[int]()
	t.Get("/a/bc", 1)
	t.Get("/a/bd", 2)
	t.Dump(os.Stdout)

	// Output:
	// GET
	//   "(root)"
	//     "/a/b"
	//       "c" [h]
	//       "d" [h]
}

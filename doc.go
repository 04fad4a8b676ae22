// Package methodtree provides a compressed prefix-tree (radix) router that
// maps an HTTP method and a URL path to a handler plus captured path
// parameters.
//
// Each method owns an independent trie. Routes use ":name" to capture one
// path segment and "*name" to capture the rest of the path, slashes
// included. At every node static children are preferred over the parameter
// child, which is preferred over the wildcard child, and lookup backtracks
// across all three before giving up.
//
// Table is the generic core and can store any handler type. Router adapts it
// to net/http:
//
//	r := methodtree.New()
//	r.Get("/users/:id", func(w http.ResponseWriter, req *http.Request) {
//		w.Write([]byte(req.PathValue("id")))
//	})
//	r.Get("/files/*path", func(w http.ResponseWriter, req *http.Request) {
//		w.Write([]byte(req.PathValue("path")))
//	})
//	http.ListenAndServe(":8080", r)
//
// Routes are meant to be registered before serving. Lookups never mutate the
// tree, but registering routes while requests are being served is not safe.
package methodtree

package methodtree

// Param is a single path parameter captured during lookup.
type Param struct {
	Name  string
	Value string
}

// Params holds the parameters captured by a successful lookup, in the order
// they were bound while walking from the root to the matched node.
type Params []Param

// Get returns the value bound to name. When a route binds the same name more
// than once, the binding closest to the leaf wins.
func (ps Params) Get(name string) (string, bool) {
	for i := len(ps) - 1; i >= 0; i-- {
		if ps[i].Name == name {
			return ps[i].Value, true
		}
	}
	return "", false
}

// ByName is like Get but returns the empty string for a missing name.
func (ps Params) ByName(name string) string {
	v, _ := ps.Get(name)
	return v
}

// Map returns the parameters as a name to value mapping.
func (ps Params) Map() map[string]string {
	m := make(map[string]string, len(ps))
	for _, p := range ps {
		m[p.Name] = p.Value
	}
	return m
}

package methodtree

import (
	"fmt"
	"io"
	"strings"
)

// NodeKind tells how a trie node is reached from its parent.
type NodeKind int

const (
	KindRoot NodeKind = iota
	KindStatic
	KindParam
	KindWildcard
)

func (k NodeKind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindStatic:
		return "static"
	case KindParam:
		return "param"
	case KindWildcard:
		return "wildcard"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// NodeInfo describes one trie node visited by Walk.
type NodeInfo struct {
	Method     string
	Depth      int
	Kind       NodeKind
	Prefix     string
	ParamName  string
	HasHandler bool
}

// Label is a short human-readable form of the node: the static prefix, or
// the parameter or wildcard name with its token.
func (ni NodeInfo) Label() string {
	switch ni.Kind {
	case KindRoot:
		return "(root)"
	case KindParam:
		return string(paramToken) + ni.ParamName
	case KindWildcard:
		return string(wildcardToken) + ni.ParamName
	default:
		return ni.Prefix
	}
}

// Walk visits the trie of method in pre-order, children in lookup priority
// order: static children as inserted, then the parameter child, then the
// wildcard child. Walk stops early when fn returns false.
func (t *Table[H]) Walk(method string, fn func(NodeInfo) bool) {
	method = methodOrGet(method)
	root := t.roots[method]
	if root == nil {
		return
	}
	root.walk(method, 0, KindRoot, fn)
}

func (n *node[H]) walk(method string, depth int, kind NodeKind, fn func(NodeInfo) bool) bool {
	info := NodeInfo{
		Method:     method,
		Depth:      depth,
		Kind:       kind,
		Prefix:     n.prefix,
		ParamName:  n.paramName,
		HasHandler: n.hasHandler,
	}
	if !fn(info) {
		return false
	}
	for _, child := range n.children {
		if !child.walk(method, depth+1, KindStatic, fn) {
			return false
		}
	}
	if n.paramChild != nil && !n.paramChild.walk(method, depth+1, KindParam, fn) {
		return false
	}
	if n.wildcardChild != nil && !n.wildcardChild.walk(method, depth+1, KindWildcard, fn) {
		return false
	}
	return true
}

// Dump writes an indented text rendering of every method's trie to w.
// Nodes that terminate a route are marked with " [h]".
func (t *Table[H]) Dump(w io.Writer) {
	for _, m := range t.Methods() {
		fmt.Fprintln(w, m)
		t.Walk(m, func(ni NodeInfo) bool {
			mark := ""
			if ni.HasHandler {
				mark = " [h]"
			}
			fmt.Fprintf(w, "%s%q%s\n", strings.Repeat("  ", ni.Depth+1), ni.Label(), mark)
			return true
		})
	}
}

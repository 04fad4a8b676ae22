package methodtree

import "strings"

// node is one element of a method's compressed trie.
//
// Static children are kept in insertion order. A node has at most one
// parameter child and one wildcard child; a wildcard child is always a leaf
// and carries a handler from the moment it is created.
type node[H any] struct {
	prefix string

	handler    H
	hasHandler bool

	children      []*node[H]
	paramChild    *node[H]
	wildcardChild *node[H]

	// paramName is set only on nodes reached as a paramChild or wildcardChild.
	paramName string
}

func (n *node[H]) setHandler(h H) {
	n.handler = h
	n.hasHandler = true
}

// insertPath registers h for path[start:] below n.
func (n *node[H]) insertPath(path string, h H, start int) {
	if start == len(path) {
		n.setHandler(h)
		return
	}

	switch path[start] {
	case paramToken:
		end := segmentEnd(path, start+1)
		// An existing parameter child keeps its original name.
		if n.paramChild == nil {
			n.paramChild = &node[H]{paramName: path[start+1 : end]}
		}
		n.paramChild.insertPath(path, h, end)

	case wildcardToken:
		// Same for the wildcard: the handler is replaced, the name is not.
		if n.wildcardChild == nil {
			n.wildcardChild = &node[H]{paramName: path[start+1:]}
		}
		n.wildcardChild.setHandler(h)

	default:
		end := staticEnd(path, start)
		segment := path[start:end]
		for _, child := range n.children {
			common := longestCommonPrefix(child.prefix, segment)
			if common == 0 {
				continue
			}
			if common < len(child.prefix) {
				child.split(common)
			}
			// start+common == end when the whole segment was consumed.
			child.insertPath(path, h, start+common)
			return
		}
		child := &node[H]{prefix: segment}
		n.children = append(n.children, child)
		child.insertPath(path, h, end)
	}
}

// split truncates n's prefix to its first at bytes and moves everything n
// owned into a single new child holding the remainder of the prefix.
func (n *node[H]) split(at int) {
	rest := &node[H]{
		prefix:        n.prefix[at:],
		handler:       n.handler,
		hasHandler:    n.hasHandler,
		children:      n.children,
		paramChild:    n.paramChild,
		wildcardChild: n.wildcardChild,
	}

	var zero H
	n.prefix = n.prefix[:at]
	n.handler = zero
	n.hasHandler = false
	n.children = []*node[H]{rest}
	n.paramChild = nil
	n.wildcardChild = nil
}

// matchPath searches below n for a handler matching path[depth:].
//
// At every node static children are tried first, then the parameter child,
// then the wildcard child. A call that reports no match leaves params exactly
// as it found it.
func (n *node[H]) matchPath(path string, depth int, params *Params) (H, bool) {
	if depth == len(path) {
		return n.handler, n.hasHandler
	}

	rest := path[depth:]
	for _, child := range n.children {
		if !strings.HasPrefix(rest, child.prefix) {
			continue
		}
		if h, ok := child.matchPath(path, depth+len(child.prefix), params); ok {
			return h, true
		}
	}

	if pc := n.paramChild; pc != nil {
		end := segmentEnd(path, depth)
		if end > depth {
			mark := len(*params)
			*params = append(*params, Param{Name: pc.paramName, Value: path[depth:end]})
			if h, ok := pc.matchPath(path, end, params); ok {
				return h, true
			}
			*params = (*params)[:mark]
		}
	}

	if wc := n.wildcardChild; wc != nil {
		*params = append(*params, Param{Name: wc.paramName, Value: rest})
		return wc.handler, true
	}

	var zero H
	return zero, false
}

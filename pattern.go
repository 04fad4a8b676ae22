package methodtree

import "strings"

// Route syntax is scanned in place while inserting, never compiled ahead of
// time. A ':' opens a parameter that runs to the next '/', a '*' opens a
// wildcard that runs to the end of the path, and everything else is literal.
// Names are not validated: a bare ':' or '*' binds the empty name.
const (
	paramToken    = ':'
	wildcardToken = '*'
)

// segmentEnd returns the index of the first '/' at or after i, or len(path).
func segmentEnd(path string, i int) int {
	if j := strings.IndexByte(path[i:], '/'); j >= 0 {
		return i + j
	}
	return len(path)
}

// staticEnd returns the index of the first parameter or wildcard token at or
// after i, or len(path).
func staticEnd(path string, i int) int {
	for j := i; j < len(path); j++ {
		if path[j] == paramToken || path[j] == wildcardToken {
			return j
		}
	}
	return len(path)
}

func longestCommonPrefix(a, b string) int {
	n := min(len(b), len(a))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

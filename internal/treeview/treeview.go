// Package treeview renders route tables as indented trees for terminals.
package treeview

import (
	"fmt"
	"io"
	"strings"

	"github.com/catatsuy/methodtree"
	"github.com/charmbracelet/lipgloss"
)

// Walker is the part of methodtree.Table used for rendering.
type Walker interface {
	Methods() []string
	Walk(method string, fn func(methodtree.NodeInfo) bool)
}

type styles struct {
	method   lipgloss.Style
	static   lipgloss.Style
	param    lipgloss.Style
	wildcard lipgloss.Style
	branch   lipgloss.Style
	marker   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		method:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#4589ff")),
		static:   r.NewStyle(),
		param:    r.NewStyle().Foreground(lipgloss.Color("#3ddbd9")),
		wildcard: r.NewStyle().Foreground(lipgloss.Color("#ff832b")),
		branch:   r.NewStyle().Foreground(lipgloss.Color("#8d8d8d")),
		marker:   r.NewStyle().Foreground(lipgloss.Color("#24a148")),
	}
}

// Render writes every method's trie to w. With styled false the output is
// plain text, suitable for files and pipes.
//
//	GET
//	└─ /users •
//	   └─ /
//	      └─ :id •
func Render(w io.Writer, t Walker, styled bool) error {
	var st styles
	if styled {
		st = newStyles(w)
	}
	paint := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	for i, m := range t.Methods() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, paint(st.method, m)); err != nil {
			return err
		}

		var err error
		t.Walk(m, func(ni methodtree.NodeInfo) bool {
			if ni.Kind == methodtree.KindRoot {
				if ni.HasHandler {
					_, err = fmt.Fprintln(w, paint(st.marker, "•"))
				}
				return err == nil
			}
			var label string
			switch ni.Kind {
			case methodtree.KindParam:
				label = paint(st.param, ni.Label())
			case methodtree.KindWildcard:
				label = paint(st.wildcard, ni.Label())
			default:
				label = paint(st.static, ni.Label())
			}
			if ni.HasHandler {
				label += " " + paint(st.marker, "•")
			}
			indent := strings.Repeat("   ", ni.Depth-1)
			_, err = fmt.Fprintf(w, "%s%s %s\n", indent, paint(st.branch, "└─"), label)
			return err == nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

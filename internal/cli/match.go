package cli

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/catatsuy/methodtree"
	"github.com/google/shlex"
	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match [QUERY...]",
		Short: "Look up paths against the configured routes",
		Long: `Each query is "METHOD PATH" or just "PATH" (GET). Quote queries that
contain spaces. Without arguments, queries are read from stdin, one per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := loadTable(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				for _, q := range args {
					if err := matchQuery(out, tbl, q); err != nil {
						return err
					}
				}
				return nil
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				line := strings.TrimSpace(sc.Text())
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				if err := matchQuery(out, tbl, line); err != nil {
					return err
				}
			}
			return sc.Err()
		},
	}
}

func matchQuery(w io.Writer, tbl *methodtree.Table[string], query string) error {
	fields, err := shlex.Split(query)
	if err != nil {
		return fmt.Errorf("query %q: %w", query, err)
	}

	var method, path string
	switch len(fields) {
	case 1:
		method, path = http.MethodGet, fields[0]
	case 2:
		method, path = fields[0], fields[1]
	default:
		return fmt.Errorf("query %q: want [METHOD] PATH", query)
	}

	pattern, ps, ok := tbl.Lookup(method, path)
	if !ok {
		_, err = fmt.Fprintf(w, "%s %s -> not found\n", method, path)
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s -> %s", method, path, pattern)
	for _, p := range ps {
		fmt.Fprintf(&b, " %s=%q", p.Name, p.Value)
	}
	b.WriteByte('\n')
	_, err = io.WriteString(w, b.String())
	return err
}

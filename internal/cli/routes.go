package cli

import (
	"os"

	"github.com/catatsuy/methodtree"
	"github.com/catatsuy/methodtree/internal/config"
	"github.com/catatsuy/methodtree/internal/treeview"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newRoutesCmd() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the route trie of every method",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := loadTable(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			styled := !plain
			if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
				styled = false
			}
			return treeview.Render(out, tbl, styled)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colors")
	return cmd
}

// loadTable reads the configured routes into a table whose handlers are the
// route patterns themselves.
func loadTable(cmd *cobra.Command) (*methodtree.Table[string], error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	tbl := methodtree.NewTable[string]()
	for _, rt := range cfg.Routes {
		tbl.Insert(rt.Method, rt.Path, rt.Path)
	}
	return tbl, nil
}

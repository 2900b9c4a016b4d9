package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harness/pubcheck/config"
	"github.com/harness/pubcheck/internal/catalog"
	"github.com/harness/pubcheck/util/common/printer"
)

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the artifact catalog and the registry targets of each artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := config.Global.Verify
			c, err := loadCatalog(v.CatalogPath, v.Only)
			if err != nil {
				return err
			}

			t := printer.Table{Headers: []string{"Name", "Kind", "Targets", "Checks"}}
			for _, e := range c {
				var targets []string
				for _, tg := range catalog.Targets(e) {
					targets = append(targets, tg.String())
				}
				t.Append(e.Name, e.Kind.String(), strings.Join(targets, ", "), strconv.Itoa(len(targets)))
			}
			if err := printer.PrintTable(cmd.OutOrStdout(), t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d artifacts, %d checks\n", len(c), c.CheckCount())
			return nil
		},
	}
}

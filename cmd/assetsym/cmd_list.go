package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"assetsym/internal/config"
	"assetsym/internal/generator"
)

// listCmd prints the bindings without writing anything.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the symbol bindings the catalogs would produce",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	rendered, err := generator.Render(commandContext(cmd), cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CONSTANT\tKEY\tVISIBILITY")
	for _, b := range rendered.Table.Bindings {
		vis := "public"
		if !b.Exported {
			vis = "internal"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.Name, b.Key, vis)
	}
	return w.Flush()
}

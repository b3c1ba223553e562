package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	httpRouter "github.com/ignatzorin/portfolio-backend/internal/http/router"
)

var proceduresJSON bool

var proceduresCmd = &cobra.Command{
	Use:   "procedures",
	Short: "Показать RPC процедуры сервера",
	// Конфигурация и база не нужны.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		infos := httpRouter.Describe(httpRouter.Procedures(&httpRouter.Handlers{}))

		if proceduresJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(infos)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tKIND\tMETHOD\tPATH")
		for _, p := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, p.Kind, p.Method, p.Path)
		}
		return w.Flush()
	},
}

func init() {
	proceduresCmd.Flags().BoolVar(&proceduresJSON, "json", false, "вывод в JSON")
}

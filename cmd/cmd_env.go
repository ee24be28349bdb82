// cmd_env.go - Konfigurations-Uebersicht
// Hauptfunktionen: newEnvCmd, printEnvTable
package cmd

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/7blacky7/termkit/envconfig"
)

// newEnvCmd - Listet alle Environment-Variablen mit aktuellen Werten auf
func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List all TERMKIT environment variables and their current values",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printEnvTable(cmd.OutOrStdout())
		},
	}
}

// printEnvTable - Gibt die sortierte Konfigurations-Tabelle aus
func printEnvTable(w io.Writer) {
	values := envconfig.Values()

	var data [][]string
	for _, e := range sortedEnvs() {
		data = append(data, []string{e.Name, values[e.Name], e.Description})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"NAME", "VALUE", "DESCRIPTION"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}

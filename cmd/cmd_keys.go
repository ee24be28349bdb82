// cmd_keys.go - Key-Decoder-Inspektion
// Hauptfunktionen: newKeysCmd, printKeyTable
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/7blacky7/termkit/keyread"
)

// newKeysCmd - Gibt dekodierte Tastendruecke aus, bis Escape kommt
func newKeysCmd() *cobra.Command {
	var table bool

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Echo decoded keypresses until Escape is pressed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if table {
				printKeyTable(cmd.OutOrStdout())
				return nil
			}

			guard, err := keyread.AcquireRawMode()
			if err != nil {
				return err
			}
			defer guard.Release()

			fmt.Fprint(os.Stdout, "press keys, Escape to quit\r\n")

			dec := keyread.NewDecoder(os.Stdin)
			for {
				key, err := dec.ReadKey()
				if err != nil {
					return err
				}

				switch key.Kind {
				case keyread.KindEscape:
					return nil
				case keyread.KindChar:
					fmt.Fprintf(os.Stdout, "%s %q\r\n", key.Kind, key.Rune)
				case keyread.KindUnknown:
					slog.Debug("unrecognized key sequence", "raw", key.Raw)
					fmt.Fprintf(os.Stdout, "%s %v\r\n", key.Kind, key.Raw)
				default:
					fmt.Fprintf(os.Stdout, "%s\r\n", key.Kind)
				}
			}
		},
	}

	cmd.Flags().BoolVar(&table, "table", false, "Print the decode reference table instead of reading keys")
	return cmd
}

// printKeyTable - Gibt die Referenz-Tabelle der dekodierten Tasten aus
func printKeyTable(w io.Writer) {
	data := [][]string{
		{"Up", "ESC [ A / ESC O A", "0xE0 H"},
		{"Down", "ESC [ B / ESC O B", "0xE0 P"},
		{"Right", "ESC [ C / ESC O C", "0xE0 M"},
		{"Left", "ESC [ D / ESC O D", "0xE0 K"},
		{"Enter", "CR / LF", "CR"},
		{"Space", "0x20", "0x20"},
		{"Tab", "0x09", "0x09"},
		{"Backspace", "0x7F / 0x08", "0x08"},
		{"Escape", "lone ESC", "lone ESC"},
		{"Char", "printable byte / UTF-8", "printable byte"},
		{"Unknown", "any other sequence", "any other extended code"},
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"KEY", "POSIX BYTES", "WINDOWS BYTES"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}

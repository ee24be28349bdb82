// cmd_select.go - Interaktive Auswahl-Commands
// Hauptfunktionen: newSelectCmd, newMultiselectCmd, newConfirmCmd
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/7blacky7/termkit/choose"
	"github.com/7blacky7/termkit/input"
	"github.com/7blacky7/termkit/styled"
)

// newSelectCmd - Einzelauswahl aus den uebergebenen Optionen
func newSelectCmd() *cobra.Command {
	var prompt string

	cmd := &cobra.Command{
		Use:   "select OPTION...",
		Short: "Pick one option interactively, print it to stdout",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := choose.Select(prompt, args)
			if errors.Is(err, choose.ErrCancelled) {
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), args[idx])
			return nil
		},
	}

	cmd.Flags().StringVarP(&prompt, "prompt", "p", "Select an option", "Prompt text shown above the list")
	return cmd
}

// newMultiselectCmd - Mehrfachauswahl aus den uebergebenen Optionen
func newMultiselectCmd() *cobra.Command {
	var prompt string
	var allowEmpty bool

	cmd := &cobra.Command{
		Use:   "multiselect OPTION...",
		Short: "Check any number of options, print them to stdout",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []choose.Option
			if allowEmpty {
				opts = append(opts, choose.WithAllowEmpty())
			}

			indices, err := choose.MultiSelect(prompt, args, opts...)
			if errors.Is(err, choose.ErrCancelled) {
				return nil
			}
			if err != nil {
				return err
			}

			picked := make([]string, 0, len(indices))
			for _, i := range indices {
				picked = append(picked, args[i])
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(picked, "\n"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&prompt, "prompt", "p", "Select options", "Prompt text shown above the list")
	cmd.Flags().BoolVar(&allowEmpty, "allow-empty", false, "Permit confirming with nothing checked")
	return cmd
}

// newConfirmCmd - Ja/Nein-Bestaetigung; Exit-Code 1 bei Nein
func newConfirmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "confirm [QUESTION]",
		Short: "Ask a yes/no question, exit 0 on yes and 1 on no",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := "Continue?"
			if len(args) == 1 {
				question = args[0]
			}

			yes, err := input.Confirm(question)
			if err != nil {
				return err
			}
			if !yes {
				return fmt.Errorf("%s", styled.Fg(styled.Red, "declined"))
			}
			return nil
		},
	}
}

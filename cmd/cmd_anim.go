// cmd_anim.go - Animations-Demos
// Hauptfunktionen: newSpinCmd, newRevealCmd
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/7blacky7/termkit/progress"
)

// spinnerTypes - Zuordnung der --type-Werte zu Frame-Saetzen
var spinnerTypes = map[string]progress.SpinnerType{
	"standard": progress.Standard,
	"dots":     progress.Dots,
	"box":      progress.Box,
	"flip":     progress.Flip,
}

// newSpinCmd - Zeigt einen Spinner fuer die angegebene Dauer
func newSpinCmd() *cobra.Command {
	var duration time.Duration
	var typeName string

	cmd := &cobra.Command{
		Use:   "spin",
		Short: "Animate a spinner for a while",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := spinnerTypes[typeName]
			if !ok {
				keys := make([]string, 0, len(spinnerTypes))
				for k := range spinnerTypes {
					keys = append(keys, k)
				}
				return fmt.Errorf("unknown spinner type %q (have: %s)", typeName, strings.Join(keys, ", "))
			}

			progress.Spin(os.Stdout, t, duration)
			return nil
		},
	}

	cmd.Flags().DurationVarP(&duration, "for", "f", 2*time.Second, "How long to spin")
	cmd.Flags().StringVarP(&typeName, "type", "t", "standard", "Spinner type (standard, dots, box, flip)")
	return cmd
}

// newRevealCmd - Gibt Text Zeichen fuer Zeichen aus
func newRevealCmd() *cobra.Command {
	var every time.Duration

	cmd := &cobra.Command{
		Use:   "reveal TEXT...",
		Short: "Print text with a typewriter effect",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			progress.Reveal(os.Stdout, strings.Join(args, " ")+"\n", every)
			return nil
		},
	}

	cmd.Flags().DurationVarP(&every, "every", "e", 40*time.Millisecond, "Delay between characters")
	return cmd
}

// cmd.go - Haupt-CLI Setup und Root Command
// Hauptfunktionen: NewCLI, appendEnvDocs
package cmd

import (
	"log/slog"
	"os"
	"runtime"
	"sort"

	"github.com/containerd/console"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/7blacky7/termkit/envconfig"
)

// appendEnvDocs - Fuegt Umgebungsvariablen-Dokumentation zum Command hinzu
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += "      " + e.Name + "   " + e.Description + "\n"
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// sortedEnvs - Gibt alle Environment-Variablen sortiert zurueck
func sortedEnvs() []envconfig.EnvVar {
	m := envconfig.AsMap()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	envs := make([]envconfig.EnvVar, 0, len(keys))
	for _, k := range keys {
		envs = append(envs, m[k])
	}
	return envs
}

// NewCLI - Erstellt das Haupt-CLI mit allen Commands
func NewCLI() *cobra.Command {
	slog.SetLogLoggerLevel(envconfig.LogLevel())
	cobra.EnableCommandSorting = false

	if runtime.GOOS == "windows" && term.IsTerminal(int(os.Stdout.Fd())) {
		// VT-Verarbeitung der Windows-Console aktivieren
		console.ConsoleFromFile(os.Stdin) //nolint:errcheck
	}

	rootCmd := &cobra.Command{
		Use:           "termkit",
		Short:         "Terminal interaction toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(cmd.UsageString())
		},
	}

	selectCmd := newSelectCmd()
	multiselectCmd := newMultiselectCmd()
	confirmCmd := newConfirmCmd()
	keysCmd := newKeysCmd()
	spinCmd := newSpinCmd()
	revealCmd := newRevealCmd()
	envCmd := newEnvCmd()

	rootCmd.AddCommand(
		selectCmd,
		multiselectCmd,
		confirmCmd,
		keysCmd,
		spinCmd,
		revealCmd,
		envCmd,
	)

	envs := sortedEnvs()
	for _, cmd := range []*cobra.Command{selectCmd, multiselectCmd, confirmCmd, keysCmd, spinCmd, revealCmd} {
		appendEnvDocs(cmd, envs)
	}
	appendEnvDocs(rootCmd, envs)

	return rootCmd
}

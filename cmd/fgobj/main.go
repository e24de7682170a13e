// fgobj - FortiGate configuration object renderer
//
// Reads a manifest of FortiGate objects (interfaces, addresses, policies,
// services, static routes, VDOMs, vdom-links, IPsec phase1/phase2),
// validates every field, and renders each object as a FortiOS CLI script
// or a REST API request descriptor. Nothing is sent to a device: output
// goes to stdout or to a Redis outbox for a separate applier.
//
// Examples:
//
//	fgobj validate -f site.yaml
//	fgobj render -f site.yaml                       # CLI scripts
//	fgobj render -f site.yaml --format api --yaml   # API requests as YAML
//	fgobj render -f site.yaml --op delete
//	fgobj export -f site.yaml --redis 10.0.0.5:6379
//	fgobj kinds --fields
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/newtron-network/fgobj/pkg/cli"
	"github.com/newtron-network/fgobj/pkg/settings"
	"github.com/newtron-network/fgobj/pkg/util"
	"github.com/newtron-network/fgobj/pkg/version"
)

var (
	// Global option flags
	manifestFile string
	defaultVDOM  string
	opName       string
	promptPSK    bool
	verbose      bool
	logJSON      bool
	noColor      bool

	// Global state
	userSettings *settings.Settings
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "fgobj",
	Short:             "FortiGate configuration object renderer",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `fgobj validates declarative FortiGate object manifests and renders them
as FortiOS CLI scripts or REST API request descriptors.

  fgobj render -f <manifest> [--format cli|api] [--op add|update|delete|get]`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		util.SetupLogging(verbose, logJSON)
		if noColor {
			cli.SetColor(false)
		}

		var err error
		userSettings, err = settings.Load()
		if err != nil {
			util.Warnf("Could not load settings: %v", err)
			userSettings = &settings.Settings{}
		}
		if defaultVDOM == "" {
			defaultVDOM = userSettings.DefaultVDOM
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	// Manifest flags are local to commands that read one.
	for _, cmd := range []*cobra.Command{renderCmd, validateCmd, exportCmd} {
		addManifestFlags(cmd)
	}
	for _, cmd := range []*cobra.Command{renderCmd, exportCmd} {
		cmd.Flags().StringVar(&opName, "op", "add", "Operation for entries without their own op (add, update, delete, get)")
	}

	rootCmd.AddGroup(
		&cobra.Group{ID: "objects", Title: "Object Operations:"},
		&cobra.Group{ID: "meta", Title: "Configuration & Meta:"},
	)

	for _, cmd := range []*cobra.Command{renderCmd, validateCmd, exportCmd, kindsCmd} {
		cmd.GroupID = "objects"
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{settingsCmd, versionCmd} {
		cmd.GroupID = "meta"
		rootCmd.AddCommand(cmd)
	}
}

func addManifestFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&manifestFile, "file", "f", "", "Manifest file (YAML or JSON)")
	cmd.Flags().StringVar(&defaultVDOM, "vdom", "", "VDOM for manifests that do not name one")
	cmd.Flags().BoolVar(&promptPSK, "prompt-psk", false, "Prompt for phase1 pre-shared keys missing from the manifest")
	cmd.MarkFlagRequired("file")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if version.IsDev() {
			fmt.Println("fgobj dev build (set version info with -ldflags, see pkg/version)")
		} else {
			fmt.Printf("fgobj %s\n", version.Info())
		}
	},
}

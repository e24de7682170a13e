package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/newtron-network/fgobj/pkg/cli"
	"github.com/newtron-network/fgobj/pkg/export"
	"github.com/newtron-network/fgobj/pkg/fgobj"
	"github.com/newtron-network/fgobj/pkg/settings"
	"github.com/newtron-network/fgobj/pkg/util"
)

var (
	renderFormat string
	renderYAML   bool

	exportRedis string
	exportDB    int

	kindsFields bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render manifest objects as CLI scripts or API requests",
	Long: `Render every object of a manifest.

The CLI format prints FortiOS configuration scripts. The api format prints
REST request descriptors (api, path, name, mkey, parameters, data) as a
JSON array, or as a YAML stream with --yaml.

Examples:
  fgobj render -f site.yaml
  fgobj render -f site.yaml --format api
  fgobj render -f site.yaml --format api --yaml --op get`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := sinkFormat(renderFormat, renderYAML)
		if err != nil {
			return err
		}
		rendered, err := renderManifest()
		if err != nil {
			return err
		}
		sink := export.NewWriterSink(cmd.OutOrStdout(), format)
		defer sink.Close()
		return sink.Write(cmd.Context(), rendered)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a manifest without rendering it",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := loadItems()
		if err != nil {
			var verr *util.ValidationError
			if !errors.As(err, &verr) {
				return err
			}
			fmt.Println(cli.Yellow("Validation failed:"))
			for _, msg := range verr.Errors {
				fmt.Printf("  %s %s\n", cli.Status(false), msg)
			}
			return fmt.Errorf("%d manifest entries failed validation", len(verr.Errors))
		}

		for _, it := range items {
			name := fmt.Sprintf("%s %v", it.Object.Kind(), it.Object.ID())
			fmt.Printf("  %s %s\n", cli.DotPad(name, 40), cli.Status(true))
		}
		fmt.Printf("\n%s\n", cli.Bold(fmt.Sprintf("%d objects valid", len(items))))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Queue rendered objects in a Redis outbox",
	Long: `Render every object of a manifest and queue it in Redis for an
external applier. API requests are stored as hashes under
FGAPI|<vdom>|<path>.<name>|<key>|<op>; CLI scripts are appended to FGCLI|<vdom>.

Examples:
  fgobj export -f site.yaml
  fgobj export -f site.yaml --redis 10.0.0.5:6379 --db 2 --op delete`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rendered, err := renderManifest()
		if err != nil {
			return err
		}

		addr := exportRedis
		if addr == "" {
			addr = userSettings.GetRedisAddr()
		}
		db := exportDB
		if !cmd.Flags().Changed("db") {
			db = userSettings.RedisDB
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		sink := export.NewRedisSink(addr, db)
		defer sink.Close()
		if err := sink.Connect(ctx); err != nil {
			return fmt.Errorf("connecting to redis at %s: %w", addr, err)
		}
		if err := sink.Write(ctx, rendered); err != nil {
			return err
		}
		util.WithFields(map[string]interface{}{"addr": addr, "db": db}).Infof("queued %d objects", len(rendered))
		fmt.Printf("Queued %d objects in %s (db %d)\n", len(rendered), addr, db)
		return nil
	},
}

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List supported object kinds",
	RunE: func(cmd *cobra.Command, args []string) error {
		headers := []string{"KIND", "SCOPE", "CLI PATH", "API"}
		if kindsFields {
			headers = append(headers, "PARAMS")
		}
		t := cli.NewTableTo(cmd.OutOrStdout(), headers...)
		for _, info := range fgobj.Kinds() {
			row := []string{string(info.Kind), info.Scope.String(), info.CLIPath, info.APIPath + "/" + info.APIName}
			if kindsFields {
				row = append(row, strings.Join(fgobj.FieldNames(info.Kind), ","))
			}
			t.Row(row...)
		}
		t.Flush()
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderFormat, "format", "", "Output format: cli or api (default from settings, else cli)")
	renderCmd.Flags().BoolVar(&renderYAML, "yaml", false, "Print API requests as YAML instead of JSON")

	exportCmd.Flags().StringVar(&exportRedis, "redis", "", "Redis address (default from settings, else "+settings.DefaultRedisAddr+")")
	exportCmd.Flags().IntVar(&exportDB, "db", 0, "Redis database number")

	kindsCmd.Flags().BoolVar(&kindsFields, "fields", false, "Show the manifest params of each kind")
}

// sinkFormat maps the --format and --yaml flags onto an output format.
func sinkFormat(name string, asYAML bool) (export.Format, error) {
	if name == "" {
		name = userSettings.GetFormat()
	}
	switch strings.ToLower(name) {
	case "cli":
		if asYAML {
			return "", fmt.Errorf("--yaml applies to --format api only")
		}
		return export.FormatCLI, nil
	case "api", "json":
		if asYAML {
			return export.FormatYAML, nil
		}
		return export.FormatJSON, nil
	default:
		return export.ParseFormat(name)
	}
}

// renderManifest loads the manifest and renders each item with its own op,
// or with --op when the entry has none.
func renderManifest() ([]export.Rendered, error) {
	op, err := fgobj.ParseOp(opName)
	if err != nil {
		return nil, err
	}
	items, err := loadItems()
	if err != nil {
		return nil, err
	}
	objs, ops := itemOps(items)
	rendered, err := export.RenderAll(objs, ops, op)
	if err != nil {
		return nil, err
	}
	util.Debugf("rendered %d objects from %s", len(rendered), manifestFile)
	return rendered, nil
}

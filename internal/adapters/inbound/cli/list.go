package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gomsv/gomsv/internal/adapters/outbound/catalog"
	"github.com/gomsv/gomsv/internal/adapters/outbound/toolchain"
	"github.com/gomsv/gomsv/internal/adapters/outbound/tui"
	"github.com/gomsv/gomsv/internal/application"
)

func newListCmd() *cobra.Command {
	var (
		flags      scanFlags
		catalogURL string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "list [path]",
		Short: "List the releases a scan would probe, newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath := "."
			if len(args) == 1 {
				projectPath = args[0]
			}

			cfg, err := resolveConfig(projectPath, flags)
			if err != nil {
				return err
			}

			svc := application.NewFindService(
				catalog.New(catalog.WithBaseURL(catalogURL), catalog.WithTarget(cfg.Target)),
				toolchain.New(projectPath),
				tui.Silent{},
			)

			releases, err := svc.Candidates(cfg)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(releases)
			}

			for _, r := range releases {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", r.Version, r.Channel)
			}
			return nil
		},
	}

	addScanFlags(cmd, &flags)
	cmd.Flags().StringVar(&catalogURL, "catalog-url", "", "Release index URL (e.g. a mirror)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gomsv/gomsv/internal/adapters/outbound/catalog"
	"github.com/gomsv/gomsv/internal/adapters/outbound/config"
	"github.com/gomsv/gomsv/internal/adapters/outbound/gitinfo"
	"github.com/gomsv/gomsv/internal/adapters/outbound/history"
	"github.com/gomsv/gomsv/internal/adapters/outbound/toolchain"
	"github.com/gomsv/gomsv/internal/adapters/outbound/tui"
	"github.com/gomsv/gomsv/internal/application"
	"github.com/gomsv/gomsv/internal/domain"
)

// scanFlags carries the command-line values shared by find and list.
type scanFlags struct {
	minVersion string
	maxVersion string
	allPatches bool
	check      string
	target     string
}

func newFindCmd() *cobra.Command {
	var (
		flags        scanFlags
		catalogURL   string
		toolchainDir string
		jsonOutput   bool
		quiet        bool
		noRecord     bool
	)

	cmd := &cobra.Command{
		Use:   "find [path]",
		Short: "Find the oldest toolchain release passing the check command",
		Long: "Probe toolchain releases newest-first, running the check command against each, " +
			"and report the oldest release that still passes. The scan stops at the first " +
			"failing release, assuming compatibility never comes back in older releases.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath := "."
			if len(args) == 1 {
				projectPath = args[0]
			}

			cfg, err := resolveConfig(projectPath, flags)
			if err != nil {
				return err
			}

			var reporter domain.ProgressReporter = tui.New(cmd.OutOrStdout())
			if quiet || jsonOutput {
				reporter = tui.Silent{}
			}

			svc := application.NewFindService(
				catalog.New(catalog.WithBaseURL(catalogURL), catalog.WithTarget(cfg.Target)),
				toolchain.New(projectPath, toolchain.WithRootDir(toolchainDir)),
				reporter,
			)

			verdict, err := svc.Find(cfg)
			if err != nil {
				return err
			}

			if !noRecord {
				rec := application.NewRecordService(history.New(), gitinfo.New())
				if err := rec.Record(projectPath, verdict, cfg.CheckCommandString()); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: recording result: %v\n", err)
				}
			}

			if jsonOutput {
				return renderVerdictJSON(cmd, verdict)
			}
			return nil
		},
	}

	addScanFlags(cmd, &flags)
	cmd.Flags().StringVar(&catalogURL, "catalog-url", "", "Release index URL (e.g. a mirror)")
	cmd.Flags().StringVar(&toolchainDir, "toolchain-dir", "", "Directory to install probed toolchains under")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the verdict as JSON")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress progress output")
	cmd.Flags().BoolVar(&noRecord, "no-record", false, "Do not append the result to the project history")

	return cmd
}

func addScanFlags(cmd *cobra.Command, flags *scanFlags) {
	cmd.Flags().StringVar(&flags.minVersion, "min", "", "Lowest version to consider (inclusive)")
	cmd.Flags().StringVar(&flags.maxVersion, "max", "", "Highest version to consider (inclusive)")
	cmd.Flags().BoolVar(&flags.allPatches, "all-patches", false,
		"Probe every patch release instead of one per minor version")
	cmd.Flags().StringVar(&flags.check, "check", "", "Check command to run (default \"go build ./...\")")
	cmd.Flags().StringVar(&flags.target, "target", "", "Platform to install toolchains for, as os/arch")
}

// resolveConfig builds the scan config from .gomsv.yaml overlaid with
// explicit flags. Flags always win over file values.
func resolveConfig(projectPath string, flags scanFlags) (domain.Config, error) {
	settings, err := config.New().Load(projectPath)
	if err != nil {
		return domain.Config{}, err
	}

	cfg := domain.DefaultConfig()
	cfg.IncludeAllPatchReleases = settings.AllPatches || flags.allPatches
	cfg.Target = firstNonEmpty(flags.target, settings.Target)

	if check := firstNonEmpty(flags.check, settings.Check); check != "" {
		cfg.CheckCommand = strings.Fields(check)
	}
	if min := firstNonEmpty(flags.minVersion, settings.MinVersion); min != "" {
		v := domain.Version(min)
		cfg.MinimumVersion = &v
	}
	if max := firstNonEmpty(flags.maxVersion, settings.MaxVersion); max != "" {
		v := domain.Version(max)
		cfg.MaximumVersion = &v
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// verdictJSON is the machine-readable shape of a capable verdict.
type verdictJSON struct {
	MinimumVersion string `json:"minimum_version"`
	Toolchain      string `json:"toolchain"`
}

func renderVerdictJSON(cmd *cobra.Command, verdict domain.Verdict) error {
	if !verdict.IsCapable() {
		return errors.New("no verdict to render")
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(verdictJSON{
		MinimumVersion: verdict.Version.String(),
		Toolchain:      verdict.Toolchain,
	})
}

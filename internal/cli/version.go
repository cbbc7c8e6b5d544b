package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dannyvoid/gpu-preference/internal/branding"
	"github.com/dannyvoid/gpu-preference/internal/config"
	"github.com/dannyvoid/gpu-preference/internal/updater"
)

var (
	versionShort bool
	versionJSON  bool
	versionCheck bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "Check GitHub for a newer release")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), buildVersion)
			return nil
		}

		if versionJSON {
			info := map[string]string{
				"version": buildVersion,
				"commit":  buildCommit,
				"date":    buildDate,
			}
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (commit: %s, built: %s)\n",
			branding.CLIName(), buildVersion, buildCommit, buildDate)

		if !versionCheck {
			return nil
		}

		ch := updater.New(buildVersion)
		release, err := ch.CheckLatestVersion()
		if err != nil {
			return fmt.Errorf("checking latest release: %w", err)
		}
		available, err := updater.IsUpdateAvailable(buildVersion, release.Version)
		if err != nil {
			return fmt.Errorf("comparing versions: %w", err)
		}

		_ = updater.SaveCache(config.Dir(), &updater.VersionCache{
			LatestVersion:   release.Version,
			CurrentVersion:  buildVersion,
			CheckedAt:       time.Now(),
			UpdateAvailable: available,
		})

		if available {
			fmt.Fprintf(cmd.OutOrStdout(), "Update available: %s (see %s)\n", release.Version, release.HTMLURL)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Up to date.")
		}
		return nil
	},
}

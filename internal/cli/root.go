package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dannyvoid/gpu-preference/internal/branding"
	"github.com/dannyvoid/gpu-preference/internal/config"
	"github.com/dannyvoid/gpu-preference/internal/store"
	"github.com/dannyvoid/gpu-preference/internal/updater"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` views and edits the per-executable GPU preference
assignments Windows keeps under HKCU\Software\Microsoft\DirectX\UserGpuPreferences.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		// version manages its own check; dev builds have nothing to
		// compare against.
		if cmd.Name() == "version" || buildVersion == "" || buildVersion == "dev" {
			return
		}

		// Non-blocking banner from the cached version check.
		updater.New(buildVersion).CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// openStore opens the system-backed preference store. Tests swap it for
// an in-memory store.
var openStore = func() (*store.Store, error) {
	b, err := store.OpenSystemBackend()
	if err != nil {
		return nil, err
	}
	return store.New(b), nil
}

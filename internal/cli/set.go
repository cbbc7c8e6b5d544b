package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dannyvoid/gpu-preference/internal/store"
)

var setGPU string

func init() {
	setCmd.Flags().StringVar(&setGPU, "gpu", "", "GPU preference to assign (power or performance)")
	_ = setCmd.MarkFlagRequired("gpu")
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set <path>...",
	Short: "Assign a GPU preference to executables",
	Long:  `Assign the given GPU preference to each executable path, overwriting any existing assignment.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pref, err := store.ParsePreference(setGPU)
		if err != nil {
			return err
		}
		s, err := openStore()
		if err != nil {
			return err
		}
		for _, path := range args {
			if err := s.SetPreference(path, pref); err != nil {
				return fmt.Errorf("setting preference for %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s for %s\n", labelFor(pref), path)
		}
		return nil
	},
}

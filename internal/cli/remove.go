package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <path>...",
	Short: "Remove GPU preference entries",
	Long:  `Remove the GPU preference entry for each path. Paths with no entry are ignored.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		for _, path := range args {
			if err := s.Delete(path); err != nil {
				return fmt.Errorf("removing entry for %s: %w", path, err)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entr%s.\n", len(args), plural(len(args), "y", "ies"))
		return nil
	},
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

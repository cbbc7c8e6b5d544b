package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dannyvoid/gpu-preference/internal/pathutil"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [path...]",
	Short: "Check that stored executables still exist",
	Long: `Check each stored entry (or just the given paths) against the
filesystem and report executables that no longer exist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var paths []string
		if len(args) > 0 {
			for _, a := range args {
				paths = append(paths, pathutil.Normalize(a))
			}
		} else {
			s, err := openStore()
			if err != nil {
				return err
			}
			entries, err := s.ReadAll()
			if err != nil {
				return fmt.Errorf("reading preference entries: %w", err)
			}
			for _, e := range entries {
				paths = append(paths, e.Path)
			}
		}

		checked, missing := 0, 0
		for _, p := range paths {
			exists := existsOnDisk(p)
			if exists == nil {
				// Not an absolute .exe path; nothing to check.
				continue
			}
			checked++
			if !*exists {
				missing++
				fmt.Fprintf(cmd.OutOrStdout(), "missing: %s\n", p)
			}
		}

		if missing == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "All %d executable(s) exist.\n", checked)
			return nil
		}
		return fmt.Errorf("%d of %d executable(s) missing", missing, checked)
	},
}

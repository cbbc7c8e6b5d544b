package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}

var backupCmd = &cobra.Command{
	Use:   "backup <file>",
	Short: "Save all entries to a JSON backup file",
	Long:  `Serialize every GPU preference entry to a JSON file mapping executable path to preference code. An existing file is overwritten.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		entries, err := s.ReadAll()
		if err != nil {
			return fmt.Errorf("reading preference entries: %w", err)
		}
		if err := s.Backup(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %d entr%s to %s\n", len(entries), plural(len(entries), "y", "ies"), args[0])
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Replace all entries from a JSON backup file",
	Long: `Validate the backup file, delete every current entry, and re-create
the entries it contains. This is a full replace, not a merge.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		if err := s.Restore(args[0]); err != nil {
			return err
		}
		entries, err := s.ReadAll()
		if err != nil {
			return fmt.Errorf("reading restored entries: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored %d entr%s from %s\n", len(entries), plural(len(entries), "y", "ies"), args[0])
		return nil
	},
}

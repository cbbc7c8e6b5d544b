package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dannyvoid/gpu-preference/internal/config"
	"github.com/dannyvoid/gpu-preference/internal/pathutil"
	"github.com/dannyvoid/gpu-preference/internal/store"
)

var addGPU string

func init() {
	addCmd.Flags().StringVar(&addGPU, "gpu", "", "GPU preference to assign (power or performance); defaults to the configured default_gpu")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <path|dir>...",
	Short: "Add executables with the default GPU preference",
	Long: `Add GPU preference entries for the given executables. Directory
arguments are walked recursively for .exe files. Paths that already have an
entry are skipped, not overwritten.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pref := config.DefaultPreference()
		if addGPU != "" {
			var err error
			if pref, err = store.ParsePreference(addGPU); err != nil {
				return err
			}
		}

		paths, err := collectExecutables(args)
		if err != nil {
			return err
		}
		s, err := openStore()
		if err != nil {
			return err
		}
		return addPaths(cmd, s, paths, pref)
	},
}

// collectExecutables expands directory arguments into the .exe files they
// contain and makes every path absolute.
func collectExecutables(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err == nil && info.IsDir() {
			walkErr := filepath.WalkDir(arg, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".exe") {
					out = append(out, p)
				}
				return nil
			})
			if walkErr != nil {
				return nil, fmt.Errorf("walking %s: %w", arg, walkErr)
			}
			continue
		}
		out = append(out, arg)
	}

	// Resolve relative arguments against the working directory; paths that
	// are already absolute in Windows terms are kept as given.
	for i, p := range out {
		if pathutil.IsAbs(p) {
			continue
		}
		if abs, err := filepath.Abs(p); err == nil {
			out[i] = abs
		}
	}
	return out, nil
}

// addPaths writes pref for every path not already present, reporting how
// many were added and how many were skipped as duplicates.
func addPaths(cmd *cobra.Command, s *store.Store, paths []string, pref store.Preference) error {
	entries, err := s.ReadAll()
	if err != nil {
		return fmt.Errorf("reading existing entries: %w", err)
	}
	existing := make(map[string]bool, len(entries))
	for _, e := range entries {
		existing[e.Path] = true
	}

	added, skipped := 0, 0
	for _, p := range paths {
		norm := pathutil.Normalize(p)
		if existing[norm] {
			skipped++
			continue
		}
		if err := s.SetPreference(norm, pref); err != nil {
			return fmt.Errorf("adding %s: %w", norm, err)
		}
		existing[norm] = true
		added++
	}

	if added > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Added %d with %s.\n", added, labelFor(pref))
	}
	if skipped > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Ignored %d duplicate(s).\n", skipped)
	}
	if added == 0 && skipped == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to add.")
	}
	return nil
}

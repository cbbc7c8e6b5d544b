package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dannyvoid/gpu-preference/internal/config"
	"github.com/dannyvoid/gpu-preference/internal/procs"
	"github.com/dannyvoid/gpu-preference/internal/store"
)

var (
	processesAdd    bool
	processesGPU    string
	processesFilter string
)

func init() {
	processesCmd.Flags().BoolVar(&processesAdd, "add", false, "Add the listed executables to the preference store")
	processesCmd.Flags().StringVar(&processesGPU, "gpu", "", "GPU preference to assign with --add (power or performance)")
	processesCmd.Flags().StringVar(&processesFilter, "filter", "", "Show only executables whose path contains this text")
	rootCmd.AddCommand(processesCmd)
}

var processesCmd = &cobra.Command{
	Use:   "processes",
	Short: "List running-process executables",
	Long: `List the unique executables behind currently running processes, as
candidates for GPU preference entries. With --add, each listed executable is
added with the default (or --gpu) preference; existing entries are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		candidates, err := procs.Candidates(procs.SystemEnumerator{})
		if err != nil {
			return err
		}

		filter := strings.ToLower(strings.TrimSpace(processesFilter))
		if filter != "" {
			kept := candidates[:0]
			for _, c := range candidates {
				if strings.Contains(strings.ToLower(c.Path), filter) {
					kept = append(kept, c)
				}
			}
			candidates = kept
		}

		if !processesAdd {
			if len(candidates) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matching running executables.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PID\tEXECUTABLE")
			for _, c := range candidates {
				fmt.Fprintf(w, "%d\t%s\n", c.PID, c.Path)
			}
			return w.Flush()
		}

		pref := config.DefaultPreference()
		if processesGPU != "" {
			if pref, err = store.ParsePreference(processesGPU); err != nil {
				return err
			}
		}
		paths := make([]string, 0, len(candidates))
		for _, c := range candidates {
			paths = append(paths, c.Path)
		}
		s, err := openStore()
		if err != nil {
			return err
		}
		return addPaths(cmd, s, paths, pref)
	},
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dannyvoid/gpu-preference/internal/config"
	"github.com/dannyvoid/gpu-preference/internal/pathutil"
	"github.com/dannyvoid/gpu-preference/internal/store"
)

var (
	listJSON   bool
	listFilter string
)

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listFilter, "filter", "", "Show only entries whose path or label contains this text")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List GPU preference entries",
	Long:  `List every executable with a GPU preference assignment, with its preference label and whether the file still exists on disk.`,
	RunE:  runList,
}

// listEntry represents one assignment for display.
type listEntry struct {
	Path       string `json:"path"`
	Preference int    `json:"preference"`
	Label      string `json:"label"`
	Exists     *bool  `json:"exists,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	entries, err := s.ReadAll()
	if err != nil {
		return fmt.Errorf("reading preference entries: %w", err)
	}

	// Stable display order; the store itself guarantees none.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })

	filter := strings.ToLower(strings.TrimSpace(listFilter))
	var rows []listEntry
	for _, e := range entries {
		label := config.Label(e.Preference)
		if filter != "" &&
			!strings.Contains(strings.ToLower(e.Path), filter) &&
			!strings.Contains(strings.ToLower(label), filter) {
			continue
		}
		rows = append(rows, listEntry{
			Path:       e.Path,
			Preference: e.Preference.Code(),
			Label:      label,
			Exists:     existsOnDisk(e.Path),
		})
	}

	if listJSON {
		out, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding entries: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	if len(rows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No GPU preference entries.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tEXECUTABLE\tPREFERENCE\tEXISTS")
	for i, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, r.Path, r.Label, existsMarker(r.Exists))
	}
	return w.Flush()
}

// existsOnDisk is a presentation-layer check: nil means "not applicable"
// (the key is not an absolute .exe path).
func existsOnDisk(path string) *bool {
	if !pathutil.IsExecutablePath(path) {
		return nil
	}
	_, err := os.Stat(path)
	exists := err == nil
	return &exists
}

func existsMarker(exists *bool) string {
	switch {
	case exists == nil:
		return ""
	case *exists:
		return "yes"
	default:
		return "no"
	}
}

// labelFor is a shared shorthand for command output.
func labelFor(p store.Preference) string {
	return config.Label(p)
}

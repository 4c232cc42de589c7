package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/morozRed/powerdex/internal/fileutil"
	"github.com/morozRed/powerdex/internal/powers"
)

type RunSummary struct {
	Mode              string        `json:"mode"`
	Format            string        `json:"format,omitempty"`
	InputPath         string        `json:"input_path"`
	OutputDir         string        `json:"output_dir,omitempty"`
	RunID             string        `json:"run_id,omitempty"`
	Counts            powers.Counts `json:"counts"`
	TopLevel          int           `json:"top_level_categories"`
	FilteredPowerSets int           `json:"filtered_power_sets"`
	Passes            int           `json:"passes"`
	Resolved          int           `json:"resolved"`
	Issues            int           `json:"issues"`
	Written           int           `json:"written"`
	Rewritten         int           `json:"rewritten"`
	Removed           int           `json:"removed"`
	DurationMS        int64         `json:"duration_ms"`
	StaleFiles        []string      `json:"stale_files,omitempty"`
}

type StatusSummary struct {
	Mode      string   `json:"mode"`
	OutputDir string   `json:"output_dir"`
	Format    string   `json:"format,omitempty"`
	RunID     string   `json:"run_id,omitempty"`
	Tracked   int      `json:"tracked"`
	Clean     bool     `json:"clean"`
	Modified  []string `json:"modified"`
	Missing   []string `json:"missing"`
	Untracked []string `json:"untracked"`
}

func PrintRunSummary(w io.Writer, summary RunSummary, asJSON bool) error {
	if asJSON {
		return fileutil.PrintJSON(w, summary)
	}

	fmt.Fprintf(w, "%s complete in %dms\n", summary.Mode, summary.DurationMS)
	if summary.OutputDir != "" {
		fmt.Fprintf(w, "output: %s (%s)\n", summary.OutputDir, summary.Format)
	}
	fmt.Fprintf(w, "dictionary: categories=%d top_level=%d power_sets=%d powers=%d archetypes=%d\n",
		summary.Counts.Categories,
		summary.Counts.TopLevel,
		summary.Counts.PowerSets,
		summary.Counts.Powers,
		summary.Counts.Archetypes,
	)
	fmt.Fprintf(w, "resolve: passes=%d resolved=%d filtered_sets=%d issues=%d\n",
		summary.Passes, summary.Resolved, summary.FilteredPowerSets, summary.Issues)
	fmt.Fprintf(w, "files: written=%d rewritten=%d removed=%d\n", summary.Written, summary.Rewritten, summary.Removed)
	if len(summary.StaleFiles) > 0 {
		fmt.Fprintf(w, "stale files (%d): %s\n", len(summary.StaleFiles), SummarizePaths(summary.StaleFiles, 8))
	}
	return nil
}

func PrintStatusSummary(w io.Writer, summary StatusSummary, asJSON bool) error {
	if asJSON {
		return fileutil.PrintJSON(w, summary)
	}

	state := "clean"
	if !summary.Clean {
		state = "dirty"
	}
	fmt.Fprintf(w, "status: %s tracked=%d modified=%d missing=%d untracked=%d\n",
		state, summary.Tracked, len(summary.Modified), len(summary.Missing), len(summary.Untracked))
	if summary.RunID != "" {
		fmt.Fprintf(w, "last run: %s (%s)\n", summary.RunID, summary.Format)
	}
	if len(summary.Modified) > 0 {
		fmt.Fprintf(w, "modified files (%d): %s\n", len(summary.Modified), SummarizePaths(summary.Modified, 8))
	}
	if len(summary.Missing) > 0 {
		fmt.Fprintf(w, "missing files (%d): %s\n", len(summary.Missing), SummarizePaths(summary.Missing, 8))
	}
	if len(summary.Untracked) > 0 {
		fmt.Fprintf(w, "untracked files (%d): %s\n", len(summary.Untracked), SummarizePaths(summary.Untracked, 8))
	}
	return nil
}

func SummarizePaths(paths []string, max int) string {
	if len(paths) <= max {
		return strings.Join(paths, ", ")
	}
	return fmt.Sprintf("%s ... (+%d more)", strings.Join(paths[:max], ", "), len(paths)-max)
}

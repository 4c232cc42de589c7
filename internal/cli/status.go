package cli

import (
	"fmt"
	"os"

	"github.com/morozRed/powerdex/internal/fileutil"
	"github.com/morozRed/powerdex/internal/state"
	"github.com/spf13/cobra"
)

func RunStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := overrideString(cmd, "output", &cfg.OutputPath); err != nil {
		return usageError(err)
	}
	asJSON, err := OptionalBoolFlag(cmd, "json")
	if err != nil {
		return usageError(err)
	}
	if _, err := validated(cfg); err != nil {
		return err
	}

	st, err := state.Load(cfg.OutputPath)
	if err != nil {
		if !IsCorruptStateError(err) {
			return failure(fmt.Errorf("failed to load state: %w", err))
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: corrupt state file detected (%v); treating every output as untracked\n", err)
		st = state.NewState()
	}

	current := make(map[string]string)
	if _, err := os.Stat(cfg.OutputPath); err == nil {
		current, err = fileutil.ScanFileHashes(cfg.OutputPath, func(relPath string) bool {
			return relPath == state.StateFile
		})
		if err != nil {
			return failure(fmt.Errorf("failed to scan output directory: %w", err))
		}
	}

	drift := st.CompareOutputs(current)
	summary := StatusSummary{
		Mode:      "status",
		OutputDir: cfg.OutputPath,
		Format:    st.Format,
		RunID:     st.RunID,
		Tracked:   len(st.OutputHashes),
		Clean:     drift.Clean(),
		Modified:  drift.Modified,
		Missing:   drift.Missing,
		Untracked: drift.Untracked,
	}
	return PrintStatusSummary(cmd.OutOrStdout(), summary, asJSON)
}

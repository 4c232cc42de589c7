package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/morozRed/powerdex/internal/config"
	"github.com/morozRed/powerdex/internal/fileutil"
	"github.com/morozRed/powerdex/internal/output"
	"github.com/morozRed/powerdex/internal/state"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func RunExtract(cmd *cobra.Command, args []string) error {
	start := time.Now()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.InputPath = args[0]
	}
	if err := applyExtractFlags(cmd, cfg); err != nil {
		return usageError(err)
	}
	asJSON, err := OptionalBoolFlag(cmd, "json")
	if err != nil {
		return usageError(err)
	}

	logger, err := validated(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	info, err := os.Stat(cfg.InputPath)
	if err != nil {
		return usageError(fmt.Errorf("failed to access input path %q: %w", cfg.InputPath, err))
	}
	if !info.IsDir() {
		return usageError(fmt.Errorf("input path %q is not a directory", cfg.InputPath))
	}

	run, err := extract(cfg, logger)
	ReportIssues(cmd.ErrOrStderr(), run.Issues)
	if err != nil {
		return failure(err)
	}

	// Dates follow the dumps; only the manifest changes between reruns.
	extractDate, err := fileutil.LatestModTime(cfg.InputPath)
	if err != nil {
		return failure(fmt.Errorf("failed to read input modification times: %w", err))
	}

	st, err := state.Load(cfg.OutputPath)
	if err != nil {
		if !IsCorruptStateError(err) {
			return failure(fmt.Errorf("failed to load state: %w", err))
		}
		logger.Warn("Corrupt state file, stale outputs will not be removed", zap.Error(err))
		st = state.NewState()
	}

	writer := output.NewWriter(output.Options{
		OutputPath:  cfg.OutputPath,
		Style:       cfg.OutputStyle,
		Format:      cfg.OutputFormat,
		Issue:       cfg.Issue,
		Source:      cfg.Source,
		BaseJSONURL: cfg.BaseJSONURL,
		ExtractDate: extractDate,
		Assets:      cfg.Assets,
	}, run.Dictionary.AttribNames, logger)
	result, err := writer.Write(run.Dictionary)
	if err != nil {
		return failure(fmt.Errorf("failed to write output files: %w", err))
	}

	stale := st.ReplaceOutputs(result.Hashes)
	removed, err := output.RemoveStale(cfg.OutputPath, stale)
	if errors.Is(err, output.ErrOutsideOutput) {
		// Dropped from the saved state below, so this is reported once.
		logger.Warn("Refused to remove stale outputs outside the output directory", zap.Error(err))
	} else if err != nil {
		return failure(err)
	}
	if removed > 0 {
		logger.Info("Removed stale outputs", zap.Int("count", removed))
	}
	st.RunID = result.Manifest.RunID
	st.Format = cfg.OutputFormat
	if err := st.Save(cfg.OutputPath); err != nil {
		return failure(fmt.Errorf("failed to persist state: %w", err))
	}

	outputDir, err := filepath.Abs(cfg.OutputPath)
	if err != nil {
		outputDir = cfg.OutputPath
	}
	summary := RunSummary{
		Mode:              "extract",
		Format:            cfg.OutputFormat,
		InputPath:         cfg.InputPath,
		OutputDir:         outputDir,
		RunID:             result.Manifest.RunID,
		Counts:            result.Manifest.Counts,
		TopLevel:          run.Stats.TopLevelCategories,
		FilteredPowerSets: run.Stats.FilteredPowerSets,
		Passes:            run.Stats.Passes,
		Resolved:          run.Stats.Resolved,
		Issues:            len(run.Issues),
		Written:           len(result.Hashes),
		Rewritten:         result.Rewritten,
		Removed:           removed,
		DurationMS:        time.Since(start).Milliseconds(),
		StaleFiles:        stale,
	}
	return PrintRunSummary(cmd.OutOrStdout(), summary, asJSON)
}

func applyExtractFlags(cmd *cobra.Command, cfg *config.Config) error {
	for name, dst := range map[string]*string{
		"output":   &cfg.OutputPath,
		"format":   &cfg.OutputFormat,
		"style":    &cfg.OutputStyle,
		"issue":    &cfg.Issue,
		"source":   &cfg.Source,
		"base-url": &cfg.BaseJSONURL,
	} {
		if err := overrideString(cmd, name, dst); err != nil {
			return err
		}
	}
	return applyGraphFlags(cmd, cfg)
}

// applyGraphFlags overrides the inclusion policy shared by extract and
// inspect.
func applyGraphFlags(cmd *cobra.Command, cfg *config.Config) error {
	if err := overrideSlice(cmd, "categories", &cfg.PowerCategories); err != nil {
		return err
	}
	if err := overrideSlice(cmd, "filter", &cfg.FilterPowerSets); err != nil {
		return err
	}
	return overrideSlice(cmd, "global", &cfg.GlobalCategories)
}

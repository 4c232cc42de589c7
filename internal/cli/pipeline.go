package cli

import (
	"fmt"
	"io"

	"github.com/morozRed/powerdex/internal/config"
	"github.com/morozRed/powerdex/internal/graph"
	"github.com/morozRed/powerdex/internal/powers"
	"github.com/morozRed/powerdex/internal/tables"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadConfig reads --config, or the first default config file in the working
// directory, and applies --log-level. Command specific overrides are applied
// by the caller before Validate.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := OptionalStringFlag(cmd, "config")
	if err != nil {
		return nil, usageError(err)
	}
	if path == "" {
		if found, ok := config.Find("."); ok {
			path = found
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, usageError(err)
	}

	level, err := OptionalStringFlag(cmd, "log-level")
	if err != nil {
		return nil, usageError(err)
	}
	if level != "" {
		cfg.LogLevel = level
	}
	return cfg, nil
}

// validated normalizes cfg after overrides, validates it and builds the
// logger it asks for.
func validated(cfg *config.Config) (*zap.Logger, error) {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, usageError(fmt.Errorf("invalid configuration: %w", err))
	}
	logger, err := NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, usageError(err)
	}
	return logger, nil
}

// extraction is one load + build of the input tables.
type extraction struct {
	Tables     *powers.Tables
	Dictionary *powers.Dictionary
	Stats      graph.Stats
	Issues     []tables.Issue
}

func extract(cfg *config.Config, logger *zap.Logger) (*extraction, error) {
	registry := tables.DefaultRegistry(logger)
	loaded, issues, err := registry.LoadDirectory(cfg.InputPath)
	if err != nil {
		return &extraction{Issues: issues}, err
	}

	dict, stats, err := graph.Build(loaded, cfg.GraphOptions(), logger)
	if err != nil {
		return &extraction{Tables: loaded, Issues: issues}, err
	}
	return &extraction{
		Tables:     loaded,
		Dictionary: dict,
		Stats:      stats,
		Issues:     issues,
	}, nil
}

func ReportIssues(w io.Writer, issues []tables.Issue) {
	for _, issue := range issues {
		if issue.Key != "" {
			fmt.Fprintf(w, "[%s] %s (%s): %s\n", issue.Severity, issue.Table, issue.Key, issue.Message)
			continue
		}
		fmt.Fprintf(w, "[%s] %s: %s\n", issue.Severity, issue.Table, issue.Message)
	}
}

func archetypeNames(list []*powers.Archetype) []string {
	names := make([]string, 0, len(list))
	for _, at := range list {
		names = append(names, at.Name)
	}
	return names
}

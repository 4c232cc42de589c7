package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "powerdex",
		Short: "Build a browsable power dictionary from extracted game tables",
		Long: `Powerdex reads the archetype, power category, power set, power and
villain tables dumped from a game client, links them into a
category -> set -> power hierarchy and writes it out as JSON documents.

Which categories are written is controlled by powerdex.yaml (or .hcl),
POWERDEX_* environment variables and command flags, in that order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("config", "", "Config file (default: powerdex.{yaml,yml,json,hcl} in the working directory)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug|info|warn|error")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	initCmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a starter powerdex config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunInit,
	}
	initCmd.Flags().Bool("hcl", false, "Write powerdex.hcl instead of powerdex.yaml")

	extractCmd := &cobra.Command{
		Use:   "extract [input-dir]",
		Short: "Resolve the table dumps in input-dir and write the dictionary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunExtract,
	}
	extractCmd.Flags().StringP("output", "o", "", "Output directory")
	extractCmd.Flags().String("format", "", "Output format: json|jsonl")
	extractCmd.Flags().String("style", "", "Output style: pretty|compact")
	extractCmd.Flags().StringSlice("categories", nil, "Top level power categories to write (default: all)")
	extractCmd.Flags().StringSlice("filter", nil, "Power set filter rules, e.g. '*.Test*' or '!Pool.Flight'")
	extractCmd.Flags().StringSlice("global", nil, "Categories shared by every archetype, e.g. Pool")
	extractCmd.Flags().String("issue", "", "Game issue stamped into document headers")
	extractCmd.Flags().String("source", "", "Data source stamped into document headers")
	extractCmd.Flags().String("base-url", "", "Absolute base URL for document links")
	extractCmd.Flags().Bool("json", false, "Print machine-readable run summary")

	inspectCmd := &cobra.Command{
		Use:   "inspect <name>",
		Short: "Show how a category, power set or power was resolved",
		Args:  cobra.ExactArgs(1),
		RunE:  RunInspect,
	}
	inspectCmd.Flags().String("input", "", "Directory holding the table dumps")
	inspectCmd.Flags().StringSlice("categories", nil, "Top level power categories (default: all)")
	inspectCmd.Flags().StringSlice("filter", nil, "Power set filter rules, as for extract")
	inspectCmd.Flags().StringSlice("global", nil, "Categories shared by every archetype, as for extract")
	inspectCmd.Flags().Bool("json", false, "Print machine-readable result")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Compare the output directory with what the last extract wrote",
		RunE:  RunStatus,
	}
	statusCmd.Flags().StringP("output", "o", "", "Output directory")
	statusCmd.Flags().Bool("json", false, "Print machine-readable status output")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "powerdex %s\n", version)
		},
	}

	rootCmd.AddCommand(
		initCmd,
		extractCmd,
		inspectCmd,
		statusCmd,
		versionCmd,
	)

	return rootCmd
}


package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/morozRed/powerdex/internal/fileutil"
	"github.com/morozRed/powerdex/internal/namekey"
	"github.com/morozRed/powerdex/internal/powers"
	"github.com/spf13/cobra"
)

// InspectResult describes one resolved record.
type InspectResult struct {
	Kind                     string   `json:"kind"`
	Name                     string   `json:"name"`
	DisplayName              string   `json:"display_name,omitempty"`
	Included                 bool     `json:"included"`
	TopLevel                 bool     `json:"top_level,omitempty"`
	Type                     string   `json:"type,omitempty"`
	Archetypes               []string `json:"archetypes"`
	Children                 []string `json:"children,omitempty"`
	Redirects                []string `json:"redirects,omitempty"`
	EnhancementSetCategories []string `json:"enhancement_set_categories,omitempty"`
}

func RunInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := overrideString(cmd, "input", &cfg.InputPath); err != nil {
		return usageError(err)
	}
	if err := applyGraphFlags(cmd, cfg); err != nil {
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

	run, err := extract(cfg, logger)
	ReportIssues(cmd.ErrOrStderr(), run.Issues)
	if err != nil {
		return failure(err)
	}

	name := strings.TrimSpace(args[0])
	result, ok := inspect(run.Tables, name)
	if !ok {
		msg := fmt.Sprintf("no category, power set or power named %q", name)
		if near := closestName(run.Tables, name); near != "" {
			msg += fmt.Sprintf(" (did you mean %s?)", near)
		}
		return failure(errors.New(msg))
	}
	return printInspectResult(cmd.OutOrStdout(), result, asJSON)
}

// inspect looks name up as a category, then a power set, then a power.
func inspect(t *powers.Tables, name string) (InspectResult, bool) {
	if pcat, ok := t.Categories.Lookup(name); ok {
		children := make([]string, 0, len(pcat.PowerSets))
		for _, pset := range pcat.PowerSets {
			children = append(children, pset.FullName.String())
		}
		return InspectResult{
			Kind:        "category",
			Name:        pcat.Name.String(),
			DisplayName: pcat.DisplayName,
			Included:    pcat.IncludeInOutput,
			TopLevel:    pcat.TopLevel,
			Archetypes:  archetypeNames(pcat.Archetypes),
			Children:    children,
		}, true
	}

	if pset, ok := t.PowerSets.Lookup(name); ok {
		children := make([]string, 0, len(pset.Powers))
		for _, power := range pset.Powers {
			children = append(children, power.FullName.String())
		}
		return InspectResult{
			Kind:        "power_set",
			Name:        pset.FullName.String(),
			DisplayName: pset.DisplayName,
			Included:    pset.IncludeInOutput,
			Archetypes:  make([]string, 0),
			Children:    children,
		}, true
	}

	if power, ok := t.Powers.Lookup(name); ok {
		redirects := make([]string, 0, len(power.Redirects))
		for _, redirect := range power.Redirects {
			redirects = append(redirects, redirect.Name.String())
		}
		return InspectResult{
			Kind:                     "power",
			Name:                     power.FullName.String(),
			DisplayName:              power.DisplayName,
			Included:                 power.IncludeInOutput,
			Type:                     power.Type.String(),
			Archetypes:               archetypeNames(power.Archetypes),
			Redirects:                redirects,
			EnhancementSetCategories: power.EnhancementSetCategories(),
		}, true
	}

	return InspectResult{}, false
}

const nearMatchThreshold = 0.85

func closestName(t *powers.Tables, name string) string {
	want := namekey.New(name).Normalized()
	best, bestScore := "", 0.0
	consider := func(key namekey.Key) {
		if score := matchr.JaroWinkler(want, key.Normalized(), false); score > bestScore {
			best, bestScore = key.String(), score
		}
	}
	for _, key := range t.Categories.Keys() {
		consider(key)
	}
	for _, key := range t.PowerSets.Keys() {
		consider(key)
	}
	for _, key := range t.Powers.Keys() {
		consider(key)
	}
	if bestScore < nearMatchThreshold {
		return ""
	}
	return best
}

func printInspectResult(w io.Writer, result InspectResult, asJSON bool) error {
	if asJSON {
		return fileutil.PrintJSON(w, result)
	}

	if result.DisplayName != "" {
		fmt.Fprintf(w, "%s %s (%s)\n", result.Kind, result.Name, result.DisplayName)
	} else {
		fmt.Fprintf(w, "%s %s\n", result.Kind, result.Name)
	}
	fmt.Fprintf(w, "  included: %t\n", result.Included)
	if result.TopLevel {
		fmt.Fprintln(w, "  top level: true")
	}
	if result.Type != "" {
		fmt.Fprintf(w, "  type: %s\n", result.Type)
	}
	if len(result.Archetypes) > 0 {
		fmt.Fprintf(w, "  archetypes: %s\n", strings.Join(result.Archetypes, ", "))
	}
	if len(result.Children) > 0 {
		fmt.Fprintf(w, "  children (%d): %s\n", len(result.Children), SummarizePaths(result.Children, 8))
	}
	if len(result.Redirects) > 0 {
		fmt.Fprintf(w, "  redirects: %s\n", strings.Join(result.Redirects, ", "))
	}
	if len(result.EnhancementSetCategories) > 0 {
		fmt.Fprintf(w, "  enhancement set categories: %s\n", strings.Join(result.EnhancementSetCategories, ", "))
	}
	return nil
}

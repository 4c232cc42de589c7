package graph

import (
	"time"

	"github.com/morozRed/powerdex/internal/namekey"
	"github.com/morozRed/powerdex/internal/powers"
	"go.uber.org/zap"
)

// Options carries the inclusion policy read from configuration.
type Options struct {
	// TopLevelCategories is the allow-list of root categories. Empty keeps all.
	TopLevelCategories []string
	// FilterPowerSets drops matching power sets before linking.
	FilterPowerSets []string
	// GlobalCategories are matched against every archetype.
	GlobalCategories []string
}

// Stats describes one build.
type Stats struct {
	TopLevelCategories int           `json:"top_level_categories"`
	FilteredPowerSets  int           `json:"filtered_power_sets"`
	Passes             int           `json:"passes"`
	Resolved           int           `json:"resolved"`
	Duration           time.Duration `json:"-"`
}

// Build links the loaded tables into the category -> set -> power hierarchy,
// applies the inclusion policy, expands redirects and entity grants to a fixed
// point and runs the final fixups. Dangling names are skipped; the only error
// is an allow-list that matches no category.
func Build(tables *powers.Tables, opts Options, logger *zap.Logger) (*powers.Dictionary, Stats, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	start := time.Now()
	stats := Stats{}

	topLevel, err := MarkTopLevelCategories(tables.Categories, opts.TopLevelCategories)
	if err != nil {
		return nil, stats, err
	}
	stats.TopLevelCategories = topLevel
	logger.Info("Selected top level categories", zap.Int("count", topLevel))

	logger.Info("Matching archetypes to power categories")
	MatchArchetypesToCategories(tables.Archetypes, tables.Categories, opts.GlobalCategories, logger)

	MatchEnhancementCategories(tables.BoostSets, tables.Powers)

	filter := namekey.NewFilter(opts.FilterPowerSets)
	stats.FilteredPowerSets = FilterPowerSets(tables.PowerSets, filter)
	if stats.FilteredPowerSets > 0 {
		logger.Info("Filtered power sets", zap.Int("removed", stats.FilteredPowerSets))
	}

	logger.Info("Merging dictionaries")
	LinkSetsToPowers(tables.PowerSets, tables.Powers)
	LinkCategoriesToSets(tables.Categories, tables.PowerSets)

	categories := make([]*powers.PowerCategory, 0, tables.Categories.Len())
	for pcat := range tables.Categories.Values() {
		categories = append(categories, pcat)
	}
	CascadeInclusion(categories)

	logger.Info("Resolving entity defs, power grants, and redirects")
	resolver := NewResolver(tables, logger)
	stats.Passes, stats.Resolved = resolver.Run()
	logger.Debug("Resolution reached a fixed point",
		zap.Int("passes", stats.Passes),
		zap.Int("resolved", stats.Resolved),
	)

	logger.Info("Final clean up")
	ApplyFixups(categories)

	stats.Duration = time.Since(start)
	return &powers.Dictionary{
		Categories:  categories,
		Archetypes:  tables.Archetypes,
		AttribNames: tables.AttribNames,
	}, stats, nil
}

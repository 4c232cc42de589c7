package graph

import (
	"github.com/morozRed/powerdex/internal/keyed"
	"github.com/morozRed/powerdex/internal/namekey"
	"github.com/morozRed/powerdex/internal/powers"
	"go.uber.org/zap"
)

// MatchArchetypesToCategories attaches each archetype to the categories named
// by its primary, secondary, epic and pool slots plus every global category.
// Primary and secondary slots also set the category's PriSec; the secondary
// check runs after the primary one, so it wins when both name one category.
// Categories that do not exist are skipped.
func MatchArchetypesToCategories(
	archetypes *keyed.Keyed[powers.Archetype],
	categories *keyed.Keyed[powers.PowerCategory],
	globalCategories []string,
	logger *zap.Logger,
) {
	if logger == nil {
		logger = zap.NewNop()
	}

	for at := range archetypes.Values() {
		if pcat, ok := findCategory(categories, at.PrimaryCategory); ok {
			attach(pcat, at, "primary", logger)
			pcat.PriSec = powers.PriSecPrimary
		}
		if pcat, ok := findCategory(categories, at.SecondaryCategory); ok {
			attach(pcat, at, "secondary", logger)
			pcat.PriSec = powers.PriSecSecondary
		}
		if pcat, ok := findCategory(categories, at.EpicPoolCategory); ok {
			attach(pcat, at, "epic", logger)
		}
		if pcat, ok := findCategory(categories, at.PowerPoolCategory); ok {
			attach(pcat, at, "pool", logger)
		}
		for _, name := range globalCategories {
			if pcat, ok := findCategory(categories, namekey.New(name)); ok {
				attach(pcat, at, "global", logger)
			}
		}
	}
}

func findCategory(categories *keyed.Keyed[powers.PowerCategory], name namekey.Key) (*powers.PowerCategory, bool) {
	if name.IsZero() {
		return nil, false
	}
	return categories.Get(name)
}

func attach(pcat *powers.PowerCategory, at *powers.Archetype, slot string, logger *zap.Logger) {
	logger.Debug("Matched archetype to category",
		zap.String("archetype", at.Name),
		zap.String("slot", slot),
		zap.String("category", pcat.Name.String()),
	)
	pcat.Archetypes = powers.AppendArchetype(pcat.Archetypes, at)
}

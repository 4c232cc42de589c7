package graph

import (
	"slices"

	"github.com/morozRed/powerdex/internal/keyed"
	"github.com/morozRed/powerdex/internal/namekey"
	"github.com/morozRed/powerdex/internal/powers"
)

// MarkTopLevelCategories flags the categories named by allow. With no
// allow-list every category is top level. An allow-list that matches nothing
// returns ErrNoTopLevelCategories. It returns the number of top level
// categories.
func MarkTopLevelCategories(categories *keyed.Keyed[powers.PowerCategory], allow []string) (int, error) {
	allow = nonEmpty(allow)
	if len(allow) == 0 {
		for pcat := range categories.Values() {
			pcat.TopLevel = true
		}
		return categories.Len(), nil
	}

	count := 0
	for pcat := range categories.Values() {
		if slices.ContainsFunc(allow, pcat.Name.EqualString) {
			pcat.TopLevel = true
			count++
		}
	}
	if count == 0 {
		return 0, noTopLevelError(allow, categories)
	}
	return count, nil
}

// FilterPowerSets removes every power set the filter excludes and returns how
// many were dropped.
func FilterPowerSets(sets *keyed.Keyed[powers.BasePowerSet], filter *namekey.Filter) int {
	if filter.Len() == 0 {
		return 0
	}
	return sets.Retain(func(key namekey.Key, _ *powers.BasePowerSet) bool {
		return !filter.Excludes(key)
	})
}

// LinkSetsToPowers resolves each set's declared power names. Names missing from
// the power table were filtered upstream and are skipped.
func LinkSetsToPowers(sets *keyed.Keyed[powers.BasePowerSet], powerTable *keyed.Keyed[powers.BasePower]) {
	for pset := range sets.Values() {
		for _, name := range pset.PowerNames {
			if power, ok := powerTable.Get(name); ok {
				pset.Powers = append(pset.Powers, power)
			}
		}
	}
}

// LinkCategoriesToSets resolves each category's declared set names.
func LinkCategoriesToSets(categories *keyed.Keyed[powers.PowerCategory], sets *keyed.Keyed[powers.BasePowerSet]) {
	for pcat := range categories.Values() {
		for _, name := range pcat.PowerSetNames {
			if pset, ok := sets.Get(name); ok {
				pcat.PowerSets = append(pcat.PowerSets, pset)
			}
		}
	}
}

// CascadeInclusion includes every power under a top level category and gives
// it the category's archetypes, replacing whatever it had. Sets and categories
// are included when any child is. Categories left empty stop being top level.
func CascadeInclusion(categories []*powers.PowerCategory) {
	for _, pcat := range categories {
		if !pcat.TopLevel {
			continue
		}
		for _, pset := range pcat.PowerSets {
			for _, power := range pset.Powers {
				power.IncludeInOutput = true
				power.Archetypes = slices.Clone(pcat.Archetypes)
			}
			if slices.ContainsFunc(pset.Powers, isPowerIncluded) {
				pset.IncludeInOutput = true
			}
		}
		if slices.ContainsFunc(pcat.PowerSets, isSetIncluded) {
			pcat.IncludeInOutput = true
		}
		pcat.TopLevel = pcat.IncludeInOutput
	}
}

// MatchEnhancementCategories tags every power listed by a boost set with the
// set's group name. It looks powers up by name and ignores inclusion, so it
// can run any time after powers are loaded.
func MatchEnhancementCategories(boostSets *keyed.Keyed[powers.BoostSet], powerTable *keyed.Keyed[powers.BasePower]) {
	for boostSet := range boostSets.Values() {
		if boostSet.GroupName == "" {
			continue
		}
		for _, name := range boostSet.Powers {
			if power, ok := powerTable.Get(name); ok {
				power.AllowEnhancementSetCategory(boostSet.GroupName)
			}
		}
	}
}

func isPowerIncluded(p *powers.BasePower) bool { return p.IncludeInOutput }

func isSetIncluded(s *powers.BasePowerSet) bool { return s.IncludeInOutput }

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if !namekey.New(value).IsZero() {
			out = append(out, value)
		}
	}
	return out
}

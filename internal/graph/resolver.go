package graph

import (
	"github.com/morozRed/powerdex/internal/keyed"
	"github.com/morozRed/powerdex/internal/namekey"
	"github.com/morozRed/powerdex/internal/powers"
	"go.uber.org/zap"
)

// Resolver pulls transitively referenced records into the output. Redirect
// targets and entity grants are marked included; each source record latches
// once processed so repeated passes converge.
type Resolver struct {
	categories        *keyed.Keyed[powers.PowerCategory]
	sets              *keyed.Keyed[powers.BasePowerSet]
	powers            *keyed.Keyed[powers.BasePower]
	villains          *keyed.Keyed[powers.VillainDef]
	villainArchetypes *keyed.Keyed[powers.Archetype]
	logger            *zap.Logger
}

func NewResolver(tables *powers.Tables, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		categories:        tables.Categories,
		sets:              tables.PowerSets,
		powers:            tables.Powers,
		villains:          tables.Villains,
		villainArchetypes: tables.VillainArchetypes,
		logger:            logger,
	}
}

// Run repeats entity/grant and redirect resolution until a pass resolves
// nothing. It returns the number of passes and the total records resolved.
func (r *Resolver) Run() (passes, resolved int) {
	for {
		count := r.ResolveEntityDefsAndPowerGrants()
		count += r.ResolvePowerRedirects()
		passes++
		resolved += count
		if count == 0 {
			return passes, resolved
		}
	}
}

// MarkPowerForInclusion includes the category, set and power named by ref.
// Each level is looked up on its own so a missing category or set does not
// stop the power from being marked. The found power inherits archetypes it
// does not already hold.
func (r *Resolver) MarkPowerForInclusion(ref namekey.Key, archetypes []*powers.Archetype) {
	if len(ref.Parts()) != namekey.MaxSegments {
		r.logger.Debug("Unexpected power reference", zap.String("ref", ref.String()))
	}

	if pcat, ok := r.categories.Get(ref.Prefix(1)); ok {
		pcat.IncludeInOutput = true
	}
	if pset, ok := r.sets.Get(ref.Prefix(2)); ok {
		pset.IncludeInOutput = true
	}
	power, ok := r.powers.Get(ref)
	if !ok {
		r.logger.Debug("Skipping missing power", zap.String("ref", ref.String()))
		return
	}
	power.IncludeInOutput = true
	for _, at := range archetypes {
		power.Archetypes = powers.AppendArchetype(power.Archetypes, at)
	}
}

// ResolvePowerRedirects marks the redirect targets of every included power
// whose redirects are unresolved, passing on that power's archetypes. It
// returns the number of powers processed.
func (r *Resolver) ResolvePowerRedirects() int {
	count := 0
	for power := range r.powers.Values() {
		if !power.IncludeInOutput || power.RedirectsResolved {
			continue
		}
		for _, redirect := range power.Redirects {
			if redirect.Name.IsZero() {
				continue
			}
			r.MarkPowerForInclusion(redirect.Name, power.Archetypes)
		}
		power.RedirectsResolved = true
		count++
	}
	return count
}

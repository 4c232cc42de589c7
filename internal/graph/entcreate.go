package graph

import (
	"github.com/morozRed/powerdex/internal/powers"
	"go.uber.org/zap"
)

// ResolveEntityDefsAndPowerGrants walks the effects of every included power.
// Unresolved EntCreate params are bound to their villain def and the def's
// powers are marked; unresolved Power params mark every named power except
// the power itself. Nested effect groups are visited too. It returns the
// number of params resolved.
func (r *Resolver) ResolveEntityDefsAndPowerGrants() int {
	count := 0
	for power := range r.powers.Values() {
		if !power.IncludeInOutput {
			continue
		}
		for _, group := range power.Effects {
			group.Walk(func(g *powers.EffectGroup) {
				for _, template := range g.Templates {
					if r.resolveParam(power, template.Params) {
						count++
					}
				}
			})
		}
	}
	return count
}

func (r *Resolver) resolveParam(power *powers.BasePower, param powers.AttribModParam) bool {
	switch p := param.(type) {
	case *powers.EntCreateParam:
		if p.Resolved {
			return false
		}
		if !p.EntityDef.IsZero() {
			if def, ok := r.villains.Get(p.EntityDef); ok {
				p.VillainDef = def
				r.copyPowersToEntCreate(p)
			} else {
				r.logger.Debug("Skipping missing entity def",
					zap.String("power", power.FullName.String()),
					zap.String("entity_def", p.EntityDef.String()),
				)
			}
		}
		p.Resolved = true
		return true
	case *powers.PowerParam:
		if p.Resolved {
			return false
		}
		for _, name := range p.PowerNames {
			// powers that grant themselves are already included
			if name.Equal(power.FullName) {
				continue
			}
			r.MarkPowerForInclusion(name, power.Archetypes)
		}
		p.Resolved = true
		return true
	default:
		return false
	}
}

// copyPowersToEntCreate flattens the villain def's power refs into the param
// and marks each one, inheriting the villain's class archetype when it exists.
// A wildcard ref expands to every power name the set declares; an exact ref
// is kept only when the power exists, using its full name.
func (r *Resolver) copyPowersToEntCreate(entCreate *powers.EntCreateParam) {
	def := entCreate.VillainDef
	if def == nil {
		return
	}

	for _, ref := range def.Powers {
		if ref.IsWildcard() {
			if pset, ok := r.sets.Get(ref.SetKey()); ok {
				entCreate.PowerRefs = append(entCreate.PowerRefs, pset.PowerNames...)
			}
			continue
		}
		if power, ok := r.powers.Get(ref.PowerKey()); ok && !power.FullName.IsZero() {
			entCreate.PowerRefs = append(entCreate.PowerRefs, power.FullName)
		}
	}

	var archetypes []*powers.Archetype
	if classKey := def.ClassKey(); !classKey.IsZero() {
		if at, ok := r.villainArchetypes.Get(classKey); ok {
			archetypes = append(archetypes, at)
		}
	}

	for _, ref := range entCreate.PowerRefs {
		r.MarkPowerForInclusion(ref, archetypes)
	}
}

package graph

import (
	"strings"

	"github.com/morozRed/powerdex/internal/powers"
)

const (
	categoryPrestige        = "Prestige"
	categoryInherent        = "Inherent"
	categoryIncarnate       = "Incarnate"
	categoryTemporaryPowers = "Temporary_Powers"
)

// ApplyFixups applies the category rules the game enforces at load time to
// every power under a top level category. It must run after resolution.
//
//   - Prestige powers are free and bought at level zero.
//   - Inherent powers (by category or power name) are free and auto issued.
//   - Incarnate powers are free.
//   - Temporary powers are free, take no enhancements, and only boosts keep
//     their allowed boost list.
func ApplyFixups(categories []*powers.PowerCategory) {
	for _, pcat := range categories {
		if !pcat.TopLevel {
			continue
		}
		for _, pset := range pcat.PowerSets {
			for _, power := range pset.Powers {
				fixPower(pcat, power)
			}
		}
	}
}

func fixPower(pcat *powers.PowerCategory, power *powers.BasePower) {
	switch {
	case pcat.Name.EqualString(categoryPrestige):
		power.Free = true
		power.ForceLevelBought = 0
	case pcat.Name.EqualString(categoryInherent) || strings.EqualFold(power.Name, categoryInherent):
		power.Free = true
		power.AutoIssue = true
	case pcat.Name.EqualString(categoryIncarnate):
		power.Free = true
	}

	if pcat.Name.EqualString(categoryTemporaryPowers) {
		power.Free = true
		power.MaxBoosts = 0
		if !power.Type.IsBoost() {
			power.BoostsAllowed = []string{}
		}
	}
}

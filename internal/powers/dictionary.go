package powers

import "github.com/morozRed/powerdex/internal/keyed"

// Tables holds every record store produced by the table reader.
type Tables struct {
	Messages          *MessageStore
	AttribNames       *AttribNames
	Archetypes        *keyed.Keyed[Archetype]
	VillainArchetypes *keyed.Keyed[Archetype]
	Villains          *keyed.Keyed[VillainDef]
	Categories        *keyed.Keyed[PowerCategory]
	PowerSets         *keyed.Keyed[BasePowerSet]
	Powers            *keyed.Keyed[BasePower]
	BoostSets         *keyed.Keyed[BoostSet]
}

// NewTables returns tables with every store allocated and empty.
func NewTables() *Tables {
	return &Tables{
		Messages:          NewMessageStore(),
		AttribNames:       &AttribNames{},
		Archetypes:        keyed.New[Archetype](),
		VillainArchetypes: keyed.New[Archetype](),
		Villains:          keyed.New[VillainDef](),
		Categories:        keyed.New[PowerCategory](),
		PowerSets:         keyed.New[BasePowerSet](),
		Powers:            keyed.New[BasePower](),
		BoostSets:         keyed.New[BoostSet](),
	}
}

// Dictionary is the linked hierarchy handed to the serializer. Inclusion
// flags are final; consumers only filter on them.
type Dictionary struct {
	// Categories holds every category in table order, top level or not.
	Categories  []*PowerCategory
	Archetypes  *keyed.Keyed[Archetype]
	AttribNames *AttribNames
}

// TopLevel returns the categories listed in the root index.
func (d *Dictionary) TopLevel() []*PowerCategory {
	out := make([]*PowerCategory, 0, len(d.Categories))
	for _, pcat := range d.Categories {
		if pcat.TopLevel && pcat.IncludeInOutput {
			out = append(out, pcat)
		}
	}
	return out
}

// Included returns every category with content to write.
func (d *Dictionary) Included() []*PowerCategory {
	out := make([]*PowerCategory, 0, len(d.Categories))
	for _, pcat := range d.Categories {
		if pcat.IncludeInOutput {
			out = append(out, pcat)
		}
	}
	return out
}

// Counts summarizes the included records.
type Counts struct {
	Categories int `json:"categories"`
	TopLevel   int `json:"top_level"`
	PowerSets  int `json:"power_sets"`
	Powers     int `json:"powers"`
	Archetypes int `json:"archetypes"`
}

func (d *Dictionary) Counts() Counts {
	counts := Counts{Archetypes: d.Archetypes.Len()}
	for _, pcat := range d.Categories {
		if !pcat.IncludeInOutput {
			continue
		}
		counts.Categories++
		if pcat.TopLevel {
			counts.TopLevel++
		}
		for _, pset := range pcat.PowerSets {
			if !pset.IncludeInOutput {
				continue
			}
			counts.PowerSets++
			for _, power := range pset.Powers {
				if power.IncludeInOutput {
					counts.Powers++
				}
			}
		}
	}
	return counts
}

package powers

import "github.com/morozRed/powerdex/internal/namekey"

// PowerNameRef names a villain power. Power may be the "*" wildcard, meaning
// every power in the set.
type PowerNameRef struct {
	Category string
	Set      string
	Power    string
}

// IsWildcard reports whether the ref grants the whole set.
func (r PowerNameRef) IsWildcard() bool {
	return namekey.New(r.Power).IsWildcard()
}

// SetKey returns "category.set".
func (r PowerNameRef) SetKey() namekey.Key {
	return namekey.Join(r.Category, r.Set)
}

// PowerKey returns "category.set.power".
func (r PowerNameRef) PowerKey() namekey.Key {
	return namekey.Join(r.Category, r.Set, r.Power)
}

// VillainDef is an NPC template spawned by EntCreate effects.
type VillainDef struct {
	Name               namekey.Key
	CharacterClassName string
	DisplayNames       []string
	Description        string
	Group              string
	Powers             []PowerNameRef
}

// ClassKey returns the villain archetype lookup key for the def's class.
func (v *VillainDef) ClassKey() namekey.Key {
	if v.CharacterClassName == "" {
		return namekey.Key{}
	}
	return namekey.New("@" + v.CharacterClassName)
}

// BoostSet is an enhancement set. GroupName is the enhancement category that
// every power in Powers may slot.
type BoostSet struct {
	Name        namekey.Key
	DisplayName string
	GroupName   string
	Powers      []namekey.Key
	MinLevel    int
	MaxLevel    int
}

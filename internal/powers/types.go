package powers

import (
	"slices"
	"sort"

	"github.com/morozRed/powerdex/internal/namekey"
)

// ClassPrefix starts every archetype class key ("@class_...").
const ClassPrefix = "@class_"

// Archetype is a character class. Player and villain classes share the type
// but live in separate tables.
type Archetype struct {
	Name                string
	DisplayName         string
	DisplayHelp         string
	DisplayShortHelp    string
	Icon                string
	AllowedOrigins      []string
	SpecialRestrictions []string
	PrimaryCategory     namekey.Key
	SecondaryCategory   namekey.Key
	PowerPoolCategory   namekey.Key
	EpicPoolCategory    namekey.Key

	// ClassKey is the lookup key ("@" + class name) used by villain defs.
	ClassKey  namekey.Key
	IsVillain bool
}

// PowerCategory groups power sets, e.g. "Tanker_Melee" or "Pool".
type PowerCategory struct {
	SourceFile       string
	Name             namekey.Key
	DisplayName      string
	DisplayHelp      string
	DisplayShortHelp string
	PowerSetNames    []namekey.Key

	PowerSets  []*BasePowerSet
	Archetypes []*Archetype
	PriSec     PrimarySecondary

	IncludeInOutput bool
	// TopLevel categories are listed in the root index.
	TopLevel bool
}

// SingleArchetype returns the archetype when exactly one is attached.
func (c *PowerCategory) SingleArchetype() (*Archetype, bool) {
	if len(c.Archetypes) != 1 {
		return nil, false
	}
	return c.Archetypes[0], true
}

type BasePowerSet struct {
	Name             string
	FullName         namekey.Key
	DisplayName      string
	DisplayHelp      string
	DisplayShortHelp string
	IconName         string
	SourceFile       string
	PowerNames       []namekey.Key
	Available        []int
	ForceLevelBought int

	Powers          []*BasePower
	IncludeInOutput bool
}

// PowerRedirect points at an alternate power used when Requires evaluates true.
type PowerRedirect struct {
	Name       namekey.Key
	Requires   []string
	ShowInInfo bool
}

// PowerFX is the animation and effect file set a power plays. Several powers
// usually share one, identified by SourceFile.
type PowerFX struct {
	SourceFile        string
	ActivationFX      string
	DeactivationFX    string
	AttackFX          string
	SecondaryAttackFX string
	HitFX             string
	WindUpFX          string
	BlockFX           string
	DeathFX           string
	InitialAttackFX   string
	ContinuingFX      []string
	ConditionalFX     []string

	FramesBeforeHit          int
	FramesBeforeSecondaryHit int
	FramesAttack             int
	DelayedHit               bool
	ProjectileSpeed          float32
	Important                bool
}

// CustomPowerFX is an alternate FX theme a player can pick for a power.
type CustomPowerFX struct {
	DisplayName string
	Token       string
	AltThemes   []string
	Category    string
	PaletteName string
	FX          *PowerFX
}

type BasePower struct {
	Name             string
	FullName         namekey.Key
	SourceName       string
	SourceFile       string
	DisplayName      string
	DisplayHelp      string
	DisplayShortHelp string
	IconName         string
	Type             PowerType

	AutoIssue        bool
	Free             bool
	ForceLevelBought int
	MaxBoosts        int
	BoostsAllowed    []string
	NumAllowed       int

	Accuracy       float32
	Range          float32
	Radius         float32
	Arc            float32
	MaxTargetsHit  int
	TimeToActivate float32
	RechargeTime   float32
	EnduranceCost  float32
	ActivatePeriod float32
	BuyRequires    []string

	Effects   []*EffectGroup
	Redirects []PowerRedirect
	FX        *PowerFX
	CustomFX  []CustomPowerFX

	IncludeInOutput   bool
	RedirectsResolved bool
	Archetypes        []*Archetype
	// EnhancementSetCategoriesAllowed is keyed by boost set group name.
	EnhancementSetCategoriesAllowed map[string]struct{}
}

// AllowEnhancementSetCategory records that boost sets of group may slot here.
func (p *BasePower) AllowEnhancementSetCategory(group string) {
	if p.EnhancementSetCategoriesAllowed == nil {
		p.EnhancementSetCategoriesAllowed = make(map[string]struct{})
	}
	p.EnhancementSetCategoriesAllowed[group] = struct{}{}
}

// EnhancementSetCategories returns the allowed boost set groups, sorted.
func (p *BasePower) EnhancementSetCategories() []string {
	out := make([]string, 0, len(p.EnhancementSetCategoriesAllowed))
	for group := range p.EnhancementSetCategoriesAllowed {
		out = append(out, group)
	}
	sort.Strings(out)
	return out
}

// EffectGroup is a set of attrib mod templates applied together. Child groups
// are nested under their parent.
type EffectGroup struct {
	Tags        []string
	Chance      float32
	Delay       float32
	RadiusInner float32
	RadiusOuter float32
	Requires    []string
	Templates   []*AttribModTemplate
	Effects     []*EffectGroup
}

// Walk visits g and every nested child group depth first.
func (g *EffectGroup) Walk(visit func(*EffectGroup)) {
	if g == nil {
		return
	}
	visit(g)
	for _, child := range g.Effects {
		child.Walk(visit)
	}
}

// AttribModTemplate changes one or more character attributes.
type AttribModTemplate struct {
	// Attribs are offsets into the character attribute table.
	Attribs   []int
	Aspect    string
	Target    string
	Table     string
	Scale     float32
	Duration  float32
	Magnitude float32
	Delay     float32
	Period    float32
	Params    AttribModParam
}

// AppendArchetype adds at to list unless the same record is already present.
// Presence is checked by identity, not by value.
func AppendArchetype(list []*Archetype, at *Archetype) []*Archetype {
	if at == nil || slices.Contains(list, at) {
		return list
	}
	return append(list, at)
}

package output

import (
	"math"
	"sort"
	"strings"

	"github.com/morozRed/powerdex/internal/config"
	"github.com/morozRed/powerdex/internal/namekey"
	"github.com/morozRed/powerdex/internal/powers"
)

// JSONFile is the file name of every document in the json layout.
const JSONFile = "index.json"

// Header is stamped into every document.
type Header struct {
	Issue       string `json:"issue,omitempty"`
	Source      string `json:"source,omitempty"`
	ExtractDate string `json:"extract_date,omitempty"`
}

// ExtendedArchetype is the detail only written to the archetypes document.
type ExtendedArchetype struct {
	DisplayHelp       string   `json:"display_help,omitempty"`
	DisplayShortHelp  string   `json:"display_short_help,omitempty"`
	AllowedOrigins    []string `json:"allowed_origins"`
	Restrictions      []string `json:"restrictions,omitempty"`
	PrimaryCategory   string   `json:"primary_category,omitempty"`
	SecondaryCategory string   `json:"secondary_category,omitempty"`
}

type ArchetypeDoc struct {
	Name               string `json:"name"`
	DisplayName        string `json:"display_name,omitempty"`
	Icon               string `json:"icon,omitempty"`
	PrimaryOrSecondary string `json:"primary_or_secondary,omitempty"`
	*ExtendedArchetype
}

type RootCategory struct {
	Name        string        `json:"name"`
	DisplayName string        `json:"display_name,omitempty"`
	Archetype   *ArchetypeDoc `json:"archetype,omitempty"`
	URL         string        `json:"url"`
}

// RootDoc is the top level index.
type RootDoc struct {
	Header
	Archetypes      string         `json:"archetypes"`
	PowerCategories []RootCategory `json:"power_categories"`
}

type CategorySet struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	URL         string `json:"url"`
}

type CategoryDoc struct {
	Header
	Name      string        `json:"name"`
	Archetype *ArchetypeDoc `json:"archetype,omitempty"`
	PowerSets []CategorySet `json:"power_sets"`
}

type PowerSetDoc struct {
	Header
	Name              string     `json:"name"`
	DisplayName       string     `json:"display_name,omitempty"`
	DisplayHelp       string     `json:"display_help,omitempty"`
	Icon              string     `json:"icon,omitempty"`
	OrderedPowerNames []string   `json:"ordered_power_names"`
	Powers            []PowerDoc `json:"powers"`
}

type RedirectDoc struct {
	Name       string `json:"name"`
	Requires   string `json:"requires,omitempty"`
	ShowInInfo bool   `json:"show_in_info"`
}

// ParamDoc flattens the param variants. Type names the variant and only the
// fields it carries are set.
type ParamDoc struct {
	Type        string   `json:"type"`
	EntityDef   string   `json:"entity_def,omitempty"`
	Class       string   `json:"class,omitempty"`
	DisplayName string   `json:"display_name,omitempty"`
	CostumeName string   `json:"costume_name,omitempty"`
	Count       int      `json:"count,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	PowerSets   []string `json:"power_sets,omitempty"`
	Powers      []string `json:"powers,omitempty"`
	Rewards     []string `json:"rewards,omitempty"`
	Tokens      []string `json:"tokens,omitempty"`
	Behaviors   []string `json:"behaviors,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Destination string   `json:"destination,omitempty"`
	ScriptIDs   []string `json:"script_ids,omitempty"`
}

type TemplateDoc struct {
	Attribs   []string  `json:"attribs"`
	Aspect    string    `json:"aspect,omitempty"`
	Target    string    `json:"target,omitempty"`
	Table     string    `json:"table,omitempty"`
	Scale     float64   `json:"scale,omitempty"`
	Duration  float64   `json:"duration,omitempty"`
	Magnitude float64   `json:"magnitude,omitempty"`
	Delay     float64   `json:"delay,omitempty"`
	Period    float64   `json:"period,omitempty"`
	Params    *ParamDoc `json:"params,omitempty"`
}

type EffectDoc struct {
	Tags      []string      `json:"tags,omitempty"`
	Chance    float64       `json:"chance"`
	Delay     float64       `json:"delay,omitempty"`
	Requires  string        `json:"requires,omitempty"`
	Templates []TemplateDoc `json:"templates"`
	Effects   []EffectDoc   `json:"effects,omitempty"`
}

type PowerDoc struct {
	Name             string `json:"name"`
	DisplayName      string `json:"display_name,omitempty"`
	DisplayHelp      string `json:"display_help,omitempty"`
	DisplayShortHelp string `json:"display_short_help,omitempty"`
	Icon             string `json:"icon,omitempty"`
	Type             string `json:"type"`
	AvailableAtLevel int    `json:"available_at_level"`

	AutoIssue                       bool     `json:"auto_issue"`
	Free                            bool     `json:"free"`
	ForceLevelBought                int      `json:"force_level_bought,omitempty"`
	MaxBoosts                       int      `json:"max_boosts"`
	BoostsAllowed                   []string `json:"boosts_allowed"`
	EnhancementSetCategoriesAllowed []string `json:"enhancement_set_categories_allowed,omitempty"`

	Accuracy       float64 `json:"accuracy,omitempty"`
	Range          float64 `json:"range,omitempty"`
	Radius         float64 `json:"radius,omitempty"`
	Arc            float64 `json:"arc,omitempty"`
	MaxTargetsHit  int     `json:"max_targets_hit,omitempty"`
	TimeToActivate float64 `json:"activation_time,omitempty"`
	RechargeTime   float64 `json:"recharge_time,omitempty"`
	EnduranceCost  float64 `json:"endurance_cost,omitempty"`
	ActivatePeriod float64 `json:"activate_period,omitempty"`
	BuyRequires    string  `json:"buy_requires,omitempty"`

	Archetypes []string      `json:"archetypes"`
	Redirects  []RedirectDoc `json:"redirects,omitempty"`
	Effects    []EffectDoc   `json:"effects,omitempty"`

	// FX links the power's FX document: a URL in the json layout, the
	// source_file key of fx.jsonl in the jsonl layout.
	FX       string        `json:"fx,omitempty"`
	CustomFX []CustomFXDoc `json:"custom_fx,omitempty"`
}

type CustomFXDoc struct {
	DisplayName string   `json:"display_name,omitempty"`
	Token       string   `json:"token,omitempty"`
	AltThemes   []string `json:"alt_themes,omitempty"`
	Category    string   `json:"category,omitempty"`
	PaletteName string   `json:"palette_name,omitempty"`
	FX          string   `json:"fx,omitempty"`
}

// FXDoc is written once per FX source file however many powers share it.
type FXDoc struct {
	Header
	SourceFile        string   `json:"source_file"`
	ActivationFX      string   `json:"activation_fx,omitempty"`
	DeactivationFX    string   `json:"deactivation_fx,omitempty"`
	AttackFX          string   `json:"attack_fx,omitempty"`
	SecondaryAttackFX string   `json:"secondary_attack_fx,omitempty"`
	HitFX             string   `json:"hit_fx,omitempty"`
	WindUpFX          string   `json:"wind_up_fx,omitempty"`
	BlockFX           string   `json:"block_fx,omitempty"`
	DeathFX           string   `json:"death_fx,omitempty"`
	InitialAttackFX   string   `json:"initial_attack_fx,omitempty"`
	ContinuingFX      []string `json:"continuing_fx,omitempty"`
	ConditionalFX     []string `json:"conditional_fx,omitempty"`

	FramesBeforeHit          int     `json:"frames_before_hit,omitempty"`
	FramesBeforeSecondaryHit int     `json:"frames_before_secondary_hit,omitempty"`
	FramesAttack             int     `json:"frames_attack,omitempty"`
	DelayedHit               bool    `json:"delayed_hit,omitempty"`
	ProjectileSpeed          float64 `json:"projectile_speed,omitempty"`
	Important                bool    `json:"important,omitempty"`
}

type ArchetypesDoc struct {
	Header
	Archetypes []ArchetypeDoc `json:"archetypes"`
}

type AttribNameDoc struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Offset      int    `json:"offset"`
}

type AttribsDoc struct {
	Header
	Defense   []AttribNameDoc `json:"defense"`
	Damage    []AttribNameDoc `json:"damage"`
	Boost     []AttribNameDoc `json:"boost"`
	Group     []AttribNameDoc `json:"group"`
	Mode      []AttribNameDoc `json:"mode"`
	Elusivity []AttribNameDoc `json:"elusivity"`
	StackKey  []AttribNameDoc `json:"stack_key"`
}

var fileNameReplacer = strings.NewReplacer(
	"_", "-",
	" ", "-",
	".", "-",
	"/", "-",
	"\\", "-",
	":", "-",
)

// MakeFileName turns a record name into a single path segment: lower case
// with underscores, spaces, dots and path separators replaced by dashes, so
// the result never climbs out of the directory it is joined to.
func MakeFileName(name string) string {
	name = fileNameReplacer.Replace(strings.ToLower(strings.TrimSpace(name)))
	if name == "" {
		return "unnamed"
	}
	return name
}

func archetypeDoc(at *powers.Archetype, priSec powers.PrimarySecondary, extended bool, assets *config.AssetsConfig) *ArchetypeDoc {
	doc := &ArchetypeDoc{
		Name:        at.Name,
		DisplayName: at.DisplayName,
		Icon:        archetypeIcon(at.Icon, assets),
	}
	if priSec != powers.PriSecNone {
		doc.PrimaryOrSecondary = priSec.String()
	}
	if extended {
		doc.ExtendedArchetype = &ExtendedArchetype{
			DisplayHelp:       at.DisplayHelp,
			DisplayShortHelp:  at.DisplayShortHelp,
			AllowedOrigins:    nonNil(at.AllowedOrigins),
			Restrictions:      at.SpecialRestrictions,
			PrimaryCategory:   at.PrimaryCategory.String(),
			SecondaryCategory: at.SecondaryCategory.String(),
		}
	}
	return doc
}

// singleArchetype describes the category's archetype when the category
// belongs to exactly one.
func singleArchetype(pcat *powers.PowerCategory, assets *config.AssetsConfig) *ArchetypeDoc {
	at, ok := pcat.SingleArchetype()
	if !ok {
		return nil
	}
	return archetypeDoc(at, pcat.PriSec, false, assets)
}

// powerSetDoc keeps the set's included powers ordered by the level they
// become available. Levels are stored zero based and written one based.
// Sets have no icon art of their own, so with assets configured the set
// takes the icon of its first listed included power.
func powerSetDoc(header Header, pset *powers.BasePowerSet, attribs *powers.AttribNames, assets *config.AssetsConfig) PowerSetDoc {
	doc := PowerSetDoc{
		Header:            header,
		Name:              pset.FullName.String(),
		DisplayName:       pset.DisplayName,
		DisplayHelp:       pset.DisplayHelp,
		Icon:              pset.IconName,
		OrderedPowerNames: make([]string, 0, len(pset.Powers)),
		Powers:            make([]PowerDoc, 0, len(pset.Powers)),
	}

	levels := make(map[string]int, len(pset.PowerNames))
	for i, name := range pset.PowerNames {
		if i < len(pset.Available) {
			levels[name.Normalized()] = pset.Available[i] + 1
		}
	}

	included := make(map[string]*PowerDoc, len(pset.Powers))
	for _, power := range pset.Powers {
		if !power.IncludeInOutput {
			continue
		}
		pdoc := powerDoc(power, attribs, assets)
		pdoc.AvailableAtLevel = levels[power.FullName.Normalized()]
		included[power.FullName.Normalized()] = &pdoc
		doc.Powers = append(doc.Powers, pdoc)
	}
	for _, name := range pset.PowerNames {
		if pdoc, ok := included[name.Normalized()]; ok {
			doc.OrderedPowerNames = append(doc.OrderedPowerNames, name.String())
			if assets != nil && pset.IconName != "" && len(doc.OrderedPowerNames) == 1 {
				doc.Icon = pdoc.Icon
			}
		}
	}
	sort.SliceStable(doc.Powers, func(i, j int) bool {
		return doc.Powers[i].AvailableAtLevel < doc.Powers[j].AvailableAtLevel
	})
	return doc
}

func powerDoc(power *powers.BasePower, attribs *powers.AttribNames, assets *config.AssetsConfig) PowerDoc {
	doc := PowerDoc{
		Name:                            power.FullName.String(),
		DisplayName:                     power.DisplayName,
		DisplayHelp:                     power.DisplayHelp,
		DisplayShortHelp:                power.DisplayShortHelp,
		Icon:                            powerIcon(power.IconName, assets),
		Type:                            power.Type.String(),
		AutoIssue:                       power.AutoIssue,
		Free:                            power.Free,
		ForceLevelBought:                power.ForceLevelBought,
		MaxBoosts:                       power.MaxBoosts,
		BoostsAllowed:                   nonNil(power.BoostsAllowed),
		EnhancementSetCategoriesAllowed: power.EnhancementSetCategories(),
		Accuracy:                        round(power.Accuracy, 2),
		Range:                           round(power.Range, 2),
		Radius:                          round(power.Radius, 2),
		Arc:                             round(power.Arc, 2),
		MaxTargetsHit:                   power.MaxTargetsHit,
		TimeToActivate:                  round(power.TimeToActivate, 2),
		RechargeTime:                    round(power.RechargeTime, 2),
		EnduranceCost:                   round(power.EnduranceCost, 2),
		ActivatePeriod:                  round(power.ActivatePeriod, 2),
		BuyRequires:                     RequiresString(power.BuyRequires),
		Archetypes:                      make([]string, 0, len(power.Archetypes)),
		Effects:                         effectDocs(power.Effects, attribs),
	}
	if len(doc.EnhancementSetCategoriesAllowed) == 0 {
		doc.EnhancementSetCategoriesAllowed = nil
	}
	for _, custom := range power.CustomFX {
		doc.CustomFX = append(doc.CustomFX, CustomFXDoc{
			DisplayName: custom.DisplayName,
			Token:       custom.Token,
			AltThemes:   custom.AltThemes,
			Category:    custom.Category,
			PaletteName: custom.PaletteName,
		})
	}
	for _, at := range power.Archetypes {
		doc.Archetypes = append(doc.Archetypes, at.Name)
	}
	for _, redirect := range power.Redirects {
		doc.Redirects = append(doc.Redirects, RedirectDoc{
			Name:       redirect.Name.String(),
			Requires:   RequiresString(redirect.Requires),
			ShowInInfo: redirect.ShowInInfo,
		})
	}
	return doc
}

func fxDoc(header Header, fx *powers.PowerFX) FXDoc {
	return FXDoc{
		Header:                   header,
		SourceFile:               fx.SourceFile,
		ActivationFX:             fx.ActivationFX,
		DeactivationFX:           fx.DeactivationFX,
		AttackFX:                 fx.AttackFX,
		SecondaryAttackFX:        fx.SecondaryAttackFX,
		HitFX:                    fx.HitFX,
		WindUpFX:                 fx.WindUpFX,
		BlockFX:                  fx.BlockFX,
		DeathFX:                  fx.DeathFX,
		InitialAttackFX:          fx.InitialAttackFX,
		ContinuingFX:             fx.ContinuingFX,
		ConditionalFX:            fx.ConditionalFX,
		FramesBeforeHit:          fx.FramesBeforeHit,
		FramesBeforeSecondaryHit: fx.FramesBeforeSecondaryHit,
		FramesAttack:             fx.FramesAttack,
		DelayedHit:               fx.DelayedHit,
		ProjectileSpeed:          round(fx.ProjectileSpeed, 2),
		Important:                fx.Important,
	}
}

func effectDocs(groups []*powers.EffectGroup, attribs *powers.AttribNames) []EffectDoc {
	if len(groups) == 0 {
		return nil
	}
	out := make([]EffectDoc, 0, len(groups))
	for _, group := range groups {
		doc := EffectDoc{
			Tags:      group.Tags,
			Chance:    round(group.Chance, 4),
			Delay:     round(group.Delay, 2),
			Requires:  RequiresString(group.Requires),
			Templates: make([]TemplateDoc, 0, len(group.Templates)),
			Effects:   effectDocs(group.Effects, attribs),
		}
		for _, tmpl := range group.Templates {
			tdoc := TemplateDoc{
				Attribs:   make([]string, 0, len(tmpl.Attribs)),
				Aspect:    tmpl.Aspect,
				Target:    tmpl.Target,
				Table:     tmpl.Table,
				Scale:     round(tmpl.Scale, 4),
				Duration:  round(tmpl.Duration, 2),
				Magnitude: round(tmpl.Magnitude, 4),
				Delay:     round(tmpl.Delay, 2),
				Period:    round(tmpl.Period, 2),
				Params:    paramDoc(tmpl.Params),
			}
			for _, offset := range tmpl.Attribs {
				tdoc.Attribs = append(tdoc.Attribs, attribs.Render(offset))
			}
			doc.Templates = append(doc.Templates, tdoc)
		}
		out = append(out, doc)
	}
	return out
}

func paramDoc(param powers.AttribModParam) *ParamDoc {
	if param == nil {
		return nil
	}
	doc := &ParamDoc{Type: param.ParamType()}
	switch p := param.(type) {
	case *powers.CostumeParam:
		doc.CostumeName = p.CostumeName
	case *powers.RewardParam:
		doc.Rewards = p.Rewards
	case *powers.EntCreateParam:
		doc.EntityDef = p.EntityDef.String()
		doc.Class = p.Class
		doc.DisplayName = p.DisplayName
		doc.CostumeName = p.CostumeName
		// resolved params list what the entity actually gets
		if p.VillainDef != nil {
			doc.Powers = keyStrings(p.PowerRefs)
		} else {
			doc.Categories = keyStrings(p.CategoryNames)
			doc.PowerSets = keyStrings(p.PowerSetNames)
			doc.Powers = keyStrings(p.PowerNames)
		}
	case *powers.PowerParam:
		doc.Count = p.Count
		doc.Categories = keyStrings(p.CategoryNames)
		doc.PowerSets = keyStrings(p.PowerSetNames)
		doc.Powers = keyStrings(p.PowerNames)
	case *powers.TeleportParam:
		doc.Destination = p.Destination
	case *powers.BehaviorParam:
		doc.Behaviors = p.Behaviors
	case *powers.SZEValueParam:
		doc.ScriptIDs = p.ScriptIDs
	case *powers.TokenParam:
		doc.Tokens = p.Tokens
	case *powers.EffectFilterParam:
		doc.Tags = p.Tags
		doc.Categories = p.CategoryNames
		doc.PowerSets = p.PowerSetNames
		doc.Powers = p.PowerNames
	}
	return doc
}

func attribNameDocs(names []powers.AttribName) []AttribNameDoc {
	out := make([]AttribNameDoc, 0, len(names))
	for _, name := range names {
		out = append(out, AttribNameDoc{
			Name:        name.Name,
			DisplayName: name.DisplayName,
			Icon:        name.IconName,
			Offset:      name.Offset,
		})
	}
	return out
}

// round trims v to the given number of decimal places. Values JSON cannot
// carry (infinities and NaN) become zero.
func round(v float32, places int) float64 {
	f := float64(v)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	scale := math.Pow(10, float64(places))
	return math.Round(f*scale) / scale
}

func keyStrings(keys []namekey.Key) []string {
	if len(keys) == 0 {
		return nil
	}
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, key.String())
	}
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

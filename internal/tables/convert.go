package tables

import (
	"strings"

	"github.com/morozRed/powerdex/internal/namekey"
	"github.com/morozRed/powerdex/internal/powers"
)

// converter turns wire records into model records, localizing display
// strings through the message store.
type converter struct {
	messages *powers.MessageStore
}

func (c converter) text(id string) string {
	if id == "" {
		return ""
	}
	return c.messages.Localize(id)
}

func (c converter) texts(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.text(id))
	}
	return out
}

func keys(names []string) []namekey.Key {
	out := make([]namekey.Key, 0, len(names))
	for _, name := range names {
		key := namekey.New(name)
		if key.IsZero() {
			continue
		}
		out = append(out, key)
	}
	return out
}

func attribNames(records []attribNameRecord) []powers.AttribName {
	out := make([]powers.AttribName, 0, len(records))
	for _, rec := range records {
		out = append(out, powers.AttribName{
			Name:        rec.Name,
			DisplayName: rec.DisplayName,
			IconName:    rec.IconName,
			Offset:      rec.Offset,
		})
	}
	return out
}

func (c converter) archetype(rec classRecord, villain bool) *powers.Archetype {
	name := strings.TrimSpace(rec.Name)
	return &powers.Archetype{
		Name:                name,
		DisplayName:         c.text(rec.DisplayName),
		DisplayHelp:         c.text(rec.DisplayHelp),
		DisplayShortHelp:    c.text(rec.DisplayShortHelp),
		Icon:                rec.Icon,
		AllowedOrigins:      rec.AllowedOrigins,
		SpecialRestrictions: rec.SpecialRestrictions,
		PrimaryCategory:     namekey.New(rec.PrimaryCategory),
		SecondaryCategory:   namekey.New(rec.SecondaryCategory),
		PowerPoolCategory:   namekey.New(rec.PowerPoolCategory),
		EpicPoolCategory:    namekey.New(rec.EpicPoolCategory),
		ClassKey:            namekey.New("@" + name),
		IsVillain:           villain,
	}
}

func (c converter) boostSet(rec boostSetRecord) *powers.BoostSet {
	return &powers.BoostSet{
		Name:        namekey.New(rec.Name),
		DisplayName: c.text(rec.DisplayName),
		GroupName:   rec.GroupName,
		Powers:      keys(rec.Powers),
		MinLevel:    rec.MinLevel,
		MaxLevel:    rec.MaxLevel,
	}
}

func (c converter) villain(rec villainRecord) *powers.VillainDef {
	def := &powers.VillainDef{
		Name:               namekey.New(rec.Name),
		CharacterClassName: strings.TrimSpace(rec.CharacterClassName),
		DisplayNames:       c.texts(rec.DisplayNames),
		Description:        c.text(rec.Description),
		Group:              rec.Group,
	}
	for _, ref := range rec.Powers {
		def.Powers = append(def.Powers, powers.PowerNameRef{
			Category: ref.Category,
			Set:      ref.Set,
			Power:    ref.Power,
		})
	}
	return def
}

func (c converter) category(rec categoryRecord) *powers.PowerCategory {
	return &powers.PowerCategory{
		SourceFile:       rec.SourceFile,
		Name:             namekey.New(rec.Name),
		DisplayName:      c.text(rec.DisplayName),
		DisplayHelp:      c.text(rec.DisplayHelp),
		DisplayShortHelp: c.text(rec.DisplayShortHelp),
		PowerSetNames:    keys(rec.PowerSets),
	}
}

func (c converter) powerSet(rec powerSetRecord) *powers.BasePowerSet {
	fullName := namekey.New(rec.FullName)
	return &powers.BasePowerSet{
		Name:             fullName.Last(),
		FullName:         fullName,
		DisplayName:      c.text(rec.DisplayName),
		DisplayHelp:      c.text(rec.DisplayHelp),
		DisplayShortHelp: c.text(rec.DisplayShortHelp),
		IconName:         rec.IconName,
		SourceFile:       rec.SourceFile,
		PowerNames:       keys(rec.Powers),
		Available:        rec.Available,
		ForceLevelBought: rec.ForceLevelBought,
	}
}

// power converts rec. An unknown power type is reported through the returned
// error and leaves the type at its zero value.
func (c converter) power(rec powerRecord) (*powers.BasePower, error) {
	fullName := namekey.New(rec.FullName)
	power := &powers.BasePower{
		Name:             fullName.Last(),
		FullName:         fullName,
		SourceName:       rec.SourceName,
		SourceFile:       rec.SourceFile,
		DisplayName:      c.text(rec.DisplayName),
		DisplayHelp:      c.text(rec.DisplayHelp),
		DisplayShortHelp: c.text(rec.DisplayShortHelp),
		IconName:         rec.IconName,
		AutoIssue:        rec.AutoIssue,
		Free:             rec.Free,
		ForceLevelBought: rec.ForceLevelBought,
		MaxBoosts:        rec.MaxBoosts,
		BoostsAllowed:    rec.BoostsAllowed,
		NumAllowed:       rec.NumAllowed,
		Accuracy:         rec.Accuracy,
		Range:            rec.Range,
		Radius:           rec.Radius,
		Arc:              rec.Arc,
		MaxTargetsHit:    rec.MaxTargetsHit,
		TimeToActivate:   rec.TimeToActivate,
		RechargeTime:     rec.RechargeTime,
		EnduranceCost:    rec.EnduranceCost,
		ActivatePeriod:   rec.ActivatePeriod,
		BuyRequires:      rec.BuyRequires,
		Effects:          c.effectGroups(rec.Effects),
	}
	power.FX = powerFX(rec.FX)
	for _, custom := range rec.CustomFX {
		power.CustomFX = append(power.CustomFX, powers.CustomPowerFX{
			DisplayName: c.text(custom.DisplayName),
			Token:       custom.Token,
			AltThemes:   custom.AltThemes,
			Category:    custom.Category,
			PaletteName: custom.PaletteName,
			FX:          powerFX(custom.FX),
		})
	}
	for _, redirect := range rec.Redirects {
		power.Redirects = append(power.Redirects, powers.PowerRedirect{
			Name:       namekey.New(redirect.Name),
			Requires:   redirect.Requires,
			ShowInInfo: redirect.ShowInInfo,
		})
	}

	var err error
	if rec.Type != "" {
		power.Type, err = powers.ParsePowerType(rec.Type)
	}
	return power, err
}

func (c converter) effectGroups(records []effectGroupRecord) []*powers.EffectGroup {
	if len(records) == 0 {
		return nil
	}
	out := make([]*powers.EffectGroup, 0, len(records))
	for _, rec := range records {
		group := &powers.EffectGroup{
			Tags:        rec.Tags,
			Chance:      rec.Chance,
			Delay:       rec.Delay,
			RadiusInner: rec.RadiusInner,
			RadiusOuter: rec.RadiusOuter,
			Requires:    rec.Requires,
			Effects:     c.effectGroups(rec.Effects),
		}
		for _, tmpl := range rec.Templates {
			group.Templates = append(group.Templates, &powers.AttribModTemplate{
				Attribs:   tmpl.Attribs,
				Aspect:    tmpl.Aspect,
				Target:    tmpl.Target,
				Table:     tmpl.Table,
				Scale:     tmpl.Scale,
				Duration:  tmpl.Duration,
				Magnitude: tmpl.Magnitude,
				Delay:     tmpl.Delay,
				Period:    tmpl.Period,
				Params:    c.param(tmpl.Params),
			})
		}
		out = append(out, group)
	}
	return out
}

// param selects the param variant named by rec.Type. Unknown types carry no
// param.
func (c converter) param(rec *paramRecord) powers.AttribModParam {
	if rec == nil {
		return nil
	}
	switch strings.ToLower(rec.Type) {
	case "costume":
		return &powers.CostumeParam{CostumeName: rec.CostumeName, Priority: rec.Priority}
	case "reward":
		return &powers.RewardParam{Rewards: rec.Rewards}
	case "entcreate":
		return &powers.EntCreateParam{
			EntityDef:     namekey.New(rec.EntityDef),
			Class:         rec.Class,
			CostumeName:   rec.CostumeName,
			DisplayName:   c.text(rec.DisplayName),
			PriorityList:  rec.PriorityList,
			AIConfig:      rec.AIConfig,
			CategoryNames: keys(rec.Categories),
			PowerSetNames: keys(rec.PowerSets),
			PowerNames:    keys(rec.Powers),
		}
	case "power":
		return &powers.PowerParam{
			Count:         rec.Count,
			CategoryNames: keys(rec.Categories),
			PowerSetNames: keys(rec.PowerSets),
			PowerNames:    keys(rec.Powers),
		}
	case "phase":
		return &powers.PhaseParam{
			CombatPhases:         rec.CombatPhases,
			VisionPhases:         rec.VisionPhases,
			ExclusiveVisionPhase: rec.ExclusiveVisionPhase,
		}
	case "teleport":
		return &powers.TeleportParam{Destination: rec.Destination}
	case "behavior":
		return &powers.BehaviorParam{Behaviors: rec.Behaviors}
	case "szevalue":
		return &powers.SZEValueParam{ScriptIDs: rec.ScriptIDs, ScriptValues: rec.ScriptValues}
	case "token":
		return &powers.TokenParam{Tokens: rec.Tokens}
	case "effectfilter":
		return &powers.EffectFilterParam{
			Tags:          rec.Tags,
			CategoryNames: rec.Categories,
			PowerSetNames: rec.PowerSets,
			PowerNames:    rec.Powers,
		}
	case "knock":
		return &powers.KnockParam{
			Start:             rec.Start,
			End:               rec.End,
			Priority:          rec.Priority,
			Velocity:          rec.Velocity,
			VelocityMagnitude: rec.VelocityMagnitude,
			Height:            rec.Height,
			HeightMagnitude:   rec.HeightMagnitude,
			Pitch:             rec.Pitch,
			Yaw:               rec.Yaw,
			Rotation:          rec.Rotation,
		}
	default:
		return nil
	}
}

func powerFX(rec *fxRecord) *powers.PowerFX {
	if rec == nil {
		return nil
	}
	return &powers.PowerFX{
		SourceFile:               rec.SourceFile,
		ActivationFX:             rec.ActivationFX,
		DeactivationFX:           rec.DeactivationFX,
		AttackFX:                 rec.AttackFX,
		SecondaryAttackFX:        rec.SecondaryAttackFX,
		HitFX:                    rec.HitFX,
		WindUpFX:                 rec.WindUpFX,
		BlockFX:                  rec.BlockFX,
		DeathFX:                  rec.DeathFX,
		InitialAttackFX:          rec.InitialAttackFX,
		ContinuingFX:             rec.ContinuingFX,
		ConditionalFX:            rec.ConditionalFX,
		FramesBeforeHit:          rec.FramesBeforeHit,
		FramesBeforeSecondaryHit: rec.FramesBeforeSecondaryHit,
		FramesAttack:             rec.FramesAttack,
		DelayedHit:               rec.DelayedHit,
		ProjectileSpeed:          rec.ProjectileSpeed,
		Important:                rec.Important,
	}
}

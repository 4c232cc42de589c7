package tables

// Wire structs mirror the dump layout. Display fields may hold message IDs
// that are localized while converting.

type messagesFile struct {
	Messages map[string]string `yaml:"messages"`
}

type attribNameRecord struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	IconName    string `yaml:"icon_name"`
	Offset      int    `yaml:"offset"`
}

type attribNamesFile struct {
	Defense   []attribNameRecord `yaml:"defense"`
	Damage    []attribNameRecord `yaml:"damage"`
	Boost     []attribNameRecord `yaml:"boost"`
	Group     []attribNameRecord `yaml:"group"`
	Mode      []attribNameRecord `yaml:"mode"`
	Elusivity []attribNameRecord `yaml:"elusivity"`
	StackKey  []attribNameRecord `yaml:"stack_key"`
}

type classRecord struct {
	Name                string   `yaml:"name"`
	DisplayName         string   `yaml:"display_name"`
	DisplayHelp         string   `yaml:"display_help"`
	DisplayShortHelp    string   `yaml:"display_short_help"`
	Icon                string   `yaml:"icon"`
	AllowedOrigins      []string `yaml:"allowed_origins"`
	SpecialRestrictions []string `yaml:"special_restrictions"`
	PrimaryCategory     string   `yaml:"primary_category"`
	SecondaryCategory   string   `yaml:"secondary_category"`
	PowerPoolCategory   string   `yaml:"power_pool_category"`
	EpicPoolCategory    string   `yaml:"epic_pool_category"`
}

type classesFile struct {
	Classes []classRecord `yaml:"classes"`
}

type boostSetRecord struct {
	Name        string   `yaml:"name"`
	DisplayName string   `yaml:"display_name"`
	GroupName   string   `yaml:"group_name"`
	Powers      []string `yaml:"powers"`
	MinLevel    int      `yaml:"min_level"`
	MaxLevel    int      `yaml:"max_level"`
}

type boostSetsFile struct {
	BoostSets []boostSetRecord `yaml:"boost_sets"`
}

type powerNameRecord struct {
	Category string `yaml:"category"`
	Set      string `yaml:"set"`
	Power    string `yaml:"power"`
}

type villainRecord struct {
	Name               string            `yaml:"name"`
	CharacterClassName string            `yaml:"character_class_name"`
	DisplayNames       []string          `yaml:"display_names"`
	Description        string            `yaml:"description"`
	Group              string            `yaml:"group"`
	Powers             []powerNameRecord `yaml:"powers"`
}

type villainsFile struct {
	Villains []villainRecord `yaml:"villains"`
}

type categoryRecord struct {
	Name             string   `yaml:"name"`
	SourceFile       string   `yaml:"source_file"`
	DisplayName      string   `yaml:"display_name"`
	DisplayHelp      string   `yaml:"display_help"`
	DisplayShortHelp string   `yaml:"display_short_help"`
	PowerSets        []string `yaml:"power_sets"`
}

type categoriesFile struct {
	Categories []categoryRecord `yaml:"categories"`
}

type powerSetRecord struct {
	FullName         string   `yaml:"full_name"`
	SourceFile       string   `yaml:"source_file"`
	DisplayName      string   `yaml:"display_name"`
	DisplayHelp      string   `yaml:"display_help"`
	DisplayShortHelp string   `yaml:"display_short_help"`
	IconName         string   `yaml:"icon_name"`
	Powers           []string `yaml:"powers"`
	Available        []int    `yaml:"available"`
	ForceLevelBought int      `yaml:"force_level_bought"`
}

type powerSetsFile struct {
	PowerSets []powerSetRecord `yaml:"power_sets"`
}

type redirectRecord struct {
	Name       string   `yaml:"name"`
	Requires   []string `yaml:"requires"`
	ShowInInfo bool     `yaml:"show_in_info"`
}

// paramRecord is the union of every attrib mod param shape, selected by Type.
type paramRecord struct {
	Type string `yaml:"type"`

	CostumeName string   `yaml:"costume_name"`
	Priority    int      `yaml:"priority"`
	Rewards     []string `yaml:"rewards"`

	EntityDef    string `yaml:"entity_def"`
	Class        string `yaml:"class"`
	DisplayName  string `yaml:"display_name"`
	PriorityList string `yaml:"priority_list"`
	AIConfig     string `yaml:"ai_config"`

	Count      int      `yaml:"count"`
	Categories []string `yaml:"categories"`
	PowerSets  []string `yaml:"power_sets"`
	Powers     []string `yaml:"powers"`

	CombatPhases         []int `yaml:"combat_phases"`
	VisionPhases         []int `yaml:"vision_phases"`
	ExclusiveVisionPhase int   `yaml:"exclusive_vision_phase"`

	Destination  string   `yaml:"destination"`
	Behaviors    []string `yaml:"behaviors"`
	ScriptIDs    []string `yaml:"script_ids"`
	ScriptValues []string `yaml:"script_values"`
	Tokens       []string `yaml:"tokens"`
	Tags         []string `yaml:"tags"`

	Start             int     `yaml:"start"`
	End               int     `yaml:"end"`
	Velocity          float32 `yaml:"velocity"`
	VelocityMagnitude float32 `yaml:"velocity_magnitude"`
	Height            int     `yaml:"height"`
	HeightMagnitude   float32 `yaml:"height_magnitude"`
	Pitch             float32 `yaml:"pitch"`
	Yaw               float32 `yaml:"yaw"`
	Rotation          float32 `yaml:"rotation"`
}

type templateRecord struct {
	Attribs   []int        `yaml:"attribs"`
	Aspect    string       `yaml:"aspect"`
	Target    string       `yaml:"target"`
	Table     string       `yaml:"table"`
	Scale     float32      `yaml:"scale"`
	Duration  float32      `yaml:"duration"`
	Magnitude float32      `yaml:"magnitude"`
	Delay     float32      `yaml:"delay"`
	Period    float32      `yaml:"period"`
	Params    *paramRecord `yaml:"params"`
}

type effectGroupRecord struct {
	Tags        []string            `yaml:"tags"`
	Chance      float32             `yaml:"chance"`
	Delay       float32             `yaml:"delay"`
	RadiusInner float32             `yaml:"radius_inner"`
	RadiusOuter float32             `yaml:"radius_outer"`
	Requires    []string            `yaml:"requires"`
	Templates   []templateRecord    `yaml:"templates"`
	Effects     []effectGroupRecord `yaml:"effects"`
}

type powerRecord struct {
	FullName         string `yaml:"full_name"`
	SourceName       string `yaml:"source_name"`
	SourceFile       string `yaml:"source_file"`
	DisplayName      string `yaml:"display_name"`
	DisplayHelp      string `yaml:"display_help"`
	DisplayShortHelp string `yaml:"display_short_help"`
	IconName         string `yaml:"icon_name"`
	Type             string `yaml:"type"`

	AutoIssue        bool     `yaml:"auto_issue"`
	Free             bool     `yaml:"free"`
	ForceLevelBought int      `yaml:"force_level_bought"`
	MaxBoosts        int      `yaml:"max_boosts"`
	BoostsAllowed    []string `yaml:"boosts_allowed"`
	NumAllowed       int      `yaml:"num_allowed"`

	Accuracy       float32  `yaml:"accuracy"`
	Range          float32  `yaml:"range"`
	Radius         float32  `yaml:"radius"`
	Arc            float32  `yaml:"arc"`
	MaxTargetsHit  int      `yaml:"max_targets_hit"`
	TimeToActivate float32  `yaml:"time_to_activate"`
	RechargeTime   float32  `yaml:"recharge_time"`
	EnduranceCost  float32  `yaml:"endurance_cost"`
	ActivatePeriod float32  `yaml:"activate_period"`
	BuyRequires    []string `yaml:"buy_requires"`

	Redirects []redirectRecord    `yaml:"redirects"`
	Effects   []effectGroupRecord `yaml:"effects"`
	FX        *fxRecord           `yaml:"fx"`
	CustomFX  []customFXRecord    `yaml:"custom_fx"`
}

type fxRecord struct {
	SourceFile        string   `yaml:"source_file"`
	ActivationFX      string   `yaml:"activation_fx"`
	DeactivationFX    string   `yaml:"deactivation_fx"`
	AttackFX          string   `yaml:"attack_fx"`
	SecondaryAttackFX string   `yaml:"secondary_attack_fx"`
	HitFX             string   `yaml:"hit_fx"`
	WindUpFX          string   `yaml:"wind_up_fx"`
	BlockFX           string   `yaml:"block_fx"`
	DeathFX           string   `yaml:"death_fx"`
	InitialAttackFX   string   `yaml:"initial_attack_fx"`
	ContinuingFX      []string `yaml:"continuing_fx"`
	ConditionalFX     []string `yaml:"conditional_fx"`

	FramesBeforeHit          int     `yaml:"frames_before_hit"`
	FramesBeforeSecondaryHit int     `yaml:"frames_before_secondary_hit"`
	FramesAttack             int     `yaml:"frames_attack"`
	DelayedHit               bool    `yaml:"delayed_hit"`
	ProjectileSpeed          float32 `yaml:"projectile_speed"`
	Important                bool    `yaml:"important"`
}

type customFXRecord struct {
	DisplayName string    `yaml:"display_name"`
	Token       string    `yaml:"token"`
	AltThemes   []string  `yaml:"alt_themes"`
	Category    string    `yaml:"category"`
	PaletteName string    `yaml:"palette_name"`
	FX          *fxRecord `yaml:"fx"`
}

type powersFile struct {
	Powers []powerRecord `yaml:"powers"`
}

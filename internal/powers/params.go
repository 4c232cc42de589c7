package powers

import "github.com/morozRed/powerdex/internal/namekey"

// AttribModParam is the typed payload an attrib mod template may carry.
type AttribModParam interface {
	ParamType() string
}

type CostumeParam struct {
	CostumeName string
	Priority    int
}

type RewardParam struct {
	Rewards []string
}

// EntCreateParam spawns an entity. Once resolved it points at the villain
// def and carries the flattened list of powers the entity is granted.
type EntCreateParam struct {
	EntityDef     namekey.Key
	Class         string
	CostumeName   string
	DisplayName   string
	PriorityList  string
	AIConfig      string
	CategoryNames []namekey.Key
	PowerSetNames []namekey.Key
	PowerNames    []namekey.Key

	VillainDef *VillainDef
	PowerRefs  []namekey.Key
	Resolved   bool
}

// PowerParam grants or revokes powers by name.
type PowerParam struct {
	Count         int
	CategoryNames []namekey.Key
	PowerSetNames []namekey.Key
	PowerNames    []namekey.Key
	Resolved      bool
}

type PhaseParam struct {
	CombatPhases         []int
	VisionPhases         []int
	ExclusiveVisionPhase int
}

type TeleportParam struct {
	Destination string
}

type BehaviorParam struct {
	Behaviors []string
}

type SZEValueParam struct {
	ScriptIDs    []string
	ScriptValues []string
}

type TokenParam struct {
	Tokens []string
}

type EffectFilterParam struct {
	Tags          []string
	CategoryNames []string
	PowerSetNames []string
	PowerNames    []string
}

type KnockParam struct {
	Start             int
	End               int
	Priority          int
	Velocity          float32
	VelocityMagnitude float32
	Height            int
	HeightMagnitude   float32
	Pitch             float32
	Yaw               float32
	Rotation          float32
}

func (*CostumeParam) ParamType() string      { return "Costume" }
func (*RewardParam) ParamType() string       { return "Reward" }
func (*EntCreateParam) ParamType() string    { return "EntCreate" }
func (*PowerParam) ParamType() string        { return "Power" }
func (*PhaseParam) ParamType() string        { return "Phase" }
func (*TeleportParam) ParamType() string     { return "Teleport" }
func (*BehaviorParam) ParamType() string     { return "Behavior" }
func (*SZEValueParam) ParamType() string     { return "SZEValue" }
func (*TokenParam) ParamType() string        { return "Token" }
func (*EffectFilterParam) ParamType() string { return "EffectFilter" }
func (*KnockParam) ParamType() string        { return "Knock" }

package powers

import (
	"fmt"
	"strings"
)

// PowerType is how a power is activated.
type PowerType int

const (
	PowerTypeClick PowerType = iota
	PowerTypeAuto
	PowerTypeToggle
	PowerTypeBoost
	PowerTypeInspiration
	PowerTypeGlobalBoost
)

var powerTypeNames = [...]string{
	PowerTypeClick:       "Click",
	PowerTypeAuto:        "Auto",
	PowerTypeToggle:      "Toggle",
	PowerTypeBoost:       "Boost",
	PowerTypeInspiration: "Inspiration",
	PowerTypeGlobalBoost: "GlobalBoost",
}

func (t PowerType) String() string {
	if t < 0 || int(t) >= len(powerTypeNames) {
		return fmt.Sprintf("PowerType(%d)", int(t))
	}
	return powerTypeNames[t]
}

// IsBoost reports whether the power is an enhancement rather than a usable power.
func (t PowerType) IsBoost() bool {
	return t == PowerTypeBoost || t == PowerTypeGlobalBoost
}

// ParsePowerType accepts the display name or the game's kPowerType_ spelling.
func ParsePowerType(value string) (PowerType, error) {
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, "kPowerType_")
	for i, name := range powerTypeNames {
		if strings.EqualFold(name, value) {
			return PowerType(i), nil
		}
	}
	return PowerTypeClick, fmt.Errorf("unknown power type %q", value)
}

func (t PowerType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *PowerType) UnmarshalText(text []byte) error {
	parsed, err := ParsePowerType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// PrimarySecondary records whether a category holds an archetype's primary
// or secondary picks. It only means something when one archetype is attached.
type PrimarySecondary int

const (
	PriSecNone PrimarySecondary = iota
	PriSecPrimary
	PriSecSecondary
)

func (p PrimarySecondary) String() string {
	switch p {
	case PriSecPrimary:
		return "Primary"
	case PriSecSecondary:
		return "Secondary"
	default:
		return "None"
	}
}

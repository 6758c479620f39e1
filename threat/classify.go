// Package threat decides how a player's name label looks relative to the
// viewer's combat level.
package threat

import (
	"fmt"
	"image/color"
)

const (
	// HighMargin is the level difference beyond which a target is red (or
	// green when below the viewer).
	HighMargin = 10
	// NearMargin bounds the near-equal band, exclusive.
	NearMargin = 3
	// SuppressMargin is the largest difference still labelled when the
	// target is outside the level range.
	SuppressMargin = 34
)

// Tier is a threat band derived from the combat level difference.
type Tier int

const (
	TierNone Tier = iota // boundary values that match no band
	TierLow
	TierNear
	TierMid
	TierHigh
)

var tierColors = [...]color.NRGBA{
	TierNone: {0x00, 0x00, 0x00, 0xff},
	TierLow:  {0x00, 0xc8, 0x53, 0xff},
	TierNear: {0xff, 0xd6, 0x00, 0xff},
	TierMid:  {0xff, 0x6d, 0x00, 0xff},
	TierHigh: {0xdd, 0x2c, 0x00, 0xff},
}

var tierNames = [...]string{"none", "low", "near", "mid", "high"}

// Color returns the label colour for the tier.
func (t Tier) Color() color.NRGBA {
	if t < 0 || int(t) >= len(tierColors) {
		return tierColors[TierNone]
	}
	return tierColors[t]
}

func (t Tier) String() string {
	if t < 0 || int(t) >= len(tierNames) {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierNames[t]
}

// TierFor maps target level minus viewer level to a tier. The first
// matching band wins. Differences of exactly ±HighMargin and ±NearMargin
// belong to no band and yield TierNone.
func TierFor(diff int) Tier {
	switch {
	case diff > HighMargin:
		return TierHigh
	case diff < -HighMargin:
		return TierLow
	case diff > -NearMargin && diff < NearMargin:
		return TierNear
	case abs(diff) > NearMargin && abs(diff) < HighMargin:
		return TierMid
	}
	return TierNone
}

// Combatant identifies a player and its combat level.
type Combatant struct {
	Name  string
	Level int
	Local bool
}

// Verdict is the outcome of classifying one target.
type Verdict struct {
	Visible    bool
	Tier       Tier
	Color      color.NRGBA
	Emphasized bool
}

// Classify compares target with viewer. With no range nothing is labelled.
// Targets inside the range are emphasized; those outside it are drawn
// small, and hidden once the difference exceeds SuppressMargin.
func Classify(viewer, target Combatant, rng *LevelRange) Verdict {
	diff := target.Level - viewer.Level
	tier := TierFor(diff)
	v := Verdict{Tier: tier, Color: tier.Color()}
	if rng == nil {
		return v
	}

	v.Visible = true
	if rng.Contains(target.Level) {
		v.Emphasized = true
	} else if abs(diff) > SuppressMargin {
		v.Visible = false
	}

	if target.Local || target.Name == viewer.Name {
		v.Visible = false
	}
	return v
}

// LabelText is the text drawn for a classified target.
func LabelText(name string, level int) string {
	return fmt.Sprintf("%s (level: %d)", name, level)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

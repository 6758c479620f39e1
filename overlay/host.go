package overlay

import (
	"image"
	"image/color"

	"threatlabels/nameplate"
)

// Player is a per-frame snapshot of one player supplied by the host.
type Player struct {
	Name          string
	CombatLevel   int
	Local         bool
	LogicalHeight int
}

// Decoration is the host's indicator styling for a player, independent of
// threat classification.
type Decoration struct {
	Color       color.Color
	FriendsRank *nameplate.FriendsChatRank
	ClanTitle   *nameplate.ClanTitle
}

// GameStateSource is the host's view of the world for one frame.
type GameStateSource interface {
	Players() []Player
	LocalPlayer() (Player, bool)
	// LevelRangeText returns the raw text of the level-range widget.
	LevelRangeText() string
	// Project maps a point zOffset units above the player's base to screen
	// space. ok is false when the point is off-screen or behind the camera.
	Project(p Player, zOffset int) (pt image.Point, ok bool)
}

// DecorationSource yields the players that carry indicator decorations.
type DecorationSource interface {
	ForEachDecorated(fn func(Player, Decoration))
}

// IconProvider returns the image for a rank glyph, or nil when it has none.
type IconProvider interface {
	RankImage(g nameplate.RankGlyph) image.Image
}

// Weight selects the face a label is drawn with.
type Weight int

const (
	WeightRegular Weight = iota
	WeightBold
	WeightSmall
)

func (w Weight) String() string {
	switch w {
	case WeightBold:
		return "bold"
	case WeightSmall:
		return "small"
	}
	return "regular"
}

// TextMetricsProvider measures text in the host's fonts.
type TextMetricsProvider interface {
	TextWidth(s string, w Weight) int
	Metrics(w Weight) nameplate.TextMetrics
}

// Canvas receives the draw calls for a frame. Text positions are baseline
// origins; image positions are top-left corners.
type Canvas interface {
	DrawText(s string, at image.Point, c color.Color, w Weight)
	DrawImage(img image.Image, at image.Point)
}

package main

import (
	"image/color"
)

var labelColors = []color.NRGBA{
	{0xff, 0x00, 0x00, 0xff}, // red
	{0xff, 0x80, 0x00, 0xff}, // orange
	{0xff, 0xff, 0x00, 0xff}, // yellow
	{0x00, 0xff, 0x00, 0xff}, // green
	{0x00, 0x80, 0xff, 0xff}, // blue
	{0x80, 0x00, 0xff, 0xff}, // purple
	{0xff, 0x00, 0xff, 0xff}, // pink
	{0x00, 0xff, 0xff, 0xff}, // teal
	{0x80, 0x40, 0x00, 0xff}, // brown
	{0x80, 0x80, 0x80, 0xff}, // gray
}

// Indicator colours for players without a friend label.
var (
	ownColor         = color.NRGBA{41, 98, 255, 0xff}
	friendsChatColor = color.NRGBA{170, 0, 255, 0xff}
	clanColor        = color.NRGBA{0, 184, 212, 0xff}
	otherColor       = color.NRGBA{158, 158, 158, 0xff}
)

func labelColor(i int) (color.NRGBA, bool) {
	if i <= 0 || i > len(labelColors) {
		return color.NRGBA{}, false
	}
	return labelColors[i-1], true
}

// decorationColor picks the indicator colour: a friend label wins, then the
// player's own colour, then friends chat, then clan membership.
func decorationColor(p *Player) color.NRGBA {
	if c, ok := labelColor(p.FriendLabel); ok {
		return c
	}
	switch {
	case p.Local:
		return ownColor
	case p.FriendsRank != nil:
		return friendsChatColor
	case p.ClanTitle != nil:
		return clanColor
	}
	return otherColor
}

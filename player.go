package main

import (
	"sort"
	"strings"

	"threatlabels/nameplate"
	"threatlabels/overlay"
)

// Player is one avatar in the simulated world.
type Player struct {
	Name        string
	CombatLevel int
	Local       bool
	Height      int // logical model height in world units

	X, Y   float64 // world position of the model's base
	VX, VY float64

	FriendLabel int // label/colour index, 0 for none
	FriendsRank *nameplate.FriendsChatRank
	ClanTitle   *nameplate.ClanTitle
}

func (p *Player) snapshot() overlay.Player {
	return overlay.Player{
		Name:          p.Name,
		CombatLevel:   p.CombatLevel,
		Local:         p.Local,
		LogicalHeight: p.Height,
	}
}

// decorated reports whether the indicator pass draws this player.
func (p *Player) decorated() bool {
	return p.Local || p.FriendLabel > 0 || p.FriendsRank != nil || p.ClanTitle != nil
}

func (p *Player) decoration() overlay.Decoration {
	return overlay.Decoration{
		Color:       decorationColor(p),
		FriendsRank: p.FriendsRank,
		ClanTitle:   p.ClanTitle,
	}
}

// sortPlayersByName orders players case-insensitively, local player first.
func sortPlayersByName(ps []*Player) {
	sort.SliceStable(ps, func(i, j int) bool {
		if ps[i].Local != ps[j].Local {
			return ps[i].Local
		}
		return strings.ToLower(ps[i].Name) < strings.ToLower(ps[j].Name)
	})
}

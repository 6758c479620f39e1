package main

import (
	"testing"

	"threatlabels/overlay"
	"threatlabels/threat"
)

func TestThreatListText(t *testing.T) {
	players := []overlay.Player{
		{Name: "Me", CombatLevel: 60, Local: true},
		{Name: "Low", CombatLevel: 40},
		{Name: "Big", CombatLevel: 90},
		{Name: "Bigger", CombatLevel: 100},
		{Name: "Close", CombatLevel: 61},
	}
	tiers := map[string]threat.Tier{
		"Low":    threat.TierLow,
		"Big":    threat.TierHigh,
		"Bigger": threat.TierHigh,
		"Close":  threat.TierNear,
	}
	want := "Bigger (level: 100) [high]\n" +
		"Big (level: 90) [high]\n" +
		"Close (level: 61) [near]\n" +
		"Low (level: 40) [low]\n"
	if got := threatListText(players, tiers); got != want {
		t.Fatalf("threatListText =\n%s\nwant\n%s", got, want)
	}
	if got := threatListText(players, nil); got != "" {
		t.Fatalf("empty tiers gave %q", got)
	}
}

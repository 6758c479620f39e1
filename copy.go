package main

import (
	"fmt"
	"sort"
	"strings"

	clipboard "golang.design/x/clipboard"

	"threatlabels/overlay"
	"threatlabels/threat"
)

// clipboardReady is set once clipboard.Init succeeds.
var clipboardReady bool

type threatEntry struct {
	name  string
	level int
	tier  threat.Tier
}

// threatListText formats the labelled players, highest tier first and then
// by level, one per line.
func threatListText(players []overlay.Player, tiers map[string]threat.Tier) string {
	var entries []threatEntry
	for _, p := range players {
		tier, ok := tiers[p.Name]
		if !ok {
			continue
		}
		entries = append(entries, threatEntry{p.Name, p.CombatLevel, tier})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.tier != b.tier {
			return a.tier > b.tier
		}
		if a.level != b.level {
			return a.level > b.level
		}
		return a.name < b.name
	})
	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "%s [%s]\n", threat.LabelText(e.name, e.level), e.tier)
	}
	return sb.String()
}

// copyThreatList puts the current threat list on the clipboard.
func copyThreatList(players []overlay.Player, tiers map[string]threat.Tier) {
	txt := threatListText(players, tiers)
	if txt == "" {
		consoleMessage("no players labelled")
		return
	}
	if !clipboardReady {
		logWarn("clipboard unavailable")
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(txt))
	consoleMessage(fmt.Sprintf("copied %d players", len(tiers)))
}

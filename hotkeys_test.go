package main

import (
	"testing"

	"threatlabels/nameplate"
)

func TestApplySettingHotkey(t *testing.T) {
	withDataDir(t)

	msg, ok := applySettingHotkey(actionCycleNameLocation)
	if !ok || gs.NameLocation != nameplate.ModelCenter || msg != "name location: center" {
		t.Fatalf("cycle = %q %v, location %v", msg, ok, gs.NameLocation)
	}
	if !settingsDirty {
		t.Fatalf("toggle did not mark settings dirty")
	}
	for i := 0; i < 3; i++ {
		applySettingHotkey(actionCycleNameLocation)
	}
	if gs.NameLocation != nameplate.Above {
		t.Fatalf("cycle did not wrap: %v", gs.NameLocation)
	}

	if msg, _ := applySettingHotkey(actionThreatLabels); msg != "threat labels off" || gs.ThreatLabels {
		t.Fatalf("threat toggle = %q, %v", msg, gs.ThreatLabels)
	}
	if msg, _ := applySettingHotkey(actionFriendsRanks); msg != "friends chat ranks off" {
		t.Fatalf("friends toggle = %q", msg)
	}
	if _, ok := applySettingHotkey(actionCopyThreats); ok {
		t.Fatalf("copy treated as a setting")
	}
	if cfg := overlayConfig(); cfg.ThreatLabels || cfg.ShowFriendsRanks || !cfg.ShowClanRanks {
		t.Fatalf("overlayConfig = %+v", cfg)
	}
}

func TestActionForCombo(t *testing.T) {
	if actionForCombo("F12") != actionScreenshot {
		t.Fatalf("F12 not bound to screenshot")
	}
	if actionForCombo("Ctrl-Q") != actionNone {
		t.Fatalf("unbound combo matched")
	}
}

package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hotkeyAction int

const (
	actionNone hotkeyAction = iota
	actionCycleNameLocation
	actionFriendsRanks
	actionClanRanks
	actionThreatLabels
	actionHUD
	actionCopyThreats
	actionScreenshot
	actionQuit
)

// Hotkey binds a key combo to an overlay action.
type Hotkey struct {
	Name   string
	Combo  string
	Action hotkeyAction
	key    ebiten.Key
}

var hotkeys = []Hotkey{
	{Name: "Cycle name location", Combo: "F1", Action: actionCycleNameLocation, key: ebiten.KeyF1},
	{Name: "Friends chat rank icons", Combo: "F2", Action: actionFriendsRanks, key: ebiten.KeyF2},
	{Name: "Clan rank icons", Combo: "F3", Action: actionClanRanks, key: ebiten.KeyF3},
	{Name: "Threat labels", Combo: "F4", Action: actionThreatLabels, key: ebiten.KeyF4},
	{Name: "HUD", Combo: "H", Action: actionHUD, key: ebiten.KeyH},
	{Name: "Copy threat list", Combo: "C", Action: actionCopyThreats, key: ebiten.KeyC},
	{Name: "Screenshot", Combo: "F12", Action: actionScreenshot, key: ebiten.KeyF12},
	{Name: "Quit", Combo: "Escape", Action: actionQuit, key: ebiten.KeyEscape},
}

// actionForCombo maps a combo string to its action.
func actionForCombo(combo string) hotkeyAction {
	for _, hk := range hotkeys {
		if hk.Combo == combo {
			return hk.Action
		}
	}
	return actionNone
}

// pressedHotkeys returns the actions whose keys went down this tick.
func pressedHotkeys() []hotkeyAction {
	var out []hotkeyAction
	for _, hk := range hotkeys {
		if inpututil.IsKeyJustPressed(hk.key) {
			out = append(out, hk.Action)
		}
	}
	return out
}

func toggledMessage(name string, on bool) string {
	return fmt.Sprintf("%s %s", name, onOff(on))
}

// applySettingHotkey changes the persisted setting behind a toggle action
// and returns a status message. It reports false for actions that are not
// setting toggles.
func applySettingHotkey(a hotkeyAction) (string, bool) {
	var msg string
	switch a {
	case actionCycleNameLocation:
		gs.NameLocation = gs.NameLocation.Next()
		msg = fmt.Sprintf("name location: %v", gs.NameLocation)
	case actionFriendsRanks:
		gs.ShowFriendsChatRanks = !gs.ShowFriendsChatRanks
		msg = toggledMessage("friends chat ranks", gs.ShowFriendsChatRanks)
	case actionClanRanks:
		gs.ShowClanChatRanks = !gs.ShowClanChatRanks
		msg = toggledMessage("clan ranks", gs.ShowClanChatRanks)
	case actionThreatLabels:
		gs.ThreatLabels = !gs.ThreatLabels
		msg = toggledMessage("threat labels", gs.ThreatLabels)
	case actionHUD:
		gs.ShowHUD = !gs.ShowHUD
		msg = toggledMessage("HUD", gs.ShowHUD)
	default:
		return "", false
	}
	settingsDirty = true
	return msg, true
}

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"threatlabels/nameplate"
	"threatlabels/overlay"
)

const SETTINGS_VERSION = 1

var gs settings = gsdef

// settingsLoaded reports whether settings were successfully loaded from disk.
var settingsLoaded bool

var gsdef settings = settings{
	Version: SETTINGS_VERSION,

	NameLocation:         nameplate.Above,
	ShowFriendsChatRanks: true,
	ShowClanChatRanks:    true,
	ThreatLabels:         true,
	MainFontSize:         13,
	SmallFontSize:        10,
	ThreatAlerts:         true,
	AlertSound:           true,
	AlertCooldownSeconds: 60,
	OpenScreenshots:      false,
	ShowHUD:              true,
	PlayerCount:          24,
	WorldScale:           3,
	WindowWidth:          initialWindowW,
	WindowHeight:         initialWindowH,
}

type settings struct {
	Version int

	NameLocation         nameplate.NameLocation
	ShowFriendsChatRanks bool
	ShowClanChatRanks    bool
	ThreatLabels         bool
	MainFontSize         float64
	SmallFontSize        float64
	ThreatAlerts         bool
	AlertSound           bool
	AlertCooldownSeconds float64
	OpenScreenshots      bool
	ShowHUD              bool
	// Theme is "dark" or "light"; empty follows the OS.
	Theme string

	Seed        int64
	PlayerCount int
	WorldScale  float64

	WindowWidth  int
	WindowHeight int
}

var (
	settingsDirty    bool
	lastSettingsSave = time.Now()
)

const settingsFile = "settings.json"

func loadSettings() bool {
	path := filepath.Join(dataDirPath, settingsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		gs = gsdef
		settingsLoaded = false
		return false
	}

	tmp := gsdef
	if err := json.Unmarshal(data, &tmp); err != nil {
		logWarn("load settings: %v", err)
		gs = gsdef
		settingsLoaded = false
		return false
	}
	if tmp.Version != SETTINGS_VERSION {
		gs = gsdef
		settingsLoaded = false
		return false
	}
	gs = tmp
	settingsLoaded = true

	if gs.MainFontSize < 6 || gs.MainFontSize > 48 {
		gs.MainFontSize = gsdef.MainFontSize
	}
	if gs.SmallFontSize < 6 || gs.SmallFontSize > gs.MainFontSize {
		gs.SmallFontSize = gsdef.SmallFontSize
	}
	if gs.AlertCooldownSeconds < 0 {
		gs.AlertCooldownSeconds = gsdef.AlertCooldownSeconds
	}
	if gs.PlayerCount < 1 || gs.PlayerCount > 500 {
		gs.PlayerCount = gsdef.PlayerCount
	}
	if gs.WorldScale <= 0 || gs.WorldScale > 16 {
		gs.WorldScale = gsdef.WorldScale
	}
	if gs.Theme != "" && gs.Theme != "dark" && gs.Theme != "light" {
		gs.Theme = gsdef.Theme
	}
	return true
}

func saveSettings() {
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		logError("save settings: %v", err)
		return
	}
	if err := os.MkdirAll(dataDirPath, 0o755); err != nil {
		logError("save settings: %v", err)
		return
	}
	path := filepath.Join(dataDirPath, settingsFile)
	if err := os.WriteFile(path+".tmp", data, 0644); err != nil {
		logError("save settings: %v", err)
		return
	}
	if err := os.Rename(path+".tmp", path); err != nil {
		logError("save settings: %v", err)
		return
	}
	settingsDirty = false
	lastSettingsSave = time.Now()
}

// maybeSaveSettings writes dirty settings at most every few seconds.
func maybeSaveSettings() {
	if settingsDirty && time.Since(lastSettingsSave) > 5*time.Second {
		saveSettings()
	}
}

func overlayConfig() overlay.Config {
	return overlay.Config{
		NameLocation:     gs.NameLocation,
		ShowFriendsRanks: gs.ShowFriendsChatRanks,
		ShowClanRanks:    gs.ShowClanChatRanks,
		ThreatLabels:     gs.ThreatLabels,
	}
}

func alertCooldown() time.Duration {
	return time.Duration(gs.AlertCooldownSeconds * float64(time.Second))
}

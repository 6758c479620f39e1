package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"threatlabels/threat"
)

// threatStats counts first sightings of labelled targets per tier across
// sessions.
type threatStats struct {
	Tiers    map[string]int `json:"tiers"`
	Sessions int            `json:"sessions"`
}

const statsFile = "stats.json"

// dataDirPath holds the directory for settings, stats and screenshots. On
// macOS it resolves to the app's container directory; elsewhere it sits
// next to the executable regardless of the current working directory.
var dataDirPath = func() string {
	if runtime.GOOS == "darwin" {
		if home, err := os.UserHomeDir(); err == nil {
			home = filepath.Join(home, "Library", "Application Support", "threatlabels")
			_ = os.MkdirAll(home, 0o755)
			return home
		}
	}
	if exe, err := os.Executable(); err == nil {
		if dir, err := filepath.Abs(filepath.Dir(exe)); err == nil {
			return filepath.Join(dir, "data")
		}
	}
	return "data"
}()

var (
	stats      threatStats
	statsMu    sync.Mutex
	statsDirty bool
	// seenThisSession holds names already counted so a target is tallied once
	// per run even when it leaves and re-enters view.
	seenThisSession = map[string]struct{}{}
)

func loadStats() {
	statsMu.Lock()
	defer statsMu.Unlock()
	stats = threatStats{Tiers: make(map[string]int)}

	path := filepath.Join(dataDirPath, statsFile)
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &stats); err != nil {
			logWarn("load stats: %v", err)
		}
	}
	if stats.Tiers == nil {
		stats.Tiers = make(map[string]int)
	}
	stats.Sessions++
	statsDirty = true
}

// recordSightings tallies targets seen for the first time this session.
func recordSightings(tiers map[string]threat.Tier) {
	statsMu.Lock()
	defer statsMu.Unlock()
	if stats.Tiers == nil {
		stats.Tiers = make(map[string]int)
	}
	for name, tier := range tiers {
		if _, ok := seenThisSession[name]; ok {
			continue
		}
		seenThisSession[name] = struct{}{}
		stats.Tiers[tier.String()]++
		statsDirty = true
	}
}

func sightingCount() int {
	statsMu.Lock()
	defer statsMu.Unlock()
	return len(seenThisSession)
}

func saveStats() {
	statsMu.Lock()
	defer statsMu.Unlock()
	if !statsDirty {
		return
	}
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		logError("save stats: %v", err)
		return
	}
	if err := os.MkdirAll(dataDirPath, 0o755); err != nil {
		logError("save stats: %v", err)
		return
	}
	if err := os.WriteFile(filepath.Join(dataDirPath, statsFile), data, 0644); err != nil {
		logError("save stats: %v", err)
		return
	}
	statsDirty = false
}

package main

import "time"

const (
	maxMessages = 8
	// messageTTL is how long a console message stays on screen.
	messageTTL = 6 * time.Second
)

var consoleLog = messageLog{max: maxMessages}

// consoleMessage shows a short status line under the HUD.
func consoleMessage(msg string) {
	if msg == "" {
		return
	}
	consoleLog.Add(msg)
}

func recentConsoleMessages() []string {
	return consoleLog.Recent(time.Now(), messageTTL)
}

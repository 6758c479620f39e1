package main

import (
	"sync"
	"time"
)

type timedMessage struct {
	Text string
	Time time.Time
}

// messageLog is a bounded, concurrency-safe list of recent messages.
type messageLog struct {
	mu      sync.Mutex
	entries []timedMessage
	max     int
}

func (l *messageLog) Add(msg string) {
	l.addAt(msg, time.Now())
}

func (l *messageLog) addAt(msg string, now time.Time) {
	if msg == "" {
		return
	}
	l.mu.Lock()
	l.entries = append(l.entries, timedMessage{Text: msg, Time: now})
	if len(l.entries) > l.max {
		l.entries = l.entries[len(l.entries)-l.max:]
	}
	l.mu.Unlock()
}

// Recent returns the messages newer than maxAge, oldest first.
func (l *messageLog) Recent(now time.Time, maxAge time.Duration) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, e := range l.entries {
		if now.Sub(e.Time) <= maxAge {
			out = append(out, e.Text)
		}
	}
	return out
}

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

var (
	errorLogger  *log.Logger
	errorLogPath string
	errorLogOnce sync.Once

	debugLogger  *log.Logger
	debugLogPath string
	debugLogOnce sync.Once

	// logConsole receives log output alongside the log files. The terminal
	// front end swaps it out so logs do not scribble over the screen.
	logConsole io.Writer = os.Stdout

	// rangeWarnLimiter throttles warnings about unreadable level-range text,
	// which can repeat every frame while the widget is mid-update.
	rangeWarnLimiter = rate.NewLimiter(rate.Every(5*time.Second), 1)
)

func setupLogging(debug bool) {
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Printf("could not create log directory: %v", err)
	}
	ts := time.Now().Format("20060102-150405")

	errorLogPath = filepath.Join(logDir, fmt.Sprintf("error-%s.log", ts))
	errorLogOnce = sync.Once{}
	errorLogger = log.New(logConsole, "", log.LstdFlags)
	log.SetOutput(errorLogger.Writer())

	setDebugLogging(debug)
}

// openErrorLog attaches the error log file on first use so runs without
// errors leave no file behind.
func openErrorLog() {
	errorLogOnce.Do(func() {
		if f, err := os.Create(errorLogPath); err == nil {
			errorLogger.SetOutput(io.MultiWriter(logConsole, f))
			log.SetOutput(errorLogger.Writer())
		}
	})
}

func logError(format string, v ...interface{}) {
	if errorLogger != nil {
		openErrorLog()
		errorLogger.Printf(format, v...)
	}
	if !silent {
		consoleMessage(fmt.Sprintf(format, v...))
	}
}

func logWarn(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	if errorLogger != nil {
		openErrorLog()
		errorLogger.Printf("warning: %s", msg)
	}
	if !silent {
		consoleMessage(fmt.Sprintf("warning: %s", msg))
	}
}

// logWarnLimited drops the warning when lim has no token available.
func logWarnLimited(lim *rate.Limiter, format string, v ...interface{}) bool {
	if !lim.Allow() {
		return false
	}
	logWarn(format, v...)
	return true
}

func logDebug(format string, v ...interface{}) {
	if debugLogger != nil {
		debugLogOnce.Do(func() {
			if f, err := os.Create(debugLogPath); err == nil {
				debugLogger.SetOutput(io.MultiWriter(logConsole, f))
			}
		})
		debugLogger.Printf(format, v...)
	}
}

func setDebugLogging(enabled bool) {
	if enabled {
		logDir := "logs"
		if err := os.MkdirAll(logDir, 0755); err != nil {
			log.Printf("could not create log directory: %v", err)
		}
		ts := time.Now().Format("20060102-150405")
		debugLogPath = filepath.Join(logDir, fmt.Sprintf("debug-%s.log", ts))
		debugLogOnce = sync.Once{}
		debugLogger = log.New(logConsole, "", log.LstdFlags)
	} else {
		debugLogger = nil
	}
}

func logPanic(r interface{}) {
	logError("panic: %v", r)
}

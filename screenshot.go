package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/skratchdot/open-golang/open"
)

func screenshotDir() string {
	return filepath.Join(dataDirPath, "Screenshots")
}

// writeScreenshot encodes img as a timestamped PNG in dir.
func writeScreenshot(dir string, img image.Image, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %v: %w", dir, err)
	}
	fn := filepath.Join(dir, fmt.Sprintf("threatlabels__%s.png", now.Format("2006-01-02-15-04-05")))
	f, err := os.Create(fn)
	if err != nil {
		return "", fmt.Errorf("create %v: %w", fn, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encode %v: %w", fn, err)
	}
	return fn, nil
}

func takeScreenshot(img image.Image) {
	fn, err := writeScreenshot(screenshotDir(), img, time.Now())
	if err != nil {
		logError("screenshot: %v", err)
		return
	}
	consoleMessage(fmt.Sprintf("snapshot taken: %s", filepath.Base(fn)))
	if gs.OpenScreenshots {
		if err := open.Start(fn); err != nil {
			logWarn("open screenshot: %v", err)
		}
	}
}

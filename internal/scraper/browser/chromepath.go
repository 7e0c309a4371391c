package browser

import (
	"os"
	"os/exec"
	"runtime"
)

// Chrome binary lookup for the chromedp backend. chromedp has its own
// discovery, but snap-installed Chromium and non-default macOS bundles are
// commonly missed, so a few known locations are probed first.

const macOSChromeBundlePath = "/Applications/Google Chrome.app/Contents/MacOS/Google Chrome"

var linuxChromeCandidates = []string{
	"google-chrome-stable",
	"google-chrome",
	"chromium",
	"chromium-browser",
}

var linuxChromeAbsoluteCandidates = []string{
	"/usr/bin/google-chrome-stable",
	"/usr/bin/google-chrome",
	"/usr/bin/chromium",
	"/usr/bin/chromium-browser",
	"/snap/bin/chromium",
}

// discoverChromeBinary returns a best-effort Chrome binary path for the
// current platform, or "" to let chromedp use its own lookup.
func discoverChromeBinary() string {
	switch runtime.GOOS {
	case "darwin":
		if _, err := os.Stat(macOSChromeBundlePath); err == nil {
			return macOSChromeBundlePath
		}
	case "linux":
		for _, name := range linuxChromeCandidates {
			if path, err := exec.LookPath(name); err == nil {
				return path
			}
		}
		for _, path := range linuxChromeAbsoluteCandidates {
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

package updater

import (
	"fmt"
	"io"
	"time"

	"github.com/dannyvoid/gpu-preference/internal/branding"
)

// CheckAndPrintBanner checks the version cache and prints an update banner
// if a newer version is available. It never blocks — if the cache is stale,
// a background refresh updates it for the next invocation.
func (ch *Checker) CheckAndPrintBanner(w io.Writer, configDir string) {
	cache, err := LoadCache(configDir)
	if err != nil {
		// Silently ignore cache errors.
		return
	}

	if cache != nil && cache.UpdateAvailable {
		PrintUpdateBanner(w, cache.CurrentVersion, cache.LatestVersion)
	}

	if IsCacheStale(cache, DefaultCacheMaxAge) {
		go ch.RefreshCache(configDir)
	}
}

// PrintUpdateBanner prints the update notification to w.
func PrintUpdateBanner(w io.Writer, current, latest string) {
	fmt.Fprintf(w, "\nUpdate available: %s -> %s\n", current, latest)
	fmt.Fprintf(w, "    See https://github.com/%s/releases\n\n", branding.GitHubRepo())
}

// RefreshCache fetches the latest version and updates the cache file.
// Failures are swallowed; the banner simply stays quiet.
func (ch *Checker) RefreshCache(configDir string) {
	release, err := ch.CheckLatestVersion()
	if err != nil {
		return
	}

	available, err := IsUpdateAvailable(ch.currentVersion, release.Version)
	if err != nil {
		return
	}

	_ = SaveCache(configDir, &VersionCache{
		LatestVersion:   release.Version,
		CurrentVersion:  ch.currentVersion,
		CheckedAt:       time.Now(),
		UpdateAvailable: available,
	})
}

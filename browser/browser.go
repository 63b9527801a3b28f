// Package browser locates the chromium executable used by the headless engine.
package browser

import (
	"sync"
	"time"

	"github.com/framecast/framecast/filesystem"
	"github.com/framecast/framecast/key"
	"github.com/framecast/framecast/log"
	"github.com/framecast/framecast/where"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/metafates/gache"
	"github.com/spf13/viper"
)

// lookPath searches PATH and the usual install locations.
var lookPath = launcher.LookPath

// cacher remembers the last lookup so the search is not repeated on every resolution.
var cacher = sync.OnceValue(func() *gache.Cache[string] {
	return gache.New[string](&gache.Options{
		Path:       where.Browser(),
		Lifetime:   24 * time.Hour,
		FileSystem: &filesystem.GacheFs{},
	})
})

// Bin returns the chromium executable to launch.
// An explicitly configured path always wins; otherwise a cached lookup is used
// while the file it points at still exists. ok is false if nothing was found,
// in which case go-rod falls back to downloading its own revision.
func Bin() (path string, ok bool) {
	if configured := viper.GetString(key.ResolverBrowserBin); configured != "" {
		return configured, true
	}

	if cached, expired, err := cacher().Get(); err == nil && !expired && cached != "" {
		if exists, _ := filesystem.API().Exists(cached); exists {
			return cached, true
		}
	}

	found, has := lookPath()
	if !has {
		return "", false
	}

	if err := cacher().Set(found); err != nil {
		log.Warnf("caching browser path: %v", err)
	}
	return found, true
}

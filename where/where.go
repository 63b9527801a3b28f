// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/framecast/framecast/constant"
	"github.com/framecast/framecast/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "FRAMECAST_CONFIG_PATH"

// EnvCachePath overrides the cache directory, and with it the location of the resolution store.
const EnvCachePath = "FRAMECAST_CACHE_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// It prioritizes the XDG_CONFIG_HOME specification on Linux and equivalent user profile paths on Darwin and Windows.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Framecast))
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	if custom, ok := os.LookupEnv(EnvCachePath); ok {
		return ensureDir(custom)
	}

	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Framecast))
}

// Logs resolves the absolute path to the directory used for application diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Store resolves the path of the resolution cache file.
func Store() string {
	return filepath.Join(Cache(), "embeds.json")
}

// Browser resolves the path of the cached browser executable lookup.
func Browser() string {
	return filepath.Join(Cache(), "browser.json")
}

// Temp resolves a volatile directory for browser profiles and other transient artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Framecast))
}

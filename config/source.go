package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/framecast/framecast/key"
	"github.com/framecast/framecast/store"
	"github.com/spf13/viper"
)

// ErrInvalidSource is returned for source URLs that do not have the configured prefix.
var ErrInvalidSource = errors.New("invalid source url")

// Source exposes the configured source page as a value, for consumers that take an interface.
type Source struct{}

func (Source) SourceURL() string { return SourceURL() }

func (Source) SetSourceURL(url string) error { return SetSourceURL(url) }

// sourceMu guards the source keys, which the server reads and updates from concurrent requests.
var sourceMu sync.RWMutex

// SourceURL returns the page currently configured for resolution.
func SourceURL() string {
	sourceMu.RLock()
	defer sourceMu.RUnlock()

	return viper.GetString(key.SourceURL)
}

// SetSourceURL validates and persists a new source page.
func SetSourceURL(url string) error {
	sourceMu.Lock()
	defer sourceMu.Unlock()

	if err := validateSource(url); err != nil {
		return err
	}

	viper.Set(key.SourceURL, url)
	if err := Write(); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ValidateSource checks that url has the configured source page shape.
func ValidateSource(url string) error {
	sourceMu.RLock()
	defer sourceMu.RUnlock()

	return validateSource(url)
}

func validateSource(url string) error {
	prefix := viper.GetString(key.SourcePrefix)
	if url == "" || !strings.HasPrefix(url, prefix) {
		return fmt.Errorf("%w %q: must start with %s", ErrInvalidSource, url, prefix)
	}
	return nil
}

// TTL is how long a resolved player stays fresh in the cache.
func TTL() time.Duration {
	if ttl := viper.GetDuration(key.CacheTTL); ttl > 0 {
		return ttl
	}
	return time.Hour
}

// LaunchTimeout bounds browser start-up.
func LaunchTimeout() time.Duration {
	if d := viper.GetDuration(key.ResolverLaunchTimeout); d > 0 {
		return d
	}
	return 30 * time.Second
}

// NavigationTimeout bounds page navigation. It is always shorter than LaunchTimeout.
func NavigationTimeout() time.Duration {
	d := viper.GetDuration(key.ResolverNavigationTimeout)
	launch := LaunchTimeout()
	if d <= 0 || d >= launch {
		return launch * 2 / 3
	}
	return d
}

// CorruptPolicy maps cache.on_corrupt onto a store policy; unknown values fall back to failing.
func CorruptPolicy() store.Policy {
	switch strings.ToLower(viper.GetString(key.CacheOnCorrupt)) {
	case "reset":
		return store.PolicyReset
	default:
		return store.PolicyFail
	}
}

// Package locator answers "which player is embedded in this page" from the
// resolution cache, resolving the page again only when the cached answer is
// missing or older than the TTL.
package locator

import (
	"context"
	"time"

	"github.com/framecast/framecast/log"
	"github.com/framecast/framecast/store"
	"github.com/jonboulle/clockwork"
	"github.com/samber/mo"
)

// Cache is the part of store.Store the locator needs.
type Cache interface {
	Get(source string) (mo.Option[store.Entry], error)
	Put(source, url string, now time.Time) error
}

// Resolver finds the embedded player of a source page.
type Resolver interface {
	Resolve(ctx context.Context, source string) (string, error)
}

// Locator combines a cache and a resolver.
type Locator struct {
	cache    Cache
	resolver Resolver
	clock    clockwork.Clock
	ttl      time.Duration
}

// Option configures a Locator.
type Option func(*Locator)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(clock clockwork.Clock) Option {
	return func(l *Locator) {
		l.clock = clock
	}
}

// WithTTL sets how long a resolution stays fresh. Default one hour.
func WithTTL(ttl time.Duration) Option {
	return func(l *Locator) {
		l.ttl = ttl
	}
}

// New returns a locator over cache and resolver.
func New(cache Cache, resolver Resolver, opts ...Option) *Locator {
	l := &Locator{
		cache:    cache,
		resolver: resolver,
		clock:    clockwork.NewRealClock(),
		ttl:      time.Hour,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Get returns the embedded player of source.
//
// A fresh cache entry is returned without touching the resolver. Otherwise
// the page is resolved and, on success, the result is cached at the current
// time. Storage errors abort the call. Resolver errors are returned as is and
// leave the cache untouched; a stale entry is never served in their place.
func (l *Locator) Get(ctx context.Context, source string) (string, error) {
	now := l.clock.Now()
	logger := log.WithFields(log.Fields{"source": source})

	cached, err := l.cache.Get(source)
	if err != nil {
		return "", err
	}

	if entry, ok := cached.Get(); ok {
		if entry.Fresh(now, l.ttl) {
			logger.Debug("cache hit")
			return entry.URL, nil
		}
		logger.Debugf("cache entry from %s is stale", entry.ResolvedAt().Format(time.RFC3339))
	} else {
		logger.Debug("cache miss")
	}

	url, err := l.resolver.Resolve(ctx, source)
	if err != nil {
		logger.Errorf("resolution failed: %v", err)
		return "", err
	}

	if err := l.cache.Put(source, url, now); err != nil {
		return "", err
	}

	return url, nil
}

// Refresh resolves source regardless of the cache and stores the result.
func (l *Locator) Refresh(ctx context.Context, source string) (string, error) {
	url, err := l.resolver.Resolve(ctx, source)
	if err != nil {
		return "", err
	}

	if err := l.cache.Put(source, url, l.clock.Now()); err != nil {
		return "", err
	}
	return url, nil
}

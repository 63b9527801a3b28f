// Package resolver turns a source page into the address of the player embedded in it.
//
// A resolution launches a short-lived headless browser, blocks every request
// except documents and frames, loads the page until its DOM is parsed and reads
// the src of the first iframe pointing at the provider. The browser is closed
// on every path out of Resolve.
package resolver

import (
	"context"
	"errors"
	"time"

	"github.com/framecast/framecast/constant"
	"github.com/framecast/framecast/log"
)

// Options tune a Resolver. Zero values take the defaults below.
type Options struct {
	// Marker is the fragment the frame's src must contain.
	Marker string
	// LaunchTimeout bounds browser start-up. Default 30s.
	LaunchTimeout time.Duration
	// NavigationTimeout bounds loading the source page. Default 20s.
	NavigationTimeout time.Duration
}

// Resolver resolves source pages through an Engine.
type Resolver struct {
	engine Engine
	opts   Options
}

// New returns a resolver driving engine.
func New(engine Engine, opts Options) *Resolver {
	if opts.Marker == "" {
		opts.Marker = constant.ProviderMarker
	}
	if opts.LaunchTimeout <= 0 {
		opts.LaunchTimeout = 30 * time.Second
	}
	if opts.NavigationTimeout <= 0 {
		opts.NavigationTimeout = 20 * time.Second
	}

	return &Resolver{engine: engine, opts: opts}
}

// Selector is the CSS selector of the target frame.
func (r *Resolver) Selector() string {
	return `iframe[src*="` + r.opts.Marker + `"]`
}

// Resolve returns the src of the provider frame embedded in source.
// Failures are *Error values of kind ErrSessionStartup, ErrNavigation or ErrExtraction.
func (r *Resolver) Resolve(ctx context.Context, source string) (string, error) {
	logger := log.WithFields(log.Fields{"source": source})

	launchCtx, cancelLaunch := context.WithTimeout(ctx, r.opts.LaunchTimeout)
	defer cancelLaunch()

	started := time.Now()
	session, err := r.engine.Launch(launchCtx)
	if err != nil {
		return "", fail(ErrSessionStartup, source, err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			logger.Warnf("closing browser session: %v", err)
		}
	}()
	logger.Debugf("browser session started in %s", time.Since(started))

	page, err := session.Open(launchCtx)
	if err != nil {
		return "", fail(ErrSessionStartup, source, err)
	}

	if err := page.Filter(DocumentsOnly); err != nil {
		return "", fail(ErrSessionStartup, source, err)
	}

	navCtx, cancelNav := context.WithTimeout(ctx, r.opts.NavigationTimeout)
	defer cancelNav()

	if err := page.Navigate(navCtx, source); err != nil {
		return "", fail(ErrNavigation, source, err)
	}

	found, err := page.Find(navCtx, r.Selector())
	if err != nil {
		return "", fail(ErrExtraction, source, err)
	}

	frame, ok := found.Get()
	if !ok {
		return "", fail(ErrExtraction, source, nil)
	}

	src, err := frame.Attribute("src")
	if err != nil {
		return "", fail(ErrExtraction, source, err)
	}

	locator, ok := src.Get()
	if !ok || locator == "" {
		return "", fail(ErrExtraction, source, errors.New("frame has no src attribute"))
	}

	logger.WithField("locator", locator).Infof("resolved in %s", time.Since(started))
	return locator, nil
}

package cmd

import (
	"fmt"
	"time"

	"github.com/framecast/framecast/browser"
	"github.com/framecast/framecast/config"
	"github.com/framecast/framecast/engine/chromium"
	"github.com/framecast/framecast/engine/static"
	"github.com/framecast/framecast/key"
	"github.com/framecast/framecast/locator"
	"github.com/framecast/framecast/log"
	"github.com/framecast/framecast/resolver"
	"github.com/framecast/framecast/store"
	"github.com/framecast/framecast/where"
	"github.com/spf13/viper"
)

const (
	engineRod    = "rod"
	engineStatic = "static"
)

var engines = []string{engineRod, engineStatic}

// profileMaxAge is well past the longest a session can live (launch plus navigation timeouts).
const profileMaxAge = time.Hour

// keySource is validated before it is written, so "config set" routes it through config.SetSourceURL.
const keySource = key.SourceURL

func newStore() *store.Store {
	return store.New(store.Options{
		Path:   where.Store(),
		Policy: config.CorruptPolicy(),
	})
}

func newEngine() (resolver.Engine, error) {
	switch name := viper.GetString(key.ResolverEngine); name {
	case engineRod, "":
		bin, ok := browser.Bin()
		if !ok {
			log.Warn("no chromium found, go-rod will download one")
		}

		profiles := where.Temp()
		if n, err := chromium.SweepProfiles(profiles, profileMaxAge); err != nil {
			log.Warnf("sweep chromium profiles: %v", err)
		} else if n > 0 {
			log.Infof("removed %d abandoned chromium profiles", n)
		}

		return chromium.New(chromium.Options{Bin: bin, ProfileRoot: profiles}), nil
	case engineStatic:
		return static.New(nil), nil
	default:
		return nil, fmt.Errorf("unknown engine %q, available engines are %v", name, engines)
	}
}

func newResolver() (*resolver.Resolver, error) {
	engine, err := newEngine()
	if err != nil {
		return nil, err
	}

	return resolver.New(engine, resolver.Options{
		Marker:            viper.GetString(key.ResolverMarker),
		LaunchTimeout:     config.LaunchTimeout(),
		NavigationTimeout: config.NavigationTimeout(),
	}), nil
}

func newLocator() (*locator.Locator, error) {
	r, err := newResolver()
	if err != nil {
		return nil, err
	}

	return locator.New(newStore(), r, locator.WithTTL(config.TTL())), nil
}

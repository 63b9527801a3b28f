// Package chromium implements the resolver engine on a headless chromium driven through go-rod.
package chromium

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/framecast/framecast/filesystem"
	"github.com/framecast/framecast/log"
	"github.com/framecast/framecast/resolver"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/samber/mo"
	"github.com/spf13/afero"
)

const profilePrefix = "profile-"

// Options configure the browser process.
type Options struct {
	// Bin is the chromium executable. If empty, go-rod looks it up or downloads one.
	Bin string

	// ProfileRoot holds one user data directory per session. If empty, go-rod picks its own.
	ProfileRoot string
}

// Engine launches one chromium process per session.
type Engine struct {
	opts Options
}

// New returns an engine with opts.
func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

func (e *Engine) launcher(ctx context.Context) (*launcher.Launcher, error) {
	l := launcher.New().
		Context(ctx).
		Headless(true).
		NoSandbox(true).
		Set("disable-setuid-sandbox").
		Set("disable-gpu").
		Set("mute-audio")

	if e.opts.Bin != "" {
		l = l.Bin(e.opts.Bin)
	}

	if e.opts.ProfileRoot != "" {
		fs := filesystem.API()
		if err := fs.MkdirAll(e.opts.ProfileRoot, os.ModePerm); err != nil {
			return nil, fmt.Errorf("create profile root: %w", err)
		}

		dir, err := afero.TempDir(fs, e.opts.ProfileRoot, profilePrefix)
		if err != nil {
			return nil, fmt.Errorf("create profile: %w", err)
		}
		l = l.UserDataDir(dir)
	}

	return l, nil
}

// discard kills a browser that never became usable and removes its profile.
// Launcher.Cleanup would block on a process that never started.
func discard(l *launcher.Launcher) {
	l.Kill()
	if dir := l.Get(flags.UserDataDir); dir != "" {
		if err := filesystem.API().RemoveAll(dir); err != nil {
			log.Warnf("remove chromium profile %s: %v", dir, err)
		}
	}
}

// SweepProfiles removes session profiles under root last touched before olderThan ago.
// They are left behind when a process dies before closing its session.
func SweepProfiles(root string, olderThan time.Duration) (int, error) {
	fs := filesystem.API()

	entries, err := afero.ReadDir(fs, root)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := time.Now().Add(-olderThan)
	var removed int
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), profilePrefix) || !entry.ModTime().Before(cutoff) {
			continue
		}

		if err := fs.RemoveAll(filepath.Join(root, entry.Name())); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// Launch starts chromium and connects to it. If ctx expires first the process is killed.
func (e *Engine) Launch(ctx context.Context) (resolver.Session, error) {
	// The process must outlive the start-up deadline.
	l, err := e.launcher(context.WithoutCancel(ctx))
	if err != nil {
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	type launched struct {
		url string
		err error
	}
	done := make(chan launched, 1)
	go func() {
		url, err := l.Launch()
		done <- launched{url: url, err: err}
	}()

	var controlURL string
	select {
	case res := <-done:
		if res.err != nil {
			discard(l)
			return nil, fmt.Errorf("launch chromium: %w", res.err)
		}
		controlURL = res.url
	case <-ctx.Done():
		go func() {
			<-done
			discard(l)
		}()
		return nil, fmt.Errorf("launch chromium: %w", ctx.Err())
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		l.Cleanup()
		return nil, fmt.Errorf("connect to chromium: %w", err)
	}

	log.Debugf("chromium started, pid %d", l.PID())
	return &session{launcher: l, browser: browser}, nil
}

type session struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	pages    []*page
}

// Open creates an incognito context and a page in it. The page is not bound to
// ctx; each operation on it carries its own deadline.
func (s *session) Open(ctx context.Context) (resolver.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	incognito, err := s.browser.Incognito()
	if err != nil {
		return nil, fmt.Errorf("create browser context: %w", err)
	}

	p, err := incognito.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}

	pg := &page{page: p}
	s.pages = append(s.pages, pg)
	return pg, nil
}

// Close stops request routers, closes the browser and removes its profile directory.
func (s *session) Close() error {
	var errs []error
	for _, p := range s.pages {
		if p.router != nil {
			errs = append(errs, p.router.Stop())
		}
	}

	errs = append(errs, s.browser.Close())
	s.launcher.Kill()
	s.launcher.Cleanup()

	return errors.Join(errs...)
}

type page struct {
	page   *rod.Page
	router *rod.HijackRouter
}

func (p *page) Filter(allow resolver.FilterPolicy) error {
	router := p.page.HijackRequests()

	err := router.Add("*", "", func(h *rod.Hijack) {
		if allow(kindOf(h.Request.Type())) {
			h.ContinueRequest(&proto.FetchContinueRequest{})
			return
		}
		h.Response.Fail(proto.NetworkErrorReasonBlockedByClient)
	})
	if err != nil {
		return fmt.Errorf("install request filter: %w", err)
	}

	go router.Run()
	p.router = router
	return nil
}

func (p *page) Navigate(ctx context.Context, url string) error {
	pg := p.page.Context(ctx)

	wait := pg.WaitNavigation(proto.PageLifecycleEventNameDOMContentLoaded)
	if err := pg.Navigate(url); err != nil {
		return err
	}
	wait()

	return ctx.Err()
}

func (p *page) Find(ctx context.Context, selector string) (mo.Option[resolver.Element], error) {
	has, el, err := p.page.Context(ctx).Has(selector)
	if err != nil {
		return mo.None[resolver.Element](), err
	}
	if !has {
		return mo.None[resolver.Element](), nil
	}
	return mo.Some[resolver.Element](&element{el: el}), nil
}

type element struct {
	el *rod.Element
}

func (e *element) Attribute(name string) (mo.Option[string], error) {
	v, err := e.el.Attribute(name)
	if err != nil {
		return mo.None[string](), err
	}
	if v == nil {
		return mo.None[string](), nil
	}
	return mo.Some(*v), nil
}

// kindOf maps CDP resource types onto resolver kinds. CDP reports frame
// documents as Document, so frames are admitted through KindDocument.
func kindOf(t proto.NetworkResourceType) resolver.ResourceKind {
	switch t {
	case proto.NetworkResourceTypeDocument:
		return resolver.KindDocument
	case proto.NetworkResourceTypeStylesheet:
		return resolver.KindStylesheet
	case proto.NetworkResourceTypeImage:
		return resolver.KindImage
	case proto.NetworkResourceTypeMedia:
		return resolver.KindMedia
	case proto.NetworkResourceTypeFont:
		return resolver.KindFont
	case proto.NetworkResourceTypeScript:
		return resolver.KindScript
	case proto.NetworkResourceTypeXHR:
		return resolver.KindXHR
	case proto.NetworkResourceTypeFetch:
		return resolver.KindFetch
	case proto.NetworkResourceTypeWebSocket:
		return resolver.KindWebSocket
	default:
		return resolver.KindOther
	}
}

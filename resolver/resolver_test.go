package resolver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

const source = "https://yandex.ru/video/preview/42"

// spyEngine counts sessions so tests can check none is leaked.
type spyEngine struct {
	opens, closes int
	launchErr     error
	openErr       error
	page          *fakePage
}

func (e *spyEngine) Launch(ctx context.Context) (Session, error) {
	if e.launchErr != nil {
		return nil, e.launchErr
	}
	e.opens++
	return &spySession{engine: e}, nil
}

type spySession struct {
	engine *spyEngine
}

func (s *spySession) Open(context.Context) (Page, error) {
	if s.engine.openErr != nil {
		return nil, s.engine.openErr
	}
	return s.engine.page, nil
}

func (s *spySession) Close() error {
	s.engine.closes++
	return nil
}

type fakePage struct {
	policy         FilterPolicy
	unfilteredLoad bool
	navErr         error
	blockNav       bool
	selector       string
	frame          *fakeElement
}

func (p *fakePage) Filter(allow FilterPolicy) error {
	p.policy = allow
	return nil
}

func (p *fakePage) Navigate(ctx context.Context, _ string) error {
	if p.policy == nil {
		p.unfilteredLoad = true
	}
	if p.blockNav {
		<-ctx.Done()
		return ctx.Err()
	}
	return p.navErr
}

func (p *fakePage) Find(_ context.Context, selector string) (mo.Option[Element], error) {
	p.selector = selector
	if p.frame == nil {
		return mo.None[Element](), nil
	}
	return mo.Some[Element](p.frame), nil
}

type fakeElement struct {
	attrs map[string]string
}

func (e *fakeElement) Attribute(name string) (mo.Option[string], error) {
	if v, ok := e.attrs[name]; ok {
		return mo.Some(v), nil
	}
	return mo.None[string](), nil
}

func TestResolve(t *testing.T) {
	Convey("Given a page embedding a provider frame", t, func() {
		page := &fakePage{frame: &fakeElement{attrs: map[string]string{"src": "https://rutube.ru/play/embed/abc"}}}
		engine := &spyEngine{page: page}
		r := New(engine, Options{})

		Convey("When it is resolved", func() {
			locator, err := r.Resolve(context.Background(), source)

			Convey("Then the frame src is returned", func() {
				So(err, ShouldBeNil)
				So(locator, ShouldEqual, "https://rutube.ru/play/embed/abc")
			})

			Convey("Then the request filter was installed before navigation", func() {
				So(page.policy, ShouldNotBeNil)
				So(page.unfilteredLoad, ShouldBeFalse)
			})

			Convey("Then the provider frame selector was used", func() {
				So(page.selector, ShouldEqual, `iframe[src*="rutube"]`)
			})

			Convey("Then the session was closed", func() {
				So(engine.opens, ShouldEqual, 1)
				So(engine.closes, ShouldEqual, engine.opens)
			})
		})
	})

	Convey("Given a page without a provider frame", t, func() {
		engine := &spyEngine{page: &fakePage{}}
		r := New(engine, Options{})

		_, err := r.Resolve(context.Background(), source)

		Convey("Then resolution fails with an extraction error", func() {
			So(errors.Is(err, ErrExtraction), ShouldBeTrue)
			So(errors.Is(err, ErrNavigation), ShouldBeFalse)
			So(errors.Is(err, ErrSessionStartup), ShouldBeFalse)
			So(err.Error(), ShouldContainSubstring, "target frame not found")
		})

		Convey("Then the session was closed", func() {
			So(engine.closes, ShouldEqual, engine.opens)
		})
	})

	Convey("Given a provider frame without src", t, func() {
		engine := &spyEngine{page: &fakePage{frame: &fakeElement{}}}
		_, err := New(engine, Options{}).Resolve(context.Background(), source)

		So(errors.Is(err, ErrExtraction), ShouldBeTrue)
		So(engine.closes, ShouldEqual, engine.opens)
	})

	Convey("Given a browser that cannot start", t, func() {
		cause := errors.New("chromium not found")
		engine := &spyEngine{launchErr: cause}
		_, err := New(engine, Options{}).Resolve(context.Background(), source)

		Convey("Then resolution fails with a start-up error wrapping the cause", func() {
			So(errors.Is(err, ErrSessionStartup), ShouldBeTrue)
			So(errors.Is(err, cause), ShouldBeTrue)

			var resolutionErr *Error
			So(errors.As(err, &resolutionErr), ShouldBeTrue)
			So(resolutionErr.Source, ShouldEqual, source)
		})

		Convey("Then no session is left open", func() {
			So(engine.opens, ShouldEqual, 0)
			So(engine.closes, ShouldEqual, 0)
		})
	})

	Convey("Given a session whose page cannot be opened", t, func() {
		engine := &spyEngine{openErr: errors.New("target closed")}
		_, err := New(engine, Options{}).Resolve(context.Background(), source)

		So(errors.Is(err, ErrSessionStartup), ShouldBeTrue)
		So(engine.opens, ShouldEqual, 1)
		So(engine.closes, ShouldEqual, 1)
	})

	Convey("Given a source page that cannot be reached", t, func() {
		engine := &spyEngine{page: &fakePage{navErr: errors.New("net::ERR_NAME_NOT_RESOLVED")}}
		_, err := New(engine, Options{}).Resolve(context.Background(), source)

		So(errors.Is(err, ErrNavigation), ShouldBeTrue)
		So(engine.closes, ShouldEqual, engine.opens)
	})

	Convey("Given a source page that never finishes loading", t, func() {
		engine := &spyEngine{page: &fakePage{blockNav: true}}
		r := New(engine, Options{NavigationTimeout: 20 * time.Millisecond})
		_, err := r.Resolve(context.Background(), source)

		Convey("Then navigation times out", func() {
			So(errors.Is(err, ErrNavigation), ShouldBeTrue)
			So(errors.Is(err, context.DeadlineExceeded), ShouldBeTrue)
			So(engine.closes, ShouldEqual, engine.opens)
		})
	})
}

func TestDocumentsOnly(t *testing.T) {
	Convey("The request policy", t, func() {
		Convey("allows documents and frames", func() {
			So(DocumentsOnly(KindDocument), ShouldBeTrue)
			So(DocumentsOnly(KindFrame), ShouldBeTrue)
		})

		Convey("aborts everything else", func() {
			for _, kind := range []ResourceKind{
				KindStylesheet, KindImage, KindMedia, KindFont, KindScript,
				KindXHR, KindFetch, KindWebSocket, KindOther,
			} {
				So(DocumentsOnly(kind), ShouldBeFalse)
			}
		})
	})
}

func TestSelector(t *testing.T) {
	Convey("The selector follows the configured marker", t, func() {
		r := New(&spyEngine{}, Options{Marker: "vk.com"})
		So(r.Selector(), ShouldEqual, `iframe[src*="vk.com"]`)
	})
}

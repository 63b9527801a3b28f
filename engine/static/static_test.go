package static

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/framecast/framecast/resolver"
	. "github.com/smartystreets/goconvey/convey"
)

const withFrame = `<!DOCTYPE html>
<html><head><script src="/app.js"></script></head>
<body>
  <iframe src="https://ads.example.com/banner"></iframe>
  <iframe src="https://rutube.ru/play/embed/7f3c" allowfullscreen></iframe>
  <iframe src="https://rutube.ru/play/embed/second"></iframe>
</body></html>`

const withoutFrame = `<!DOCTYPE html>
<html><body><iframe src="https://vk.com/video_ext.php?oid=1"></iframe></body></html>`

func serve(pages map[string]string) (*httptest.Server, *[]string) {
	var requested []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = append(requested, r.URL.Path)
		body, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, body)
	}))
	return srv, &requested
}

func TestResolveWithStaticEngine(t *testing.T) {
	Convey("Given a server hosting source pages", t, func() {
		srv, requested := serve(map[string]string{
			"/with":    withFrame,
			"/without": withoutFrame,
		})
		defer srv.Close()

		r := resolver.New(New(srv.Client()), resolver.Options{})

		Convey("The first provider frame is resolved", func() {
			locator, err := r.Resolve(context.Background(), srv.URL+"/with")
			So(err, ShouldBeNil)
			So(locator, ShouldEqual, "https://rutube.ru/play/embed/7f3c")

			Convey("And only the document itself was requested", func() {
				So(*requested, ShouldResemble, []string{"/with"})
			})
		})

		Convey("A page without a provider frame is an extraction error", func() {
			_, err := r.Resolve(context.Background(), srv.URL+"/without")
			So(errors.Is(err, resolver.ErrExtraction), ShouldBeTrue)
			So(errors.Is(err, resolver.ErrNavigation), ShouldBeFalse)
		})

		Convey("A missing page is a navigation error", func() {
			_, err := r.Resolve(context.Background(), srv.URL+"/gone")
			So(errors.Is(err, resolver.ErrNavigation), ShouldBeTrue)
		})
	})

	Convey("Given an unreachable host", t, func() {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := resolver.New(New(nil), resolver.Options{}).Resolve(context.Background(), url)
		So(errors.Is(err, resolver.ErrNavigation), ShouldBeTrue)
	})
}

func TestFilter(t *testing.T) {
	Convey("Given a page whose policy blocks documents", t, func() {
		session, _ := New(nil).Launch(context.Background())
		defer session.Close()

		page, err := session.Open(context.Background())
		So(err, ShouldBeNil)
		So(page.Filter(func(resolver.ResourceKind) bool { return false }), ShouldBeNil)

		Convey("Navigation is refused without a request", func() {
			So(page.Navigate(context.Background(), "http://127.0.0.1:1/"), ShouldEqual, ErrBlocked)
		})
	})

	Convey("A closed session cannot open pages", t, func() {
		session, _ := New(nil).Launch(context.Background())
		So(session.Close(), ShouldBeNil)
		_, err := session.Open(context.Background())
		So(err, ShouldNotBeNil)
	})
}

package network

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/framecast/framecast/constant"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFingerprinted(t *testing.T) {
	Convey("Given a plain http server", t, func() {
		var agent string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			agent = r.UserAgent()
			_, _ = io.WriteString(w, "ok")
		}))
		defer srv.Close()

		Convey("The fingerprinted client reaches it with a browser user agent", func() {
			resp, err := Fingerprinted.Get(srv.URL)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(string(lo.Must(io.ReadAll(resp.Body))), ShouldEqual, "ok")
			So(agent, ShouldEqual, constant.UserAgent)
		})

		Convey("An explicit user agent is kept", func() {
			req := lo.Must(http.NewRequest(http.MethodGet, srv.URL, nil))
			req.Header.Set("User-Agent", "custom")
			resp, err := Fingerprinted.Do(req)
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(agent, ShouldEqual, "custom")
		})
	})
}

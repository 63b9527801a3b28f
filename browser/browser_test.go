package browser

import (
	"testing"

	"github.com/framecast/framecast/filesystem"
	"github.com/framecast/framecast/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestBin(t *testing.T) {
	Convey("Given a chromium installed at a known path", t, func() {
		const installed = "/opt/chromium/chrome"
		So(filesystem.API().WriteFile(installed, []byte{}, 0o755), ShouldBeNil)

		lookups := 0
		lookPath = func() (string, bool) {
			lookups++
			return installed, true
		}

		Convey("A configured path wins without a lookup", func() {
			viper.Set(key.ResolverBrowserBin, "/usr/local/bin/chromium")
			defer viper.Set(key.ResolverBrowserBin, "")

			path, ok := Bin()
			So(ok, ShouldBeTrue)
			So(path, ShouldEqual, "/usr/local/bin/chromium")
			So(lookups, ShouldEqual, 0)
		})

		Convey("The lookup result is cached", func() {
			path, ok := Bin()
			So(ok, ShouldBeTrue)
			So(path, ShouldEqual, installed)

			path, ok = Bin()
			So(ok, ShouldBeTrue)
			So(path, ShouldEqual, installed)
			So(lookups, ShouldBeLessThanOrEqualTo, 1)
		})
	})

	Convey("Given no chromium anywhere", t, func() {
		So(filesystem.API().RemoveAll("/opt/chromium"), ShouldBeNil)
		lookPath = func() (string, bool) { return "", false }

		_, ok := Bin()
		So(ok, ShouldBeFalse)
	})
}

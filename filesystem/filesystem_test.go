package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})

		Convey("Should accept an arbitrary backend", func() {
			Use(afero.NewReadOnlyFs(afero.NewMemMapFs()))
			_, err := API().Create("/x")
			So(err, ShouldNotBeNil)
			SetMemMapFs()
		})

		Convey("GacheFs should write through the active backend", func() {
			SetMemMapFs()
			So(GacheFs{}.MkdirAll("/a/b", 0o755), ShouldBeNil)
			ok, err := API().DirExists("/a/b")
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
		})
	})
}

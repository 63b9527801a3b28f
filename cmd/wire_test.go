package cmd

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/framecast/framecast/engine/chromium"
	"github.com/framecast/framecast/engine/static"
	"github.com/framecast/framecast/filesystem"
	"github.com/framecast/framecast/key"
	"github.com/framecast/framecast/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func TestNewEngine(t *testing.T) {
	Convey("Given the engine setting", t, func() {
		filesystem.SetMemMapFs()
		defer viper.Set(key.ResolverEngine, nil)

		Convey("static selects the markup engine", func() {
			viper.Set(key.ResolverEngine, engineStatic)
			engine, err := newEngine()
			So(err, ShouldBeNil)
			So(engine, ShouldHaveSameTypeAs, &static.Engine{})
		})

		Convey("rod selects chromium", func() {
			viper.Set(key.ResolverBrowserBin, "/usr/bin/chromium")
			defer viper.Set(key.ResolverBrowserBin, nil)

			abandoned := filepath.Join(where.Temp(), "profile-abandoned")
			So(filesystem.API().MkdirAll(abandoned, 0o755), ShouldBeNil)
			old := time.Now().Add(-2 * profileMaxAge)
			So(filesystem.API().Chtimes(abandoned, old, old), ShouldBeNil)

			viper.Set(key.ResolverEngine, engineRod)
			engine, err := newEngine()
			So(err, ShouldBeNil)
			So(engine, ShouldHaveSameTypeAs, &chromium.Engine{})

			Convey("and sweeps profiles abandoned by earlier runs", func() {
				present, _ := afero.DirExists(filesystem.API(), abandoned)
				So(present, ShouldBeFalse)
			})
		})

		Convey("An unknown engine is rejected", func() {
			viper.Set(key.ResolverEngine, "firefox")
			_, err := newEngine()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "firefox")
		})

		Convey("A locator can be built from configuration", func() {
			viper.Set(key.ResolverEngine, engineStatic)
			loc, err := newLocator()
			So(err, ShouldBeNil)
			So(loc, ShouldNotBeNil)
		})
	})
}

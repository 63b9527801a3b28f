package log

import (
	"path/filepath"
	"testing"

	"github.com/framecast/framecast/filesystem"
	"github.com/framecast/framecast/key"
	"github.com/framecast/framecast/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging configuration", t, func() {
		Reset(func() {
			viper.Set(key.LogsWrite, false)
			viper.Set(key.LogsStderr, false)
			enabled = false
		})

		Convey("When every output is disabled", func() {
			viper.Set(key.LogsWrite, false)
			viper.Set(key.LogsStderr, false)
			So(Setup(), ShouldBeNil)

			Convey("Then emissions are discarded", func() {
				So(Enabled(), ShouldBeFalse)
				So(func() { Info("ignored") }, ShouldNotPanic)
				So(func() { WithFields(Fields{"k": "v"}).Info("ignored") }, ShouldNotPanic)
			})
		})

		Convey("When file logging is enabled", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "debug")
			So(Setup(), ShouldBeNil)
			Infof("resolved %s", "something")

			Convey("Then a dated log file holds the entry", func() {
				So(Enabled(), ShouldBeTrue)
				files := lo.Must(filesystem.API().ReadDir(where.Logs()))
				So(len(files), ShouldBeGreaterThan, 0)
				content := lo.Must(filesystem.API().ReadFile(filepath.Join(where.Logs(), files[0].Name())))
				So(string(content), ShouldContainSubstring, "resolved something")
			})
		})
	})
}

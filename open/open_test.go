package open

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	const url = "http://127.0.0.1:3000/"

	Convey("Each platform uses its own opener", t, func() {
		for goos, opener := range map[string]string{
			"linux":   "xdg-open",
			"darwin":  "open",
			"android": "termux-open",
		} {
			cmd, ok := command(goos, url)
			So(ok, ShouldBeTrue)
			So(filepath.Base(cmd.Path), ShouldEqual, opener)
			So(cmd.Args[len(cmd.Args)-1], ShouldEqual, url)
		}
	})

	Convey("Windows goes through rundll32", t, func() {
		cmd, ok := command("windows", url)
		So(ok, ShouldBeTrue)
		So(cmd.Args[1], ShouldEqual, "url.dll,FileProtocolHandler")
	})

	Convey("Unknown platforms are rejected", t, func() {
		_, ok := command("plan9", url)
		So(ok, ShouldBeFalse)
	})
}

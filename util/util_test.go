package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "entry", "entries"), ShouldEqual, "1 entry")
		So(Quantify(0, "entry", "entries"), ShouldEqual, "0 entries")
		So(Quantify(3, "entry", "entries"), ShouldEqual, "3 entries")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestEllipsis(t *testing.T) {
	Convey("Ellipsis", t, func() {
		So(Ellipsis("short", 10), ShouldEqual, "short")
		So(Ellipsis("abcdefgh", 5), ShouldEqual, "abcd…")
		So(Ellipsis("abc", 1), ShouldEqual, "…")
		So(Ellipsis("abc", 0), ShouldEqual, "abc")
		So(Ellipsis("видеоплеер", 4), ShouldEqual, "вид…")
	})
}

package cmd

import (
	"testing"

	"github.com/framecast/framecast/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
)

func TestParseValue(t *testing.T) {
	Convey("Values are parsed by the type of their default", t, func() {
		port, err := parseValue(key.ServerPort, "8080")
		So(err, ShouldBeNil)
		So(port, ShouldEqual, 8080)

		_, err = parseValue(key.ServerPort, "eighty")
		So(err, ShouldNotBeNil)

		colored, err := parseValue(key.CliColored, "false")
		So(err, ShouldBeNil)
		So(colored, ShouldEqual, false)
	})

	Convey("Durations must parse and be positive", t, func() {
		ttl, err := parseValue(key.CacheTTL, "30m")
		So(err, ShouldBeNil)
		So(ttl, ShouldEqual, "30m")

		_, err = parseValue(key.CacheTTL, "soon")
		So(err, ShouldNotBeNil)
		_, err = parseValue(key.ResolverLaunchTimeout, "-5s")
		So(err, ShouldNotBeNil)
	})

	Convey("Closed sets reject unknown choices", t, func() {
		_, err := parseValue(key.ResolverEngine, engineStatic)
		So(err, ShouldBeNil)
		_, err = parseValue(key.ResolverEngine, "firefox")
		So(err, ShouldNotBeNil)

		_, err = parseValue(key.CacheOnCorrupt, "reset")
		So(err, ShouldBeNil)
		_, err = parseValue(key.CacheOnCorrupt, "ignore")
		So(err, ShouldNotBeNil)
	})
}

func TestKeyArg(t *testing.T) {
	Convey("Given a command with a --key flag", t, func() {
		cmd := &cobra.Command{}
		cmd.Flags().String("key", "", "")

		Convey("The argument wins over the flag", func() {
			So(cmd.Flags().Set("key", key.CacheTTL), ShouldBeNil)
			name, err := keyArg(cmd, []string{key.ServerPort})
			So(err, ShouldBeNil)
			So(name, ShouldEqual, key.ServerPort)
		})

		Convey("The flag is used without an argument", func() {
			So(cmd.Flags().Set("key", key.CacheTTL), ShouldBeNil)
			name, err := keyArg(cmd, nil)
			So(err, ShouldBeNil)
			So(name, ShouldEqual, key.CacheTTL)
		})

		Convey("A missing key is an error", func() {
			_, err := keyArg(cmd, nil)
			So(err, ShouldNotBeNil)
		})

		Convey("A misspelt key suggests the closest one", func() {
			_, err := keyArg(cmd, []string{"cache.tl"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.CacheTTL)
		})
	})
}

package icon

import (
	"testing"

	"github.com/framecast/framecast/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given the registered icons", t, func() {
		all := []Icon{Success, Fail, Progress, Cache, Link}

		Convey("Every icon renders for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)
					for _, i := range all {
						So(Get(i), ShouldNotBeEmpty)
					}
				})
			}
		})

		Convey("Plain variant uses ASCII friendly marks", func() {
			viper.Set(key.IconsVariant, plain)
			So(Get(Success), ShouldEqual, "✓")
			So(Get(Fail), ShouldEqual, "✗")
		})

		Convey("An unknown variant renders nothing", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Success), ShouldBeEmpty)
		})
	})
}

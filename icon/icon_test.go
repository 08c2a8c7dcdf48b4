package icon

import (
	"testing"

	"github.com/filmschoolyt/filmschoolyt/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given a registered icon", t, func() {
		target := Lock

		Convey("It renders correctly for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)
					result := Get(target)
					So(result, ShouldNotBeEmpty)
				})
			}
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			result := Get(target)
			So(result, ShouldBeEmpty)
		})

		Convey("Every registered icon has a plain fallback", func() {
			viper.Set(key.IconsVariant, "plain")
			for id := range icons {
				So(Get(id), ShouldNotBeEmpty)
			}
		})
	})
}

package rpn

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/stackcalc/stackcalc/key"
)

func TestSuggest(t *testing.T) {
	Convey("Given suggestions are enabled", t, func() {
		viper.Set(key.RPNSuggest, true)

		Convey("Close misspellings resolve to the intended word", func() {
			So(Suggest("swp").OrEmpty(), ShouldEqual, "swap")
			So(Suggest("neq").OrEmpty(), ShouldEqual, "neg")
			So(Suggest("sqrtt").OrEmpty(), ShouldEqual, "sqrt")
			So(Suggest("DUPE").OrEmpty(), ShouldEqual, "dup")
			So(Suggest("pii").OrEmpty(), ShouldEqual, "pi")
		})

		Convey("Unrelated tokens get no suggestion", func() {
			So(Suggest("xyz").IsPresent(), ShouldBeFalse)
			So(Suggest("x").IsPresent(), ShouldBeFalse)
			So(Suggest("").IsPresent(), ShouldBeFalse)
		})
	})

	Convey("Given suggestions are disabled", t, func() {
		viper.Set(key.RPNSuggest, false)

		Convey("Nothing is suggested", func() {
			So(Suggest("swp").IsPresent(), ShouldBeFalse)
		})
	})
}

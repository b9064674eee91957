package config

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/stackcalc/stackcalc/filesystem"
	"github.com/stackcalc/stackcalc/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate every default", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetInt(key.StackCapacity), ShouldEqual, 20)
			So(viper.GetInt(key.RPNPrecision), ShouldEqual, -1)
		})

		Convey("Should read overrides from the environment", func() {
			t.Setenv("STACKCALC_STACK_CAPACITY", "8")
			So(Setup(), ShouldBeNil)
			So(viper.GetInt(key.StackCapacity), ShouldEqual, 8)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("stack.capacity"), ShouldEqual, "stack_capacity")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given the capacity field", t, func() {
		field := Default[key.StackCapacity]

		Convey("Env is prefixed with the application name", func() {
			So(field.Env(), ShouldEqual, "STACKCALC_STACK_CAPACITY")
		})

		Convey("MarshalJSON reports the type and default", func() {
			data, err := json.Marshal(&field)
			So(err, ShouldBeNil)

			var decoded map[string]any
			So(json.Unmarshal(data, &decoded), ShouldBeNil)
			So(decoded["key"], ShouldEqual, key.StackCapacity)
			So(decoded["type"], ShouldEqual, "int")
			So(decoded["default"], ShouldEqual, 20.0)
		})

		Convey("Pretty mentions the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.StackCapacity)
		})
	})
}

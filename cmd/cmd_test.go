package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/stackcalc/stackcalc/config"
	"github.com/stackcalc/stackcalc/filesystem"
	"github.com/stackcalc/stackcalc/key"
	"github.com/stackcalc/stackcalc/rpn"
	"github.com/stackcalc/stackcalc/session"
)

func init() {
	filesystem.SetMemMapFs()
	lo.Must0(config.Setup())
}

func run(args ...string) string {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	lo.Must0(rootCmd.Execute())
	return out.String()
}

func TestStackCommands(t *testing.T) {
	Convey("Given an empty session", t, func() {
		viper.Set(key.SessionPersist, true)
		So(session.Reset(), ShouldBeNil)

		So(run("push", "1", "2", "3"), ShouldContainSubstring, "3/20")
		So(run("peek"), ShouldEqual, "3\n")

		var status Status
		So(json.Unmarshal([]byte(run("status", "--json")), &status), ShouldBeNil)
		So(status, ShouldResemble, Status{Len: 3, Capacity: 20, Top: 2, Full: false, Empty: false})

		So(run("pop", "-n", "2"), ShouldEqual, "3\n2\n")
		So(run("show", "--raw"), ShouldEqual, "1\n")

		So(run("eval", "4", "+"), ShouldEqual, "5\n")
		So(run("push", "--", "-2.5"), ShouldContainSubstring, "2/20")
		So(run("show", "--raw"), ShouldEqual, "5\n-2.5\n")
	})

	Convey("Given a fresh JSON evaluation", t, func() {
		viper.Set(key.SessionPersist, true)
		So(session.Reset(), ShouldBeNil)

		var out rpn.Output
		So(json.Unmarshal([]byte(run("eval", "--fresh", "--json", "2 3 *")), &out), ShouldBeNil)
		So(out.Error, ShouldBeEmpty)
		So(*out.Result, ShouldEqual, 6.0)
		So(out.Stack, ShouldResemble, []float64{6})

		Convey("The session is left untouched", func() {
			s, err := session.Load()
			So(err, ShouldBeNil)
			So(s.IsEmpty(), ShouldBeTrue)
		})
	})
}

func TestInfoCommands(t *testing.T) {
	Convey("ops lists operators and constants", t, func() {
		out := run("ops")
		for _, symbol := range rpn.Symbols() {
			So(out, ShouldContainSubstring, symbol)
		}
		So(out, ShouldContainSubstring, "pi e")
	})

	Convey("schema describes the eval output", t, func() {
		So(run("schema"), ShouldContainSubstring, `"expression"`)
	})

	Convey("version --short prints the version", t, func() {
		So(strings.TrimSpace(run("version", "--short")), ShouldNotBeEmpty)
	})

	Convey("where --session prints the session path", t, func() {
		So(run("where", "--session"), ShouldContainSubstring, "session.json")
	})
}

func TestParseValues(t *testing.T) {
	Convey("push arguments follow the calculator's number rules", t, func() {
		values, err := parseValues([]string{"1", "-2.5", "PI"})
		So(err, ShouldBeNil)
		So(values, ShouldHaveLength, 3)
		So(values[:2], ShouldResemble, []float64{1, -2.5})

		for _, arg := range []string{"inf", "-Inf", "nan", "NaN", "1e400"} {
			_, err := parseValues([]string{"1", arg})
			So(errors.Is(err, rpn.ErrDomain), ShouldBeTrue)
		}

		_, err = parseValues([]string{"banana"})
		So(errors.Is(err, rpn.ErrUnknownToken), ShouldBeTrue)
	})
}

func TestParseValue(t *testing.T) {
	Convey("parseValue converts input to the default's type", t, func() {
		capacity := config.Default[key.StackCapacity]
		v, err := parseValue(capacity, []string{"8"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 8)

		_, err = parseValue(capacity, []string{"eight"})
		So(err, ShouldNotBeNil)

		v, err = parseValue(config.Default[key.RPNSuggest], []string{"false"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, false)

		v, err = parseValue(config.Default[key.IconsVariant], []string{"nerd"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "nerd")

		_, err = parseValue(capacity, nil)
		So(err, ShouldNotBeNil)
	})

	Convey("errUnknownKey suggests the closest key", t, func() {
		So(errUnknownKey("stack.capacty").Error(), ShouldContainSubstring, key.StackCapacity)
	})
}

package log

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/stackcalc/stackcalc/filesystem"
	"github.com/stackcalc/stackcalc/key"
	"github.com/stackcalc/stackcalc/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Nothing is enabled and entries are nil", func() {
			So(Enabled(), ShouldBeFalse)
			So(With(Fields{"token": "+"}), ShouldBeNil)
			So(func() { With(nil).Debug("dropped") }, ShouldNotPanic)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsJson, true)
		viper.Set(key.LogsLevel, "debug")
		So(Setup(), ShouldBeNil)
		Reset(func() {
			viper.Set(key.LogsWrite, false)
			lo.Must0(Setup())
		})

		Convey("A log file is written under the logs directory", func() {
			With(Fields{"token": "dup"}).Debug("applied")

			files := lo.Must(filesystem.API().ReadDir(where.Logs()))
			So(files, ShouldNotBeEmpty)

			data := lo.Must(filesystem.API().ReadFile(filepath.Join(where.Logs(), files[0].Name())))
			So(string(data), ShouldContainSubstring, `"token":"dup"`)
		})
	})
}

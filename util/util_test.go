package util

import (
	"os"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stackcalc/stackcalc/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "value", "values"), ShouldEqual, "1 value")
		So(Quantify(0, "value", "values"), ShouldEqual, "0 values")
		So(Quantify(2, "value", "values"), ShouldEqual, "2 values")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("session"), ShouldEqual, "Session")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a file and a directory", t, func() {
		fs := filesystem.API()
		lo.Must0(fs.MkdirAll("/tmp/stackcalc/nested", os.ModePerm))
		lo.Must0(fs.WriteFile("/tmp/stackcalc/nested/a.json", []byte("{}"), 0o644))
		lo.Must0(fs.WriteFile("/tmp/session.json", []byte("{}"), 0o644))

		Convey("Delete removes the file", func() {
			So(Delete("/tmp/session.json"), ShouldBeNil)
			So(lo.Must(fs.Exists("/tmp/session.json")), ShouldBeFalse)
		})

		Convey("Delete removes the directory recursively", func() {
			So(Delete("/tmp/stackcalc"), ShouldBeNil)
			So(lo.Must(fs.Exists("/tmp/stackcalc/nested/a.json")), ShouldBeFalse)
		})

		Convey("Delete reports missing paths", func() {
			So(Delete("/does/not/exist"), ShouldNotBeNil)
		})
	})
}

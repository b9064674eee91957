package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestGacheFs(t *testing.T) {
	Convey("Given the in-memory backend", t, func() {
		SetMemMapFs()
		var gfs GacheFs

		Convey("Writes through GacheFs are visible through API", func() {
			So(gfs.MkdirAll("/state", os.ModePerm), ShouldBeNil)

			f, err := gfs.OpenFile("/state/session.json", os.O_RDWR|os.O_CREATE, 0o644)
			So(err, ShouldBeNil)
			_, err = f.Write([]byte(`{"capacity":20}`))
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)

			data, err := API().ReadFile("/state/session.json")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{"capacity":20}`)
		})
	})
}

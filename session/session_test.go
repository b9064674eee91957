package session_test

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/stackcalc/stackcalc/filesystem"
	"github.com/stackcalc/stackcalc/key"
	"github.com/stackcalc/stackcalc/session"
	"github.com/stackcalc/stackcalc/stack"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSession(t *testing.T) {
	Convey("Given persistence is enabled", t, func() {
		viper.Set(key.SessionPersist, true)
		viper.Set(key.StackCapacity, 5)
		So(session.Reset(), ShouldBeNil)

		Convey("Load without a saved stack returns an empty one of the configured capacity", func() {
			s, err := session.Load()
			So(err, ShouldBeNil)
			So(s.IsEmpty(), ShouldBeTrue)
			So(s.Cap(), ShouldEqual, 5)
		})

		Convey("When a stack is saved", func() {
			s := stack.New(5)
			So(s.Push(1), ShouldBeNil)
			So(s.Push(2), ShouldBeNil)
			So(session.Save(s), ShouldBeNil)

			Convey("Load restores it in order", func() {
				loaded, err := session.Load()
				So(err, ShouldBeNil)
				So(loaded.Values(), ShouldResemble, []float64{1, 2})
			})

			Convey("Load honors a larger configured capacity", func() {
				viper.Set(key.StackCapacity, 8)
				loaded, err := session.Load()
				So(err, ShouldBeNil)
				So(loaded.Cap(), ShouldEqual, 8)
				So(loaded.Len(), ShouldEqual, 2)
			})

			Convey("Load refuses a capacity the values do not fit in", func() {
				viper.Set(key.StackCapacity, 1)
				_, err := session.Load()
				So(errors.Is(err, stack.ErrOverflow), ShouldBeTrue)
			})

			Convey("Reset discards it", func() {
				So(session.Reset(), ShouldBeNil)
				loaded, err := session.Load()
				So(err, ShouldBeNil)
				So(loaded.IsEmpty(), ShouldBeTrue)
			})
		})
	})

	Convey("Given persistence is disabled", t, func() {
		viper.Set(key.SessionPersist, false)
		viper.Set(key.StackCapacity, 3)

		Convey("Save is ignored and Load starts fresh", func() {
			s := stack.New(3)
			So(s.Push(7), ShouldBeNil)
			So(session.Save(s), ShouldBeNil)

			loaded, err := session.Load()
			So(err, ShouldBeNil)
			So(loaded.IsEmpty(), ShouldBeTrue)
			So(loaded.Cap(), ShouldEqual, 3)
		})
	})
}

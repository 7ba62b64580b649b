package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Logger construction", t, func() {
		var buf bytes.Buffer

		Convey("Should honor the level", func() {
			logger, err := New(&buf, Options{Level: "warn"})
			So(err, ShouldBeNil)

			logger.Info("hidden")
			logger.Warn("shown")
			So(buf.String(), ShouldNotContainSubstring, "hidden")
			So(buf.String(), ShouldContainSubstring, "shown")
		})

		Convey("Should emit JSON when asked", func() {
			logger, err := New(&buf, Options{Level: "info", JSON: true})
			So(err, ShouldBeNil)

			logger.WithField("tool", "color_parse").Info("called")

			var entry map[string]any
			So(json.Unmarshal(buf.Bytes(), &entry), ShouldBeNil)
			So(entry["msg"], ShouldEqual, "called")
			So(entry["tool"], ShouldEqual, "color_parse")
		})

		Convey("Should reject an unknown level", func() {
			_, err := New(&buf, Options{Level: "chatty"})
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Discard should drop output", t, func() {
		logger := Discard()
		So(func() { logger.Error("nothing") }, ShouldNotPanic)
	})
}

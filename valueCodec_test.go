package rmq

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestValueCodec(t *testing.T) {
	Convey("When a JSON array is decoded", t, func() {
		vals, err := DecodeValues[float64](strings.NewReader("[5, 2, 8, 1.5, 9]"), FormatJSON)
		So(err, ShouldBeNil)
		So(vals, ShouldResemble, []float64{5, 2, 8, 1.5, 9})

		c, err := New(vals)
		So(err, ShouldBeNil)
		got, err := c.Query(0, 4)
		So(err, ShouldBeNil)
		So(got, ShouldEqual, 1.5)
	})

	for _, f := range []Format{FormatJSON, FormatMsgpack, FormatCBOR} {
		Convey("When values are encoded and decoded as "+f.String(), t, func() {
			src := []int64{8, 9, 10, -11, 12, 18, 8, 0}
			var buf bytes.Buffer
			So(EncodeValues(&buf, f, src), ShouldBeNil)

			vals, err := DecodeValues[int64](&buf, f)
			So(err, ShouldBeNil)
			So(vals, ShouldResemble, src)
		})
	}

	Convey("When the input is not an array", t, func() {
		_, err := DecodeValues[int](strings.NewReader(`{"a": 1}`), FormatJSON)
		So(err, ShouldNotBeNil)
	})

	Convey("When the format is unknown", t, func() {
		_, err := ParseFormat("xml")
		So(errors.Is(err, ErrUnknownFormat), ShouldBeTrue)
		_, err = DecodeValues[int](strings.NewReader("[]"), Format(7))
		So(errors.Is(err, ErrUnknownFormat), ShouldBeTrue)

		f, err := ParseFormat(" MsgPack ")
		So(err, ShouldBeNil)
		So(f, ShouldEqual, FormatMsgpack)
	})

	Convey("Index kinds parse by name", t, func() {
		k, err := ParseIndexKind("block")
		So(err, ShouldBeNil)
		So(k, ShouldEqual, IndexBlock)
		k, err = ParseIndexKind("")
		So(err, ShouldBeNil)
		So(k, ShouldEqual, IndexSparse)
		_, err = ParseIndexKind("segment")
		So(err, ShouldNotBeNil)
	})
}

package model_test

import (
	"encoding/json"
	"testing"

	model "github.com/dragnet-io/dragnet/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStringList_UnmarshalJSON(t *testing.T) {
	Convey("Given the lenient-shape, strict-type list decoding", t, func() {
		type doc struct {
			Aliases model.StringList `json:"aliases"`
		}

		Convey("When the value is null", func() {
			var d doc
			So(json.Unmarshal([]byte(`{"aliases": null}`), &d), ShouldBeNil)
			So(d.Aliases, ShouldBeNil)
		})

		Convey("When the value is a bare string", func() {
			var d doc
			So(json.Unmarshal([]byte(`{"aliases": "Johnny"}`), &d), ShouldBeNil)
			So(d.Aliases, ShouldResemble, model.StringList{"Johnny"})
		})

		Convey("When the value is a blank string", func() {
			var d doc
			So(json.Unmarshal([]byte(`{"aliases": "  "}`), &d), ShouldBeNil)
			So(d.Aliases, ShouldBeNil)
		})

		Convey("When the value is an array with null and empty entries", func() {
			var d doc
			So(json.Unmarshal([]byte(`{"aliases": ["Johnny", null, "", "JS"]}`), &d), ShouldBeNil)
			So(d.Aliases, ShouldResemble, model.StringList{"Johnny", "JS"})
		})

		Convey("When the value is some other JSON type", func() {
			var d doc
			So(json.Unmarshal([]byte(`{"aliases": 42}`), &d), ShouldNotBeNil)
			So(json.Unmarshal([]byte(`{"aliases": {"a": 1}}`), &d), ShouldNotBeNil)
		})
	})
}

func TestRawRecord_Decode(t *testing.T) {
	Convey("Given a realistic raw record payload", t, func() {
		payload := `{
			"uid": "abc123",
			"title": "JOHN SMITH",
			"subjects": ["Bank Robbery"],
			"height_min": 68,
			"height_max": 70,
			"sex": "M",
			"nationality": "American",
			"images": [{"original": "https://img.example/o.jpg", "thumb": "https://img.example/t.jpg"}]
		}`

		var rec model.RawRecord
		So(json.Unmarshal([]byte(payload), &rec), ShouldBeNil)

		Convey("Then scalars, pointers and coerced lists all decode", func() {
			So(rec.UID, ShouldEqual, "abc123")
			So(rec.Subjects, ShouldResemble, model.StringList{"Bank Robbery"})
			So(*rec.HeightMin, ShouldEqual, 68)
			So(*rec.HeightMax, ShouldEqual, 70)
			So(rec.Nationality, ShouldResemble, model.StringList{"American"})
			So(rec.Images, ShouldHaveLength, 1)
			So(rec.Images[0].Original, ShouldEqual, "https://img.example/o.jpg")
		})
	})
}

func TestFreeText(t *testing.T) {
	Convey("Given the prose concatenation", t, func() {
		rec := model.RawRecord{
			Description: "First.",
			Details:     "  ",
			Remarks:     "Second.",
		}

		Convey("Then blank fields are skipped", func() {
			So(rec.FreeText(), ShouldEqual, "First. Second.")
		})
	})
}

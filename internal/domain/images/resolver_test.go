package images_test

import (
	"testing"

	images "github.com/dragnet-io/dragnet/internal/domain/images"
	"github.com/dragnet-io/dragnet/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestResolve(t *testing.T) {
	Convey("Given the image tier resolution rules", t, func() {
		Convey("When variants carry mixed tiers", func() {
			variants := []model.ImageVariant{
				{Original: "https://img.example/a-orig.jpg", Thumb: "https://img.example/a-thumb.jpg"},
				{Large: "https://img.example/b-large.jpg", Thumb: "https://img.example/b-thumb.jpg"},
			}
			urls, placeholder := images.Resolve(variants, "JOHN SMITH")

			Convey("Then all originals precede larges precede thumbs", func() {
				So(placeholder, ShouldBeFalse)
				So(urls, ShouldResemble, []string{
					"https://img.example/a-orig.jpg",
					"https://img.example/b-large.jpg",
					"https://img.example/a-thumb.jpg",
					"https://img.example/b-thumb.jpg",
				})
			})
		})

		Convey("When the same URL appears at several tiers", func() {
			variants := []model.ImageVariant{
				{Original: "https://img.example/same.jpg", Large: "https://img.example/same.jpg"},
			}
			urls, placeholder := images.Resolve(variants, "JOHN SMITH")
			So(placeholder, ShouldBeFalse)
			So(urls, ShouldResemble, []string{"https://img.example/same.jpg"})
		})

		Convey("When no variant carries any URL", func() {
			urls, placeholder := images.Resolve([]model.ImageVariant{{}, {}}, "JOHN SMITH")

			Convey("Then a single placeholder is returned", func() {
				So(placeholder, ShouldBeTrue)
				So(urls, ShouldHaveLength, 1)
				So(images.IsPlaceholder(urls[0]), ShouldBeTrue)
			})
		})

		Convey("When there are no variants at all", func() {
			urls, placeholder := images.Resolve(nil, "")
			So(placeholder, ShouldBeTrue)
			So(urls, ShouldResemble, []string{"https://via.placeholder.com/400x600?text=Unknown"})
		})
	})
}

func TestPlaceholder(t *testing.T) {
	Convey("Given the placeholder URL builder", t, func() {
		Convey("When the name has spaces it is escaped", func() {
			So(images.Placeholder("JOHN SMITH"),
				ShouldEqual, "https://via.placeholder.com/400x600?text=JOHN+SMITH")
		})

		Convey("When the name is blank it falls back to Unknown", func() {
			So(images.Placeholder("  "),
				ShouldEqual, "https://via.placeholder.com/400x600?text=Unknown")
		})

		Convey("And placeholder detection matches what it builds", func() {
			So(images.IsPlaceholder(images.Placeholder("x")), ShouldBeTrue)
			So(images.IsPlaceholder("https://img.example/real.jpg"), ShouldBeFalse)
		})
	})
}

func TestPrimary(t *testing.T) {
	Convey("Given the primary image selection", t, func() {
		Convey("When the first image is real it wins", func() {
			p := &model.Person{
				Name:         "JOHN SMITH",
				Images:       []string{"https://img.example/real.jpg"},
				ThumbnailURL: "https://img.example/real.jpg",
			}
			So(images.Primary(p), ShouldEqual, "https://img.example/real.jpg")
		})

		Convey("When the first image is a placeholder the thumbnail is tried", func() {
			p := &model.Person{
				Name:         "JOHN SMITH",
				Images:       []string{images.Placeholder("JOHN SMITH")},
				ThumbnailURL: "https://img.example/thumb.jpg",
			}
			So(images.Primary(p), ShouldEqual, "https://img.example/thumb.jpg")
		})

		Convey("When nothing real exists a placeholder is built", func() {
			p := &model.Person{
				Name:         "JOHN SMITH",
				Images:       []string{images.Placeholder("JOHN SMITH")},
				ThumbnailURL: images.Placeholder("JOHN SMITH"),
			}
			So(images.IsPlaceholder(images.Primary(p)), ShouldBeTrue)
		})
	})
}

package aging_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	aging "github.com/dragnet-io/dragnet/internal/adapters/aging"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAge(t *testing.T) {
	Convey("Given a collaborator that echoes an aged image", t, func() {
		var gotYears string
		var gotImage []byte
		var handlerErr error
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if handlerErr = r.ParseMultipartForm(1 << 20); handlerErr != nil {
				return
			}
			gotYears = r.FormValue("years")

			f, _, err := r.FormFile("image")
			if err != nil {
				handlerErr = err
				return
			}
			defer f.Close()
			gotImage, handlerErr = io.ReadAll(f)

			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write([]byte("aged-bytes"))
		}))
		defer srv.Close()

		client := aging.NewClient(srv.URL)
		So(client.Enabled(), ShouldBeTrue)

		Convey("When submitting an image", func() {
			out, err := client.Age(context.Background(), []byte("original-bytes"), 25)
			So(err, ShouldBeNil)

			Convey("Then the multipart form carries the inputs", func() {
				So(handlerErr, ShouldBeNil)
				So(gotYears, ShouldEqual, "25")
				So(gotImage, ShouldResemble, []byte("original-bytes"))
			})

			Convey("And the transformed payload comes back", func() {
				So(out, ShouldResemble, []byte("aged-bytes"))
			})
		})
	})

	Convey("Given a collaborator that fails", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := aging.NewClient(srv.URL)

		Convey("When submitting an image", func() {
			_, err := client.Age(context.Background(), []byte("x"), 10)
			So(errors.Is(err, aging.ErrAgingFailed), ShouldBeTrue)
		})
	})

	Convey("Given no collaborator is configured", t, func() {
		client := aging.NewClient("")
		So(client.Enabled(), ShouldBeFalse)

		Convey("When submitting an image", func() {
			_, err := client.Age(context.Background(), []byte("x"), 10)
			So(errors.Is(err, aging.ErrDisabled), ShouldBeTrue)
		})
	})
}

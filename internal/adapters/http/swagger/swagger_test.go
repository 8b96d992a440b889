package swagger_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	swagger "github.com/dragnet-io/dragnet/internal/adapters/http/swagger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRegister(t *testing.T) {
	Convey("Given the docs routes", t, func() {
		mux := http.NewServeMux()
		swagger.Register(context.Background(), mux)

		Convey("When fetching the docs page", func() {
			for _, target := range []string{"/swagger", "/api-docs"} {
				rec := httptest.NewRecorder()
				mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Header().Get("Content-Type"), ShouldContainSubstring, "text/html")
				So(rec.Body.String(), ShouldContainSubstring, "redoc")
			}
		})

		Convey("When fetching the embedded spec", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "openapi: 3.0.3")
			So(rec.Body.String(), ShouldContainSubstring, "/people/{id}/age-progression")
		})

		Convey("When registering on a nil mux", func() {
			So(func() { swagger.Register(context.Background(), nil) }, ShouldPanic)
		})
	})
}

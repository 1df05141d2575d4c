package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/b2btravel/booking.api.b2btravel.in/service"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitHandleSearchFlights(t *testing.T) {
	inventoryService = &service.InventoryService{}

	Convey("Origin and destination are required", t, func() {
		req := httptest.NewRequest("GET", "/api/flights/search?origin=DEL", nil)
		w := httptest.NewRecorder()

		HandleSearchFlights(w, req)

		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(w.Body.String(), ShouldContainSubstring, "Origin and destination are required.")
	})

	Convey("Successful one-way search", t, func() {
		req := httptest.NewRequest("GET", "/api/flights/search?origin=DEL&destination=BOM", nil)
		w := httptest.NewRecorder()

		HandleSearchFlights(w, req)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, `"airline":"IndiGo"`)
		So(w.Body.String(), ShouldContainSubstring, `"returnFlights":[]`)
	})

	Convey("Roundtrip search includes return flights", t, func() {
		req := httptest.NewRequest("GET", "/api/flights/search?origin=DEL&destination=BOM&tripType=roundtrip", nil)
		w := httptest.NewRecorder()

		HandleSearchFlights(w, req)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldNotContainSubstring, `"returnFlights":[]`)
	})
}

func TestUnitHandleSearchHotels(t *testing.T) {
	inventoryService = &service.InventoryService{}

	Convey("All hotels without a city filter", t, func() {
		req := httptest.NewRequest("GET", "/api/hotels/search", nil)
		w := httptest.NewRecorder()

		HandleSearchHotels(w, req)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, "Taj Mahal Palace")
	})

	Convey("City filter narrows results", t, func() {
		req := httptest.NewRequest("GET", "/api/hotels/search?city=Delhi", nil)
		w := httptest.NewRecorder()

		HandleSearchHotels(w, req)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, "Oberoi")
		So(w.Body.String(), ShouldNotContainSubstring, "Taj Mahal Palace")
	})
}

package handlers

import (
	"net/http"

	"github.com/b2btravel/booking.api.b2btravel.in/utils"
)

// HandleSearchFlights searches the mocked flight inventory. Origin and
// destination are required, tripType "roundtrip" includes return flights.
func HandleSearchFlights(w http.ResponseWriter, req *http.Request) {
	query := req.URL.Query()
	origin := query.Get("origin")
	destination := query.Get("destination")

	if origin == "" || destination == "" {
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("Origin and destination are required."), http.StatusBadRequest)
		return
	}

	results := inventoryService.SearchFlights(origin, destination, query.Get("tripType"))
	utils.WriteJSONWithStatus(w, req, results, http.StatusOK)
}

// HandleSearchHotels searches the mocked hotel inventory, optionally filtered
// by city
func HandleSearchHotels(w http.ResponseWriter, req *http.Request) {
	hotels := inventoryService.SearchHotels(req.URL.Query().Get("city"))
	utils.WriteJSONWithStatus(w, req, hotels, http.StatusOK)
}

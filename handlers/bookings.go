package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/b2btravel/booking.api.b2btravel.in/helpers"
	"github.com/b2btravel/booking.api.b2btravel.in/models"
	"github.com/b2btravel/booking.api.b2btravel.in/utils"
)

// handleBookingMessage allows us to mock the call to produceBookingMessage for unit tests
var handleBookingMessage = produceBookingMessage

// HandleBookFlight books a flight against the agent's wallet
func HandleBookFlight(w http.ResponseWriter, req *http.Request) {
	userDetails, ok := helpers.GetUserDetailsFromContext(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid AuthUserDetails in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var bookingRequest models.FlightBookingRequest
	err := json.NewDecoder(req.Body).Decode(&bookingRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validator.New().Struct(bookingRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to book flight: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("Flight details and at least one passenger are required."), http.StatusBadRequest)
		return
	}

	response, responseType, err := bookingService.BookFlight(req, userDetails, bookingRequest)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	// the booking is already committed, so a failed notification is logged
	// rather than surfaced to the agent
	if err = handleBookingMessage(response.BookingID, response.PNR, "flight"); err != nil {
		log.ErrorR(req, fmt.Errorf("error producing booking processed message: [%v]", err))
	}

	utils.WriteJSONWithStatus(w, req, response, http.StatusCreated)
	log.InfoR(req, "Successful POST request to book flight", log.Data{"booking_id": response.BookingID, "status": http.StatusCreated})
}

// HandleBookHotel books a hotel stay against the agent's wallet
func HandleBookHotel(w http.ResponseWriter, req *http.Request) {
	userDetails, ok := helpers.GetUserDetailsFromContext(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid AuthUserDetails in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var bookingRequest models.HotelBookingRequest
	err := json.NewDecoder(req.Body).Decode(&bookingRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validator.New().Struct(bookingRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to book hotel: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("Hotel, room and stay details are required."), http.StatusBadRequest)
		return
	}

	response, responseType, err := bookingService.BookHotel(req, userDetails, bookingRequest)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	if err = handleBookingMessage(response.BookingID, response.ConfirmationID, "hotel"); err != nil {
		log.ErrorR(req, fmt.Errorf("error producing booking processed message: [%v]", err))
	}

	utils.WriteJSONWithStatus(w, req, response, http.StatusCreated)
	log.InfoR(req, "Successful POST request to book hotel", log.Data{"booking_id": response.BookingID, "status": http.StatusCreated})
}

// HandleGetBookings returns the authenticated agent's bookings, most recent
// first, each carrying its refund status
func HandleGetBookings(w http.ResponseWriter, req *http.Request) {
	userDetails, ok := helpers.GetUserDetailsFromContext(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid AuthUserDetails in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	bookings, responseType, err := bookingService.ListBookings(req, userDetails.ID)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, bookings, http.StatusOK)
}

// HandleGetBooking returns a single booking. The booking interceptor has
// already loaded it and checked ownership.
func HandleGetBooking(w http.ResponseWriter, req *http.Request) {
	booking, ok := helpers.GetBookingFromContext(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid BookingResourceDB in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	rest, responseType, err := bookingService.GetBooking(req, booking.ID)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, rest, http.StatusOK)
}

// HandleGetETicket renders the booking from the request context as a PDF
// e-ticket or hotel voucher
func HandleGetETicket(w http.ResponseWriter, req *http.Request) {
	booking, ok := helpers.GetBookingFromContext(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid BookingResourceDB in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// the document names the agent who made the booking, not the caller
	profile, responseType, err := authService.GetProfile(req, booking.UserID)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	document, err := eTicketService.GenerateETicket(booking, profile.Name)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error generating e-ticket: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", booking.ConfirmationID))
	w.WriteHeader(http.StatusOK)

	if _, err = w.Write(document); err != nil {
		log.ErrorR(req, fmt.Errorf("error writing e-ticket response: [%v]", err))
	}
}

// HandleRequestRefund raises a refund request for one of the agent's bookings
func HandleRequestRefund(w http.ResponseWriter, req *http.Request) {
	userDetails, ok := helpers.GetUserDetailsFromContext(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid AuthUserDetails in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	bookingID := mux.Vars(req)["booking_id"]
	if bookingID == "" {
		log.ErrorR(req, fmt.Errorf("no booking id in request path"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	refund, responseType, err := refundService.RequestRefund(req, userDetails, bookingID)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, refund, http.StatusCreated)
	log.InfoR(req, "Successful POST request for new refund request", log.Data{"refund_id": refund.ID, "booking_id": bookingID, "status": http.StatusCreated})
}

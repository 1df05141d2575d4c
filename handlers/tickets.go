package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"

	"github.com/b2btravel/booking.api.b2btravel.in/helpers"
	"github.com/b2btravel/booking.api.b2btravel.in/models"
	"github.com/b2btravel/booking.api.b2btravel.in/utils"
)

// HandleCreateTicket raises a support ticket for the authenticated agent
func HandleCreateTicket(w http.ResponseWriter, req *http.Request) {
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

	var ticketRequest models.CreateTicketRequest
	err := json.NewDecoder(req.Body).Decode(&ticketRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validator.New().Struct(ticketRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to create ticket: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("A subject is required."), http.StatusBadRequest)
		return
	}

	ticket, responseType, err := adminService.CreateTicket(req, userDetails, ticketRequest)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, ticket, http.StatusCreated)
	log.InfoR(req, "Successful POST request for new support ticket", log.Data{"ticket_id": ticket.ID, "status": http.StatusCreated})
}

// HandleListTickets returns all support tickets for the admin back office
func HandleListTickets(w http.ResponseWriter, req *http.Request) {
	tickets, responseType, err := adminService.ListTickets(req)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, tickets, http.StatusOK)
}

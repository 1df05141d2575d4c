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

// HandleGetWallet returns the authenticated agent's wallet balance
func HandleGetWallet(w http.ResponseWriter, req *http.Request) {
	userDetails, ok := helpers.GetUserDetailsFromContext(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid AuthUserDetails in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	wallet, responseType, err := walletService.GetWallet(req, userDetails.ID)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, wallet, http.StatusOK)
}

// HandleTopUpWallet credits the agent's wallet and records a ledger entry
func HandleTopUpWallet(w http.ResponseWriter, req *http.Request) {
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

	var topUpRequest models.TopUpRequest
	err := json.NewDecoder(req.Body).Decode(&topUpRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validator.New().Struct(topUpRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to top up wallet: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("Amount and payment method are required."), http.StatusBadRequest)
		return
	}

	response, responseType, err := walletService.TopUp(req, userDetails.ID, topUpRequest)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, response, http.StatusOK)
	log.InfoR(req, "Successful POST request to top up wallet", log.Data{"user_id": userDetails.ID, "new_balance": response.NewBalance})
}

// HandleGetTransactions returns the agent's wallet ledger, most recent first
func HandleGetTransactions(w http.ResponseWriter, req *http.Request) {
	userDetails, ok := helpers.GetUserDetailsFromContext(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid AuthUserDetails in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	transactions, responseType, err := walletService.ListTransactions(req, userDetails.ID)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, transactions, http.StatusOK)
}

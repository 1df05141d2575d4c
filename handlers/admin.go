package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/b2btravel/booking.api.b2btravel.in/models"
	"github.com/b2btravel/booking.api.b2btravel.in/service"
	"github.com/b2btravel/booking.api.b2btravel.in/utils"
)

// HandleListAgents returns the agent directory with KYC details
func HandleListAgents(w http.ResponseWriter, req *http.Request) {
	agents, responseType, err := adminService.ListAgents(req)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, agents, http.StatusOK)
}

// HandleListAllBookings returns every booking on the platform with the
// booking agent's name
func HandleListAllBookings(w http.ResponseWriter, req *http.Request) {
	bookings, responseType, err := adminService.ListAllBookings(req)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, bookings, http.StatusOK)
}

// HandleListPendingRefunds returns the refund review queue
func HandleListPendingRefunds(w http.ResponseWriter, req *http.Request) {
	refunds, responseType, err := refundService.ListPendingRefunds(req)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, refunds, http.StatusOK)
}

// HandleResolveRefund approves or rejects a pending refund request. Approval
// credits the refund amount back to the agent's wallet.
func HandleResolveRefund(w http.ResponseWriter, req *http.Request) {
	refundID := mux.Vars(req)["refund_id"]
	if refundID == "" {
		log.ErrorR(req, fmt.Errorf("no refund id in request path"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var resolveRequest models.ResolveRefundRequest
	err := json.NewDecoder(req.Body).Decode(&resolveRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validator.New().Struct(resolveRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid PUT request to resolve refund: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("Status must be approved or rejected."), http.StatusBadRequest)
		return
	}

	refund, responseType, err := refundService.ResolveRefund(req, refundID, resolveRequest)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	// an approved refund changes the booking's state, so downstream
	// consumers get the same event a fresh booking produces. The credit is
	// already committed, so a failed notification is logged rather than
	// surfaced to the admin.
	if refund.Status == service.RefundStatusApproved {
		if err = handleBookingMessage(refund.BookingID, refund.ID, "refund"); err != nil {
			log.ErrorR(req, fmt.Errorf("error producing booking processed message: [%v]", err))
		}
	}

	utils.WriteJSONWithStatus(w, req, refund, http.StatusOK)
	log.InfoR(req, "Successful PUT request to resolve refund", log.Data{"refund_id": refundID, "resolution": refund.Status})
}

// HandleListPendingKyc returns the KYC review queue
func HandleListPendingKyc(w http.ResponseWriter, req *http.Request) {
	submissions, responseType, err := kycService.ListPending(req)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, submissions, http.StatusOK)
}

// HandleReviewKyc approves or rejects an agent's pending KYC submission
func HandleReviewKyc(w http.ResponseWriter, req *http.Request) {
	userID := mux.Vars(req)["user_id"]
	if userID == "" {
		log.ErrorR(req, fmt.Errorf("no user id in request path"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var reviewRequest models.KycReviewRequest
	err := json.NewDecoder(req.Body).Decode(&reviewRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validator.New().Struct(reviewRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid PUT request to review KYC: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("Status must be approved or rejected."), http.StatusBadRequest)
		return
	}

	responseType, err := kycService.Review(req, userID, reviewRequest)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse(fmt.Sprintf("KYC submission has been %s.", reviewRequest.Status)), http.StatusOK)
	log.InfoR(req, "Successful PUT request to review KYC", log.Data{"user_id": userID, "resolution": reviewRequest.Status})
}

// HandleGetKycDocument serves the agent's latest KYC document with its
// original MIME type
func HandleGetKycDocument(w http.ResponseWriter, req *http.Request) {
	userID := mux.Vars(req)["user_id"]
	if userID == "" {
		log.ErrorR(req, fmt.Errorf("no user id in request path"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	document, responseType, err := kycService.GetDocument(req, userID)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	w.Header().Set("Content-Type", document.FileType)
	w.WriteHeader(http.StatusOK)

	if _, err = w.Write(document.FileData); err != nil {
		log.ErrorR(req, fmt.Errorf("error writing kyc document response: [%v]", err))
	}
}

// HandleRequestKycResubmission clears an agent's KYC state so they can submit
// fresh documents
func HandleRequestKycResubmission(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var resubmissionRequest models.KycResubmissionRequest
	err := json.NewDecoder(req.Body).Decode(&resubmissionRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validator.New().Struct(resubmissionRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request for KYC resubmission: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("A user id is required."), http.StatusBadRequest)
		return
	}

	responseType, err := kycService.RequestResubmission(req, resubmissionRequest.UserID)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("Resubmission requested. The agent can now upload new documents."), http.StatusOK)
}

// HandleGetCommissions returns the commission configuration
func HandleGetCommissions(w http.ResponseWriter, req *http.Request) {
	rates, responseType, err := adminService.GetCommissionRates(req)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, rates, http.StatusOK)
}

// HandleUpdateCommissions replaces the commission configuration
func HandleUpdateCommissions(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var ratesRequest models.CommissionRatesRest
	err := json.NewDecoder(req.Body).Decode(&ratesRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validator.New().Struct(ratesRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to update commissions: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("Flight and hotel commission rates are required."), http.StatusBadRequest)
		return
	}

	responseType, err := adminService.UpdateCommissionRates(req, ratesRequest)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("Commission rates updated successfully."), http.StatusOK)
}

// HandleGetAnalytics returns the monthly booking analytics alongside pending
// workload counts
func HandleGetAnalytics(w http.ResponseWriter, req *http.Request) {
	analytics, responseType, err := adminService.GetAnalytics(req)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, analytics, http.StatusOK)
}

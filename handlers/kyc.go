package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/companieshouse/chs.go/log"

	"github.com/b2btravel/booking.api.b2btravel.in/helpers"
	"github.com/b2btravel/booking.api.b2btravel.in/models"
	"github.com/b2btravel/booking.api.b2btravel.in/utils"
)

// maxKycUploadBytes bounds the size of an uploaded KYC document
const maxKycUploadBytes = 5 << 20

// HandleSubmitKyc accepts a multipart KYC document upload and queues the
// agent for review
func HandleSubmitKyc(w http.ResponseWriter, req *http.Request) {
	userDetails, ok := helpers.GetUserDetailsFromContext(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid AuthUserDetails in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	req.Body = http.MaxBytesReader(w, req.Body, maxKycUploadBytes)
	if err := req.ParseMultipartForm(maxKycUploadBytes); err != nil {
		log.ErrorR(req, fmt.Errorf("error parsing multipart KYC submission: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("A document file of at most 5MB is required."), http.StatusBadRequest)
		return
	}

	documentType := req.FormValue("documentType")
	if documentType == "" {
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("Document type is required."), http.StatusBadRequest)
		return
	}

	file, header, err := req.FormFile("document")
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error reading document from KYC submission: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("A document file is required."), http.StatusBadRequest)
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error reading document data from KYC submission: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	document := &models.KycDocumentDB{
		DocumentType: documentType,
		FileName:     header.Filename,
		FileType:     header.Header.Get("Content-Type"),
		FileData:     fileData,
	}

	responseType, err := kycService.SubmitDocument(req, userDetails.ID, document)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("KYC documents submitted successfully. Verification is pending."), http.StatusCreated)
	log.InfoR(req, "Successful POST request to submit KYC document", log.Data{"user_id": userDetails.ID, "document_type": documentType, "status": http.StatusCreated})
}

// HandleGetKycStatus returns the agent's KYC status with a summary of their
// latest submitted document
func HandleGetKycStatus(w http.ResponseWriter, req *http.Request) {
	userDetails, ok := helpers.GetUserDetailsFromContext(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid AuthUserDetails in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	status, responseType, err := kycService.GetStatus(req, userDetails.ID)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, status, http.StatusOK)
}

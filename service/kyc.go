package service

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/b2btravel/booking.api.b2btravel.in/config"
	"github.com/b2btravel/booking.api.b2btravel.in/dao"
	"github.com/b2btravel/booking.api.b2btravel.in/models"
	"github.com/b2btravel/booking.api.b2btravel.in/transformers"

	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
)

// KycService contains the DAO for db access and runs the KYC submission and
// review workflow
type KycService struct {
	DAO    dao.DAO
	Config config.Config
}

// SubmitDocument stores an uploaded KYC document and moves the agent's KYC
// status to pending review. A resubmission replaces the previous document as
// the one under review.
func (service *KycService) SubmitDocument(req *http.Request, userID string, doc *models.KycDocumentDB) (ResponseType, error) {
	doc.ID = uuid.NewString()
	doc.UserID = userID
	doc.Status = KycStatusPending
	doc.SubmittedAt = time.Now()

	err := service.DAO.CreateKycDocument(req.Context(), doc)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return NotFound, errors.New("user not found")
		}
		err = fmt.Errorf("error storing kyc document in database: [%v]", err)
		log.ErrorR(req, err)
		return Error, err
	}

	log.InfoR(req, "kyc document submitted", log.Data{
		"user_id":       userID,
		"document_type": doc.DocumentType,
		"file_name":     doc.FileName,
	})

	return Success, nil
}

// GetDocument retrieves the agent's latest KYC document, binary payload
// included, for admin inspection
func (service *KycService) GetDocument(req *http.Request, userID string) (*models.KycDocumentDB, ResponseType, error) {
	doc, err := service.DAO.GetLatestKycDocument(req.Context(), userID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, NotFound, errors.New("document not found")
		}
		err = fmt.Errorf("error getting kyc document from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	return doc, Success, nil
}

// GetStatus retrieves the agent's KYC status with their latest document summary
func (service *KycService) GetStatus(req *http.Request, userID string) (*models.KycSubmissionRest, ResponseType, error) {
	user, err := service.DAO.GetUserByID(req.Context(), userID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, NotFound, errors.New("user not found")
		}
		err = fmt.Errorf("error getting user from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	status := &models.KycSubmissionRest{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		KycStatus: user.KycStatus,
	}

	doc, err := service.DAO.GetLatestKycDocument(req.Context(), userID)
	if err != nil && !errors.Is(err, dao.ErrNotFound) {
		err = fmt.Errorf("error getting kyc document from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}
	if doc != nil {
		status.Document = &models.KycDocumentSummaryRest{
			DocumentType: doc.DocumentType,
			FileName:     doc.FileName,
			Status:       doc.Status,
			SubmittedAt:  doc.SubmittedAt,
		}
	}

	return status, Success, nil
}

// Review approves or rejects a pending KYC submission
func (service *KycService) Review(req *http.Request, userID string, review models.KycReviewRequest) (ResponseType, error) {
	user, err := service.DAO.GetUserByID(req.Context(), userID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return NotFound, errors.New("user not found")
		}
		err = fmt.Errorf("error getting user from database: [%v]", err)
		log.ErrorR(req, err)
		return Error, err
	}

	if user.KycStatus != KycStatusPending {
		return Conflict, fmt.Errorf("kyc submission is %s and cannot be reviewed", user.KycStatus)
	}

	err = service.DAO.UpdateKycStatus(req.Context(), userID, review.Status, false)
	if err != nil {
		err = fmt.Errorf("error updating kyc status in database: [%v]", err)
		log.ErrorR(req, err)
		return Error, err
	}

	log.InfoR(req, "kyc submission reviewed", log.Data{"user_id": userID, "status": review.Status})

	return Success, nil
}

// RequestResubmission clears the agent's documents and resets their KYC
// status so they can submit afresh
func (service *KycService) RequestResubmission(req *http.Request, userID string) (ResponseType, error) {
	err := service.DAO.UpdateKycStatus(req.Context(), userID, KycStatusResubmissionRequested, true)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return NotFound, errors.New("user not found")
		}
		err = fmt.Errorf("error resetting kyc status in database: [%v]", err)
		log.ErrorR(req, err)
		return Error, err
	}

	log.InfoR(req, "kyc resubmission requested", log.Data{"user_id": userID})

	return Success, nil
}

// ListPending retrieves the admin review queue of pending KYC submissions
func (service *KycService) ListPending(req *http.Request) ([]models.KycSubmissionRest, ResponseType, error) {
	submissions, err := service.DAO.ListPendingKyc(req.Context())
	if err != nil {
		err = fmt.Errorf("error listing pending kyc submissions from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	rest := make([]models.KycSubmissionRest, len(submissions))
	for i, submission := range submissions {
		rest[i] = transformers.KycTransformer{}.TransformSubmissionToRest(submission)
	}
	return rest, Success, nil
}

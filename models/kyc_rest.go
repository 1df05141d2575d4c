package models

// KycSubmissionRest is an entry in the admin KYC review queue
type KycSubmissionRest struct {
	UserID    string                  `json:"userId"`
	Name      string                  `json:"name"`
	Email     string                  `json:"email"`
	KycStatus string                  `json:"kyc_status"`
	Document  *KycDocumentSummaryRest `json:"kyc_details,omitempty"`
}

// KycReviewRequest is the data received in the body of an admin KYC review
type KycReviewRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// KycResubmissionRequest is the data received when an admin requests that an
// agent resubmit their KYC documents
type KycResubmissionRequest struct {
	UserID string `json:"userId" validate:"required"`
}

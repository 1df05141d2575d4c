package models

import "time"

// KycDocumentDB contains a submitted KYC document, binary payload included.
// The most recent document per user is authoritative for admin review.
type KycDocumentDB struct {
	ID           string    `bson:"_id"`
	UserID       string    `bson:"user_id"`
	DocumentType string    `bson:"document_type"`
	FileName     string    `bson:"file_name"`
	FileType     string    `bson:"file_type"`
	FileData     []byte    `bson:"file_data"`
	Status       string    `bson:"status"`
	SubmittedAt  time.Time `bson:"submitted_at"`
}

// KycSubmissionDB is the aggregation result for the admin KYC review queue
type KycSubmissionDB struct {
	ID        string          `bson:"_id"`
	Name      string          `bson:"name"`
	Email     string          `bson:"email"`
	KycStatus string          `bson:"kyc_status"`
	Document  *KycDocumentRef `bson:"document,omitempty"`
}

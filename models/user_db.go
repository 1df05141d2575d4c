package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserResourceDB contains all user and agent details to be stored in the DB.
// The wallet balance lives on the user document; it is only ever mutated
// together with a ledger entry inside the same transaction.
type UserResourceDB struct {
	ID                string               `bson:"_id"`
	Name              string               `bson:"name"`
	Email             string               `bson:"email"`
	PasswordHash      string               `bson:"password_hash"`
	Role              string               `bson:"role"`
	KycStatus         string               `bson:"kyc_status"`
	WalletBalance     primitive.Decimal128 `bson:"wallet_balance"`
	Currency          string               `bson:"currency"`
	CreatedAt         time.Time            `bson:"created_at"`
	ResetTokenHash    string               `bson:"reset_token_hash,omitempty"`
	ResetTokenExpires time.Time            `bson:"reset_token_expires,omitempty"`
}

// AgentSummaryDB is the aggregation result for the admin agent directory,
// joining each agent with their most recent KYC document.
type AgentSummaryDB struct {
	ID        string          `bson:"_id"`
	Name      string          `bson:"name"`
	Email     string          `bson:"email"`
	KycStatus string          `bson:"kyc_status"`
	Document  *KycDocumentRef `bson:"document,omitempty"`
}

// KycDocumentRef is the summary of a KYC document embedded in aggregation
// results, deliberately excluding the binary payload.
type KycDocumentRef struct {
	DocumentType string    `bson:"document_type"`
	FileName     string    `bson:"file_name"`
	Status       string    `bson:"status"`
	SubmittedAt  time.Time `bson:"submitted_at"`
}

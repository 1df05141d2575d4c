package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionResourceDB is an append-only wallet ledger entry. Entries are
// never updated once written; every wallet balance mutation inserts one.
type TransactionResourceDB struct {
	ID                string               `bson:"_id"`
	UserID            string               `bson:"user_id"`
	Amount            primitive.Decimal128 `bson:"amount"`
	Type              string               `bson:"type"`
	Status            string               `bson:"status"`
	Currency          string               `bson:"currency"`
	RelatedEntityType string               `bson:"related_entity_type"`
	RelatedEntityID   string               `bson:"related_entity_id,omitempty"`
	Timestamp         time.Time            `bson:"timestamp"`
}

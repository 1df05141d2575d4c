package models

import "time"

// TransactionResourceRest is the public facing view of a wallet ledger entry
type TransactionResourceRest struct {
	ID                string    `json:"id"`
	Amount            string    `json:"amount"`
	Type              string    `json:"type"`
	Status            string    `json:"status"`
	Currency          string    `json:"currency"`
	RelatedEntityType string    `json:"related_entity_type"`
	RelatedEntityID   string    `json:"related_entity_id,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
}

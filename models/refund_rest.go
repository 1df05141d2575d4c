package models

import "time"

// RefundResourceRest is the public facing view of a refund request
type RefundResourceRest struct {
	ID             string     `json:"id"`
	BookingID      string     `json:"booking_id"`
	Status         string     `json:"status"`
	RefundAmount   string     `json:"refund_amount"`
	Currency       string     `json:"currency"`
	RequestDate    time.Time  `json:"request_date"`
	ResolutionDate *time.Time `json:"resolution_date,omitempty"`
	AdminNotes     string     `json:"admin_notes,omitempty"`
}

// ResolveRefundRequest is the data received in the body of an admin refund resolution
type ResolveRefundRequest struct {
	Status     string `json:"status"      validate:"required,oneof=approved rejected"`
	AdminNotes string `json:"admin_notes"`
}

// PendingRefundRest is an entry in the admin refund review queue
type PendingRefundRest struct {
	ID           string    `json:"id"`
	BookingID    string    `json:"booking_id"`
	BookingType  string    `json:"booking_type"`
	AgentName    string    `json:"agent_name"`
	Status       string    `json:"status"`
	RequestDate  time.Time `json:"request_date"`
	RefundAmount string    `json:"refund_amount"`
	Currency     string    `json:"currency"`
}

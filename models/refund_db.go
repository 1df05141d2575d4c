package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RefundResourceDB contains all refund request details to be stored in the DB.
// At most one refund request exists per booking.
type RefundResourceDB struct {
	ID             string               `bson:"_id"`
	BookingID      string               `bson:"booking_id"`
	UserID         string               `bson:"user_id"`
	Status         string               `bson:"status"`
	RefundAmount   primitive.Decimal128 `bson:"refund_amount"`
	Currency       string               `bson:"currency"`
	RequestDate    time.Time            `bson:"request_date"`
	ResolutionDate *time.Time           `bson:"resolution_date,omitempty"`
	AdminNotes     string               `bson:"admin_notes,omitempty"`
}

// PendingRefundDB is the aggregation result joining a pending refund request
// with the owning agent's name and the booking type
type PendingRefundDB struct {
	ID           string               `bson:"_id"`
	BookingID    string               `bson:"booking_id"`
	BookingType  string               `bson:"booking_type"`
	AgentName    string               `bson:"agent_name"`
	Status       string               `bson:"status"`
	RequestDate  time.Time            `bson:"request_date"`
	RefundAmount primitive.Decimal128 `bson:"refund_amount"`
	Currency     string               `bson:"currency"`
}

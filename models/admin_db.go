package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommissionRatesDB is the persisted commission configuration. A single
// document with a well-known ID replaces the mutable in-process rates the
// portal previously kept, so edits survive restarts and concurrent admins.
type CommissionRatesDB struct {
	ID                   string `bson:"_id"`
	FlightCommissionRate string `bson:"flight_commission_rate"`
	HotelCommissionRate  string `bson:"hotel_commission_rate"`
}

// SupportTicketDB contains a support ticket raised by an agent
type SupportTicketDB struct {
	ID        string    `bson:"_id"`
	Subject   string    `bson:"subject"`
	AgentID   string    `bson:"agent_id"`
	AgentName string    `bson:"agent_name"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"created_at"`
}

// AnalyticsRowDB is one month of booking analytics aggregated from bookings
type AnalyticsRowDB struct {
	Month    string               `bson:"_id"`
	Sales    primitive.Decimal128 `bson:"sales"`
	Bookings int                  `bson:"bookings"`
}

package models

import "time"

// CommissionRatesRest is the public facing commission configuration
type CommissionRatesRest struct {
	FlightCommissionRate string `json:"flight_commission_rate" validate:"required"`
	HotelCommissionRate  string `json:"hotel_commission_rate"  validate:"required"`
}

// SupportTicketRest is the public facing view of a support ticket
type SupportTicketRest struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	AgentName string    `json:"agent"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateTicketRequest is the data received when an agent raises a support ticket
type CreateTicketRequest struct {
	Subject string `json:"subject" validate:"required"`
}

// AnalyticsRowRest is one month of booking analytics
type AnalyticsRowRest struct {
	Name     string `json:"name"`
	Sales    string `json:"sales"`
	Bookings int    `json:"bookings"`
}

// AnalyticsRest is the admin analytics response
type AnalyticsRest struct {
	Months         []AnalyticsRowRest `json:"months"`
	PendingRefunds int64              `json:"pending_refunds"`
	PendingKyc     int64              `json:"pending_kyc"`
}

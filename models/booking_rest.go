package models

import "time"

// FlightRest describes a flight selected from inventory search results
type FlightRest struct {
	Airline      string `json:"airline"      validate:"required"`
	FlightNumber string `json:"flightNumber" validate:"required"`
	Origin       string `json:"origin"       validate:"required"`
	Destination  string `json:"destination"  validate:"required"`
	Departure    string `json:"departure"`
	Arrival      string `json:"arrival"`
	Duration     string `json:"duration"`
	Stops        string `json:"stops"`
	Price        string `json:"price"        validate:"required"`
	Currency     string `json:"currency"`
}

// PassengerRest describes a single passenger on a flight booking
type PassengerRest struct {
	Title     string `json:"title"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
}

// FlightBookingRequest is the data received in the body of a flight booking request
type FlightBookingRequest struct {
	Flight     FlightRest      `json:"flight"     validate:"required"`
	Passengers []PassengerRest `json:"passengers" validate:"required,min=1,dive"`
}

// FlightBookingResponse is returned after a successful flight booking
type FlightBookingResponse struct {
	Message    string `json:"message"`
	PNR        string `json:"pnr"`
	BookingID  string `json:"bookingId"`
	ETicketURL string `json:"eticketUrl"`
}

// HotelRest describes a hotel selected from inventory search results
type HotelRest struct {
	Name     string `json:"name"   validate:"required"`
	City     string `json:"city"   validate:"required"`
	Rating   int    `json:"rating"`
	Currency string `json:"currency"`
}

// RoomRest describes the room to book
type RoomRest struct {
	RoomType string `json:"roomType"`
	Price    string `json:"price" validate:"required"`
	Currency string `json:"currency"`
}

// HotelStayRest describes the stay dates for a hotel booking
type HotelStayRest struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Nights   int    `json:"nights" validate:"required,min=1"`
	Guests   int    `json:"guests"`
}

// HotelBookingRequest is the data received in the body of a hotel booking request
type HotelBookingRequest struct {
	Hotel          HotelRest     `json:"hotel"          validate:"required"`
	Room           RoomRest      `json:"room"           validate:"required"`
	BookingDetails HotelStayRest `json:"bookingDetails" validate:"required"`
}

// HotelBookingResponse is returned after a successful hotel booking
type HotelBookingResponse struct {
	Message        string `json:"message"`
	ConfirmationID string `json:"confirmationId"`
	BookingID      string `json:"bookingId"`
}

// FlightDetailsRest is the flight variant of the booking details
type FlightDetailsRest struct {
	Flight     FlightRest      `json:"flight"`
	Passengers []PassengerRest `json:"passengers"`
}

// HotelDetailsRest is the hotel variant of the booking details
type HotelDetailsRest struct {
	Hotel HotelRest     `json:"hotel"`
	Room  RoomRest      `json:"room"`
	Stay  HotelStayRest `json:"stay"`
}

// BookingResourceRest is the public facing view of a booking
type BookingResourceRest struct {
	ID             string             `json:"id"`
	UserID         string             `json:"user_id,omitempty"`
	BookingType    string             `json:"booking_type"`
	Status         string             `json:"status"`
	TotalAmount    string             `json:"total_amount"`
	Currency       string             `json:"currency"`
	ConfirmationID string             `json:"confirmation_id"`
	BookingDate    time.Time          `json:"booking_date"`
	RefundStatus   string             `json:"refund_status,omitempty"`
	FlightDetails  *FlightDetailsRest `json:"flight_details,omitempty"`
	HotelDetails   *HotelDetailsRest  `json:"hotel_details,omitempty"`
}

// AdminBookingRest is an entry in the admin all-bookings view
type AdminBookingRest struct {
	ID             string    `json:"id"`
	ConfirmationID string    `json:"confirmation_id"`
	AgentName      string    `json:"agent_name"`
	BookingType    string    `json:"booking_type"`
	BookingDate    time.Time `json:"booking_date"`
	TotalAmount    string    `json:"total_amount"`
	Status         string    `json:"status"`
}

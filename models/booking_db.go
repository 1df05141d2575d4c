package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingResourceDB contains all booking details to be stored in the DB.
// Exactly one of FlightDetails or HotelDetails is set, keyed by BookingType.
type BookingResourceDB struct {
	ID             string               `bson:"_id"`
	UserID         string               `bson:"user_id"`
	BookingType    string               `bson:"booking_type"`
	Status         string               `bson:"status"`
	TotalAmount    primitive.Decimal128 `bson:"total_amount"`
	Currency       string               `bson:"currency"`
	ConfirmationID string               `bson:"confirmation_id"`
	BookingDate    time.Time            `bson:"booking_date"`
	FlightDetails  *FlightDetailsDB     `bson:"flight_details,omitempty"`
	HotelDetails   *HotelDetailsDB      `bson:"hotel_details,omitempty"`
}

// FlightDetailsDB is the flight variant of the booking details
type FlightDetailsDB struct {
	Flight     FlightDB      `bson:"flight"`
	Passengers []PassengerDB `bson:"passengers"`
}

// HotelDetailsDB is the hotel variant of the booking details
type HotelDetailsDB struct {
	Hotel HotelDB     `bson:"hotel"`
	Room  RoomDB      `bson:"room"`
	Stay  HotelStayDB `bson:"stay"`
}

// FlightDB describes the booked flight
type FlightDB struct {
	Airline      string `bson:"airline"`
	FlightNumber string `bson:"flight_number"`
	Origin       string `bson:"origin"`
	Destination  string `bson:"destination"`
	Departure    string `bson:"departure"`
	Arrival      string `bson:"arrival"`
	Duration     string `bson:"duration"`
	Stops        string `bson:"stops"`
	Price        string `bson:"price"`
	Currency     string `bson:"currency"`
}

// PassengerDB describes a single passenger on a flight booking
type PassengerDB struct {
	Title     string `bson:"title"`
	FirstName string `bson:"first_name"`
	LastName  string `bson:"last_name"`
}

// HotelDB describes the booked hotel
type HotelDB struct {
	Name     string `bson:"name"`
	City     string `bson:"city"`
	Rating   int    `bson:"rating"`
	Currency string `bson:"currency"`
}

// RoomDB describes the booked room
type RoomDB struct {
	RoomType string `bson:"room_type"`
	Price    string `bson:"price"`
	Currency string `bson:"currency"`
}

// HotelStayDB describes the stay dates for a hotel booking
type HotelStayDB struct {
	CheckIn  string `bson:"check_in"`
	CheckOut string `bson:"check_out"`
	Nights   int    `bson:"nights"`
	Guests   int    `bson:"guests"`
}

// BookingWithRefundDB is the aggregation result joining a booking with the
// status of its refund request, defaulting to "none" when no refund exists
type BookingWithRefundDB struct {
	ID             string               `bson:"_id"`
	UserID         string               `bson:"user_id"`
	BookingType    string               `bson:"booking_type"`
	Status         string               `bson:"status"`
	TotalAmount    primitive.Decimal128 `bson:"total_amount"`
	Currency       string               `bson:"currency"`
	ConfirmationID string               `bson:"confirmation_id"`
	BookingDate    time.Time            `bson:"booking_date"`
	RefundStatus   string               `bson:"refund_status"`
}

// AdminBookingDB is the aggregation result joining a booking with the name of
// the agent that made it
type AdminBookingDB struct {
	ID             string               `bson:"_id"`
	ConfirmationID string               `bson:"confirmation_id"`
	AgentName      string               `bson:"agent_name"`
	BookingType    string               `bson:"booking_type"`
	BookingDate    time.Time            `bson:"booking_date"`
	TotalAmount    primitive.Decimal128 `bson:"total_amount"`
	Status         string               `bson:"status"`
}

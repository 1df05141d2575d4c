package service

import (
	"strings"

	"github.com/b2btravel/booking.api.b2btravel.in/models"
)

// InventoryService serves the mocked flight and hotel inventory the portal
// books against. Search results are informational only; booking requests
// carry the selected offer in full and are priced from it.
type InventoryService struct{}

var mockFlights = []models.FlightOfferRest{
	{ID: 1, Airline: "IndiGo", FlightNumber: "6E 204", Origin: "DEL", Destination: "BOM", Departure: "2024-08-01T08:00:00", Arrival: "2024-08-01T10:00:00", Duration: "2h 0m", Stops: "Non-stop", Price: "4500.00", Currency: "INR"},
	{ID: 2, Airline: "Vistara", FlightNumber: "UK 996", Origin: "DEL", Destination: "BOM", Departure: "2024-08-01T09:30:00", Arrival: "2024-08-01T11:35:00", Duration: "2h 5m", Stops: "Non-stop", Price: "5200.00", Currency: "INR"},
	{ID: 3, Airline: "Air India", FlightNumber: "AI 805", Origin: "DEL", Destination: "BOM", Departure: "2024-08-01T11:00:00", Arrival: "2024-08-01T13:00:00", Duration: "2h 0m", Stops: "Non-stop", Price: "4800.00", Currency: "INR"},
	{ID: 4, Airline: "SpiceJet", FlightNumber: "SG 871", Origin: "DEL", Destination: "BOM", Departure: "2024-08-01T14:00:00", Arrival: "2024-08-01T16:15:00", Duration: "2h 15m", Stops: "Non-stop", Price: "4300.00", Currency: "INR"},
	{ID: 5, Airline: "IndiGo", FlightNumber: "6E 555", Origin: "DEL", Destination: "BOM", Departure: "2024-08-01T16:30:00", Arrival: "2024-08-01T18:30:00", Duration: "2h 0m", Stops: "Non-stop", Price: "4650.00", Currency: "INR"},
	{ID: 6, Airline: "Vistara", FlightNumber: "UK 951", Origin: "DEL", Destination: "BOM", Departure: "2024-08-01T18:00:00", Arrival: "2024-08-01T20:10:00", Duration: "2h 10m", Stops: "Non-stop", Price: "5500.00", Currency: "INR"},
	{ID: 7, Airline: "Air India", FlightNumber: "AI 665", Origin: "DEL", Destination: "BOM", Departure: "2024-08-01T20:30:00", Arrival: "2024-08-01T22:30:00", Duration: "2h 0m", Stops: "Non-stop", Price: "5100.00", Currency: "INR"},
	{ID: 8, Airline: "IndiGo", FlightNumber: "6E 2041", Origin: "DEL", Destination: "BOM", Departure: "2024-08-01T06:00:00", Arrival: "2024-08-01T09:15:00", Duration: "3h 15m", Stops: "1 Stop", Price: "6200.00", Currency: "INR"},
	{ID: 9, Airline: "Vistara", FlightNumber: "UK 888", Origin: "DEL", Destination: "BOM", Departure: "2024-08-01T12:00:00", Arrival: "2024-08-01T16:00:00", Duration: "4h 0m", Stops: "1 Stop", Price: "5800.00", Currency: "INR"},
	{ID: 10, Airline: "IndiGo", FlightNumber: "6E 205", Origin: "BOM", Destination: "DEL", Departure: "2024-08-08T08:00:00", Arrival: "2024-08-08T10:00:00", Duration: "2h 0m", Stops: "Non-stop", Price: "4700.00", Currency: "INR"},
	{ID: 11, Airline: "Vistara", FlightNumber: "UK 997", Origin: "BOM", Destination: "DEL", Departure: "2024-08-08T09:30:00", Arrival: "2024-08-08T11:35:00", Duration: "2h 5m", Stops: "Non-stop", Price: "5400.00", Currency: "INR"},
	{ID: 12, Airline: "Air India", FlightNumber: "AI 806", Origin: "BOM", Destination: "DEL", Departure: "2024-08-08T11:00:00", Arrival: "2024-08-08T13:00:00", Duration: "2h 0m", Stops: "Non-stop", Price: "5000.00", Currency: "INR"},
	{ID: 13, Airline: "IndiGo", FlightNumber: "6E 2042", Origin: "BOM", Destination: "DEL", Departure: "2024-08-08T06:00:00", Arrival: "2024-08-08T09:15:00", Duration: "3h 15m", Stops: "1 Stop", Price: "6400.00", Currency: "INR"},
}

var mockHotels = []models.HotelOfferRest{
	{ID: 1, Name: "The Taj Mahal Palace", City: "Mumbai", Rating: 5, PricePerNight: "15000.00", Currency: "INR"},
	{ID: 2, Name: "The Oberoi", City: "Delhi", Rating: 5, PricePerNight: "12000.00", Currency: "INR"},
	{ID: 3, Name: "The Leela Palace", City: "Bangalore", Rating: 5, PricePerNight: "10000.00", Currency: "INR"},
}

// SearchFlights filters the mock inventory by origin and destination,
// case-insensitively. Return flights are only included for round trips.
func (service *InventoryService) SearchFlights(origin, destination, tripType string) models.FlightSearchResponse {
	response := models.FlightSearchResponse{
		OutboundFlights: []models.FlightOfferRest{},
		ReturnFlights:   []models.FlightOfferRest{},
	}

	for _, flight := range mockFlights {
		if strings.EqualFold(flight.Origin, origin) && strings.EqualFold(flight.Destination, destination) {
			response.OutboundFlights = append(response.OutboundFlights, flight)
		}
	}

	if tripType == "roundtrip" {
		for _, flight := range mockFlights {
			if strings.EqualFold(flight.Origin, destination) && strings.EqualFold(flight.Destination, origin) {
				response.ReturnFlights = append(response.ReturnFlights, flight)
			}
		}
	}

	return response
}

// SearchHotels returns the mock hotel inventory, optionally filtered by city
func (service *InventoryService) SearchHotels(city string) []models.HotelOfferRest {
	if city == "" {
		return mockHotels
	}

	hotels := []models.HotelOfferRest{}
	for _, hotel := range mockHotels {
		if strings.EqualFold(hotel.City, city) {
			hotels = append(hotels, hotel)
		}
	}
	return hotels
}

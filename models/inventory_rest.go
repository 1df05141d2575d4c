package models

// FlightOfferRest is a single flight in mocked inventory search results
type FlightOfferRest struct {
	ID           int    `json:"id"`
	Airline      string `json:"airline"`
	FlightNumber string `json:"flightNumber"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	Departure    string `json:"departure"`
	Arrival      string `json:"arrival"`
	Duration     string `json:"duration"`
	Stops        string `json:"stops"`
	Price        string `json:"price"`
	Currency     string `json:"currency"`
}

// FlightSearchResponse groups outbound and return flights for a search
type FlightSearchResponse struct {
	OutboundFlights []FlightOfferRest `json:"outboundFlights"`
	ReturnFlights   []FlightOfferRest `json:"returnFlights"`
}

// HotelOfferRest is a single hotel in mocked inventory search results
type HotelOfferRest struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	City          string `json:"city"`
	Rating        int    `json:"rating"`
	PricePerNight string `json:"price_per_night"`
	Currency      string `json:"currency"`
}

package transformers

import (
	"github.com/b2btravel/booking.api.b2btravel.in/models"
)

// BookingTransformer transforms booking resource data between rest and database models
type BookingTransformer struct{}

// TransformFlightDetailsToDB transforms the flight variant of a booking
// request into its database model
func (bt BookingTransformer) TransformFlightDetailsToDB(rest models.FlightBookingRequest) *models.FlightDetailsDB {
	passengers := make([]models.PassengerDB, len(rest.Passengers))
	for i, passenger := range rest.Passengers {
		passengers[i] = models.PassengerDB(passenger)
	}

	return &models.FlightDetailsDB{
		Flight:     models.FlightDB(rest.Flight),
		Passengers: passengers,
	}
}

// TransformHotelDetailsToDB transforms the hotel variant of a booking request
// into its database model
func (bt BookingTransformer) TransformHotelDetailsToDB(rest models.HotelBookingRequest) *models.HotelDetailsDB {
	return &models.HotelDetailsDB{
		Hotel: models.HotelDB(rest.Hotel),
		Room:  models.RoomDB(rest.Room),
		Stay:  models.HotelStayDB(rest.BookingDetails),
	}
}

// TransformToRest transforms a booking database model into its rest model,
// including the type-specific details
func (bt BookingTransformer) TransformToRest(dbResource models.BookingResourceDB) models.BookingResourceRest {
	rest := models.BookingResourceRest{
		ID:             dbResource.ID,
		UserID:         dbResource.UserID,
		BookingType:    dbResource.BookingType,
		Status:         dbResource.Status,
		TotalAmount:    FormatAmount(dbResource.TotalAmount),
		Currency:       dbResource.Currency,
		ConfirmationID: dbResource.ConfirmationID,
		BookingDate:    dbResource.BookingDate,
	}

	if dbResource.FlightDetails != nil {
		passengers := make([]models.PassengerRest, len(dbResource.FlightDetails.Passengers))
		for i, passenger := range dbResource.FlightDetails.Passengers {
			passengers[i] = models.PassengerRest(passenger)
		}
		rest.FlightDetails = &models.FlightDetailsRest{
			Flight:     models.FlightRest(dbResource.FlightDetails.Flight),
			Passengers: passengers,
		}
	}

	if dbResource.HotelDetails != nil {
		rest.HotelDetails = &models.HotelDetailsRest{
			Hotel: models.HotelRest(dbResource.HotelDetails.Hotel),
			Room:  models.RoomRest(dbResource.HotelDetails.Room),
			Stay:  models.HotelStayRest(dbResource.HotelDetails.Stay),
		}
	}

	return rest
}

// TransformWithRefundToRest transforms a booking-with-refund-status
// aggregation row into the rest model returned to agents
func (bt BookingTransformer) TransformWithRefundToRest(dbResource models.BookingWithRefundDB) models.BookingResourceRest {
	return models.BookingResourceRest{
		ID:             dbResource.ID,
		BookingType:    dbResource.BookingType,
		Status:         dbResource.Status,
		TotalAmount:    FormatAmount(dbResource.TotalAmount),
		Currency:       dbResource.Currency,
		ConfirmationID: dbResource.ConfirmationID,
		BookingDate:    dbResource.BookingDate,
		RefundStatus:   dbResource.RefundStatus,
	}
}

// TransformAdminBookingToRest transforms an admin booking aggregation row
// into its rest model
func (bt BookingTransformer) TransformAdminBookingToRest(dbResource models.AdminBookingDB) models.AdminBookingRest {
	return models.AdminBookingRest{
		ID:             dbResource.ID,
		ConfirmationID: dbResource.ConfirmationID,
		AgentName:      dbResource.AgentName,
		BookingType:    dbResource.BookingType,
		BookingDate:    dbResource.BookingDate,
		TotalAmount:    FormatAmount(dbResource.TotalAmount),
		Status:         dbResource.Status,
	}
}

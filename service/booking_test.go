package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/b2btravel/booking.api.b2btravel.in/config"
	"github.com/b2btravel/booking.api.b2btravel.in/dao"
	"github.com/b2btravel/booking.api.b2btravel.in/models"

	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"
)

var defaultUser = models.AuthUserDetails{
	ID:   "user-id",
	Name: "Asha Verma",
	Role: "agent",
}

func createMockBookingService(mockDAO *dao.MockDAO, cfg *config.Config) BookingService {
	return BookingService{
		DAO:    mockDAO,
		Config: *cfg,
	}
}

func flightBookingRequest() models.FlightBookingRequest {
	return models.FlightBookingRequest{
		Flight: models.FlightRest{
			Airline:      "IndiGo",
			FlightNumber: "6E 204",
			Origin:       "DEL",
			Destination:  "BOM",
			Price:        "4500.00",
			Currency:     "INR",
		},
		Passengers: []models.PassengerRest{
			{Title: "Mr", FirstName: "Rohan", LastName: "Mehta"},
			{Title: "Ms", FirstName: "Priya", LastName: "Mehta"},
		},
	}
}

func hotelBookingRequest() models.HotelBookingRequest {
	return models.HotelBookingRequest{
		Hotel: models.HotelRest{Name: "The Taj Mahal Palace", City: "Mumbai", Rating: 5, Currency: "INR"},
		Room:  models.RoomRest{RoomType: "Deluxe", Price: "3000.00", Currency: "INR"},
		BookingDetails: models.HotelStayRest{
			CheckIn:  "2026-10-01",
			CheckOut: "2026-10-04",
			Nights:   3,
			Guests:   2,
		},
	}
}

func TestUnitBookFlight(t *testing.T) {
	cfg, _ := config.Get()
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/api/flights/book", nil)

	Convey("Invalid price returns invalid data", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		service := createMockBookingService(mock, cfg)

		request := flightBookingRequest()
		request.Flight.Price = "not-a-number"

		response, responseType, err := service.BookFlight(req, defaultUser, request)

		So(response, ShouldBeNil)
		So(responseType, ShouldEqual, InvalidData)
		So(err, ShouldNotBeNil)
	})

	Convey("Zero price returns invalid data", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		service := createMockBookingService(mock, cfg)

		request := flightBookingRequest()
		request.Flight.Price = "0"

		_, responseType, err := service.BookFlight(req, defaultUser, request)

		So(responseType, ShouldEqual, InvalidData)
		So(err, ShouldNotBeNil)
	})

	Convey("Insufficient wallet balance is reported as such", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().CreateBookingWithDebit(gomock.Any(), gomock.Any(), gomock.Any()).Return(dao.ErrInsufficientFunds)
		service := createMockBookingService(mock, cfg)

		response, responseType, err := service.BookFlight(req, defaultUser, flightBookingRequest())

		So(response, ShouldBeNil)
		So(responseType, ShouldEqual, InsufficientFunds)
		So(err.Error(), ShouldEqual, "insufficient wallet balance")
	})

	Convey("Database error booking flight", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().CreateBookingWithDebit(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("error"))
		service := createMockBookingService(mock, cfg)

		_, responseType, err := service.BookFlight(req, defaultUser, flightBookingRequest())

		So(responseType, ShouldEqual, Error)
		So(err, ShouldNotBeNil)
	})

	Convey("Flight booked successfully debits the full fare for all passengers", t, func() {
		var captured *models.BookingResourceDB
		var capturedEntry *models.TransactionResourceDB

		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().CreateBookingWithDebit(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, booking *models.BookingResourceDB, entry *models.TransactionResourceDB) error {
				captured = booking
				capturedEntry = entry
				return nil
			})
		service := createMockBookingService(mock, cfg)

		response, responseType, err := service.BookFlight(req, defaultUser, flightBookingRequest())

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(response.PNR, ShouldEqual, captured.ConfirmationID)
		So(response.PNR, ShouldStartWith, "B2B")
		So(regexp.MustCompile(`^B2B\d+$`).MatchString(response.PNR), ShouldBeTrue)
		So(response.ETicketURL, ShouldEqual, "/api/bookings/"+captured.ID+"/eticket")

		So(captured.UserID, ShouldEqual, "user-id")
		So(captured.BookingType, ShouldEqual, BookingTypeFlight)
		So(captured.Status, ShouldEqual, BookingStatusConfirmed)
		So(captured.TotalAmount.String(), ShouldEqual, "9000.00")
		So(captured.FlightDetails, ShouldNotBeNil)
		So(captured.FlightDetails.Passengers, ShouldHaveLength, 2)
		So(captured.HotelDetails, ShouldBeNil)

		So(capturedEntry.Type, ShouldEqual, TransactionTypeDebit)
		So(capturedEntry.Amount.String(), ShouldEqual, "9000.00")
		So(capturedEntry.RelatedEntityType, ShouldEqual, "booking")
		So(capturedEntry.RelatedEntityID, ShouldEqual, captured.ID)
	})
}

func TestUnitBookHotel(t *testing.T) {
	cfg, _ := config.Get()
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/api/hotels/book", nil)

	Convey("Invalid room price returns invalid data", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		service := createMockBookingService(mock, cfg)

		request := hotelBookingRequest()
		request.Room.Price = ""

		_, responseType, err := service.BookHotel(req, defaultUser, request)

		So(responseType, ShouldEqual, InvalidData)
		So(err, ShouldNotBeNil)
	})

	Convey("Hotel booked successfully debits the rate for the full stay", t, func() {
		var captured *models.BookingResourceDB

		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().CreateBookingWithDebit(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, booking *models.BookingResourceDB, entry *models.TransactionResourceDB) error {
				captured = booking
				return nil
			})
		service := createMockBookingService(mock, cfg)

		response, responseType, err := service.BookHotel(req, defaultUser, hotelBookingRequest())

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(response.ConfirmationID, ShouldStartWith, "HTL")
		So(captured.BookingType, ShouldEqual, BookingTypeHotel)
		So(captured.TotalAmount.String(), ShouldEqual, "9000.00")
		So(captured.HotelDetails, ShouldNotBeNil)
		So(captured.HotelDetails.Stay.Nights, ShouldEqual, 3)
		So(captured.FlightDetails, ShouldBeNil)
	})
}

func TestUnitGetBooking(t *testing.T) {
	cfg, _ := config.Get()
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/booking-id", nil)

	Convey("Booking not found", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().GetBooking(gomock.Any(), "booking-id").Return(nil, dao.ErrNotFound)
		service := createMockBookingService(mock, cfg)

		booking, responseType, err := service.GetBooking(req, "booking-id")

		So(booking, ShouldBeNil)
		So(responseType, ShouldEqual, NotFound)
		So(err, ShouldNotBeNil)
	})

	Convey("Booking retrieved successfully", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().GetBooking(gomock.Any(), "booking-id").Return(&models.BookingResourceDB{
			ID:             "booking-id",
			UserID:         "user-id",
			BookingType:    BookingTypeFlight,
			Status:         BookingStatusConfirmed,
			ConfirmationID: "B2B1700000000000",
		}, nil)
		service := createMockBookingService(mock, cfg)

		booking, responseType, err := service.GetBooking(req, "booking-id")

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(booking.ConfirmationID, ShouldEqual, "B2B1700000000000")
	})
}

func TestUnitListBookings(t *testing.T) {
	cfg, _ := config.Get()
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)

	Convey("Database error listing bookings", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().ListBookingsForUser(gomock.Any(), "user-id").Return(nil, errors.New("error"))
		service := createMockBookingService(mock, cfg)

		bookings, responseType, err := service.ListBookings(req, "user-id")

		So(bookings, ShouldBeNil)
		So(responseType, ShouldEqual, Error)
		So(err, ShouldNotBeNil)
	})

	Convey("Bookings listed with refund status", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().ListBookingsForUser(gomock.Any(), "user-id").Return([]models.BookingWithRefundDB{
			{ID: "booking-1", BookingType: BookingTypeFlight, RefundStatus: "pending"},
			{ID: "booking-2", BookingType: BookingTypeHotel, RefundStatus: "none"},
		}, nil)
		service := createMockBookingService(mock, cfg)

		bookings, responseType, err := service.ListBookings(req, "user-id")

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(bookings, ShouldHaveLength, 2)
		So(bookings[0].RefundStatus, ShouldEqual, "pending")
		So(bookings[1].RefundStatus, ShouldEqual, "none")
	})
}

func TestUnitGenerateReference(t *testing.T) {
	Convey("References carry the prefix followed by millisecond digits", t, func() {
		pnr := generateReference("B2B")
		So(regexp.MustCompile(`^B2B\d{13}$`).MatchString(pnr), ShouldBeTrue)

		confirmation := generateReference("HTL")
		So(regexp.MustCompile(`^HTL\d{13}$`).MatchString(confirmation), ShouldBeTrue)
	})
}

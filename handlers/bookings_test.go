package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/b2btravel/booking.api.b2btravel.in/config"
	"github.com/b2btravel/booking.api.b2btravel.in/dao"
	"github.com/b2btravel/booking.api.b2btravel.in/helpers"
	"github.com/b2btravel/booking.api.b2btravel.in/models"
	"github.com/b2btravel/booking.api.b2btravel.in/service"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	. "github.com/smartystreets/goconvey/convey"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const flightBookingBody = `{
	"flight": {
		"airline": "IndiGo",
		"flightNumber": "6E 204",
		"origin": "DEL",
		"destination": "BOM",
		"price": "4500.00",
		"currency": "INR"
	},
	"passengers": [
		{"title": "Ms", "firstName": "Asha", "lastName": "Verma"}
	]
}`

const hotelBookingBody = `{
	"hotel": {"name": "The Oberoi", "city": "Delhi", "rating": 5, "currency": "INR"},
	"room": {"roomType": "Deluxe", "price": "12000.00", "currency": "INR"},
	"bookingDetails": {"checkIn": "2026-09-10", "checkOut": "2026-09-12", "nights": 2, "guests": 2}
}`

func stubBookingMessage() func() {
	previous := handleBookingMessage
	handleBookingMessage = func(bookingID, confirmationID, bookingType string) error { return nil }
	return func() { handleBookingMessage = previous }
}

func TestUnitHandleBookFlight(t *testing.T) {
	cfg, _ := config.Get()
	defer stubBookingMessage()()

	Convey("Missing identity in context", t, func() {
		req := httptest.NewRequest("POST", "/api/flights/book", strings.NewReader(flightBookingBody))
		w := httptest.NewRecorder()

		HandleBookFlight(w, req)

		So(w.Code, ShouldEqual, http.StatusInternalServerError)
	})

	Convey("Invalid request body", t, func() {
		bookingService = &service.BookingService{DAO: dao.NewMockDAO(gomock.NewController(t)), Config: *cfg}

		req := httptest.NewRequest("POST", "/api/flights/book", strings.NewReader(`{"flight":{}}`))
		req = helpers.SetUserDetailsInContext(req, testUserDetails)
		w := httptest.NewRecorder()

		HandleBookFlight(w, req)

		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Insufficient wallet balance", t, func() {
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().CreateBookingWithDebit(gomock.Any(), gomock.Any(), gomock.Any()).Return(dao.ErrInsufficientFunds)
		bookingService = &service.BookingService{DAO: mockDao, Config: *cfg}

		req := httptest.NewRequest("POST", "/api/flights/book", strings.NewReader(flightBookingBody))
		req = helpers.SetUserDetailsInContext(req, testUserDetails)
		w := httptest.NewRecorder()

		HandleBookFlight(w, req)

		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(w.Body.String(), ShouldContainSubstring, "insufficient wallet balance")
	})

	Convey("Successful flight booking", t, func() {
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().CreateBookingWithDebit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		bookingService = &service.BookingService{DAO: mockDao, Config: *cfg}

		req := httptest.NewRequest("POST", "/api/flights/book", strings.NewReader(flightBookingBody))
		req = helpers.SetUserDetailsInContext(req, testUserDetails)
		w := httptest.NewRecorder()

		HandleBookFlight(w, req)

		So(w.Code, ShouldEqual, http.StatusCreated)
		So(w.Body.String(), ShouldContainSubstring, `"pnr":"B2B`)
	})
}

func TestUnitHandleBookHotel(t *testing.T) {
	cfg, _ := config.Get()
	defer stubBookingMessage()()

	Convey("Invalid request body", t, func() {
		bookingService = &service.BookingService{DAO: dao.NewMockDAO(gomock.NewController(t)), Config: *cfg}

		req := httptest.NewRequest("POST", "/api/hotels/book", strings.NewReader(`{"hotel":{}}`))
		req = helpers.SetUserDetailsInContext(req, testUserDetails)
		w := httptest.NewRecorder()

		HandleBookHotel(w, req)

		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Successful hotel booking", t, func() {
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().CreateBookingWithDebit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		bookingService = &service.BookingService{DAO: mockDao, Config: *cfg}

		req := httptest.NewRequest("POST", "/api/hotels/book", strings.NewReader(hotelBookingBody))
		req = helpers.SetUserDetailsInContext(req, testUserDetails)
		w := httptest.NewRecorder()

		HandleBookHotel(w, req)

		So(w.Code, ShouldEqual, http.StatusCreated)
		So(w.Body.String(), ShouldContainSubstring, `"confirmationId":"HTL`)
	})
}

func TestUnitHandleGetBookings(t *testing.T) {
	cfg, _ := config.Get()

	Convey("Successful list of bookings", t, func() {
		amount, _ := primitive.ParseDecimal128("4500.00")
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().ListBookingsForUser(gomock.Any(), "user-id").Return([]models.BookingWithRefundDB{
			{ID: "booking-id", BookingType: "flight", Status: "confirmed", TotalAmount: amount, ConfirmationID: "B2B1700000000000", RefundStatus: "none"},
		}, nil)
		bookingService = &service.BookingService{DAO: mockDao, Config: *cfg}

		req := httptest.NewRequest("GET", "/api/bookings", nil)
		req = helpers.SetUserDetailsInContext(req, testUserDetails)
		w := httptest.NewRecorder()

		HandleGetBookings(w, req)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, `"total_amount":"4500.00"`)
	})
}

func TestUnitHandleGetETicket(t *testing.T) {
	cfg, _ := config.Get()

	amount, _ := primitive.ParseDecimal128("4500.00")
	booking := &models.BookingResourceDB{
		ID:             "booking-id",
		UserID:         "user-id",
		BookingType:    "flight",
		Status:         "confirmed",
		TotalAmount:    amount,
		Currency:       "INR",
		ConfirmationID: "B2B1700000000000",
		FlightDetails: &models.FlightDetailsDB{
			Flight:     models.FlightDB{Airline: "IndiGo", FlightNumber: "6E 204", Origin: "DEL", Destination: "BOM"},
			Passengers: []models.PassengerDB{{Title: "Ms", FirstName: "Asha", LastName: "Verma"}},
		},
	}

	Convey("Missing booking in context", t, func() {
		req := httptest.NewRequest("GET", "/api/bookings/booking-id/eticket", nil)
		w := httptest.NewRecorder()

		HandleGetETicket(w, req)

		So(w.Code, ShouldEqual, http.StatusInternalServerError)
	})

	Convey("Successful e-ticket download", t, func() {
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().GetUserByID(gomock.Any(), "user-id").Return(&models.UserResourceDB{ID: "user-id", Name: "Asha Verma"}, nil)
		authService = &service.AuthService{DAO: mockDao, Config: *cfg}
		eTicketService = &service.ETicketService{}

		req := httptest.NewRequest("GET", "/api/bookings/booking-id/eticket", nil)
		req = helpers.SetBookingInContext(req, booking)
		w := httptest.NewRecorder()

		HandleGetETicket(w, req)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Header().Get("Content-Type"), ShouldEqual, "application/pdf")
		So(w.Body.String(), ShouldStartWith, "%PDF-")
	})
}

func TestUnitHandleRequestRefund(t *testing.T) {
	cfg, _ := config.Get()

	Convey("No booking id in path", t, func() {
		req := httptest.NewRequest("POST", "/api/bookings//refund", nil)
		req = helpers.SetUserDetailsInContext(req, testUserDetails)
		w := httptest.NewRecorder()

		HandleRequestRefund(w, req)

		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Successful refund request", t, func() {
		amount, _ := primitive.ParseDecimal128("4500.00")
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().GetBooking(gomock.Any(), "booking-id").Return(&models.BookingResourceDB{
			ID:          "booking-id",
			UserID:      "user-id",
			Status:      "confirmed",
			TotalAmount: amount,
			Currency:    "INR",
		}, nil)
		mockDao.EXPECT().GetRefundByBookingID(gomock.Any(), "booking-id").Return(nil, dao.ErrNotFound)
		mockDao.EXPECT().CreateRefund(gomock.Any(), gomock.Any()).Return(nil)
		refundService = &service.RefundService{DAO: mockDao, Config: *cfg}

		req := httptest.NewRequest("POST", "/api/bookings/booking-id/refund", nil)
		req = mux.SetURLVars(req, map[string]string{"booking_id": "booking-id"})
		req = helpers.SetUserDetailsInContext(req, testUserDetails)
		w := httptest.NewRecorder()

		HandleRequestRefund(w, req)

		So(w.Code, ShouldEqual, http.StatusCreated)
		So(w.Body.String(), ShouldContainSubstring, `"refund_amount":"4500.00"`)
	})
}

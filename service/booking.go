package service

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/b2btravel/booking.api.b2btravel.in/config"
	"github.com/b2btravel/booking.api.b2btravel.in/dao"
	"github.com/b2btravel/booking.api.b2btravel.in/models"
	"github.com/b2btravel/booking.api.b2btravel.in/transformers"

	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingTypeFlight = "flight"
	BookingTypeHotel  = "hotel"

	BookingStatusConfirmed = "confirmed"
	BookingStatusRefunded  = "refunded"

	TransactionTypeDebit  = "debit"
	TransactionTypeCredit = "credit"

	TransactionStatusCompleted = "completed"
)

// BookingService contains the DAO for db access and books inventory against
// agent wallets
type BookingService struct {
	DAO    dao.DAO
	Config config.Config
}

// BookFlight debits the agent's wallet by the full fare and records the
// booking with a fresh PNR. The debit, the booking and the ledger entry
// commit together or not at all.
func (service *BookingService) BookFlight(req *http.Request, user models.AuthUserDetails, request models.FlightBookingRequest) (*models.FlightBookingResponse, ResponseType, error) {
	cost, err := bookingCost(request.Flight.Price, int64(len(request.Passengers)))
	if err != nil {
		log.ErrorR(req, fmt.Errorf("invalid flight price: [%v]", err))
		return nil, InvalidData, err
	}

	currency := request.Flight.Currency
	if currency == "" {
		currency = service.Config.DefaultCurrency
	}

	booking := &models.BookingResourceDB{
		ID:             generateID(),
		UserID:         user.ID,
		BookingType:    BookingTypeFlight,
		Status:         BookingStatusConfirmed,
		TotalAmount:    cost,
		Currency:       currency,
		ConfirmationID: generateReference("B2B"),
		BookingDate:    time.Now(),
		FlightDetails:  transformers.BookingTransformer{}.TransformFlightDetailsToDB(request),
	}

	responseType, err := service.debitAndBook(req, booking)
	if err != nil {
		return nil, responseType, err
	}

	return &models.FlightBookingResponse{
		Message:    "Flight booked successfully!",
		PNR:        booking.ConfirmationID,
		BookingID:  booking.ID,
		ETicketURL: "/api/bookings/" + booking.ID + "/eticket",
	}, Success, nil
}

// BookHotel debits the agent's wallet by the room rate for the full stay and
// records the booking with a fresh confirmation ID
func (service *BookingService) BookHotel(req *http.Request, user models.AuthUserDetails, request models.HotelBookingRequest) (*models.HotelBookingResponse, ResponseType, error) {
	cost, err := bookingCost(request.Room.Price, int64(request.BookingDetails.Nights))
	if err != nil {
		log.ErrorR(req, fmt.Errorf("invalid room price: [%v]", err))
		return nil, InvalidData, err
	}

	currency := request.Room.Currency
	if currency == "" {
		currency = service.Config.DefaultCurrency
	}

	booking := &models.BookingResourceDB{
		ID:             generateID(),
		UserID:         user.ID,
		BookingType:    BookingTypeHotel,
		Status:         BookingStatusConfirmed,
		TotalAmount:    cost,
		Currency:       currency,
		ConfirmationID: generateReference("HTL"),
		BookingDate:    time.Now(),
		HotelDetails:   transformers.BookingTransformer{}.TransformHotelDetailsToDB(request),
	}

	responseType, err := service.debitAndBook(req, booking)
	if err != nil {
		return nil, responseType, err
	}

	return &models.HotelBookingResponse{
		Message:        "Hotel booked successfully!",
		ConfirmationID: booking.ConfirmationID,
		BookingID:      booking.ID,
	}, Success, nil
}

func (service *BookingService) debitAndBook(req *http.Request, booking *models.BookingResourceDB) (ResponseType, error) {
	entry := &models.TransactionResourceDB{
		ID:                uuid.NewString(),
		UserID:            booking.UserID,
		Amount:            booking.TotalAmount,
		Type:              TransactionTypeDebit,
		Status:            TransactionStatusCompleted,
		Currency:          booking.Currency,
		RelatedEntityType: "booking",
		RelatedEntityID:   booking.ID,
		Timestamp:         booking.BookingDate,
	}

	err := service.DAO.CreateBookingWithDebit(req.Context(), booking, entry)
	if err != nil {
		if errors.Is(err, dao.ErrInsufficientFunds) {
			return InsufficientFunds, errors.New("insufficient wallet balance")
		}
		if errors.Is(err, dao.ErrNotFound) {
			return NotFound, errors.New("agent not found")
		}
		err = fmt.Errorf("error creating booking in database: [%v]", err)
		log.ErrorR(req, err)
		return Error, err
	}

	log.InfoR(req, "booking created", log.Data{
		"booking_id":      booking.ID,
		"confirmation_id": booking.ConfirmationID,
		"booking_type":    booking.BookingType,
		"total_amount":    booking.TotalAmount.String(),
	})

	return Success, nil
}

// GetBooking retrieves a single booking with its type-specific details
func (service *BookingService) GetBooking(req *http.Request, bookingID string) (*models.BookingResourceRest, ResponseType, error) {
	booking, err := service.DAO.GetBooking(req.Context(), bookingID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, NotFound, errors.New("booking not found")
		}
		err = fmt.Errorf("error getting booking from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	rest := transformers.BookingTransformer{}.TransformToRest(*booking)
	return &rest, Success, nil
}

// ListBookings retrieves the agent's bookings with the status of any refund
// request against them
func (service *BookingService) ListBookings(req *http.Request, userID string) ([]models.BookingResourceRest, ResponseType, error) {
	bookings, err := service.DAO.ListBookingsForUser(req.Context(), userID)
	if err != nil {
		err = fmt.Errorf("error listing bookings from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	rest := make([]models.BookingResourceRest, len(bookings))
	for i, booking := range bookings {
		rest[i] = transformers.BookingTransformer{}.TransformWithRefundToRest(booking)
	}
	return rest, Success, nil
}

// bookingCost multiplies a unit price by a quantity, requiring both to be
// positive, and returns the total ready for storage
func bookingCost(price string, quantity int64) (primitive.Decimal128, error) {
	unitPrice, err := decimal.NewFromString(price)
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("invalid price [%s]", price)
	}
	if unitPrice.LessThanOrEqual(decimal.Zero) {
		return primitive.Decimal128{}, fmt.Errorf("price must be positive [%s]", price)
	}
	if quantity < 1 {
		return primitive.Decimal128{}, fmt.Errorf("quantity must be positive [%d]", quantity)
	}

	total := unitPrice.Mul(decimal.NewFromInt(quantity))
	return primitive.ParseDecimal128(total.StringFixed(2))
}

// Generates a string of 20 numbers made up of 7 random numbers, followed by 13 numbers derived from the current time
func generateID() (i string) {
	rand.Seed(time.Now().UTC().UnixNano())
	ranNumber := fmt.Sprintf("%07d", rand.Intn(9999999))
	millis := strconv.FormatInt(time.Now().UnixNano()/int64(time.Millisecond), 10)
	return ranNumber + millis
}

// generateReference prefixes 13 numbers derived from the current time,
// producing confirmation IDs such as B2B1722496800000
func generateReference(prefix string) string {
	millis := strconv.FormatInt(time.Now().UnixNano()/int64(time.Millisecond), 10)
	return prefix + millis
}

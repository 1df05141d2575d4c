package dao

import (
	"context"
	"errors"
	"time"

	"github.com/b2btravel/booking.api.b2btravel.in/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sentinel errors returned by DAO implementations so that services can map
// storage outcomes to response types without inspecting driver errors.
var (
	// ErrNotFound is returned when a referenced entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when registering an email that already exists
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrInsufficientFunds is returned when a debit would overdraw the wallet
	ErrInsufficientFunds = errors.New("insufficient wallet balance")

	// ErrRefundExists is returned when a booking already has a refund request
	ErrRefundExists = errors.New("refund request already exists for booking")

	// ErrRefundResolved is returned when resolving a refund that is no longer
	// pending; the refund returned alongside it carries the resolved status
	ErrRefundResolved = errors.New("refund request already resolved")
)

// DAO is an interface for accessing resources in a backend store. Compound
// ledger operations (debit-and-book, resolve-and-credit) are atomic: either
// every write in the operation is visible or none are.
type DAO interface {
	// Users
	CreateUser(ctx context.Context, user *models.UserResourceDB) error
	GetUserByID(ctx context.Context, id string) (*models.UserResourceDB, error)
	GetUserByEmail(ctx context.Context, email string) (*models.UserResourceDB, error)
	GetUserByResetToken(ctx context.Context, tokenHash string) (*models.UserResourceDB, error)
	SetResetToken(ctx context.Context, userID string, tokenHash string, expires time.Time) error
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error

	// Ledger engine
	CreateBookingWithDebit(ctx context.Context, booking *models.BookingResourceDB, entry *models.TransactionResourceDB) error
	CreditWallet(ctx context.Context, userID string, amount primitive.Decimal128, entry *models.TransactionResourceDB) (*models.UserResourceDB, error)
	ResolveRefundWithCredit(ctx context.Context, refundID string, status string, notes string, resolvedAt time.Time) (*models.RefundResourceDB, error)

	// Bookings
	GetBooking(ctx context.Context, id string) (*models.BookingResourceDB, error)
	ListBookingsForUser(ctx context.Context, userID string) ([]models.BookingWithRefundDB, error)
	ListAllBookings(ctx context.Context) ([]models.AdminBookingDB, error)

	// Refunds
	CreateRefund(ctx context.Context, refund *models.RefundResourceDB) error
	GetRefundByBookingID(ctx context.Context, bookingID string) (*models.RefundResourceDB, error)
	ListPendingRefunds(ctx context.Context) ([]models.PendingRefundDB, error)
	CountPendingRefunds(ctx context.Context) (int64, error)

	// Wallet ledger reads
	ListTransactionsForUser(ctx context.Context, userID string) ([]models.TransactionResourceDB, error)

	// KYC
	CreateKycDocument(ctx context.Context, doc *models.KycDocumentDB) error
	GetLatestKycDocument(ctx context.Context, userID string) (*models.KycDocumentDB, error)
	UpdateKycStatus(ctx context.Context, userID string, status string, clearDocuments bool) error
	ListPendingKyc(ctx context.Context) ([]models.KycSubmissionDB, error)
	CountPendingKyc(ctx context.Context) (int64, error)

	// Admin back-office
	ListAgents(ctx context.Context) ([]models.AgentSummaryDB, error)
	GetCommissionRates(ctx context.Context) (*models.CommissionRatesDB, error)
	UpsertCommissionRates(ctx context.Context, rates *models.CommissionRatesDB) error
	CreateSupportTicket(ctx context.Context, ticket *models.SupportTicketDB) error
	ListSupportTickets(ctx context.Context) ([]models.SupportTicketDB, error)
	GetMonthlyBookingAnalytics(ctx context.Context) ([]models.AnalyticsRowDB, error)
}

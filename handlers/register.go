package handlers

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"

	"github.com/b2btravel/booking.api.b2btravel.in/config"
	"github.com/b2btravel/booking.api.b2btravel.in/dao"
	"github.com/b2btravel/booking.api.b2btravel.in/interceptors"
	"github.com/b2btravel/booking.api.b2btravel.in/service"
)

var authService *service.AuthService
var bookingService *service.BookingService
var refundService *service.RefundService
var walletService *service.WalletService
var kycService *service.KycService
var adminService *service.AdminService
var inventoryService *service.InventoryService
var eTicketService *service.ETicketService

// Register defines the route mappings for the main router and its subrouters
func Register(mainRouter *mux.Router, cfg config.Config, m dao.DAO) {
	authService = &service.AuthService{DAO: m, Config: cfg}
	bookingService = &service.BookingService{DAO: m, Config: cfg}
	refundService = &service.RefundService{DAO: m, Config: cfg}
	walletService = &service.WalletService{DAO: m, Config: cfg}
	kycService = &service.KycService{DAO: m, Config: cfg}
	adminService = &service.AdminService{DAO: m, Config: cfg}
	inventoryService = &service.InventoryService{}
	eTicketService = &service.ETicketService{}

	ba := &interceptors.BookingAuthenticationInterceptor{DAO: m}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// Create subrouters. Routes carry different middleware chains (public,
	// agent auth, booking ownership, admin role), so the router needs to be
	// split up. This allows per-subrouter middleware.

	// registration, login and the password reset flow are unauthenticated
	publicAuthRouter := mainRouter.PathPrefix("/api/auth").Subrouter()
	publicAuthRouter.HandleFunc("/register", HandleRegister).Methods("POST").Name("register")
	publicAuthRouter.HandleFunc("/login", HandleLogin).Methods("POST").Name("login")
	publicAuthRouter.HandleFunc("/forgot-password", HandleForgotPassword).Methods("POST").Name("forgot-password")
	publicAuthRouter.HandleFunc("/reset-password", HandleResetPassword).Methods("POST").Name("reset-password")

	// flight search serves the public fare display, so no auth
	flightSearchRouter := mainRouter.PathPrefix("/api/flights/search").Subrouter()
	flightSearchRouter.HandleFunc("", HandleSearchFlights).Methods("GET").Name("search-flights")

	agentRouter := mainRouter.PathPrefix("/api").Subrouter()
	agentRouter.HandleFunc("/users/profile", HandleGetProfile).Methods("GET").Name("get-profile")
	agentRouter.HandleFunc("/users/wallet", HandleGetWallet).Methods("GET").Name("get-wallet")
	agentRouter.HandleFunc("/users/wallet/topup", HandleTopUpWallet).Methods("POST").Name("topup-wallet")
	agentRouter.HandleFunc("/users/transactions", HandleGetTransactions).Methods("GET").Name("get-transactions")
	agentRouter.HandleFunc("/users/kyc", HandleSubmitKyc).Methods("POST").Name("submit-kyc")
	agentRouter.HandleFunc("/users/kyc/status", HandleGetKycStatus).Methods("GET").Name("get-kyc-status")
	agentRouter.HandleFunc("/flights/book", HandleBookFlight).Methods("POST").Name("book-flight")
	agentRouter.HandleFunc("/hotels/search", HandleSearchHotels).Methods("GET").Name("search-hotels")
	agentRouter.HandleFunc("/hotels/book", HandleBookHotel).Methods("POST").Name("book-hotel")
	agentRouter.HandleFunc("/bookings", HandleGetBookings).Methods("GET").Name("get-bookings")
	agentRouter.HandleFunc("/bookings/{booking_id}/refund", HandleRequestRefund).Methods("POST").Name("request-refund")
	agentRouter.HandleFunc("/tickets", HandleCreateTicket).Methods("POST").Name("create-ticket")

	// get-booking and eticket endpoints need booking ownership auth, so need their own subrouter
	bookingRouter := mainRouter.PathPrefix("/api/bookings/{booking_id}").Subrouter()
	bookingRouter.HandleFunc("", HandleGetBooking).Methods("GET").Name("get-booking")
	bookingRouter.HandleFunc("/eticket", HandleGetETicket).Methods("GET").Name("get-eticket")

	adminRouter := mainRouter.PathPrefix("/api/admin").Subrouter()
	adminRouter.HandleFunc("/agents", HandleListAgents).Methods("GET").Name("list-agents")
	adminRouter.HandleFunc("/bookings", HandleListAllBookings).Methods("GET").Name("list-all-bookings")
	adminRouter.HandleFunc("/refunds", HandleListPendingRefunds).Methods("GET").Name("list-pending-refunds")
	adminRouter.HandleFunc("/refunds/{refund_id}", HandleResolveRefund).Methods("PUT").Name("resolve-refund")
	adminRouter.HandleFunc("/kyc-submissions", HandleListPendingKyc).Methods("GET").Name("list-kyc-submissions")
	adminRouter.HandleFunc("/kyc/{user_id}", HandleReviewKyc).Methods("PUT").Name("review-kyc")
	adminRouter.HandleFunc("/kyc/request-resubmission", HandleRequestKycResubmission).Methods("POST").Name("request-kyc-resubmission")
	adminRouter.HandleFunc("/kyc-document/{user_id}", HandleGetKycDocument).Methods("GET").Name("get-kyc-document")
	adminRouter.HandleFunc("/commissions", HandleGetCommissions).Methods("GET").Name("get-commissions")
	adminRouter.HandleFunc("/commissions", HandleUpdateCommissions).Methods("POST").Name("update-commissions")
	adminRouter.HandleFunc("/analytics", HandleGetAnalytics).Methods("GET").Name("get-analytics")
	adminRouter.HandleFunc("/tickets", HandleListTickets).Methods("GET").Name("list-tickets")

	// Set middleware for subrouters
	publicAuthRouter.Use(log.Handler)
	flightSearchRouter.Use(log.Handler)
	agentRouter.Use(log.Handler, interceptors.UserAuthenticationIntercept)
	bookingRouter.Use(log.Handler, interceptors.UserAuthenticationIntercept, ba.BookingAuthenticationIntercept)
	adminRouter.Use(log.Handler, interceptors.UserAuthenticationIntercept, interceptors.AdminAuthenticationIntercept)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

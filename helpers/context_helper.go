package helpers

import (
	"context"
	"net/http"

	"github.com/b2btravel/booking.api.b2btravel.in/models"
)

// ContextKey is the type for keys placed in the request context by interceptors
type ContextKey string

const (
	// ContextKeyUserDetails holds the authenticated user's identity
	ContextKeyUserDetails = ContextKey("user_details")

	// ContextKeyBooking holds the booking resource loaded by the booking interceptor
	ContextKeyBooking = ContextKey("booking")
)

// GetUserDetailsFromContext returns the authenticated identity stored by the
// authentication interceptor
func GetUserDetailsFromContext(r *http.Request) (models.AuthUserDetails, bool) {
	user, ok := r.Context().Value(ContextKeyUserDetails).(models.AuthUserDetails)
	return user, ok
}

// SetUserDetailsInContext stores the authenticated identity in the request context
func SetUserDetailsInContext(r *http.Request, user models.AuthUserDetails) *http.Request {
	ctx := context.WithValue(r.Context(), ContextKeyUserDetails, user)
	return r.WithContext(ctx)
}

// GetBookingFromContext returns the booking loaded by the booking interceptor
func GetBookingFromContext(r *http.Request) (*models.BookingResourceDB, bool) {
	booking, ok := r.Context().Value(ContextKeyBooking).(*models.BookingResourceDB)
	return booking, ok
}

// SetBookingInContext stores the booking in the request context
func SetBookingInContext(r *http.Request, booking *models.BookingResourceDB) *http.Request {
	ctx := context.WithValue(r.Context(), ContextKeyBooking, booking)
	return r.WithContext(ctx)
}

package interceptors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/b2btravel/booking.api.b2btravel.in/dao"
	"github.com/b2btravel/booking.api.b2btravel.in/helpers"
	"github.com/b2btravel/booking.api.b2btravel.in/utils"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

// BookingAuthenticationInterceptor contains the DAO used to load the booking
// named in the request path
type BookingAuthenticationInterceptor struct {
	DAO dao.DAO
}

// BookingAuthenticationIntercept loads the booking from the path and checks
// that the authenticated user owns it or is an admin. The booking is stored
// in the request context for the handler.
func (interceptor BookingAuthenticationInterceptor) BookingAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		id := vars["booking_id"]
		if id == "" {
			log.ErrorR(r, fmt.Errorf("BookingAuthenticationInterceptor error: no booking id"))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		userDetails, ok := helpers.GetUserDetailsFromContext(r)
		if !ok {
			log.ErrorR(r, fmt.Errorf("BookingAuthenticationInterceptor error: invalid AuthUserDetails from UserAuthenticationInterceptor"))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		booking, err := interceptor.DAO.GetBooking(r.Context(), id)
		if err != nil {
			if errors.Is(err, dao.ErrNotFound) {
				utils.WriteJSONWithStatus(w, r, utils.NewMessageResponse("Booking not found."), http.StatusNotFound)
				return
			}
			log.ErrorR(r, fmt.Errorf("BookingAuthenticationInterceptor error getting booking: [%v]", err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if booking.UserID != userDetails.ID && userDetails.Role != "admin" {
			log.InfoR(r, "BookingAuthenticationInterceptor forbidden: not booking owner", log.Data{
				"booking_id": id,
				"user_id":    userDetails.ID,
			})
			utils.WriteJSONWithStatus(w, r, utils.NewMessageResponse("Access denied."), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, helpers.SetBookingInContext(r, booking))
	})
}

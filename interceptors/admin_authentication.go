package interceptors

import (
	"fmt"
	"net/http"

	"github.com/b2btravel/booking.api.b2btravel.in/helpers"
	"github.com/b2btravel/booking.api.b2btravel.in/utils"

	"github.com/companieshouse/chs.go/log"
)

// AdminAuthenticationIntercept checks that the authenticated user holds the
// admin role. It must run after UserAuthenticationIntercept.
func AdminAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userDetails, ok := helpers.GetUserDetailsFromContext(r)
		if !ok {
			log.ErrorR(r, fmt.Errorf("AdminAuthenticationInterceptor error: invalid AuthUserDetails from UserAuthenticationInterceptor"))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if userDetails.Role != "admin" {
			log.InfoR(r, "AdminAuthenticationInterceptor forbidden: not an admin", log.Data{"user_id": userDetails.ID, "role": userDetails.Role})
			utils.WriteJSONWithStatus(w, r, utils.NewMessageResponse("Requires admin role."), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

package interceptors

import (
	"fmt"
	"net/http"

	"github.com/b2btravel/booking.api.b2btravel.in/config"
	"github.com/b2btravel/booking.api.b2btravel.in/helpers"
	"github.com/b2btravel/booking.api.b2btravel.in/utils"

	"github.com/companieshouse/chs.go/log"
)

// UserAuthenticationIntercept verifies the bearer token on the request and
// stores the identity it carries in the request context
func UserAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cfg, err := config.Get()
		if err != nil {
			log.ErrorR(r, fmt.Errorf("UserAuthenticationInterceptor error getting config: [%v]", err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		token, err := helpers.GetAccessToken(r)
		if err != nil {
			log.InfoR(r, "UserAuthenticationInterceptor unauthorised: no bearer token")
			utils.WriteJSONWithStatus(w, r, utils.NewMessageResponse("No token provided."), http.StatusUnauthorized)
			return
		}

		userDetails, err := helpers.ValidateAccessToken(token, cfg.JWTSecret)
		if err != nil {
			log.InfoR(r, "UserAuthenticationInterceptor unauthorised: invalid token")
			utils.WriteJSONWithStatus(w, r, utils.NewMessageResponse("Failed to authenticate token."), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, helpers.SetUserDetailsInContext(r, *userDetails))
	})
}

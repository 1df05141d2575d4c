package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"

	"github.com/b2btravel/booking.api.b2btravel.in/service"
	"github.com/b2btravel/booking.api.b2btravel.in/utils"
)

// writeErrorResponse maps a service response type onto an HTTP status code and
// writes the service error as a message response. Internal errors are logged
// and returned without a body so implementation detail never leaves the
// service.
func writeErrorResponse(w http.ResponseWriter, r *http.Request, responseType service.ResponseType, err error) {
	var status int
	switch responseType {
	case service.InvalidData, service.InsufficientFunds:
		status = http.StatusBadRequest
	case service.Unauthorized:
		status = http.StatusUnauthorized
	case service.Forbidden:
		status = http.StatusForbidden
	case service.NotFound:
		status = http.StatusNotFound
	case service.Conflict:
		status = http.StatusConflict
	default:
		log.ErrorR(r, fmt.Errorf("error handling request: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	log.InfoR(r, "request rejected", log.Data{"status": status, "reason": err.Error()})
	utils.WriteJSONWithStatus(w, r, utils.NewMessageResponse(err.Error()), status)
}

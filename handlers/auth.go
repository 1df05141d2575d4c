package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"

	"github.com/b2btravel/booking.api.b2btravel.in/config"
	"github.com/b2btravel/booking.api.b2btravel.in/helpers"
	"github.com/b2btravel/booking.api.b2btravel.in/models"
	"github.com/b2btravel/booking.api.b2btravel.in/utils"
)

// handleEmailMessage allows us to mock the call to produceEmailMessage for unit tests
var handleEmailMessage = produceEmailMessage

// HandleRegister creates a new agent account
func HandleRegister(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var registerRequest models.RegisterRequest
	err := json.NewDecoder(req.Body).Decode(&registerRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validator.New().Struct(registerRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to register: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("All fields are required."), http.StatusBadRequest)
		return
	}

	response, responseType, err := authService.Register(req, registerRequest)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, response, http.StatusCreated)
	log.InfoR(req, "Successful POST request to register user", log.Data{"user_id": response.UserID, "status": http.StatusCreated})
}

// HandleLogin verifies the supplied credentials and issues an access token
func HandleLogin(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var loginRequest models.LoginRequest
	err := json.NewDecoder(req.Body).Decode(&loginRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validator.New().Struct(loginRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to login: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("Email and password are required."), http.StatusBadRequest)
		return
	}

	response, responseType, err := authService.Login(req, loginRequest)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, response, http.StatusOK)
	log.InfoR(req, "Successful login", log.Data{"user_id": response.ID})
}

// HandleForgotPassword starts the password reset flow. The response is the
// same whether or not the address is registered so the endpoint cannot be
// used to enumerate accounts.
func HandleForgotPassword(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var forgotRequest models.ForgotPasswordRequest
	err := json.NewDecoder(req.Body).Decode(&forgotRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validator.New().Struct(forgotRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to forgot-password: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("A valid email address is required."), http.StatusBadRequest)
		return
	}

	token, responseType, err := authService.ForgotPassword(req, forgotRequest.Email)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	// a token is only issued when the address is registered
	if token != "" {
		cfg, err := config.Get()
		if err != nil {
			log.ErrorR(req, fmt.Errorf("error getting config for reset email: [%v]", err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		// a delivery failure must not change the response, or the error
		// becomes a signal that the address is registered
		resetLink := fmt.Sprintf("%s/reset-password?token=%s", cfg.PortalWebURL, token)
		err = handleEmailMessage(
			forgotRequest.Email,
			"Password Reset Request",
			fmt.Sprintf("You requested a password reset. Follow this link to set a new password: %s", resetLink),
		)
		if err != nil {
			log.ErrorR(req, fmt.Errorf("error producing reset email message: [%v]", err))
		}
	}

	utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("If that email address is in our system, we have sent a password reset link."), http.StatusOK)
}

// HandleResetPassword completes the password reset flow using the token from
// the reset email
func HandleResetPassword(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var resetRequest models.ResetPasswordRequest
	err := json.NewDecoder(req.Body).Decode(&resetRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validator.New().Struct(resetRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to reset-password: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("Token and a new password of at least 8 characters are required."), http.StatusBadRequest)
		return
	}

	responseType, err := authService.ResetPassword(req, resetRequest)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("Password has been reset successfully."), http.StatusOK)
}

// HandleGetProfile returns the authenticated user's profile
func HandleGetProfile(w http.ResponseWriter, req *http.Request) {
	userDetails, ok := helpers.GetUserDetailsFromContext(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid AuthUserDetails in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	profile, responseType, err := authService.GetProfile(req, userDetails.ID)
	if err != nil {
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, profile, http.StatusOK)
}

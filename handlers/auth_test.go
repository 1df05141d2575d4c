package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/b2btravel/booking.api.b2btravel.in/config"
	"github.com/b2btravel/booking.api.b2btravel.in/dao"
	"github.com/b2btravel/booking.api.b2btravel.in/helpers"
	"github.com/b2btravel/booking.api.b2btravel.in/models"
	"github.com/b2btravel/booking.api.b2btravel.in/service"

	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var testUserDetails = models.AuthUserDetails{ID: "user-id", Name: "Asha Verma", Role: "agent"}

func TestUnitHandleRegister(t *testing.T) {
	cfg, _ := config.Get()

	Convey("Request body empty", t, func() {
		req, _ := http.NewRequest("POST", "/api/auth/register", nil)
		w := httptest.NewRecorder()

		HandleRegister(w, req)

		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Invalid request body", t, func() {
		authService = &service.AuthService{DAO: dao.NewMockDAO(gomock.NewController(t)), Config: *cfg}

		req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(`{"name":"Asha"}`))
		w := httptest.NewRecorder()

		HandleRegister(w, req)

		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(w.Body.String(), ShouldContainSubstring, "All fields are required.")
	})

	Convey("Duplicate email is a conflict", t, func() {
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(dao.ErrDuplicateEmail)
		authService = &service.AuthService{DAO: mockDao, Config: *cfg}

		req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(`{"name":"Asha Verma","email":"asha@example.com","password":"longenough"}`))
		w := httptest.NewRecorder()

		HandleRegister(w, req)

		So(w.Code, ShouldEqual, http.StatusConflict)
	})

	Convey("Successful registration", t, func() {
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)
		authService = &service.AuthService{DAO: mockDao, Config: *cfg}

		req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(`{"name":"Asha Verma","email":"asha@example.com","password":"longenough"}`))
		w := httptest.NewRecorder()

		HandleRegister(w, req)

		So(w.Code, ShouldEqual, http.StatusCreated)
		So(w.Body.String(), ShouldContainSubstring, "User registered successfully!")
	})
}

func TestUnitHandleLogin(t *testing.T) {
	cfg, _ := config.Get()
	cfg.JWTSecret = "test-secret"

	Convey("Request body empty", t, func() {
		req, _ := http.NewRequest("POST", "/api/auth/login", nil)
		w := httptest.NewRecorder()

		HandleLogin(w, req)

		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Unknown email is not found", t, func() {
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().GetUserByEmail(gomock.Any(), "asha@example.com").Return(nil, dao.ErrNotFound)
		authService = &service.AuthService{DAO: mockDao, Config: *cfg}

		req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":"asha@example.com","password":"longenough"}`))
		w := httptest.NewRecorder()

		HandleLogin(w, req)

		So(w.Code, ShouldEqual, http.StatusNotFound)
		So(w.Body.String(), ShouldContainSubstring, "user not found")
	})
}

func TestUnitHandleForgotPassword(t *testing.T) {
	cfg, _ := config.Get()
	cfg.PortalWebURL = "https://portal.b2btravel.in"

	Convey("Unknown email still succeeds and sends nothing", t, func() {
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().GetUserByEmail(gomock.Any(), "unknown@example.com").Return(nil, dao.ErrNotFound)
		authService = &service.AuthService{DAO: mockDao, Config: *cfg}

		emailSent := false
		handleEmailMessage = func(emailAddress, subject, body string) error {
			emailSent = true
			return nil
		}
		defer func() { handleEmailMessage = produceEmailMessage }()

		req := httptest.NewRequest("POST", "/api/auth/forgot-password", strings.NewReader(`{"email":"unknown@example.com"}`))
		w := httptest.NewRecorder()

		HandleForgotPassword(w, req)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, "we have sent a password reset link")
		So(emailSent, ShouldBeFalse)
	})

	Convey("Known email gets a reset link", t, func() {
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().GetUserByEmail(gomock.Any(), "asha@example.com").Return(&models.UserResourceDB{
			ID:    "user-id",
			Email: "asha@example.com",
		}, nil)
		mockDao.EXPECT().SetResetToken(gomock.Any(), "user-id", gomock.Any(), gomock.Any()).Return(nil)
		authService = &service.AuthService{DAO: mockDao, Config: *cfg}

		var sentTo, sentBody string
		handleEmailMessage = func(emailAddress, subject, body string) error {
			sentTo = emailAddress
			sentBody = body
			return nil
		}
		defer func() { handleEmailMessage = produceEmailMessage }()

		req := httptest.NewRequest("POST", "/api/auth/forgot-password", strings.NewReader(`{"email":"asha@example.com"}`))
		w := httptest.NewRecorder()

		HandleForgotPassword(w, req)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(sentTo, ShouldEqual, "asha@example.com")
		So(sentBody, ShouldContainSubstring, "https://portal.b2btravel.in/reset-password?token=")
	})

	Convey("Email delivery failure still gets the generic response", t, func() {
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().GetUserByEmail(gomock.Any(), "asha@example.com").Return(&models.UserResourceDB{
			ID:    "user-id",
			Email: "asha@example.com",
		}, nil)
		mockDao.EXPECT().SetResetToken(gomock.Any(), "user-id", gomock.Any(), gomock.Any()).Return(nil)
		authService = &service.AuthService{DAO: mockDao, Config: *cfg}

		handleEmailMessage = func(emailAddress, subject, body string) error {
			return errors.New("broker unavailable")
		}
		defer func() { handleEmailMessage = produceEmailMessage }()

		req := httptest.NewRequest("POST", "/api/auth/forgot-password", strings.NewReader(`{"email":"asha@example.com"}`))
		w := httptest.NewRecorder()

		HandleForgotPassword(w, req)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, "we have sent a password reset link")
	})
}

func TestUnitHandleResetPassword(t *testing.T) {
	cfg, _ := config.Get()

	Convey("Invalid or expired token", t, func() {
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().GetUserByResetToken(gomock.Any(), gomock.Any()).Return(nil, dao.ErrNotFound)
		authService = &service.AuthService{DAO: mockDao, Config: *cfg}

		req := httptest.NewRequest("POST", "/api/auth/reset-password", strings.NewReader(`{"token":"stale-token","password":"longenough"}`))
		w := httptest.NewRecorder()

		HandleResetPassword(w, req)

		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(w.Body.String(), ShouldContainSubstring, "invalid or has expired")
	})

	Convey("Successful reset", t, func() {
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().GetUserByResetToken(gomock.Any(), gomock.Any()).Return(&models.UserResourceDB{
			ID:                "user-id",
			ResetTokenExpires: time.Now().Add(time.Hour),
		}, nil)
		mockDao.EXPECT().UpdatePassword(gomock.Any(), "user-id", gomock.Any()).Return(nil)
		authService = &service.AuthService{DAO: mockDao, Config: *cfg}

		req := httptest.NewRequest("POST", "/api/auth/reset-password", strings.NewReader(`{"token":"valid-token","password":"longenough"}`))
		w := httptest.NewRecorder()

		HandleResetPassword(w, req)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, "Password has been reset successfully.")
	})
}

func TestUnitHandleGetProfile(t *testing.T) {
	cfg, _ := config.Get()

	Convey("Missing identity in context", t, func() {
		req := httptest.NewRequest("GET", "/api/users/profile", nil)
		w := httptest.NewRecorder()

		HandleGetProfile(w, req)

		So(w.Code, ShouldEqual, http.StatusInternalServerError)
	})

	Convey("Successful profile fetch", t, func() {
		balance, _ := primitive.ParseDecimal128("512.50")
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().GetUserByID(gomock.Any(), "user-id").Return(&models.UserResourceDB{
			ID:            "user-id",
			Name:          "Asha Verma",
			Email:         "asha@example.com",
			Role:          "agent",
			KycStatus:     "approved",
			WalletBalance: balance,
			Currency:      "INR",
		}, nil)
		authService = &service.AuthService{DAO: mockDao, Config: *cfg}

		req := httptest.NewRequest("GET", "/api/users/profile", nil)
		req = helpers.SetUserDetailsInContext(req, testUserDetails)
		w := httptest.NewRecorder()

		HandleGetProfile(w, req)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, `"wallet_balance":"512.50"`)
	})
}

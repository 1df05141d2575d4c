package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/b2btravel/booking.api.b2btravel.in/config"
	"github.com/b2btravel/booking.api.b2btravel.in/dao"
	"github.com/b2btravel/booking.api.b2btravel.in/helpers"
	"github.com/b2btravel/booking.api.b2btravel.in/models"
	"github.com/b2btravel/booking.api.b2btravel.in/transformers"

	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAgent = "agent"
	RoleAdmin = "admin"

	KycStatusNotSubmitted          = "none"
	KycStatusPending               = "pending"
	KycStatusApproved              = "approved"
	KycStatusRejected              = "rejected"
	KycStatusResubmissionRequested = "resubmission_requested"
)

// AuthService contains the DAO for db access and manages agent accounts and
// access tokens
type AuthService struct {
	DAO    dao.DAO
	Config config.Config
}

// Register creates a new account. Agents start with the configured wallet
// balance; admins start with nothing to spend.
func (service *AuthService) Register(req *http.Request, request models.RegisterRequest) (*models.RegisterResponse, ResponseType, error) {
	role := request.Role
	if role == "" {
		role = RoleAgent
	}

	initialBalance := "0.00"
	if role == RoleAgent {
		initialBalance = service.Config.InitialAgentWalletBalance
	}
	balance, err := primitive.ParseDecimal128(initialBalance)
	if err != nil {
		err = fmt.Errorf("invalid initial wallet balance configured: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		err = fmt.Errorf("error hashing password: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	user := &models.UserResourceDB{
		ID:            uuid.NewString(),
		Name:          request.Name,
		Email:         request.Email,
		PasswordHash:  string(passwordHash),
		Role:          role,
		KycStatus:     KycStatusNotSubmitted,
		WalletBalance: balance,
		Currency:      service.Config.DefaultCurrency,
		CreatedAt:     time.Now(),
	}

	err = service.DAO.CreateUser(req.Context(), user)
	if err != nil {
		if errors.Is(err, dao.ErrDuplicateEmail) {
			return nil, Conflict, errors.New("an account with this email already exists")
		}
		err = fmt.Errorf("error creating user in database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	log.InfoR(req, "user registered", log.Data{"user_id": user.ID, "role": user.Role})

	return &models.RegisterResponse{
		Message: "User registered successfully!",
		UserID:  user.ID,
	}, Success, nil
}

// Login verifies the agent's credentials and issues an access token
func (service *AuthService) Login(req *http.Request, request models.LoginRequest) (*models.LoginResponse, ResponseType, error) {
	user, err := service.DAO.GetUserByEmail(req.Context(), request.Email)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, NotFound, errors.New("user not found")
		}
		err = fmt.Errorf("error getting user from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)) != nil {
		return nil, Unauthorized, errors.New("invalid credentials")
	}

	token, err := helpers.CreateAccessToken(user, service.Config.JWTSecret, service.accessTokenExpiry())
	if err != nil {
		err = fmt.Errorf("error signing access token: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	return &models.LoginResponse{
		ID:          user.ID,
		Name:        user.Name,
		Role:        user.Role,
		AccessToken: token,
	}, Success, nil
}

// ForgotPassword stores a hashed single-use reset token against the account
// and returns the plain token for delivery. An unknown email returns no token
// and no error so responses cannot be used to probe for accounts.
func (service *AuthService) ForgotPassword(req *http.Request, email string) (string, ResponseType, error) {
	user, err := service.DAO.GetUserByEmail(req.Context(), email)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return "", Success, nil
		}
		err = fmt.Errorf("error getting user from database: [%v]", err)
		log.ErrorR(req, err)
		return "", Error, err
	}

	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		err = fmt.Errorf("error generating reset token: [%v]", err)
		log.ErrorR(req, err)
		return "", Error, err
	}
	token := hex.EncodeToString(buf)

	expires := time.Now().Add(service.resetTokenExpiry())
	err = service.DAO.SetResetToken(req.Context(), user.ID, hashToken(token), expires)
	if err != nil {
		err = fmt.Errorf("error storing reset token in database: [%v]", err)
		log.ErrorR(req, err)
		return "", Error, err
	}

	return token, Success, nil
}

// ResetPassword replaces the account password when presented with an
// unexpired reset token
func (service *AuthService) ResetPassword(req *http.Request, request models.ResetPasswordRequest) (ResponseType, error) {
	user, err := service.DAO.GetUserByResetToken(req.Context(), hashToken(request.Token))
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return InvalidData, errors.New("password reset token is invalid or has expired")
		}
		err = fmt.Errorf("error getting user from database: [%v]", err)
		log.ErrorR(req, err)
		return Error, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		err = fmt.Errorf("error hashing password: [%v]", err)
		log.ErrorR(req, err)
		return Error, err
	}

	err = service.DAO.UpdatePassword(req.Context(), user.ID, string(passwordHash))
	if err != nil {
		err = fmt.Errorf("error updating password in database: [%v]", err)
		log.ErrorR(req, err)
		return Error, err
	}

	log.InfoR(req, "password reset", log.Data{"user_id": user.ID})

	return Success, nil
}

// GetProfile retrieves the authenticated user's profile
func (service *AuthService) GetProfile(req *http.Request, userID string) (*models.ProfileRest, ResponseType, error) {
	user, err := service.DAO.GetUserByID(req.Context(), userID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, NotFound, errors.New("user not found")
		}
		err = fmt.Errorf("error getting user from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	profile := transformers.UserTransformer{}.TransformToProfileRest(*user)
	return &profile, Success, nil
}

func (service *AuthService) accessTokenExpiry() time.Duration {
	minutes, err := strconv.Atoi(service.Config.AccessTokenExpiryMinutes)
	if err != nil || minutes <= 0 {
		minutes = 1440
	}
	return time.Duration(minutes) * time.Minute
}

func (service *AuthService) resetTokenExpiry() time.Duration {
	minutes, err := strconv.Atoi(service.Config.ResetTokenExpiryMinutes)
	if err != nil || minutes <= 0 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}

// hashToken hashes a reset token for storage so a database read cannot yield
// a usable token
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

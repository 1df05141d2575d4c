package service

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/b2btravel/booking.api.b2btravel.in/config"
	"github.com/b2btravel/booking.api.b2btravel.in/dao"
	"github.com/b2btravel/booking.api.b2btravel.in/models"
	"github.com/b2btravel/booking.api.b2btravel.in/transformers"

	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WalletService contains the DAO for db access and serves wallet balances,
// top-ups and the ledger history
type WalletService struct {
	DAO    dao.DAO
	Config config.Config
}

// GetWallet retrieves the agent's current balance
func (service *WalletService) GetWallet(req *http.Request, userID string) (*models.WalletRest, ResponseType, error) {
	user, err := service.DAO.GetUserByID(req.Context(), userID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, NotFound, errors.New("user not found")
		}
		err = fmt.Errorf("error getting user from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	wallet := transformers.UserTransformer{}.TransformToWalletRest(*user)
	return &wallet, Success, nil
}

// TopUp credits the agent's wallet and appends a ledger entry, returning the
// new balance
func (service *WalletService) TopUp(req *http.Request, userID string, request models.TopUpRequest) (*models.TopUpResponse, ResponseType, error) {
	amount, err := decimal.NewFromString(request.Amount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return nil, InvalidData, fmt.Errorf("top-up amount must be a positive number [%s]", request.Amount)
	}

	creditAmount, err := primitive.ParseDecimal128(amount.StringFixed(2))
	if err != nil {
		return nil, InvalidData, fmt.Errorf("invalid top-up amount [%s]", request.Amount)
	}

	entry := &models.TransactionResourceDB{
		ID:                uuid.NewString(),
		UserID:            userID,
		Amount:            creditAmount,
		Type:              TransactionTypeCredit,
		Status:            TransactionStatusCompleted,
		Currency:          service.Config.DefaultCurrency,
		RelatedEntityType: "topup",
		RelatedEntityID:   request.PaymentMethod,
		Timestamp:         time.Now(),
	}

	user, err := service.DAO.CreditWallet(req.Context(), userID, creditAmount, entry)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, NotFound, errors.New("user not found")
		}
		err = fmt.Errorf("error crediting wallet in database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	log.InfoR(req, "wallet topped up", log.Data{
		"user_id":     userID,
		"amount":      creditAmount.String(),
		"new_balance": user.WalletBalance.String(),
	})

	return &models.TopUpResponse{
		Message:    "Wallet topped up successfully!",
		NewBalance: transformers.FormatAmount(user.WalletBalance),
	}, Success, nil
}

// ListTransactions retrieves the agent's ledger history, newest first
func (service *WalletService) ListTransactions(req *http.Request, userID string) ([]models.TransactionResourceRest, ResponseType, error) {
	transactions, err := service.DAO.ListTransactionsForUser(req.Context(), userID)
	if err != nil {
		err = fmt.Errorf("error listing transactions from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	rest := make([]models.TransactionResourceRest, len(transactions))
	for i, transaction := range transactions {
		rest[i] = transformers.TransactionTransformer{}.TransformToRest(transaction)
	}
	return rest, Success, nil
}

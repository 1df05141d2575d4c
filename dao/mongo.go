package dao

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/b2btravel/booking.api.b2btravel.in/config"
	"github.com/b2btravel/booking.api.b2btravel.in/models"

	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)

	var err error
	client, err = mongo.Connect(ctx, clientOptions)

	// Assume the caller of this func cannot handle the case where there is no
	// database connection so the service must crash here as it cannot continue.
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	// Check we can connect to the mongodb instance. Failure here should result
	// in a crash.
	pingContext, cancel := context.WithDeadline(ctx, time.Now().Add(5*time.Second))
	defer cancel()
	err = client.Ping(pingContext, nil)
	if err != nil {
		log.Error(errors.New("ping to mongodb timed out. please check the connection to mongodb and that it is running"))
		os.Exit(1)
	}

	log.Info("connected to mongodb successfully")

	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
	Client() *mongo.Client
}

// NewGetMongoDatabase returns a handle to the configured database
func NewGetMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface using MongoDB as the
// backend driver.
type MongoService struct {
	db     MongoDatabaseInterface
	Config *config.Config
}

// NewDAOService returns a new DAO using the provided config
func NewDAOService(cfg *config.Config) DAO {
	database := NewGetMongoDatabase(cfg.MongoDBURL, cfg.Database)
	return &MongoService{
		db:     database,
		Config: cfg,
	}
}

// EnsureIndexes creates the unique indexes the ledger invariants rely on: one
// account per email and at most one refund request per booking.
func (m *MongoService) EnsureIndexes(ctx context.Context) error {
	_, err := m.db.Collection(m.Config.UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = m.db.Collection(m.Config.RefundsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "booking_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// negateDecimal128 flips the sign of a decimal amount so it can be applied as
// a debit with $inc.
func negateDecimal128(d primitive.Decimal128) (primitive.Decimal128, error) {
	s := d.String()
	if strings.HasPrefix(s, "-") {
		return primitive.ParseDecimal128(strings.TrimPrefix(s, "-"))
	}
	return primitive.ParseDecimal128("-" + s)
}

// withTransaction runs fn inside a single mongo session transaction
func (m *MongoService) withTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	session, err := m.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// CreateUser writes a new user to the DB
func (m *MongoService) CreateUser(ctx context.Context, user *models.UserResourceDB) error {
	_, err := m.db.Collection(m.Config.UsersCollection).InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

// GetUserByID gets a user from the DB. Returns ErrNotFound if the user is missing.
func (m *MongoService) GetUserByID(ctx context.Context, id string) (*models.UserResourceDB, error) {
	return m.findUser(ctx, bson.M{"_id": id})
}

// GetUserByEmail gets a user by their email address
func (m *MongoService) GetUserByEmail(ctx context.Context, email string) (*models.UserResourceDB, error) {
	return m.findUser(ctx, bson.M{"email": email})
}

// GetUserByResetToken gets a user by an unexpired password reset token hash
func (m *MongoService) GetUserByResetToken(ctx context.Context, tokenHash string) (*models.UserResourceDB, error) {
	return m.findUser(ctx, bson.M{
		"reset_token_hash":    tokenHash,
		"reset_token_expires": bson.M{"$gt": time.Now()},
	})
}

func (m *MongoService) findUser(ctx context.Context, filter bson.M) (*models.UserResourceDB, error) {
	var user models.UserResourceDB
	err := m.db.Collection(m.Config.UsersCollection).FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SetResetToken stores a hashed password reset token against the user
func (m *MongoService) SetResetToken(ctx context.Context, userID string, tokenHash string, expires time.Time) error {
	res, err := m.db.Collection(m.Config.UsersCollection).UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"reset_token_hash": tokenHash, "reset_token_expires": expires}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePassword replaces the user's password hash and clears any reset token
func (m *MongoService) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	res, err := m.db.Collection(m.Config.UsersCollection).UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{
			"$set":   bson.M{"password_hash": passwordHash},
			"$unset": bson.M{"reset_token_hash": "", "reset_token_expires": ""},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateBookingWithDebit performs the wallet-debit-and-book sequence in a
// single transaction: conditionally decrement the wallet balance, insert the
// booking and append the ledger entry. The conditional update is the overdraw
// guard; two concurrent bookings cannot both debit against a stale balance.
func (m *MongoService) CreateBookingWithDebit(ctx context.Context, booking *models.BookingResourceDB, entry *models.TransactionResourceDB) error {
	debit, err := negateDecimal128(booking.TotalAmount)
	if err != nil {
		return err
	}

	return m.withTransaction(ctx, func(sc mongo.SessionContext) error {
		users := m.db.Collection(m.Config.UsersCollection)

		res, err := users.UpdateOne(sc,
			bson.M{"_id": booking.UserID, "wallet_balance": bson.M{"$gte": booking.TotalAmount}},
			bson.M{"$inc": bson.M{"wallet_balance": debit}},
		)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			count, err := users.CountDocuments(sc, bson.M{"_id": booking.UserID})
			if err != nil {
				return err
			}
			if count == 0 {
				return ErrNotFound
			}
			return ErrInsufficientFunds
		}

		if _, err = m.db.Collection(m.Config.BookingsCollection).InsertOne(sc, booking); err != nil {
			return err
		}

		_, err = m.db.Collection(m.Config.TransactionsCollection).InsertOne(sc, entry)
		return err
	})
}

// CreditWallet credits the wallet and appends the ledger entry in a single
// transaction, returning the user with their updated balance.
func (m *MongoService) CreditWallet(ctx context.Context, userID string, amount primitive.Decimal128, entry *models.TransactionResourceDB) (*models.UserResourceDB, error) {
	var user models.UserResourceDB

	err := m.withTransaction(ctx, func(sc mongo.SessionContext) error {
		after := options.After
		err := m.db.Collection(m.Config.UsersCollection).FindOneAndUpdate(sc,
			bson.M{"_id": userID},
			bson.M{"$inc": bson.M{"wallet_balance": amount}},
			&options.FindOneAndUpdateOptions{ReturnDocument: &after},
		).Decode(&user)
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		_, err = m.db.Collection(m.Config.TransactionsCollection).InsertOne(sc, entry)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ResolveRefundWithCredit flips a pending refund request to the given status
// and, on approval, credits the owning agent's wallet, appends a credit ledger
// entry and marks the booking refunded, all in one transaction. The pending
// status is part of the update filter so two concurrent resolutions cannot
// both succeed.
func (m *MongoService) ResolveRefundWithCredit(ctx context.Context, refundID string, status string, notes string, resolvedAt time.Time) (*models.RefundResourceDB, error) {
	var refund models.RefundResourceDB
	var resolvedErr error

	err := m.withTransaction(ctx, func(sc mongo.SessionContext) error {
		refunds := m.db.Collection(m.Config.RefundsCollection)

		after := options.After
		err := refunds.FindOneAndUpdate(sc,
			bson.M{"_id": refundID, "status": "pending"},
			bson.M{"$set": bson.M{"status": status, "admin_notes": notes, "resolution_date": resolvedAt}},
			&options.FindOneAndUpdateOptions{ReturnDocument: &after},
		).Decode(&refund)

		if err == mongo.ErrNoDocuments {
			// Distinguish a missing refund from one already resolved
			err = refunds.FindOne(sc, bson.M{"_id": refundID}).Decode(&refund)
			if err == mongo.ErrNoDocuments {
				return ErrNotFound
			}
			if err != nil {
				return err
			}
			resolvedErr = ErrRefundResolved
			return nil
		}
		if err != nil {
			return err
		}

		if status != "approved" {
			return nil
		}

		res, err := m.db.Collection(m.Config.UsersCollection).UpdateOne(sc,
			bson.M{"_id": refund.UserID},
			bson.M{"$inc": bson.M{"wallet_balance": refund.RefundAmount}},
		)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return ErrNotFound
		}

		entry := models.TransactionResourceDB{
			ID:                uuid.NewString(),
			UserID:            refund.UserID,
			Amount:            refund.RefundAmount,
			Type:              "credit",
			Status:            "completed",
			Currency:          refund.Currency,
			RelatedEntityType: "refund",
			RelatedEntityID:   refund.ID,
			Timestamp:         resolvedAt,
		}
		if _, err = m.db.Collection(m.Config.TransactionsCollection).InsertOne(sc, entry); err != nil {
			return err
		}

		_, err = m.db.Collection(m.Config.BookingsCollection).UpdateOne(sc,
			bson.M{"_id": refund.BookingID},
			bson.M{"$set": bson.M{"status": "refunded"}},
		)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &refund, resolvedErr
}

// GetBooking gets a booking from the DB. Returns ErrNotFound if missing.
func (m *MongoService) GetBooking(ctx context.Context, id string) (*models.BookingResourceDB, error) {
	var booking models.BookingResourceDB
	err := m.db.Collection(m.Config.BookingsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListBookingsForUser returns the user's bookings joined with the status of
// any refund request, newest first. Bookings without a refund request carry a
// refund status of "none".
func (m *MongoService) ListBookingsForUser(ctx context.Context, userID string) ([]models.BookingWithRefundDB, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"user_id": userID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         m.Config.RefundsCollection,
			"localField":   "_id",
			"foreignField": "booking_id",
			"as":           "refunds",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"refund_status": bson.M{"$ifNull": bson.A{
				bson.M{"$arrayElemAt": bson.A{"$refunds.status", 0}},
				"none",
			}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{"refunds": 0, "flight_details": 0, "hotel_details": 0}}},
		bson.D{{Key: "$sort", Value: bson.M{"booking_date": -1}}},
	}

	cursor, err := m.db.Collection(m.Config.BookingsCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var bookings []models.BookingWithRefundDB
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListAllBookings returns every booking joined with the agent's name, newest first
func (m *MongoService) ListAllBookings(ctx context.Context) ([]models.AdminBookingDB, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         m.Config.UsersCollection,
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "agent",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"agent_name": bson.M{"$arrayElemAt": bson.A{"$agent.name", 0}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{"agent": 0, "flight_details": 0, "hotel_details": 0}}},
		bson.D{{Key: "$sort", Value: bson.M{"booking_date": -1}}},
	}

	cursor, err := m.db.Collection(m.Config.BookingsCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var bookings []models.AdminBookingDB
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateRefund writes a new refund request to the DB. The unique index on
// booking_id enforces the one-refund-per-booking invariant under concurrency.
func (m *MongoService) CreateRefund(ctx context.Context, refund *models.RefundResourceDB) error {
	_, err := m.db.Collection(m.Config.RefundsCollection).InsertOne(ctx, refund)
	if mongo.IsDuplicateKeyError(err) {
		return ErrRefundExists
	}
	return err
}

// GetRefundByBookingID gets the refund request for a booking, if any
func (m *MongoService) GetRefundByBookingID(ctx context.Context, bookingID string) (*models.RefundResourceDB, error) {
	var refund models.RefundResourceDB
	err := m.db.Collection(m.Config.RefundsCollection).FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&refund)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &refund, nil
}

// ListPendingRefunds returns pending refund requests joined with the agent
// name and booking type, newest request first
func (m *MongoService) ListPendingRefunds(ctx context.Context) ([]models.PendingRefundDB, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"status": "pending"}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         m.Config.UsersCollection,
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "agent",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         m.Config.BookingsCollection,
			"localField":   "booking_id",
			"foreignField": "_id",
			"as":           "booking",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"agent_name":   bson.M{"$arrayElemAt": bson.A{"$agent.name", 0}},
			"booking_type": bson.M{"$arrayElemAt": bson.A{"$booking.booking_type", 0}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{"agent": 0, "booking": 0}}},
		bson.D{{Key: "$sort", Value: bson.M{"request_date": -1}}},
	}

	cursor, err := m.db.Collection(m.Config.RefundsCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var refunds []models.PendingRefundDB
	if err = cursor.All(ctx, &refunds); err != nil {
		return nil, err
	}
	return refunds, nil
}

// CountPendingRefunds returns the number of refund requests awaiting review
func (m *MongoService) CountPendingRefunds(ctx context.Context) (int64, error) {
	return m.db.Collection(m.Config.RefundsCollection).CountDocuments(ctx, bson.M{"status": "pending"})
}

// ListTransactionsForUser returns the user's wallet ledger entries, newest first
func (m *MongoService) ListTransactionsForUser(ctx context.Context, userID string) ([]models.TransactionResourceDB, error) {
	opts := options.Find().SetSort(bson.M{"timestamp": -1})
	cursor, err := m.db.Collection(m.Config.TransactionsCollection).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}

	var transactions []models.TransactionResourceDB
	if err = cursor.All(ctx, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// CreateKycDocument inserts the document and moves the user's KYC status to
// pending in the same transaction
func (m *MongoService) CreateKycDocument(ctx context.Context, doc *models.KycDocumentDB) error {
	return m.withTransaction(ctx, func(sc mongo.SessionContext) error {
		if _, err := m.db.Collection(m.Config.KycDocumentsCollection).InsertOne(sc, doc); err != nil {
			return err
		}

		res, err := m.db.Collection(m.Config.UsersCollection).UpdateOne(sc,
			bson.M{"_id": doc.UserID},
			bson.M{"$set": bson.M{"kyc_status": "pending"}},
		)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// GetLatestKycDocument returns the most recently submitted document for the user
func (m *MongoService) GetLatestKycDocument(ctx context.Context, userID string) (*models.KycDocumentDB, error) {
	opts := options.FindOne().SetSort(bson.M{"submitted_at": -1})

	var doc models.KycDocumentDB
	err := m.db.Collection(m.Config.KycDocumentsCollection).FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpdateKycStatus sets the user's KYC status. When clearDocuments is true,
// previously submitted documents are removed so the agent starts afresh.
func (m *MongoService) UpdateKycStatus(ctx context.Context, userID string, status string, clearDocuments bool) error {
	return m.withTransaction(ctx, func(sc mongo.SessionContext) error {
		res, err := m.db.Collection(m.Config.UsersCollection).UpdateOne(sc,
			bson.M{"_id": userID},
			bson.M{"$set": bson.M{"kyc_status": status}},
		)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return ErrNotFound
		}

		if clearDocuments {
			_, err = m.db.Collection(m.Config.KycDocumentsCollection).DeleteMany(sc, bson.M{"user_id": userID})
		}
		return err
	})
}

// latestKycDocumentLookup joins the most recent non-binary document summary
// onto a users pipeline as "document"
func (m *MongoService) latestKycDocumentLookup() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from": m.Config.KycDocumentsCollection,
			"let":  bson.M{"uid": "$_id"},
			"pipeline": mongo.Pipeline{
				bson.D{{Key: "$match", Value: bson.M{"$expr": bson.M{"$eq": bson.A{"$user_id", "$$uid"}}}}},
				bson.D{{Key: "$sort", Value: bson.M{"submitted_at": -1}}},
				bson.D{{Key: "$limit", Value: 1}},
				bson.D{{Key: "$project", Value: bson.M{"file_data": 0}}},
			},
			"as": "documents",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"document": bson.M{"$arrayElemAt": bson.A{"$documents", 0}},
		}}},
		{{Key: "$project", Value: bson.M{"documents": 0, "password_hash": 0, "reset_token_hash": 0}}},
	}
}

// ListPendingKyc returns agents awaiting KYC review with their latest
// document summary, most recent submission first
func (m *MongoService) ListPendingKyc(ctx context.Context) ([]models.KycSubmissionDB, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"role": "agent", "kyc_status": "pending"}}},
	}
	pipeline = append(pipeline, m.latestKycDocumentLookup()...)
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.M{"document.submitted_at": -1}}})

	cursor, err := m.db.Collection(m.Config.UsersCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var submissions []models.KycSubmissionDB
	if err = cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

// CountPendingKyc returns the number of agents awaiting KYC review
func (m *MongoService) CountPendingKyc(ctx context.Context) (int64, error) {
	return m.db.Collection(m.Config.UsersCollection).CountDocuments(ctx, bson.M{"role": "agent", "kyc_status": "pending"})
}

// ListAgents returns every agent with their latest KYC document summary
func (m *MongoService) ListAgents(ctx context.Context) ([]models.AgentSummaryDB, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"role": "agent"}}},
	}
	pipeline = append(pipeline, m.latestKycDocumentLookup()...)

	cursor, err := m.db.Collection(m.Config.UsersCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var agents []models.AgentSummaryDB
	if err = cursor.All(ctx, &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

// commissionRatesID is the well-known ID of the single commission configuration document
const commissionRatesID = "commission_rates"

// GetCommissionRates reads the persisted commission configuration
func (m *MongoService) GetCommissionRates(ctx context.Context) (*models.CommissionRatesDB, error) {
	var rates models.CommissionRatesDB
	err := m.db.Collection(m.Config.CommissionsCollection).FindOne(ctx, bson.M{"_id": commissionRatesID}).Decode(&rates)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rates, nil
}

// UpsertCommissionRates replaces the persisted commission configuration
func (m *MongoService) UpsertCommissionRates(ctx context.Context, rates *models.CommissionRatesDB) error {
	rates.ID = commissionRatesID
	opts := options.Replace().SetUpsert(true)
	_, err := m.db.Collection(m.Config.CommissionsCollection).ReplaceOne(ctx, bson.M{"_id": commissionRatesID}, rates, opts)
	return err
}

// CreateSupportTicket writes a new support ticket to the DB
func (m *MongoService) CreateSupportTicket(ctx context.Context, ticket *models.SupportTicketDB) error {
	_, err := m.db.Collection(m.Config.TicketsCollection).InsertOne(ctx, ticket)
	return err
}

// ListSupportTickets returns all support tickets, newest first
func (m *MongoService) ListSupportTickets(ctx context.Context) ([]models.SupportTicketDB, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := m.db.Collection(m.Config.TicketsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var tickets []models.SupportTicketDB
	if err = cursor.All(ctx, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// GetMonthlyBookingAnalytics aggregates bookings into per-month sales totals
// and booking counts, oldest month first
func (m *MongoService) GetMonthlyBookingAnalytics(ctx context.Context) ([]models.AnalyticsRowDB, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":      bson.M{"$dateToString": bson.M{"format": "%Y-%m", "date": "$booking_date"}},
			"sales":    bson.M{"$sum": "$total_amount"},
			"bookings": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := m.db.Collection(m.Config.BookingsCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var rows []models.AnalyticsRowDB
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr                  string   `env:"BIND_ADDR"                    flag:"bind-addr"                    flagDesc:"Bind address"`
	MongoDBURL                string   `env:"MONGODB_URL"                  flag:"mongodb-url"                  flagDesc:"MongoDB server URL"`
	Database                  string   `env:"MONGODB_DATABASE"             flag:"mongodb-database"             flagDesc:"MongoDB database for data"`
	UsersCollection           string   `env:"MONGODB_USERS_COLLECTION"     flag:"mongodb-users-collection"     flagDesc:"MongoDB collection for users and agents"`
	BookingsCollection        string   `env:"MONGODB_BOOKINGS_COLLECTION"  flag:"mongodb-bookings-collection"  flagDesc:"MongoDB collection for bookings"`
	RefundsCollection         string   `env:"MONGODB_REFUNDS_COLLECTION"   flag:"mongodb-refunds-collection"   flagDesc:"MongoDB collection for refund requests"`
	TransactionsCollection    string   `env:"MONGODB_TXNS_COLLECTION"      flag:"mongodb-txns-collection"      flagDesc:"MongoDB collection for the wallet ledger"`
	KycDocumentsCollection    string   `env:"MONGODB_KYC_COLLECTION"       flag:"mongodb-kyc-collection"       flagDesc:"MongoDB collection for KYC documents"`
	CommissionsCollection     string   `env:"MONGODB_COMMISSIONS_COLLECTION" flag:"mongodb-commissions-collection" flagDesc:"MongoDB collection for commission configuration"`
	TicketsCollection         string   `env:"MONGODB_TICKETS_COLLECTION"   flag:"mongodb-tickets-collection"   flagDesc:"MongoDB collection for support tickets"`
	JWTSecret                 string   `env:"JWT_SECRET"                   flag:"jwt-secret"                   flagDesc:"Secret used to sign and verify access tokens"`
	AccessTokenExpiryMinutes  string   `env:"ACCESS_TOKEN_EXPIRY_MINUTES"  flag:"access-token-expiry-minutes"  flagDesc:"Access token lifetime in minutes"`
	ResetTokenExpiryMinutes   string   `env:"RESET_TOKEN_EXPIRY_MINUTES"   flag:"reset-token-expiry-minutes"   flagDesc:"Password reset token lifetime in minutes"`
	InitialAgentWalletBalance string   `env:"INITIAL_AGENT_WALLET_BALANCE" flag:"initial-agent-wallet-balance" flagDesc:"Wallet balance granted to newly registered agents"`
	DefaultCurrency           string   `env:"DEFAULT_CURRENCY"             flag:"default-currency"             flagDesc:"Currency used for wallets and bookings"`
	PortalWebURL              string   `env:"PORTAL_WEB_URL"               flag:"portal-web-url"               flagDesc:"Base URL for the agent portal web, used in reset links"`
	BrokerAddr                []string `env:"KAFKA_BROKER_ADDR"            flag:"broker-addr"                  flagDesc:"Kafka broker address"`
	SchemaRegistryURL         string   `env:"SCHEMA_REGISTRY_URL"          flag:"schema-registry-url"          flagDesc:"Schema registry URL"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:                  "booking",
		UsersCollection:           "users",
		BookingsCollection:        "bookings",
		RefundsCollection:         "refunds",
		TransactionsCollection:    "transactions",
		KycDocumentsCollection:    "kyc_documents",
		CommissionsCollection:     "commissions",
		TicketsCollection:         "support_tickets",
		AccessTokenExpiryMinutes:  "1440",
		ResetTokenExpiryMinutes:   "60",
		InitialAgentWalletBalance: "1000.00",
		DefaultCurrency:           "INR",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

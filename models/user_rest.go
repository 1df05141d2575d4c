package models

import "time"

// RegisterRequest is the data received in the body of a registration request
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"omitempty,oneof=agent admin"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// LoginRequest is the data received in the body of a login request
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the access token issued on a successful login
type LoginResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	AccessToken string `json:"accessToken"`
}

// ForgotPasswordRequest is the data received in the body of a forgot-password request
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest is the data received in the body of a reset-password request
type ResetPasswordRequest struct {
	Token    string `json:"token"    validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// ProfileRest is the public facing view of a user returned in responses
type ProfileRest struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	KycStatus     string `json:"kyc_status"`
	WalletBalance string `json:"wallet_balance"`
	Currency      string `json:"currency"`
}

// WalletRest is the wallet view returned from the wallet endpoint
type WalletRest struct {
	Balance  string `json:"balance"`
	Currency string `json:"currency"`
}

// TopUpRequest is the data received in the body of a wallet top-up request
type TopUpRequest struct {
	Amount        string `json:"amount"        validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

// TopUpResponse is returned after a successful wallet top-up
type TopUpResponse struct {
	Message    string `json:"message"`
	NewBalance string `json:"newBalance"`
}

// AgentSummaryRest is an entry in the admin agent directory
type AgentSummaryRest struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Email     string                  `json:"email"`
	KycStatus string                  `json:"kyc_status"`
	Document  *KycDocumentSummaryRest `json:"kyc_details,omitempty"`
}

// KycDocumentSummaryRest is the non-binary summary of a KYC document
type KycDocumentSummaryRest struct {
	DocumentType string    `json:"documentType"`
	FileName     string    `json:"fileName"`
	Status       string    `json:"status"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

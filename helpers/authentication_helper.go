package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/b2btravel/booking.api.b2btravel.in/models"

	"github.com/golang-jwt/jwt/v5"
)

// GetAccessToken extracts the bearer token from the Authorization header
func GetAccessToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errors.New("no authorization header provided")
	}

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", errors.New("authorization header is not a bearer token")
	}

	return token, nil
}

// CreateAccessToken signs a token carrying the user's identity and role,
// valid for the given lifetime
func CreateAccessToken(user *models.UserResourceDB, secret string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":   user.ID,
		"name": user.Name,
		"role": user.Role,
		"exp":  time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateAccessToken verifies the token signature and expiry and returns the
// identity it carries
func ValidateAccessToken(tokenString, secret string) (*models.AuthUserDetails, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("invalid access token: [%v]", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid access token claims")
	}

	id, _ := claims["id"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)
	if id == "" || role == "" {
		return nil, errors.New("access token missing identity claims")
	}

	return &models.AuthUserDetails{
		ID:   id,
		Name: name,
		Role: role,
	}, nil
}

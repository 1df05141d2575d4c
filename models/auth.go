package models

// AuthUserDetails is a representation of the identity carried by a verified
// access token, placed into the request context by the authentication
// interceptor.
type AuthUserDetails struct {
	ID   string
	Name string
	Role string
}

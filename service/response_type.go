package service

// ResponseType enumerates the outcomes a service operation can produce
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// Unauthorized response
	Unauthorized

	// Forbidden response
	Forbidden

	// NotFound response
	NotFound

	// Conflict response
	Conflict

	// InsufficientFunds response
	InsufficientFunds

	// Success response
	Success
)

var vals = [...]string{
	"invalid-data",
	"error",
	"unauthorized",
	"forbidden",
	"not-found",
	"conflict",
	"insufficient-funds",
	"success",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}

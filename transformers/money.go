package transformers

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FormatAmount renders a stored decimal amount as a two decimal place string
// for rest responses. A value that cannot be parsed falls back to its raw
// string form rather than failing the response.
func FormatAmount(d primitive.Decimal128) string {
	amount, err := decimal.NewFromString(d.String())
	if err != nil {
		return d.String()
	}
	return amount.StringFixed(2)
}

package transformers

import (
	"github.com/b2btravel/booking.api.b2btravel.in/models"
)

// TransactionTransformer transforms wallet ledger entries between rest and database models
type TransactionTransformer struct{}

// TransformToRest transforms a ledger entry database model into its rest model
func (tt TransactionTransformer) TransformToRest(dbResource models.TransactionResourceDB) models.TransactionResourceRest {
	return models.TransactionResourceRest{
		ID:                dbResource.ID,
		Amount:            FormatAmount(dbResource.Amount),
		Type:              dbResource.Type,
		Status:            dbResource.Status,
		Currency:          dbResource.Currency,
		RelatedEntityType: dbResource.RelatedEntityType,
		RelatedEntityID:   dbResource.RelatedEntityID,
		Timestamp:         dbResource.Timestamp,
	}
}

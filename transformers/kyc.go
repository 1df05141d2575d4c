package transformers

import (
	"github.com/b2btravel/booking.api.b2btravel.in/models"
)

// KycTransformer transforms KYC submission data between rest and database models
type KycTransformer struct{}

// TransformSubmissionToRest transforms a KYC review queue aggregation row
// into its rest model
func (kt KycTransformer) TransformSubmissionToRest(dbResource models.KycSubmissionDB) models.KycSubmissionRest {
	rest := models.KycSubmissionRest{
		UserID:    dbResource.ID,
		Name:      dbResource.Name,
		Email:     dbResource.Email,
		KycStatus: dbResource.KycStatus,
	}
	if dbResource.Document != nil {
		document := models.KycDocumentSummaryRest(*dbResource.Document)
		rest.Document = &document
	}
	return rest
}

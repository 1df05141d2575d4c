package transformers

import (
	"github.com/b2btravel/booking.api.b2btravel.in/models"
)

// UserTransformer transforms user resource data between rest and database models
type UserTransformer struct{}

// TransformToProfileRest transforms a user database model into the public profile rest model
func (ut UserTransformer) TransformToProfileRest(dbResource models.UserResourceDB) models.ProfileRest {
	return models.ProfileRest{
		ID:            dbResource.ID,
		Name:          dbResource.Name,
		Email:         dbResource.Email,
		Role:          dbResource.Role,
		KycStatus:     dbResource.KycStatus,
		WalletBalance: FormatAmount(dbResource.WalletBalance),
		Currency:      dbResource.Currency,
	}
}

// TransformToWalletRest transforms a user database model into the wallet rest model
func (ut UserTransformer) TransformToWalletRest(dbResource models.UserResourceDB) models.WalletRest {
	return models.WalletRest{
		Balance:  FormatAmount(dbResource.WalletBalance),
		Currency: dbResource.Currency,
	}
}

// TransformAgentSummaryToRest transforms an agent directory aggregation row
// into its rest model
func (ut UserTransformer) TransformAgentSummaryToRest(dbResource models.AgentSummaryDB) models.AgentSummaryRest {
	rest := models.AgentSummaryRest{
		ID:        dbResource.ID,
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

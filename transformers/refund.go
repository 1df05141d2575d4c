package transformers

import (
	"github.com/b2btravel/booking.api.b2btravel.in/models"
)

// RefundTransformer transforms refund request data between rest and database models
type RefundTransformer struct{}

// TransformToRest transforms a refund database model into its rest model
func (rt RefundTransformer) TransformToRest(dbResource models.RefundResourceDB) models.RefundResourceRest {
	return models.RefundResourceRest{
		ID:             dbResource.ID,
		BookingID:      dbResource.BookingID,
		Status:         dbResource.Status,
		RefundAmount:   FormatAmount(dbResource.RefundAmount),
		Currency:       dbResource.Currency,
		RequestDate:    dbResource.RequestDate,
		ResolutionDate: dbResource.ResolutionDate,
		AdminNotes:     dbResource.AdminNotes,
	}
}

// TransformPendingToRest transforms a pending refund aggregation row into the
// rest model shown in the admin review queue
func (rt RefundTransformer) TransformPendingToRest(dbResource models.PendingRefundDB) models.PendingRefundRest {
	return models.PendingRefundRest{
		ID:           dbResource.ID,
		BookingID:    dbResource.BookingID,
		BookingType:  dbResource.BookingType,
		AgentName:    dbResource.AgentName,
		Status:       dbResource.Status,
		RequestDate:  dbResource.RequestDate,
		RefundAmount: FormatAmount(dbResource.RefundAmount),
		Currency:     dbResource.Currency,
	}
}

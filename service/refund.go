package service

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/b2btravel/booking.api.b2btravel.in/config"
	"github.com/b2btravel/booking.api.b2btravel.in/dao"
	"github.com/b2btravel/booking.api.b2btravel.in/models"
	"github.com/b2btravel/booking.api.b2btravel.in/transformers"

	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
)

const (
	RefundStatusPending  = "pending"
	RefundStatusApproved = "approved"
	RefundStatusRejected = "rejected"
)

// RefundService contains the DAO for db access and runs the refund request
// and resolution workflow
type RefundService struct {
	DAO    dao.DAO
	Config config.Config
}

// RequestRefund raises a refund request for the full booking amount. Only the
// owning agent can request one, only confirmed bookings qualify, and a
// booking can carry at most one request.
func (service *RefundService) RequestRefund(req *http.Request, user models.AuthUserDetails, bookingID string) (*models.RefundResourceRest, ResponseType, error) {
	booking, err := service.DAO.GetBooking(req.Context(), bookingID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, NotFound, errors.New("booking not found")
		}
		err = fmt.Errorf("error getting booking from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	if booking.UserID != user.ID {
		return nil, Forbidden, errors.New("booking belongs to another agent")
	}

	if booking.Status != BookingStatusConfirmed {
		return nil, Conflict, fmt.Errorf("booking is %s and cannot be refunded", booking.Status)
	}

	// report the existing request's status up front; the unique index on
	// booking_id still backstops the race between two concurrent requests
	existing, err := service.DAO.GetRefundByBookingID(req.Context(), bookingID)
	if err == nil {
		return nil, Conflict, fmt.Errorf("a refund request already exists for this booking and is %s", existing.Status)
	}
	if !errors.Is(err, dao.ErrNotFound) {
		err = fmt.Errorf("error getting refund request from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	refund := &models.RefundResourceDB{
		ID:           uuid.NewString(),
		BookingID:    booking.ID,
		UserID:       booking.UserID,
		Status:       RefundStatusPending,
		RefundAmount: booking.TotalAmount,
		Currency:     booking.Currency,
		RequestDate:  time.Now(),
	}

	err = service.DAO.CreateRefund(req.Context(), refund)
	if err != nil {
		if errors.Is(err, dao.ErrRefundExists) {
			return nil, Conflict, errors.New("a refund request already exists for this booking")
		}
		err = fmt.Errorf("error creating refund request in database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	log.InfoR(req, "refund requested", log.Data{
		"refund_id":     refund.ID,
		"booking_id":    refund.BookingID,
		"refund_amount": refund.RefundAmount.String(),
	})

	rest := transformers.RefundTransformer{}.TransformToRest(*refund)
	return &rest, Success, nil
}

// ResolveRefund approves or rejects a pending refund request. Approval
// credits the agent's wallet and marks the booking refunded in the same
// transaction; a request that has already been resolved is reported as a
// conflict carrying its resolved status.
func (service *RefundService) ResolveRefund(req *http.Request, refundID string, resolution models.ResolveRefundRequest) (*models.RefundResourceRest, ResponseType, error) {
	refund, err := service.DAO.ResolveRefundWithCredit(req.Context(), refundID, resolution.Status, resolution.AdminNotes, time.Now())
	if err != nil {
		if errors.Is(err, dao.ErrRefundResolved) {
			return nil, Conflict, fmt.Errorf("refund request is already %s", refund.Status)
		}
		if errors.Is(err, dao.ErrNotFound) {
			return nil, NotFound, errors.New("refund request not found")
		}
		err = fmt.Errorf("error resolving refund request in database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	log.InfoR(req, "refund resolved", log.Data{
		"refund_id":     refund.ID,
		"booking_id":    refund.BookingID,
		"status":        refund.Status,
		"refund_amount": refund.RefundAmount.String(),
	})

	rest := transformers.RefundTransformer{}.TransformToRest(*refund)
	return &rest, Success, nil
}

// ListPendingRefunds retrieves the admin review queue of pending refund requests
func (service *RefundService) ListPendingRefunds(req *http.Request) ([]models.PendingRefundRest, ResponseType, error) {
	refunds, err := service.DAO.ListPendingRefunds(req.Context())
	if err != nil {
		err = fmt.Errorf("error listing pending refunds from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	rest := make([]models.PendingRefundRest, len(refunds))
	for i, refund := range refunds {
		rest[i] = transformers.RefundTransformer{}.TransformPendingToRest(refund)
	}
	return rest, Success, nil
}

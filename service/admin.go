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
	"golang.org/x/sync/errgroup"
)

const (
	defaultFlightCommissionRate = "5.00"
	defaultHotelCommissionRate  = "8.00"

	TicketStatusOpen = "open"
)

// AdminService contains the DAO for db access and serves the back-office
// views: the agent directory, all bookings, commission configuration,
// support tickets and analytics
type AdminService struct {
	DAO    dao.DAO
	Config config.Config
}

// ListAgents retrieves the agent directory with each agent's latest KYC
// document summary
func (service *AdminService) ListAgents(req *http.Request) ([]models.AgentSummaryRest, ResponseType, error) {
	agents, err := service.DAO.ListAgents(req.Context())
	if err != nil {
		err = fmt.Errorf("error listing agents from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	rest := make([]models.AgentSummaryRest, len(agents))
	for i, agent := range agents {
		rest[i] = transformers.UserTransformer{}.TransformAgentSummaryToRest(agent)
	}
	return rest, Success, nil
}

// ListAllBookings retrieves every booking with the owning agent's name
func (service *AdminService) ListAllBookings(req *http.Request) ([]models.AdminBookingRest, ResponseType, error) {
	bookings, err := service.DAO.ListAllBookings(req.Context())
	if err != nil {
		err = fmt.Errorf("error listing bookings from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	rest := make([]models.AdminBookingRest, len(bookings))
	for i, booking := range bookings {
		rest[i] = transformers.BookingTransformer{}.TransformAdminBookingToRest(booking)
	}
	return rest, Success, nil
}

// GetCommissionRates retrieves the commission configuration, falling back to
// the defaults when none has been saved yet
func (service *AdminService) GetCommissionRates(req *http.Request) (*models.CommissionRatesRest, ResponseType, error) {
	rates, err := service.DAO.GetCommissionRates(req.Context())
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return &models.CommissionRatesRest{
				FlightCommissionRate: defaultFlightCommissionRate,
				HotelCommissionRate:  defaultHotelCommissionRate,
			}, Success, nil
		}
		err = fmt.Errorf("error getting commission rates from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	return &models.CommissionRatesRest{
		FlightCommissionRate: rates.FlightCommissionRate,
		HotelCommissionRate:  rates.HotelCommissionRate,
	}, Success, nil
}

// UpdateCommissionRates persists a new commission configuration
func (service *AdminService) UpdateCommissionRates(req *http.Request, request models.CommissionRatesRest) (ResponseType, error) {
	rates := &models.CommissionRatesDB{
		FlightCommissionRate: request.FlightCommissionRate,
		HotelCommissionRate:  request.HotelCommissionRate,
	}

	err := service.DAO.UpsertCommissionRates(req.Context(), rates)
	if err != nil {
		err = fmt.Errorf("error saving commission rates to database: [%v]", err)
		log.ErrorR(req, err)
		return Error, err
	}

	log.InfoR(req, "commission rates updated", log.Data{
		"flight_commission_rate": request.FlightCommissionRate,
		"hotel_commission_rate":  request.HotelCommissionRate,
	})

	return Success, nil
}

// CreateTicket raises a support ticket on behalf of the authenticated agent
func (service *AdminService) CreateTicket(req *http.Request, user models.AuthUserDetails, request models.CreateTicketRequest) (*models.SupportTicketRest, ResponseType, error) {
	ticket := &models.SupportTicketDB{
		ID:        uuid.NewString(),
		Subject:   request.Subject,
		AgentID:   user.ID,
		AgentName: user.Name,
		Status:    TicketStatusOpen,
		CreatedAt: time.Now(),
	}

	err := service.DAO.CreateSupportTicket(req.Context(), ticket)
	if err != nil {
		err = fmt.Errorf("error creating support ticket in database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	return &models.SupportTicketRest{
		ID:        ticket.ID,
		Subject:   ticket.Subject,
		AgentName: ticket.AgentName,
		Status:    ticket.Status,
		CreatedAt: ticket.CreatedAt,
	}, Success, nil
}

// ListTickets retrieves all support tickets, newest first
func (service *AdminService) ListTickets(req *http.Request) ([]models.SupportTicketRest, ResponseType, error) {
	tickets, err := service.DAO.ListSupportTickets(req.Context())
	if err != nil {
		err = fmt.Errorf("error listing support tickets from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	rest := make([]models.SupportTicketRest, len(tickets))
	for i, ticket := range tickets {
		rest[i] = models.SupportTicketRest{
			ID:        ticket.ID,
			Subject:   ticket.Subject,
			AgentName: ticket.AgentName,
			Status:    ticket.Status,
			CreatedAt: ticket.CreatedAt,
		}
	}
	return rest, Success, nil
}

// GetAnalytics aggregates the dashboard figures: monthly sales and booking
// counts plus the pending refund and KYC queues, gathered concurrently
func (service *AdminService) GetAnalytics(req *http.Request) (*models.AnalyticsRest, ResponseType, error) {
	var (
		rows           []models.AnalyticsRowDB
		pendingRefunds int64
		pendingKyc     int64
	)

	g, ctx := errgroup.WithContext(req.Context())

	g.Go(func() error {
		var err error
		rows, err = service.DAO.GetMonthlyBookingAnalytics(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		pendingRefunds, err = service.DAO.CountPendingRefunds(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		pendingKyc, err = service.DAO.CountPendingKyc(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		err = fmt.Errorf("error gathering analytics from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	months := make([]models.AnalyticsRowRest, len(rows))
	for i, row := range rows {
		months[i] = models.AnalyticsRowRest{
			Name:     row.Month,
			Sales:    transformers.FormatAmount(row.Sales),
			Bookings: row.Bookings,
		}
	}

	return &models.AnalyticsRest{
		Months:         months,
		PendingRefunds: pendingRefunds,
		PendingKyc:     pendingKyc,
	}, Success, nil
}

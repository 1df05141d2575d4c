package service

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/b2btravel/booking.api.b2btravel.in/config"
	"github.com/b2btravel/booking.api.b2btravel.in/dao"
	"github.com/b2btravel/booking.api.b2btravel.in/models"

	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func createMockAdminService(mockDAO *dao.MockDAO, cfg *config.Config) AdminService {
	return AdminService{
		DAO:    mockDAO,
		Config: *cfg,
	}
}

func TestUnitListAgents(t *testing.T) {
	cfg, _ := config.Get()
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/agents", nil)

	Convey("Agent directory includes KYC document summaries", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().ListAgents(gomock.Any()).Return([]models.AgentSummaryDB{
			{
				ID:        "user-id",
				Name:      "Asha Verma",
				Email:     "asha@travelhub.example",
				KycStatus: KycStatusApproved,
				Document:  &models.KycDocumentRef{DocumentType: "pan_card", FileName: "pan.pdf"},
			},
			{ID: "user-2", Name: "Vikram Rao", KycStatus: KycStatusNotSubmitted},
		}, nil)
		service := createMockAdminService(mock, cfg)

		agents, responseType, err := service.ListAgents(req)

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(agents, ShouldHaveLength, 2)
		So(agents[0].Document.FileName, ShouldEqual, "pan.pdf")
		So(agents[1].Document, ShouldBeNil)
	})
}

func TestUnitListAllBookings(t *testing.T) {
	cfg, _ := config.Get()
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)

	Convey("All bookings listed with agent names", t, func() {
		amount, _ := primitive.ParseDecimal128("9000.00")

		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().ListAllBookings(gomock.Any()).Return([]models.AdminBookingDB{
			{ID: "booking-id", ConfirmationID: "B2B1700000000000", AgentName: "Asha Verma", BookingType: BookingTypeFlight, TotalAmount: amount, Status: BookingStatusConfirmed},
		}, nil)
		service := createMockAdminService(mock, cfg)

		bookings, responseType, err := service.ListAllBookings(req)

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(bookings, ShouldHaveLength, 1)
		So(bookings[0].AgentName, ShouldEqual, "Asha Verma")
		So(bookings[0].TotalAmount, ShouldEqual, "9000.00")
	})
}

func TestUnitCommissionRates(t *testing.T) {
	cfg, _ := config.Get()
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/commissions", nil)

	Convey("Defaults returned before any configuration is saved", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().GetCommissionRates(gomock.Any()).Return(nil, dao.ErrNotFound)
		service := createMockAdminService(mock, cfg)

		rates, responseType, err := service.GetCommissionRates(req)

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(rates.FlightCommissionRate, ShouldEqual, defaultFlightCommissionRate)
		So(rates.HotelCommissionRate, ShouldEqual, defaultHotelCommissionRate)
	})

	Convey("Saved configuration returned", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().GetCommissionRates(gomock.Any()).Return(&models.CommissionRatesDB{
			FlightCommissionRate: "6.50",
			HotelCommissionRate:  "9.00",
		}, nil)
		service := createMockAdminService(mock, cfg)

		rates, responseType, err := service.GetCommissionRates(req)

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(rates.FlightCommissionRate, ShouldEqual, "6.50")
	})

	Convey("Update persists the configuration", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().UpsertCommissionRates(gomock.Any(), &models.CommissionRatesDB{
			FlightCommissionRate: "6.50",
			HotelCommissionRate:  "9.00",
		}).Return(nil)
		service := createMockAdminService(mock, cfg)

		responseType, err := service.UpdateCommissionRates(req, models.CommissionRatesRest{
			FlightCommissionRate: "6.50",
			HotelCommissionRate:  "9.00",
		})

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
	})
}

func TestUnitSupportTickets(t *testing.T) {
	cfg, _ := config.Get()
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/api/tickets", nil)

	Convey("Ticket raised as open under the agent's name", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().CreateSupportTicket(gomock.Any(), gomock.Any()).Return(nil)
		service := createMockAdminService(mock, cfg)

		ticket, responseType, err := service.CreateTicket(req, defaultUser, models.CreateTicketRequest{Subject: "GDS access issue"})

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(ticket.Status, ShouldEqual, TicketStatusOpen)
		So(ticket.AgentName, ShouldEqual, "Asha Verma")
		So(ticket.ID, ShouldNotBeEmpty)
	})

	Convey("Tickets listed", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().ListSupportTickets(gomock.Any()).Return([]models.SupportTicketDB{
			{ID: "ticket-1", Subject: "GDS access issue", AgentName: "Asha Verma", Status: TicketStatusOpen},
		}, nil)
		service := createMockAdminService(mock, cfg)

		tickets, responseType, err := service.ListTickets(req)

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(tickets, ShouldHaveLength, 1)
		So(tickets[0].Subject, ShouldEqual, "GDS access issue")
	})
}

func TestUnitGetAnalytics(t *testing.T) {
	cfg, _ := config.Get()
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/analytics", nil)

	Convey("Error in any gatherer fails the dashboard", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().GetMonthlyBookingAnalytics(gomock.Any()).Return(nil, errors.New("error")).AnyTimes()
		mock.EXPECT().CountPendingRefunds(gomock.Any()).Return(int64(0), nil).AnyTimes()
		mock.EXPECT().CountPendingKyc(gomock.Any()).Return(int64(0), nil).AnyTimes()
		service := createMockAdminService(mock, cfg)

		analytics, responseType, err := service.GetAnalytics(req)

		So(analytics, ShouldBeNil)
		So(responseType, ShouldEqual, Error)
		So(err, ShouldNotBeNil)
	})

	Convey("Dashboard gathers monthly sales and pending queues", t, func() {
		sales, _ := primitive.ParseDecimal128("45000.00")

		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().GetMonthlyBookingAnalytics(gomock.Any()).Return([]models.AnalyticsRowDB{
			{Month: "2026-08", Sales: sales, Bookings: 5},
		}, nil)
		mock.EXPECT().CountPendingRefunds(gomock.Any()).Return(int64(2), nil)
		mock.EXPECT().CountPendingKyc(gomock.Any()).Return(int64(3), nil)
		service := createMockAdminService(mock, cfg)

		analytics, responseType, err := service.GetAnalytics(req)

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(analytics.Months, ShouldHaveLength, 1)
		So(analytics.Months[0].Name, ShouldEqual, "2026-08")
		So(analytics.Months[0].Sales, ShouldEqual, "45000.00")
		So(analytics.Months[0].Bookings, ShouldEqual, 5)
		So(analytics.PendingRefunds, ShouldEqual, 2)
		So(analytics.PendingKyc, ShouldEqual, 3)
	})
}

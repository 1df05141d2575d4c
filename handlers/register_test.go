package handlers

import (
	"testing"

	"github.com/b2btravel/booking.api.b2btravel.in/config"
	"github.com/b2btravel/booking.api.b2btravel.in/dao"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitRegisterRoutes(t *testing.T) {
	Convey("Register routes", t, func() {
		router := mux.NewRouter()
		cfg, _ := config.Get()
		mockDao := dao.NewMockDAO(gomock.NewController(t))

		Register(router, *cfg, mockDao)

		So(router.GetRoute("get-healthcheck"), ShouldNotBeNil)
		So(router.GetRoute("register"), ShouldNotBeNil)
		So(router.GetRoute("login"), ShouldNotBeNil)
		So(router.GetRoute("forgot-password"), ShouldNotBeNil)
		So(router.GetRoute("reset-password"), ShouldNotBeNil)
		So(router.GetRoute("get-profile"), ShouldNotBeNil)
		So(router.GetRoute("search-flights"), ShouldNotBeNil)
		So(router.GetRoute("book-flight"), ShouldNotBeNil)
		So(router.GetRoute("search-hotels"), ShouldNotBeNil)
		So(router.GetRoute("book-hotel"), ShouldNotBeNil)
		So(router.GetRoute("get-bookings"), ShouldNotBeNil)
		So(router.GetRoute("get-booking"), ShouldNotBeNil)
		So(router.GetRoute("get-eticket"), ShouldNotBeNil)
		So(router.GetRoute("request-refund"), ShouldNotBeNil)
		So(router.GetRoute("get-wallet"), ShouldNotBeNil)
		So(router.GetRoute("topup-wallet"), ShouldNotBeNil)
		So(router.GetRoute("get-transactions"), ShouldNotBeNil)
		So(router.GetRoute("submit-kyc"), ShouldNotBeNil)
		So(router.GetRoute("get-kyc-status"), ShouldNotBeNil)
		So(router.GetRoute("create-ticket"), ShouldNotBeNil)
		So(router.GetRoute("list-agents"), ShouldNotBeNil)
		So(router.GetRoute("list-all-bookings"), ShouldNotBeNil)
		So(router.GetRoute("list-pending-refunds"), ShouldNotBeNil)
		So(router.GetRoute("resolve-refund"), ShouldNotBeNil)
		So(router.GetRoute("list-kyc-submissions"), ShouldNotBeNil)
		So(router.GetRoute("review-kyc"), ShouldNotBeNil)
		So(router.GetRoute("request-kyc-resubmission"), ShouldNotBeNil)
		So(router.GetRoute("get-kyc-document"), ShouldNotBeNil)
		So(router.GetRoute("get-commissions"), ShouldNotBeNil)
		So(router.GetRoute("update-commissions"), ShouldNotBeNil)
		So(router.GetRoute("get-analytics"), ShouldNotBeNil)
		So(router.GetRoute("list-tickets"), ShouldNotBeNil)
	})
}

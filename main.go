package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"

	"github.com/b2btravel/booking.api.b2btravel.in/config"
	"github.com/b2btravel/booking.api.b2btravel.in/dao"
	"github.com/b2btravel/booking.api.b2btravel.in/handlers"
)

func main() {
	log.Namespace = "booking.api.b2btravel.in"

	cfg, err := config.Get()
	if err != nil {
		log.Error(fmt.Errorf("error configuring service: %s. Exiting", err))
		os.Exit(1)
	}

	// the ledger invariants rely on these indexes existing before any
	// request is served
	svc := dao.NewDAOService(cfg)
	if mongoService, ok := svc.(*dao.MongoService); ok {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = mongoService.EnsureIndexes(ctx)
		cancel()
		if err != nil {
			log.Error(fmt.Errorf("error creating indexes: %s. Exiting", err))
			os.Exit(1)
		}
	}

	mainRouter := mux.NewRouter()
	handlers.Register(mainRouter, *cfg, svc)

	log.Info("Starting booking.api.b2btravel.in service")
	err = http.ListenAndServe(cfg.BindAddr, mainRouter)
	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting booking.api.b2btravel.in service")
}

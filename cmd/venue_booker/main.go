package main

import (
	"log"

	"github.com/stpnv0/VenueBooker/internal/app"
	"github.com/stpnv0/VenueBooker/internal/config"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("venue_booker: ")

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

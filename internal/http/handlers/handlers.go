package handlers

import (
	"database/sql"

	"guesthouse/internal/billing"
	"guesthouse/internal/config"
	"guesthouse/internal/repositories"
	"guesthouse/internal/services"
)

// Handler holds the wired core services; gin handlers are methods on it.
type Handler struct {
	Cfg       config.Config
	DB        *sql.DB
	Rooms     services.RoomService
	Guests    services.GuestService
	Bookings  services.BookingService
	Reports   services.ReportsService
	Docs      services.DocsService
	Operators repositories.OperatorRepository
}

func New(cfg config.Config, db *sql.DB) Handler {
	roomRepo := repositories.RoomRepository{DB: db}
	guestRepo := repositories.GuestRepository{DB: db}
	bookingRepo := repositories.BookingRepository{DB: db}
	calc := billing.Calculator{USDRate: cfg.USDRate}

	return Handler{
		Cfg:    cfg,
		DB:     db,
		Rooms:  services.RoomService{Rooms: roomRepo},
		Guests: services.GuestService{Guests: guestRepo},
		Bookings: services.BookingService{
			DB:       db,
			Bookings: bookingRepo,
			Rooms:    roomRepo,
			Guests:   guestRepo,
			Billing:  calc,
		},
		Reports:   services.ReportsService{Bookings: bookingRepo, Billing: calc},
		Docs:      services.DocsService{Bookings: bookingRepo, Billing: calc},
		Operators: repositories.OperatorRepository{DB: db},
	}
}

// The guesthouse CLI is the second front-desk surface. It maps subcommands
// onto the same core services the HTTP API uses; no booking or billing
// arithmetic lives here.
package main

import (
	"flag"
	"fmt"
	"os"

	"guesthouse/internal/billing"
	"guesthouse/internal/config"
	"guesthouse/internal/migrations"
	"guesthouse/internal/repositories"
	"guesthouse/internal/services"
	"guesthouse/internal/utils"
)

type app struct {
	rooms    services.RoomService
	guests   services.GuestService
	bookings services.BookingService
	reports  services.ReportsService
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := config.Load()
	db, err := config.ConnectDB(cfg)
	if err != nil {
		fail(err)
	}
	defer db.Close()

	if os.Args[1] == "init-db" {
		if err := migrations.Run(db); err != nil {
			fail(err)
		}
		fmt.Println("Database initialized.")
		return
	}

	roomRepo := repositories.RoomRepository{DB: db}
	guestRepo := repositories.GuestRepository{DB: db}
	bookingRepo := repositories.BookingRepository{DB: db}
	calc := billing.Calculator{USDRate: cfg.USDRate}

	a := app{
		rooms:  services.RoomService{Rooms: roomRepo},
		guests: services.GuestService{Guests: guestRepo},
		bookings: services.BookingService{
			DB:       db,
			Bookings: bookingRepo,
			Rooms:    roomRepo,
			Guests:   guestRepo,
			Billing:  calc,
		},
		reports: services.ReportsService{Bookings: bookingRepo, Billing: calc},
	}

	args := os.Args[2:]
	switch os.Args[1] {
	case "add-room":
		a.addRoom(args)
	case "list-rooms":
		a.listRooms()
	case "register-guest":
		a.registerGuest(args)
	case "list-guests":
		a.listGuests()
	case "check-in":
		a.checkIn(args)
	case "check-out":
		a.checkOut(args)
	case "list-bookings":
		a.listBookings(args)
	case "monthly-report":
		a.monthlyReport(args)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Guest House Management CLI

Commands:
  init-db
  add-room       --number N --type T --rate R
  list-rooms
  register-guest --name N --phone P [--nin NIN]
  list-guests
  check-in       --guest-id G --room-id R --nights N
  check-out      --booking-id B
  list-bookings  [--all]
  monthly-report --year Y --month M`)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

func parse(fs *flag.FlagSet, args []string) {
	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}
}

func (a app) addRoom(args []string) {
	fs := flag.NewFlagSet("add-room", flag.ExitOnError)
	number := fs.String("number", "", "room number")
	roomType := fs.String("type", "", "room type")
	rate := fs.Int64("rate", 0, "nightly rate in UGX")
	parse(fs, args)

	room, err := a.rooms.AddRoom(*number, *roomType, *rate)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Room %s added with id %d\n", room.Number, room.ID)
}

func (a app) listRooms() {
	rooms, err := a.rooms.ListRooms()
	if err != nil {
		fail(err)
	}
	if len(rooms) == 0 {
		fmt.Println("No rooms defined.")
		return
	}
	fmt.Printf("%3s  %6s  %-10s  %-12s  %s\n", "ID", "Number", "Type", "Rate(UGX)", "Available")
	for _, r := range rooms {
		avail := "No"
		if r.Available {
			avail = "Yes"
		}
		fmt.Printf("%3d  %6s  %-10s  %-12s  %s\n", r.ID, r.Number, r.Type, utils.FormatUGX(r.Rate), avail)
	}
}

func (a app) registerGuest(args []string) {
	fs := flag.NewFlagSet("register-guest", flag.ExitOnError)
	name := fs.String("name", "", "guest name")
	phone := fs.String("phone", "", "guest phone")
	nin := fs.String("nin", "", "national identity number (optional)")
	parse(fs, args)

	guest, err := a.guests.RegisterGuest(*name, *phone, *nin)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Guest registered with id %d\n", guest.ID)
}

func (a app) listGuests() {
	guests, err := a.guests.ListGuests()
	if err != nil {
		fail(err)
	}
	if len(guests) == 0 {
		fmt.Println("No guests found.")
		return
	}
	fmt.Printf("%3s  %-20s  %-15s  %s\n", "ID", "Name", "Phone", "NIN")
	for _, g := range guests {
		fmt.Printf("%3d  %-20s  %-15s  %s\n", g.ID, g.Name, g.Phone, g.NIN)
	}
}

func (a app) checkIn(args []string) {
	fs := flag.NewFlagSet("check-in", flag.ExitOnError)
	guestID := fs.Int64("guest-id", 0, "guest id")
	roomID := fs.Int64("room-id", 0, "room id")
	nights := fs.Int("nights", 0, "planned nights")
	parse(fs, args)

	booking, err := a.bookings.CheckIn(*guestID, *roomID, *nights)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Guest %d checked into room %d until %s (booking %d)\n",
		booking.GuestID, booking.RoomID, booking.EndDate, booking.ID)
}

func (a app) checkOut(args []string) {
	fs := flag.NewFlagSet("check-out", flag.ExitOnError)
	bookingID := fs.Int64("booking-id", 0, "booking id")
	parse(fs, args)

	r, err := a.bookings.CheckOut(*bookingID)
	if err != nil {
		fail(err)
	}

	fmt.Println("----- RECEIPT -----")
	fmt.Printf("Booking ID: %d\n", r.BookingID)
	fmt.Printf("Guest: %s (%s)\n", r.GuestName, r.GuestPhone)
	fmt.Printf("Room: %s\n", r.RoomNumber)
	fmt.Printf("Start: %s\n", r.StartDate)
	fmt.Printf("Checked out: %s\n", r.EndDate)
	fmt.Printf("Nights stayed: %d\n", r.Nights)
	fmt.Printf("Amount (USD): %s\n", utils.FormatUSD(r.AmountUSD))
	fmt.Printf("Amount (UGX): %s\n", utils.FormatUGX(r.AmountUGX))
	fmt.Println("-------------------")
}

func (a app) listBookings(args []string) {
	fs := flag.NewFlagSet("list-bookings", flag.ExitOnError)
	all := fs.Bool("all", false, "include checked-out bookings")
	parse(fs, args)

	bookings, err := a.bookings.ListBookings(*all)
	if err != nil {
		fail(err)
	}
	if len(bookings) == 0 {
		fmt.Println("No bookings found.")
		return
	}
	fmt.Printf("%3s  %-15s  %-6s  %-10s  %-10s  %s\n", "ID", "Guest", "Room", "Start", "End", "Status")
	for _, b := range bookings {
		fmt.Printf("%3d  %-15s  %-6s  %-10s  %-10s  %s\n",
			b.ID, b.GuestName, b.RoomNumber, b.StartDate, b.EndDate, b.Status)
	}
}

func (a app) monthlyReport(args []string) {
	fs := flag.NewFlagSet("monthly-report", flag.ExitOnError)
	year := fs.Int("year", 0, "report year")
	month := fs.Int("month", 0, "report month (1-12)")
	parse(fs, args)

	rep, err := a.reports.MonthlyReport(*year, *month)
	if err != nil {
		fail(err)
	}

	fmt.Printf("Monthly report for %04d-%02d\n", rep.Year, rep.Month)
	fmt.Printf("Total bookings: %d\n", rep.TotalBookings)
	fmt.Printf("Unique guests: %d\n", rep.UniqueGuests)
	fmt.Printf("Revenue: %s (%s)\n", utils.FormatUGX(rep.RevenueUGX), utils.FormatUSD(rep.RevenueUSD))
	fmt.Println("Guests breakdown:")
	for _, gb := range rep.Breakdown {
		fmt.Printf(" - %s (id %d): %d booking(s)\n", gb.Name, gb.GuestID, gb.Bookings)
	}
}

package models

// Booking status values. A booking opens as checked_in and closes exactly
// once as checked_out; there are no other transitions.
const (
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
)

// Booking dates are date-only strings (YYYY-MM-DD). EndDate holds the
// planned departure until check-out rewrites it to the actual one.
type Booking struct {
	ID        int64  `json:"id"`
	GuestID   int64  `json:"guest_id"`
	RoomID    int64  `json:"room_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}

// BookingRow is the joined listing shape shown to operators.
type BookingRow struct {
	ID         int64  `json:"id"`
	GuestName  string `json:"guest_name"`
	RoomNumber string `json:"room_number"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
}

// Receipt is the check-out result consumed by the CLI, the API and the
// PDF generator. AmountUGX is exact; AmountUSD is display-only.
type Receipt struct {
	BookingID  int64   `json:"booking_id"`
	GuestName  string  `json:"guest_name"`
	GuestPhone string  `json:"guest_phone"`
	GuestNIN   string  `json:"guest_nin,omitempty"`
	RoomNumber string  `json:"room_number"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Nights     int     `json:"nights"`
	AmountUGX  int64   `json:"amount_ugx"`
	AmountUSD  float64 `json:"amount_usd"`
}

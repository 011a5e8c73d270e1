package models

// GuestBookings is one row of the per-guest breakdown, descending by count.
type GuestBookings struct {
	GuestID  int64  `json:"guest_id"`
	Name     string `json:"name"`
	Bookings int    `json:"bookings"`
}

// MonthlyReport aggregates bookings whose start date falls inside the
// calendar month. Revenue caps each stay at the window end and is rounded
// once, at the end.
type MonthlyReport struct {
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	TotalBookings int             `json:"total_bookings"`
	UniqueGuests  int             `json:"unique_guests"`
	Breakdown     []GuestBookings `json:"breakdown"`
	RevenueUGX    int64           `json:"revenue_ugx"`
	RevenueUSD    float64         `json:"revenue_usd"`
}

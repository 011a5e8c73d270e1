package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"guesthouse/internal/billing"
	"guesthouse/internal/domain"
	"guesthouse/internal/domain/models"
	"guesthouse/internal/repositories"
	"guesthouse/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders printable artifacts: check-out receipts, booking
// invoices and monthly reports. It only formats values the ledger and the
// reporting engine already computed or stored.
type DocsService struct {
	Bookings  repositories.BookingRepository
	Billing   billing.Calculator
	RequestID string
}

// GenerateReceipt renders the receipt for a closed booking from its stored
// dates, so the figures match the ones billed at check-out.
func (s DocsService) GenerateReceipt(bookingID int64) ([]byte, string, error) {
	d, err := s.Bookings.GetDetail(bookingID)
	if err != nil {
		return nil, "", err
	}
	if d.Status != models.StatusCheckedOut {
		return nil, "", domain.ValidationError{Field: "booking", Msg: "not checked out yet"}
	}
	charge, err := s.chargeForWindow(d)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_receipt", fmt.Sprintf("booking_id=%d", bookingID))
	return buildReceiptPDF(d, charge)
}

// GenerateInvoice bills the booking's stored window at the room's current
// rate. For an open booking that is the planned stay; for a closed one it
// matches the receipt.
func (s DocsService) GenerateInvoice(bookingID int64) ([]byte, string, error) {
	d, err := s.Bookings.GetDetail(bookingID)
	if err != nil {
		return nil, "", err
	}
	charge, err := s.chargeForWindow(d)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("booking_id=%d", bookingID))
	return buildInvoicePDF(d, charge)
}

// GenerateMonthlyReport renders an already computed report.
func (s DocsService) GenerateMonthlyReport(rep models.MonthlyReport) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "generate_monthly_report", fmt.Sprintf("period=%04d-%02d", rep.Year, rep.Month))
	return buildMonthlyReportPDF(rep)
}

func (s DocsService) chargeForWindow(d repositories.BookingDetail) (billing.Charge, error) {
	start, err := utils.ParseDate(d.StartDate)
	if err != nil {
		return billing.Charge{}, domain.InternalError{Msg: "bad booking start date", Err: err}
	}
	end, err := utils.ParseDate(d.EndDate)
	if err != nil {
		return billing.Charge{}, domain.InternalError{Msg: "bad booking end date", Err: err}
	}
	nights := utils.DaysBetween(start, end)
	if nights < 1 {
		nights = 1
	}
	return s.Billing.Quote(d.Rate, nights)
}

func buildReceiptPDF(d repositories.BookingDetail, charge billing.Charge) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Receipt", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking      : #%d", d.ID),
		fmt.Sprintf("Guest        : %s (%s)", safe(d.GuestName, "-"), safe(d.GuestPhone, "-")),
		fmt.Sprintf("NIN          : %s", safe(d.GuestNIN, "-")),
		fmt.Sprintf("Room         : %s", safe(d.RoomNumber, "-")),
		fmt.Sprintf("Start        : %s", safe(d.StartDate, "-")),
		fmt.Sprintf("Checked out  : %s", safe(d.EndDate, "-")),
		fmt.Sprintf("Nights       : %d", charge.Nights),
		fmt.Sprintf("Amount (UGX) : %s", utils.FormatUGX(charge.AmountUGX)),
		fmt.Sprintf("Amount (USD) : %s", utils.FormatUSD(charge.AmountUSD)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Thank you for staying with us.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "render receipt failed", Err: err}
	}
	filename := fmt.Sprintf("RECEIPT_%d_%s.pdf", d.ID, safeFilenamePart(d.GuestName))
	return buf.Bytes(), filename, nil
}

func buildInvoicePDF(d repositories.BookingDetail, charge billing.Charge) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, fmt.Sprintf("INVOICE - Booking #%d", d.ID))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Date: "+time.Now().Format("2006-01-02"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Guest")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Name : "+safe(d.GuestName, "-"))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Phone: "+safe(d.GuestPhone, "-"))
	pdf.Ln(6)
	pdf.Cell(0, 6, "NIN  : "+safe(d.GuestNIN, "-"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Booking Details")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Room  : "+safe(d.RoomNumber, "-"))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Start : "+safe(d.StartDate, "-"))
	pdf.Ln(6)
	pdf.Cell(0, 6, "End   : "+safe(d.EndDate, "-"))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Nights: %d", charge.Nights))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Charges")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Rate (per night): "+utils.FormatUGX(d.Rate))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Subtotal (UGX)  : "+utils.FormatUGX(charge.AmountUGX))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Total (USD)     : "+utils.FormatUSD(charge.AmountUSD))
	pdf.Ln(6)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "render invoice failed", Err: err}
	}
	filename := fmt.Sprintf("INVOICE_%d_%s.pdf", d.ID, safeFilenamePart(d.GuestName))
	return buf.Bytes(), filename, nil
}

func buildMonthlyReportPDF(rep models.MonthlyReport) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Monthly Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Monthly Report: %04d-%02d", rep.Year, rep.Month))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Period        : %s to %s", rep.StartDate, rep.EndDate),
		fmt.Sprintf("Total bookings: %d", rep.TotalBookings),
		fmt.Sprintf("Unique guests : %d", rep.UniqueGuests),
		fmt.Sprintf("Revenue (UGX) : %s", utils.FormatUGX(rep.RevenueUGX)),
		fmt.Sprintf("Revenue (USD) : %s", utils.FormatUSD(rep.RevenueUSD)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Guests breakdown:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, gb := range rep.Breakdown {
		pdf.Cell(0, 6, fmt.Sprintf("%s (id %d): %d booking(s)", safe(gb.Name, "-"), gb.GuestID, gb.Bookings))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "render monthly report failed", Err: err}
	}
	filename := fmt.Sprintf("REPORT_%04d_%02d.pdf", rep.Year, rep.Month)
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}

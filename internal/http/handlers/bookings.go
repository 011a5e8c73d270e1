package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"guesthouse/internal/http/middleware"
	"guesthouse/internal/utils"

	"github.com/gin-gonic/gin"
)

type checkInPayload struct {
	GuestID int64 `json:"guest_id" binding:"required"`
	RoomID  int64 `json:"room_id" binding:"required"`
	Nights  int   `json:"nights" binding:"required"`
}

// GET /api/bookings?all=1
func (h Handler) ListBookings(c *gin.Context) {
	all := strings.TrimSpace(c.Query("all"))
	includeClosed := all == "1" || strings.EqualFold(all, "true")

	bookings, err := h.Bookings.ListBookings(includeClosed)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// POST /api/bookings  (check-in)
func (h Handler) CheckIn(c *gin.Context) {
	var payload checkInPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	booking, err := h.Bookings.CheckIn(payload.GuestID, payload.RoomID, payload.Nights)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "bookings", "check_in",
		fmt.Sprintf("booking_id=%d room_id=%d until=%s", booking.ID, booking.RoomID, booking.EndDate))
	c.JSON(http.StatusCreated, booking)
}

// POST /api/bookings/:id/check-out
func (h Handler) CheckOut(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_booking_id", "invalid booking id")
		return
	}

	receipt, err := h.Bookings.CheckOut(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "bookings", "check_out",
		fmt.Sprintf("booking_id=%d nights=%d amount=%s", receipt.BookingID, receipt.Nights, utils.FormatUGX(receipt.AmountUGX)))
	c.JSON(http.StatusOK, receipt)
}

// GET /api/bookings/:id/receipt  (PDF, closed bookings only)
func (h Handler) GetReceiptPDF(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_booking_id", "invalid booking id")
		return
	}

	docs := h.Docs
	docs.RequestID = middleware.GetRequestID(c)
	pdfBytes, filename, err := docs.GenerateReceipt(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	servePDF(c, pdfBytes, filename)
}

// GET /api/bookings/:id/invoice  (PDF)
func (h Handler) GetInvoicePDF(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_booking_id", "invalid booking id")
		return
	}

	docs := h.Docs
	docs.RequestID = middleware.GetRequestID(c)
	pdfBytes, filename, err := docs.GenerateInvoice(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	servePDF(c, pdfBytes, filename)
}

func servePDF(c *gin.Context, pdfBytes []byte, filename string) {
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

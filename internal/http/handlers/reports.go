package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"guesthouse/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func reportPeriod(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(strings.TrimSpace(c.Query("year")))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_year", "year must be a number")
		return 0, 0, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(c.Query("month")))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_month", "month must be a number")
		return 0, 0, false
	}
	return year, month, true
}

// GET /api/reports/monthly?year=2025&month=3
func (h Handler) GetMonthlyReport(c *gin.Context) {
	year, month, ok := reportPeriod(c)
	if !ok {
		return
	}

	report, err := h.Reports.MonthlyReport(year, month)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /api/reports/monthly/pdf?year=2025&month=3
func (h Handler) GetMonthlyReportPDF(c *gin.Context) {
	year, month, ok := reportPeriod(c)
	if !ok {
		return
	}

	report, err := h.Reports.MonthlyReport(year, month)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	docs := h.Docs
	docs.RequestID = middleware.GetRequestID(c)
	pdfBytes, filename, err := docs.GenerateMonthlyReport(report)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	servePDF(c, pdfBytes, filename)
}

package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"

	"guesthouse/internal/config"
	h "guesthouse/internal/http/handlers"
	"guesthouse/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(cfg config.Config, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(cfg.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	handler := h.New(cfg, db)

	api := r.Group("/api")
	api.GET("/health", handler.Health)
	api.GET("/db-check", handler.DBCheck)

	auth := api.Group("/auth")
	auth.POST("/login", handler.Login)
	auth.POST("/register", handler.Register)

	core := api.Group("")
	if cfg.AuthEnabled {
		core.Use(middleware.RequireAuth([]byte(cfg.JWTSecret)))
	}

	rooms := core.Group("/rooms")
	rooms.GET("", handler.ListRooms)
	rooms.POST("", handler.CreateRoom)

	guests := core.Group("/guests")
	guests.GET("", handler.ListGuests)
	guests.POST("", handler.RegisterGuest)

	bookings := core.Group("/bookings")
	bookings.GET("", handler.ListBookings)
	bookings.POST("", handler.CheckIn)
	bookings.POST("/:id/check-out", handler.CheckOut)
	bookings.GET("/:id/receipt", handler.GetReceiptPDF)
	bookings.GET("/:id/invoice", handler.GetInvoicePDF)

	reports := core.Group("/reports")
	reports.GET("/monthly", handler.GetMonthlyReport)
	reports.GET("/monthly/pdf", handler.GetMonthlyReportPDF)

	return r
}

package handlers

import (
	"fmt"
	"net/http"

	"guesthouse/internal/http/middleware"
	"guesthouse/internal/utils"

	"github.com/gin-gonic/gin"
)

type guestPayload struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	NIN   string `json:"nin"`
}

// GET /api/guests
func (h Handler) ListGuests(c *gin.Context) {
	guests, err := h.Guests.ListGuests()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

// POST /api/guests
func (h Handler) RegisterGuest(c *gin.Context) {
	var payload guestPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	guest, err := h.Guests.RegisterGuest(payload.Name, payload.Phone, payload.NIN)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "guests", "register", fmt.Sprintf("guest_id=%d", guest.ID))
	c.JSON(http.StatusCreated, guest)
}

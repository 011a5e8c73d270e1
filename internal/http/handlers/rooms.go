package handlers

import (
	"net/http"

	"guesthouse/internal/http/middleware"
	"guesthouse/internal/utils"

	"github.com/gin-gonic/gin"
)

type roomPayload struct {
	Number string `json:"number" binding:"required"`
	Type   string `json:"type" binding:"required"`
	Rate   int64  `json:"rate"`
}

// GET /api/rooms
func (h Handler) ListRooms(c *gin.Context) {
	rooms, err := h.Rooms.ListRooms()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// POST /api/rooms
func (h Handler) CreateRoom(c *gin.Context) {
	var payload roomPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	room, err := h.Rooms.AddRoom(payload.Number, payload.Type, payload.Rate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "rooms", "create",
		"number="+room.Number+" rate="+utils.FormatUGX(room.Rate))
	c.JSON(http.StatusCreated, room)
}

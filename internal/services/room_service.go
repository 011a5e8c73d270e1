package services

import (
	"strings"

	"guesthouse/internal/domain"
	"guesthouse/internal/domain/models"
	"guesthouse/internal/repositories"
)

// RoomService owns room descriptive fields. The availability flag is
// written only by BookingService, inside its transactions.
type RoomService struct {
	Rooms repositories.RoomRepository
}

func (s RoomService) AddRoom(number, roomType string, rate int64) (models.Room, error) {
	number = strings.TrimSpace(number)
	roomType = strings.TrimSpace(roomType)
	if number == "" {
		return models.Room{}, domain.ValidationError{Field: "number", Msg: "must not be empty"}
	}
	if roomType == "" {
		return models.Room{}, domain.ValidationError{Field: "type", Msg: "must not be empty"}
	}
	if rate < 0 {
		return models.Room{}, domain.ValidationError{Field: "rate", Msg: "must not be negative"}
	}

	id, err := s.Rooms.Insert(number, roomType, rate)
	if err != nil {
		return models.Room{}, err
	}
	return models.Room{
		ID:        id,
		Number:    number,
		Type:      roomType,
		Rate:      rate,
		Available: true,
	}, nil
}

func (s RoomService) ListRooms() ([]models.Room, error) {
	return s.Rooms.List()
}

func (s RoomService) IsAvailable(roomID int64) (bool, error) {
	room, err := s.Rooms.GetByID(roomID)
	if err != nil {
		return false, err
	}
	return room.Available, nil
}

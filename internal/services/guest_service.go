package services

import (
	"strings"

	"guesthouse/internal/domain"
	"guesthouse/internal/domain/models"
	"guesthouse/internal/repositories"
)

type GuestService struct {
	Guests repositories.GuestRepository
}

func (s GuestService) RegisterGuest(name, phone, nin string) (models.Guest, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	nin = strings.TrimSpace(nin)
	if name == "" {
		return models.Guest{}, domain.ValidationError{Field: "name", Msg: "must not be empty"}
	}
	if phone == "" {
		return models.Guest{}, domain.ValidationError{Field: "phone", Msg: "must not be empty"}
	}

	id, err := s.Guests.Insert(name, phone, nin)
	if err != nil {
		return models.Guest{}, err
	}
	return models.Guest{ID: id, Name: name, Phone: phone, NIN: nin}, nil
}

func (s GuestService) ListGuests() ([]models.Guest, error) {
	return s.Guests.List()
}

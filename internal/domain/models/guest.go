package models

type Guest struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	NIN   string `json:"nin,omitempty"`
}

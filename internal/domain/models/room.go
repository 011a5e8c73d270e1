package models

// Room rates are stored in UGX per night, whole shillings only.
type Room struct {
	ID        int64  `json:"id"`
	Number    string `json:"number"`
	Type      string `json:"type"`
	Rate      int64  `json:"rate"`
	Available bool   `json:"available"`
}

package table

import "time"

type Table struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Seats     int       `json:"seats"`
	Location  string    `json:"location,omitempty"`
	QRCodeURL string    `json:"qr_code_url,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

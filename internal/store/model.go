package store

import "time"

// Store is the single storefront's branding record.
type Store struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Logo      string    `json:"logo,omitempty"`
	Theme     Theme     `json:"theme"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Theme holds the customer-facing look and feel edited from the admin panel.
type Theme struct {
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
	AccentColor    string `json:"accentColor,omitempty"`
	FontFamily     string `json:"fontFamily,omitempty"`
	BorderRadius   string `json:"borderRadius,omitempty"`
}

// DefaultStore is used to seed a fresh database.
func DefaultStore() *Store {
	return &Store{
		ID:   "default-store",
		Name: "Café Lumière",
		Logo: "https://images.unsplash.com/photo-1534080564583-6be75777b70a",
		Theme: Theme{
			PrimaryColor:   "220 80% 50%",
			SecondaryColor: "220 20% 96%",
			AccentColor:    "30 80% 50%",
			FontFamily:     "Inter",
			BorderRadius:   "1rem",
		},
	}
}

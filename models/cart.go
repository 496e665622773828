package models

// CartLine is a menu item snapshot plus a strictly positive quantity.
// A cart never holds two lines for the same menu item id.
type CartLine struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
}

// CartSnapshot is the durable per-session form of a cart, written through to
// Redis so the cart survives page reloads.
type CartSnapshot struct {
	Lines       []CartLine `json:"lines"`
	TableNumber int        `json:"table_number"`
}

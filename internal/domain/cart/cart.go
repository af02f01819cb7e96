package cart

// LineItem is one product entry in the cart. JSON tags match the durable
// record format, so a persisted cart round-trips field for field.
type LineItem struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int64   `json:"quantity"`
}

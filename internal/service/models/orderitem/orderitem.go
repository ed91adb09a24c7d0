package orderitem

// OrderItem represents a single product line as submitted by the client.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CleanItem is a normalized item that survived filtering, with its
// computed line total. This is the shape serialized into items_json.
type CleanItem struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

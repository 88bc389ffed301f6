package domain

// Product is a catalog entry. The catalog is statically seeded and
// read-only at runtime.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
}

// CartItem is a product plus quantity. Quantity is always >= 1 and a cart
// holds at most one item per product id.
type CartItem struct {
	Product
	Quantity int
}

func (i CartItem) Subtotal() float64 { return i.Price * float64(i.Quantity) }

// TestCase is a documented UI automation scenario. Rendered on the
// test-cases page; consumed by no logic.
type TestCase struct {
	ID             string
	Title          string
	Description    string
	Steps          []string
	ExpectedResult string
}

package services

// OrderNumber is the fixed confirmation identifier. Checkout is a
// simulated confirmation: nothing is charged, stored or transmitted, so
// there are no real order records to number.
const OrderNumber = "77412"

type CheckoutService struct {
	Cart *CartService
}

func NewCheckoutService(cart *CartService) *CheckoutService {
	return &CheckoutService{Cart: cart}
}

// Place completes checkout for the session: the cart is emptied and the
// fixed order number is returned. Field validation happens in the handler
// before this point; the submitted payment fields are discarded.
func (s *CheckoutService) Place(sid string) string {
	s.Cart.Clear(sid)
	return OrderNumber
}

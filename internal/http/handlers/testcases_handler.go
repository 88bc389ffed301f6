package handlers

import (
	"github.com/gofiber/fiber/v2"

	"teststore/internal/domain"
)

type TestCasesHandler struct{}

func (h *TestCasesHandler) List(c *fiber.Ctx) error {
	ensureSID(c)
	return render(c, "testcases", fiber.Map{"TestCases": testCases})
}

// The documented automation scenarios shown on the test-cases page.
// Purely descriptive; nothing executes them.
var testCases = []domain.TestCase{
	{
		ID:          "TC-001",
		Title:       "User Login - Successful",
		Description: "Verify that a user can log in with valid credentials.",
		Steps: []string{
			"Navigate to the login page (/login)",
			"Enter 'admin' in the username field",
			"Enter 'password123' in the password field",
			"Click the Login button",
		},
		ExpectedResult: "User is redirected to the home page and sees 'Welcome, admin'.",
	},
	{
		ID:          "TC-002",
		Title:       "Add Product to Cart",
		Description: "Verify that clicking 'Add to Cart' updates the cart count.",
		Steps: []string{
			"Navigate to the shop page",
			"Find the product 'Quantum Speaker'",
			"Click 'Add to Cart'",
			"Check the header cart icon badge",
		},
		ExpectedResult: "Cart badge displays '1' and product is visible in the cart view.",
	},
	{
		ID:          "TC-003",
		Title:       "Remove from Cart",
		Description: "Verify that products can be removed from the shopping cart.",
		Steps: []string{
			"Add a product to the cart",
			"Navigate to the cart page (/cart)",
			"Click the 'Remove' button next to the product",
		},
		ExpectedResult: "The product is removed from the cart and the total is updated to $0.",
	},
	{
		ID:          "TC-004",
		Title:       "Checkout Form Validation",
		Description: "Verify that empty fields trigger validation errors in checkout.",
		Steps: []string{
			"Add a product to cart and go to checkout (/checkout)",
			"Leave the 'Full Name' field empty",
			"Click 'Place Order'",
		},
		ExpectedResult: "An error message 'Full Name is required' is displayed.",
	},
	{
		ID:          "TC-005",
		Title:       "Filter by Category",
		Description: "Verify that category filtering displays only relevant products.",
		Steps: []string{
			"Navigate to the shop page",
			"Select 'Electronics' from the category dropdown",
		},
		ExpectedResult: "Only products with category 'Electronics' are visible in the grid.",
	},
	{
		ID:          "TC-006",
		Title:       "User Registration - Valid Data",
		Description: "Verify that a new user can register successfully.",
		Steps: []string{
			"Navigate to the register page (/register)",
			"Fill in all fields with valid data",
			"Ensure passwords match",
			"Click 'Create Account'",
		},
		ExpectedResult: "A success notification appears and the user is redirected to the login page.",
	},
}

package commerce

import "time"

// Product is a catalog product with its purchasable variants.
type Product struct {
	ID          string           `json:"id"`
	Slug        string           `json:"slug"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Price       Money            `json:"price"`
	Images      []string         `json:"images,omitempty"`
	Variants    []ProductVariant `json:"variants,omitempty"`
}

// ProductVariant is a purchasable variation of a product (size, color).
type ProductVariant struct {
	ID      string            `json:"id"`
	SKU     string            `json:"sku,omitempty"`
	Options map[string]string `json:"options,omitempty"`
	Price   Money             `json:"price"`
}

// ProductList is the fixed result shape of every product-list operation.
type ProductList struct {
	Products []Product `json:"products"`
	Found    bool      `json:"found"`
}

// LineItem is a product variant placed in a cart at some quantity.
type LineItem struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice Money  `json:"unit_price"`
}

// Subtotal returns quantity times unit price.
func (li LineItem) Subtotal() Money {
	return li.UnitPrice.MulInt(li.Quantity)
}

// Totals summarizes a cart's monetary state.
type Totals struct {
	Subtotal Money `json:"subtotal"`
	Tax      Money `json:"tax"`
	Total    Money `json:"total"`
}

// Cart is the client's projection of the backend cart. The backend owns the
// authoritative state; this value may be stale.
type Cart struct {
	ID        string     `json:"id"`
	Currency  string     `json:"currency"`
	LineItems []LineItem `json:"line_items"`
	Totals    Totals     `json:"totals"`
	UpdatedAt time.Time  `json:"updated_at,omitempty"`
}

// FindItem returns the line item with the given id, if present.
func (c *Cart) FindItem(itemID string) (LineItem, bool) {
	for _, li := range c.LineItems {
		if li.ID == itemID {
			return li, true
		}
	}
	return LineItem{}, false
}

// WishlistItem is a product variant saved to a wishlist.
type WishlistItem struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
}

// Wishlist is the client's projection of the backend wishlist.
type Wishlist struct {
	ID    string         `json:"id"`
	Items []WishlistItem `json:"items"`
}

// Customer is the authenticated customer profile. Nil pointer means
// unauthenticated; the value is replaced wholesale on login/logout, never
// patched.
type Customer struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Session is the authentication result of login or signup.
type Session struct {
	Token    string    `json:"token"`
	Customer *Customer `json:"customer"`
	// ExpiresAt is when the session token stops being valid.
	ExpiresAt time.Time `json:"expires_at"`
}

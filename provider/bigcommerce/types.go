package bigcommerce

import (
	"time"

	"github.com/commercekit/commercekit/commerce"
)

// REST wire types. The v3 surface wraps every payload in {"data": ...}.

type wireCustomer struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (w wireCustomer) toCustomer() commerce.Customer {
	return commerce.Customer{
		ID:        w.ID,
		Email:     w.Email,
		FirstName: w.FirstName,
		LastName:  w.LastName,
	}
}

type wireSession struct {
	Token    string        `json:"token"`
	Customer *wireCustomer `json:"customer,omitempty"`
}

type wireLineItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	VariantID string  `json:"variant_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	ListPrice float64 `json:"list_price"`
}

type wireCart struct {
	ID        string         `json:"id"`
	Currency  string         `json:"currency"`
	LineItems []wireLineItem `json:"line_items"`
	Subtotal  float64        `json:"cart_amount"`
	Tax       float64        `json:"tax_amount"`
	Total     float64        `json:"grand_total"`
	UpdatedAt time.Time      `json:"updated_time"`
}

func (p *Provider) toCart(w wireCart) commerce.Cart {
	code := w.Currency
	if code == "" {
		code = p.cfg.CurrencyCode
	}
	cart := commerce.Cart{
		ID:        w.ID,
		Currency:  code,
		LineItems: make([]commerce.LineItem, 0, len(w.LineItems)),
		UpdatedAt: w.UpdatedAt,
	}
	for _, li := range w.LineItems {
		cart.LineItems = append(cart.LineItems, commerce.LineItem{
			ID:        li.ID,
			ProductID: li.ProductID,
			VariantID: li.VariantID,
			Name:      li.Name,
			Quantity:  li.Quantity,
			UnitPrice: p.money(li.ListPrice, code),
		})
	}
	cart.Totals = commerce.Totals{
		Subtotal: p.money(w.Subtotal, code),
		Tax:      p.money(w.Tax, code),
		Total:    p.money(w.Total, code),
	}
	return cart
}

type wireWishlistItem struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
}

type wireWishlist struct {
	ID    string             `json:"id"`
	Items []wireWishlistItem `json:"items"`
}

func (w wireWishlist) toWishlist() commerce.Wishlist {
	wl := commerce.Wishlist{
		ID:    w.ID,
		Items: make([]commerce.WishlistItem, 0, len(w.Items)),
	}
	for _, item := range w.Items {
		wl.Items = append(wl.Items, commerce.WishlistItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			VariantID: item.VariantID,
		})
	}
	return wl
}

// money builds a Money value, falling back to the configured currency when
// the backend sends an amount without a recognizable code.
func (p *Provider) money(amount float64, code string) commerce.Money {
	m, err := commerce.NewMoneyFromFloat(amount, code)
	if err != nil {
		m, err = commerce.NewMoneyFromFloat(amount, p.cfg.CurrencyCode)
		if err != nil {
			return commerce.Money{}
		}
	}
	return m
}

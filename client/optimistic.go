package client

import (
	"github.com/google/uuid"

	"github.com/commercekit/commercekit/commerce"
)

// The optimistic cart protocol: beginOptimistic installs a local projection
// of the cart before the mutation settles, settleCartMutation replaces it
// with the backend's authoritative cart, rollbackOptimistic discards it on
// failure. The projection is never written to the cache; it only shadows
// getCart while present.

// optimisticCartCopy returns a copy of the in-flight projection, if any.
func (c *Client) optimisticCartCopy() (commerce.Cart, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.optimisticCart == nil {
		return commerce.Cart{}, false
	}
	return cloneCart(*c.optimisticCart), true
}

// rememberCart records the latest authoritative cart as the projection base.
func (c *Client) rememberCart(cart commerce.Cart) {
	clone := cloneCart(cart)
	c.mu.Lock()
	c.lastCart = &clone
	c.mu.Unlock()
}

// beginOptimistic projects the mutation onto the last known cart. With no
// known cart the base is an empty cart in the configured currency.
func (c *Client) beginOptimistic(project func(commerce.Cart) commerce.Cart) {
	c.mu.Lock()
	defer c.mu.Unlock()
	base := commerce.Cart{Currency: c.cfg.Provider.CurrencyCode}
	if c.optimisticCart != nil {
		base = cloneCart(*c.optimisticCart)
	} else if c.lastCart != nil {
		base = cloneCart(*c.lastCart)
	}
	projected := project(base)
	c.optimisticCart = &projected
}

// settleCartMutation replaces the projection with the authoritative cart.
func (c *Client) settleCartMutation(cart commerce.Cart) {
	clone := cloneCart(cart)
	c.mu.Lock()
	c.lastCart = &clone
	c.optimisticCart = nil
	c.mu.Unlock()
}

// rollbackOptimistic discards the projection, restoring the pre-mutation view.
func (c *Client) rollbackOptimistic() {
	c.mu.Lock()
	c.optimisticCart = nil
	c.mu.Unlock()
}

// optimisticAdd appends a placeholder line item. The item id is temporary and
// replaced by the backend's id when the mutation settles; the price is
// unknown locally so totals keep their pre-mutation values.
func optimisticAdd(base commerce.Cart, params commerce.AddCartItemParams) commerce.Cart {
	for i, li := range base.LineItems {
		if li.VariantID == params.VariantID {
			base.LineItems[i].Quantity += params.Quantity
			return base
		}
	}
	base.LineItems = append(base.LineItems, commerce.LineItem{
		ID:        "optimistic-" + uuid.NewString(),
		ProductID: params.ProductID,
		VariantID: params.VariantID,
		Quantity:  params.Quantity,
		UnitPrice: commerce.Zero(base.Currency),
	})
	return base
}

// optimisticUpdate sets a line item's quantity, removing it at zero.
func optimisticUpdate(base commerce.Cart, itemID string, quantity int) commerce.Cart {
	items := base.LineItems[:0]
	for _, li := range base.LineItems {
		if li.ID != itemID {
			items = append(items, li)
			continue
		}
		if quantity > 0 {
			li.Quantity = quantity
			items = append(items, li)
		}
	}
	base.LineItems = items
	return base
}

func cloneCart(cart commerce.Cart) commerce.Cart {
	clone := cart
	clone.LineItems = make([]commerce.LineItem, len(cart.LineItems))
	copy(clone.LineItems, cart.LineItems)
	return clone
}

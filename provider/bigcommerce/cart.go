package bigcommerce

import (
	"context"
	"net/http"

	"github.com/commercekit/commercekit/commerce"
	"github.com/commercekit/commercekit/errors"
	"github.com/commercekit/commercekit/httpclient"
)

// cartPath is the session-scoped cart resource. The backend resolves the
// concrete cart from the session token, so the client never tracks a cart id
// across requests.
const cartPath = "/v3/carts/current"

// GetCart returns the session's cart. A backend 404 means the session has no
// cart yet, which maps to an empty cart rather than an error.
func (p *Provider) GetCart(ctx context.Context, token string) (commerce.Cart, error) {
	resp, err := p.http.Do(ctx, sessionRequest(http.MethodGet, cartPath, token, nil))
	if errors.IsUpstream(err) && errors.StatusCode(err) == http.StatusNotFound {
		return p.emptyCart(), nil
	}
	if err != nil {
		return commerce.Cart{}, err
	}
	return p.decodeCart(resp)
}

// AddCartItem adds a variant to the cart, creating the cart when the session
// has none.
func (p *Provider) AddCartItem(ctx context.Context, token string, params commerce.AddCartItemParams) (commerce.Cart, error) {
	resp, err := p.http.Do(ctx, sessionRequest(http.MethodPost, cartPath+"/items", token, params))
	if err != nil {
		return commerce.Cart{}, err
	}
	return p.decodeCart(resp)
}

// UpdateCartItem sets a line item's quantity. Quantity zero is a removal;
// the backend rejects zero-quantity line items so the translation happens
// here.
func (p *Provider) UpdateCartItem(ctx context.Context, token string, params commerce.UpdateCartItemParams) (commerce.Cart, error) {
	if params.Quantity == 0 {
		return p.RemoveCartItem(ctx, token, commerce.RemoveCartItemParams{ItemID: params.ItemID})
	}
	body := struct {
		Quantity int `json:"quantity"`
	}{Quantity: params.Quantity}
	resp, err := p.http.Do(ctx, sessionRequest(http.MethodPut, cartPath+"/items/"+params.ItemID, token, body))
	if err != nil {
		return commerce.Cart{}, err
	}
	return p.decodeCart(resp)
}

// RemoveCartItem removes a line item. Removing the last item deletes the
// backend cart, which comes back as an empty body here.
func (p *Provider) RemoveCartItem(ctx context.Context, token string, params commerce.RemoveCartItemParams) (commerce.Cart, error) {
	resp, err := p.http.Do(ctx, sessionRequest(http.MethodDelete, cartPath+"/items/"+params.ItemID, token, nil))
	if err != nil {
		return commerce.Cart{}, err
	}
	if len(resp.Body) == 0 || resp.StatusCode == http.StatusNoContent {
		return p.emptyCart(), nil
	}
	return p.decodeCart(resp)
}

func (p *Provider) decodeCart(resp *httpclient.Response) (commerce.Cart, error) {
	var out envelope[wireCart]
	if err := resp.Decode(&out); err != nil {
		return commerce.Cart{}, errors.Network(err)
	}
	return p.toCart(out.Data), nil
}

func (p *Provider) emptyCart() commerce.Cart {
	return commerce.Cart{
		Currency:  p.cfg.CurrencyCode,
		LineItems: []commerce.LineItem{},
		Totals: commerce.Totals{
			Subtotal: commerce.Zero(p.cfg.CurrencyCode),
			Tax:      commerce.Zero(p.cfg.CurrencyCode),
			Total:    commerce.Zero(p.cfg.CurrencyCode),
		},
	}
}

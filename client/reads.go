package client

import (
	"context"

	"github.com/commercekit/commercekit/cache"
	"github.com/commercekit/commercekit/commerce"
	"github.com/commercekit/commercekit/dispatch"
	"github.com/commercekit/commercekit/errors"
	"github.com/commercekit/commercekit/validation"
)

// GetCustomer returns the authenticated customer, or nil when the session is
// anonymous or the token was rejected.
func (c *Client) GetCustomer(ctx context.Context) (*commerce.Customer, error) {
	token := c.token()
	if token == "" {
		return nil, nil
	}
	return readThrough[*commerce.Customer](ctx, c, commerce.OpGetCustomer,
		sessionScope{Token: token},
		dispatch.Request{Operation: commerce.OpGetCustomer, Token: token})
}

// GetCart returns the session's cart. While a cart mutation is in flight the
// optimistic projection is returned instead of hitting the cache.
func (c *Client) GetCart(ctx context.Context) (commerce.Cart, error) {
	if optimistic, ok := c.optimisticCartCopy(); ok {
		return optimistic, nil
	}

	token := c.token()
	cart, err := readThrough[commerce.Cart](ctx, c, commerce.OpGetCart,
		sessionScope{Token: token},
		dispatch.Request{Operation: commerce.OpGetCart, Token: token})
	if err != nil {
		return commerce.Cart{}, err
	}
	c.rememberCart(cart)
	return cart, nil
}

// GetWishlist returns the session's wishlist. Providers without the wishlist
// capability fail with NOT_SUPPORTED.
func (c *Client) GetWishlist(ctx context.Context) (commerce.Wishlist, error) {
	if !c.disp.SupportsWishlist() {
		return commerce.Wishlist{}, errors.NotSupported(commerce.OpGetWishlist.String(), c.disp.Name())
	}
	token := c.token()
	return readThrough[commerce.Wishlist](ctx, c, commerce.OpGetWishlist,
		sessionScope{Token: token},
		dispatch.Request{Operation: commerce.OpGetWishlist, Token: token})
}

// SearchProducts returns products matching the search refinements, normalized
// to a flat list. Results are cached per distinct parameter set.
func (c *Client) SearchProducts(ctx context.Context, params commerce.SearchProductsParams) (commerce.ProductList, error) {
	if err := validation.Validate(params); err != nil {
		return commerce.ProductList{}, err
	}
	return readThrough[commerce.ProductList](ctx, c, commerce.OpSearchProducts, params,
		dispatch.Request{Operation: commerce.OpSearchProducts, Params: params})
}

// GetProduct returns a product by slug, or nil when the slug resolves to
// nothing.
func (c *Client) GetProduct(ctx context.Context, params commerce.GetProductParams) (*commerce.Product, error) {
	if err := validation.Validate(params); err != nil {
		return nil, err
	}
	return readThrough[*commerce.Product](ctx, c, commerce.OpGetProduct, params,
		dispatch.Request{Operation: commerce.OpGetProduct, Params: params})
}

// GetAllProducts returns up to Count products for a listing facet.
func (c *Client) GetAllProducts(ctx context.Context, params commerce.GetAllProductsParams) (commerce.ProductList, error) {
	if err := validation.Validate(params); err != nil {
		return commerce.ProductList{}, err
	}
	return readThrough[commerce.ProductList](ctx, c, commerce.OpGetAllProducts, params,
		dispatch.Request{Operation: commerce.OpGetAllProducts, Params: params})
}

// readThrough serves one read operation from the cache, fetching through the
// dispatch chain on miss. fpParams feed the fingerprint and must cover every
// input that changes the result.
func readThrough[T any](ctx context.Context, c *Client, op commerce.Operation, fpParams any, req dispatch.Request) (T, error) {
	var zero T
	fp, err := cache.NewFingerprint(op, fpParams)
	if err != nil {
		return zero, errors.Validation(err.Error())
	}
	return cache.ReadAs[T](ctx, c.cache, fp, func(ctx context.Context) (T, error) {
		out, err := c.exec.Execute(ctx, req)
		if err != nil {
			return zero, err
		}
		v, ok := out.(T)
		if !ok {
			return zero, errors.Validation("unexpected result type for " + op.String())
		}
		return v, nil
	})
}

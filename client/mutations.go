package client

import (
	"context"

	"github.com/commercekit/commercekit/cache"
	"github.com/commercekit/commercekit/commerce"
	"github.com/commercekit/commercekit/dispatch"
	"github.com/commercekit/commercekit/errors"
	"github.com/commercekit/commercekit/validation"
)

// cartDependents and wishlistDependents are the read operations each mutation
// class invalidates. The mapping is static: a successful cart mutation always
// drops cart reads, nothing else.
var (
	cartDependents     = cache.ByOperation(commerce.OpGetCart)
	wishlistDependents = cache.ByOperation(commerce.OpGetWishlist)
	// Auth mutations replace the whole customer-visible state.
	authDependents = cache.ByClass(
		commerce.ClassCustomer, commerce.ClassCart, commerce.ClassWishlist,
	)
)

// Login authenticates the customer and replaces the client session. A backend
// rejection (401) leaves the session unauthenticated and drops nothing.
func (c *Client) Login(ctx context.Context, params commerce.LoginParams) (commerce.Session, error) {
	return c.sessionMutation(ctx, dispatch.Request{Operation: commerce.OpLogin, Params: params})
}

// Signup creates an account and starts an authenticated session.
func (c *Client) Signup(ctx context.Context, params commerce.SignupParams) (commerce.Session, error) {
	return c.sessionMutation(ctx, dispatch.Request{Operation: commerce.OpSignup, Params: params})
}

// sessionMutation executes one auth mutation and installs the new session.
func (c *Client) sessionMutation(ctx context.Context, req dispatch.Request) (commerce.Session, error) {
	out, err := c.exec.Execute(ctx, req)
	if err != nil {
		return commerce.Session{}, err
	}
	session, ok := out.(commerce.Session)
	if !ok {
		return commerce.Session{}, errors.Validation("unexpected result type for " + req.Operation.String())
	}
	c.replaceSession(session)
	return session, nil
}

// Logout ends the session. Customer, cart, and wishlist caches are dropped so
// stale personal data cannot be served to the next session.
func (c *Client) Logout(ctx context.Context) error {
	token := c.token()
	if _, err := c.exec.Execute(ctx, dispatch.Request{Operation: commerce.OpLogout, Token: token}); err != nil {
		return err
	}
	c.replaceSession(commerce.Session{})
	return nil
}

// replaceSession swaps the session wholesale and drops every session-scoped
// cache entry.
func (c *Client) replaceSession(session commerce.Session) {
	c.mu.Lock()
	c.session = session
	c.lastCart = nil
	c.optimisticCart = nil
	c.mu.Unlock()
	c.cache.Drop(authDependents)
}

// AddCartItem adds a variant to the cart. The cached cart shows the item
// optimistically while the request is in flight; the backend's cart replaces
// the projection on success.
func (c *Client) AddCartItem(ctx context.Context, params commerce.AddCartItemParams) (commerce.Cart, error) {
	if err := validation.Validate(params); err != nil {
		return commerce.Cart{}, err
	}
	c.beginOptimistic(func(base commerce.Cart) commerce.Cart {
		return optimisticAdd(base, params)
	})
	return c.cartMutation(ctx, dispatch.Request{
		Operation: commerce.OpAddCartItem, Token: c.token(), Params: params,
	})
}

// UpdateCartItem changes a line item's quantity. Quantity zero removes the
// item.
func (c *Client) UpdateCartItem(ctx context.Context, params commerce.UpdateCartItemParams) (commerce.Cart, error) {
	if err := validation.Validate(params); err != nil {
		return commerce.Cart{}, err
	}
	c.beginOptimistic(func(base commerce.Cart) commerce.Cart {
		return optimisticUpdate(base, params.ItemID, params.Quantity)
	})
	return c.cartMutation(ctx, dispatch.Request{
		Operation: commerce.OpUpdateCartItem, Token: c.token(), Params: params,
	})
}

// RemoveCartItem removes a line item from the cart.
func (c *Client) RemoveCartItem(ctx context.Context, params commerce.RemoveCartItemParams) (commerce.Cart, error) {
	if err := validation.Validate(params); err != nil {
		return commerce.Cart{}, err
	}
	c.beginOptimistic(func(base commerce.Cart) commerce.Cart {
		return optimisticUpdate(base, params.ItemID, 0)
	})
	return c.cartMutation(ctx, dispatch.Request{
		Operation: commerce.OpRemoveCartItem, Token: c.token(), Params: params,
	})
}

// cartMutation executes one cart mutation and reconciles the optimistic
// projection: authoritative cart on success, rollback on failure. The cached
// cart read is dropped before the projection clears, so the next getCart
// refetches.
func (c *Client) cartMutation(ctx context.Context, req dispatch.Request) (commerce.Cart, error) {
	out, err := c.exec.Execute(ctx, req)
	if err != nil {
		c.rollbackOptimistic()
		return commerce.Cart{}, err
	}
	cart, ok := out.(commerce.Cart)
	if !ok {
		c.rollbackOptimistic()
		return commerce.Cart{}, errors.Validation("unexpected result type for " + req.Operation.String())
	}
	c.cache.Drop(cartDependents)
	c.settleCartMutation(cart)
	return cart, nil
}

// AddWishlistItem saves a variant to the wishlist and drops cached wishlist
// reads.
func (c *Client) AddWishlistItem(ctx context.Context, params commerce.AddWishlistItemParams) (commerce.Wishlist, error) {
	return c.wishlistMutation(ctx, commerce.OpAddWishlistItem, params)
}

// RemoveWishlistItem removes a saved item and drops cached wishlist reads.
func (c *Client) RemoveWishlistItem(ctx context.Context, params commerce.RemoveWishlistItemParams) (commerce.Wishlist, error) {
	return c.wishlistMutation(ctx, commerce.OpRemoveWishlistItem, params)
}

func (c *Client) wishlistMutation(ctx context.Context, op commerce.Operation, params any) (commerce.Wishlist, error) {
	if !c.disp.SupportsWishlist() {
		return commerce.Wishlist{}, errors.NotSupported(op.String(), c.disp.Name())
	}
	out, err := c.exec.Execute(ctx, dispatch.Request{Operation: op, Token: c.token(), Params: params})
	if err != nil {
		return commerce.Wishlist{}, err
	}
	wl, ok := out.(commerce.Wishlist)
	if !ok {
		return commerce.Wishlist{}, errors.Validation("unexpected result type for " + op.String())
	}
	c.cache.Drop(wishlistDependents)
	return wl, nil
}

package dispatch

import (
	"context"
	"fmt"

	"github.com/commercekit/commercekit/commerce"
	"github.com/commercekit/commercekit/errors"
	"github.com/commercekit/commercekit/provider"
	"github.com/commercekit/commercekit/validation"
)

// Request names one operation invocation. Token carries the session for
// operations that act on customer state; params not needed by the operation
// are left nil.
type Request struct {
	Operation commerce.Operation
	Token     string
	Params    any
}

// Executor executes commerce operation requests. Dispatcher is the terminal
// Executor; middleware wraps it.
type Executor interface {
	// Name identifies the executor for logs and spans.
	Name() string
	// Execute runs one operation and returns its result value.
	Execute(ctx context.Context, req Request) (any, error)
}

// Dispatcher routes requests to a provider binding.
type Dispatcher struct {
	provider provider.Commerce
	wishlist provider.WishlistProvider
}

var _ Executor = (*Dispatcher)(nil)

// New builds a Dispatcher over the given provider. The wishlist capability is
// detected by interface assertion; providers without it get NOT_SUPPORTED
// for wishlist operations.
func New(p provider.Commerce) *Dispatcher {
	d := &Dispatcher{provider: p}
	if wl, ok := p.(provider.WishlistProvider); ok {
		d.wishlist = wl
	}
	return d
}

// Name returns the underlying provider name.
func (d *Dispatcher) Name() string { return d.provider.Name() }

// SupportsWishlist reports whether the provider implements the wishlist
// capability.
func (d *Dispatcher) SupportsWishlist() bool { return d.wishlist != nil }

// Execute validates the request parameters and invokes the provider method
// for the named operation.
func (d *Dispatcher) Execute(ctx context.Context, req Request) (any, error) {
	switch req.Operation {
	case commerce.OpLogin:
		params, err := requestParams[commerce.LoginParams](req)
		if err != nil {
			return nil, err
		}
		return d.provider.Login(ctx, params)

	case commerce.OpLogout:
		return nil, d.provider.Logout(ctx, req.Token)

	case commerce.OpSignup:
		params, err := requestParams[commerce.SignupParams](req)
		if err != nil {
			return nil, err
		}
		return d.provider.Signup(ctx, params)

	case commerce.OpGetCustomer:
		return d.provider.GetCustomer(ctx, req.Token)

	case commerce.OpGetCart:
		return d.provider.GetCart(ctx, req.Token)

	case commerce.OpAddCartItem:
		params, err := requestParams[commerce.AddCartItemParams](req)
		if err != nil {
			return nil, err
		}
		return d.provider.AddCartItem(ctx, req.Token, params)

	case commerce.OpUpdateCartItem:
		params, err := requestParams[commerce.UpdateCartItemParams](req)
		if err != nil {
			return nil, err
		}
		return d.provider.UpdateCartItem(ctx, req.Token, params)

	case commerce.OpRemoveCartItem:
		params, err := requestParams[commerce.RemoveCartItemParams](req)
		if err != nil {
			return nil, err
		}
		return d.provider.RemoveCartItem(ctx, req.Token, params)

	case commerce.OpGetWishlist:
		if d.wishlist == nil {
			return nil, d.notSupported(req.Operation)
		}
		return d.wishlist.GetWishlist(ctx, req.Token)

	case commerce.OpAddWishlistItem:
		if d.wishlist == nil {
			return nil, d.notSupported(req.Operation)
		}
		params, err := requestParams[commerce.AddWishlistItemParams](req)
		if err != nil {
			return nil, err
		}
		return d.wishlist.AddWishlistItem(ctx, req.Token, params)

	case commerce.OpRemoveWishlistItem:
		if d.wishlist == nil {
			return nil, d.notSupported(req.Operation)
		}
		params, err := requestParams[commerce.RemoveWishlistItemParams](req)
		if err != nil {
			return nil, err
		}
		return d.wishlist.RemoveWishlistItem(ctx, req.Token, params)

	case commerce.OpSearchProducts:
		params, err := requestParams[commerce.SearchProductsParams](req)
		if err != nil {
			return nil, err
		}
		return d.provider.SearchProducts(ctx, params)

	case commerce.OpGetProduct:
		params, err := requestParams[commerce.GetProductParams](req)
		if err != nil {
			return nil, err
		}
		return d.provider.GetProduct(ctx, params)

	case commerce.OpGetAllProducts:
		params, err := requestParams[commerce.GetAllProductsParams](req)
		if err != nil {
			return nil, err
		}
		return d.provider.GetAllProducts(ctx, params)
	}

	return nil, d.notSupported(req.Operation)
}

func (d *Dispatcher) notSupported(op commerce.Operation) error {
	return errors.NotSupported(op.String(), d.provider.Name())
}

// requestParams asserts and validates the typed parameters of a request.
func requestParams[T any](req Request) (T, error) {
	params, ok := req.Params.(T)
	if !ok {
		var want T
		return want, errors.Validation(fmt.Sprintf(
			"%s params: got %T, want %T", req.Operation, req.Params, want,
		))
	}
	if err := validation.Validate(params); err != nil {
		return params, err
	}
	return params, nil
}

package provider

import (
	"context"

	"github.com/commercekit/commercekit/commerce"
	"github.com/commercekit/commercekit/config"
)

// Commerce is the required operation surface every backend binding implements.
//
// Mutating methods that act on a session (cart, customer) receive the session
// token issued by Login or Signup; an empty token means an anonymous session.
type Commerce interface {
	// Name returns the provider's registered name.
	Name() string

	// Login authenticates a customer and returns a session.
	Login(ctx context.Context, params commerce.LoginParams) (commerce.Session, error)
	// Logout invalidates the session token on the backend.
	Logout(ctx context.Context, token string) error
	// Signup creates a customer account and returns an authenticated session.
	Signup(ctx context.Context, params commerce.SignupParams) (commerce.Session, error)
	// GetCustomer returns the customer bound to the session token. A nil
	// customer with nil error means unauthenticated.
	GetCustomer(ctx context.Context, token string) (*commerce.Customer, error)

	// GetCart returns the session's cart, creating an empty one if the
	// backend has none.
	GetCart(ctx context.Context, token string) (commerce.Cart, error)
	// AddCartItem adds a variant to the cart and returns the updated cart.
	AddCartItem(ctx context.Context, token string, params commerce.AddCartItemParams) (commerce.Cart, error)
	// UpdateCartItem changes a line item's quantity. Quantity zero removes
	// the item.
	UpdateCartItem(ctx context.Context, token string, params commerce.UpdateCartItemParams) (commerce.Cart, error)
	// RemoveCartItem removes a line item and returns the updated cart.
	RemoveCartItem(ctx context.Context, token string, params commerce.RemoveCartItemParams) (commerce.Cart, error)

	// SearchProducts returns products matching the search refinements.
	SearchProducts(ctx context.Context, params commerce.SearchProductsParams) (commerce.ProductList, error)
	// GetProduct returns a single product by slug.
	GetProduct(ctx context.Context, params commerce.GetProductParams) (*commerce.Product, error)
	// GetAllProducts returns up to Count products for a listing facet.
	GetAllProducts(ctx context.Context, params commerce.GetAllProductsParams) (commerce.ProductList, error)
}

// WishlistProvider is the optional wishlist capability.
type WishlistProvider interface {
	// GetWishlist returns the session's wishlist.
	GetWishlist(ctx context.Context, token string) (commerce.Wishlist, error)
	// AddWishlistItem saves a variant to the wishlist.
	AddWishlistItem(ctx context.Context, token string, params commerce.AddWishlistItemParams) (commerce.Wishlist, error)
	// RemoveWishlistItem removes a saved item.
	RemoveWishlistItem(ctx context.Context, token string, params commerce.RemoveWishlistItemParams) (commerce.Wishlist, error)
}

// Factory builds a provider instance from the validated provider config.
type Factory func(cfg config.Provider) (Commerce, error)

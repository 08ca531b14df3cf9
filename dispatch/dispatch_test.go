package dispatch

import (
	"context"
	"testing"

	"github.com/commercekit/commercekit/commerce"
	"github.com/commercekit/commercekit/errors"
	"github.com/commercekit/commercekit/provider"
)

// fakeProvider records invocations and returns canned values. It has no
// wishlist capability.
type fakeProvider struct {
	lastOp    commerce.Operation
	lastToken string
	cart      commerce.Cart
	err       error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Login(ctx context.Context, params commerce.LoginParams) (commerce.Session, error) {
	f.lastOp = commerce.OpLogin
	return commerce.Session{Token: "issued"}, f.err
}

func (f *fakeProvider) Logout(ctx context.Context, token string) error {
	f.lastOp, f.lastToken = commerce.OpLogout, token
	return f.err
}

func (f *fakeProvider) Signup(ctx context.Context, params commerce.SignupParams) (commerce.Session, error) {
	f.lastOp = commerce.OpSignup
	return commerce.Session{Token: "issued"}, f.err
}

func (f *fakeProvider) GetCustomer(ctx context.Context, token string) (*commerce.Customer, error) {
	f.lastOp, f.lastToken = commerce.OpGetCustomer, token
	return nil, f.err
}

func (f *fakeProvider) GetCart(ctx context.Context, token string) (commerce.Cart, error) {
	f.lastOp, f.lastToken = commerce.OpGetCart, token
	return f.cart, f.err
}

func (f *fakeProvider) AddCartItem(ctx context.Context, token string, params commerce.AddCartItemParams) (commerce.Cart, error) {
	f.lastOp, f.lastToken = commerce.OpAddCartItem, token
	return f.cart, f.err
}

func (f *fakeProvider) UpdateCartItem(ctx context.Context, token string, params commerce.UpdateCartItemParams) (commerce.Cart, error) {
	f.lastOp, f.lastToken = commerce.OpUpdateCartItem, token
	return f.cart, f.err
}

func (f *fakeProvider) RemoveCartItem(ctx context.Context, token string, params commerce.RemoveCartItemParams) (commerce.Cart, error) {
	f.lastOp, f.lastToken = commerce.OpRemoveCartItem, token
	return f.cart, f.err
}

func (f *fakeProvider) SearchProducts(ctx context.Context, params commerce.SearchProductsParams) (commerce.ProductList, error) {
	f.lastOp = commerce.OpSearchProducts
	return commerce.ProductList{}, f.err
}

func (f *fakeProvider) GetProduct(ctx context.Context, params commerce.GetProductParams) (*commerce.Product, error) {
	f.lastOp = commerce.OpGetProduct
	return &commerce.Product{Slug: params.Slug}, f.err
}

func (f *fakeProvider) GetAllProducts(ctx context.Context, params commerce.GetAllProductsParams) (commerce.ProductList, error) {
	f.lastOp = commerce.OpGetAllProducts
	return commerce.ProductList{}, f.err
}

var _ provider.Commerce = (*fakeProvider)(nil)

// wishlistFake adds the optional capability on top of fakeProvider.
type wishlistFake struct {
	fakeProvider
	wishlist commerce.Wishlist
}

func (f *wishlistFake) GetWishlist(ctx context.Context, token string) (commerce.Wishlist, error) {
	f.lastOp, f.lastToken = commerce.OpGetWishlist, token
	return f.wishlist, nil
}

func (f *wishlistFake) AddWishlistItem(ctx context.Context, token string, params commerce.AddWishlistItemParams) (commerce.Wishlist, error) {
	f.lastOp = commerce.OpAddWishlistItem
	return f.wishlist, nil
}

func (f *wishlistFake) RemoveWishlistItem(ctx context.Context, token string, params commerce.RemoveWishlistItemParams) (commerce.Wishlist, error) {
	f.lastOp = commerce.OpRemoveWishlistItem
	return f.wishlist, nil
}

func TestDispatcher_Execute_RoutesToProvider(t *testing.T) {
	fake := &fakeProvider{}
	d := New(fake)

	out, err := d.Execute(context.Background(), Request{
		Operation: commerce.OpGetCart,
		Token:     "tok",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if _, ok := out.(commerce.Cart); !ok {
		t.Errorf("result type = %T, want commerce.Cart", out)
	}
	if fake.lastOp != commerce.OpGetCart || fake.lastToken != "tok" {
		t.Errorf("provider saw %s token=%q, want getCart tok", fake.lastOp, fake.lastToken)
	}
}

func TestDispatcher_Execute_ValidatesParams(t *testing.T) {
	d := New(&fakeProvider{})

	_, err := d.Execute(context.Background(), Request{
		Operation: commerce.OpAddCartItem,
		Token:     "tok",
		Params:    commerce.AddCartItemParams{ProductID: "p", VariantID: "v", Quantity: 0},
	})
	if !errors.IsConfiguration(err) {
		t.Errorf("err = %v, want a validation failure for quantity 0", err)
	}
}

func TestDispatcher_Execute_WrongParamType(t *testing.T) {
	d := New(&fakeProvider{})

	_, err := d.Execute(context.Background(), Request{
		Operation: commerce.OpAddCartItem,
		Params:    commerce.LoginParams{Email: "jo@example.com", Password: "x"},
	})
	if err == nil {
		t.Fatal("Execute accepted params of the wrong type")
	}
}

func TestDispatcher_Execute_UnknownOperation(t *testing.T) {
	d := New(&fakeProvider{})

	_, err := d.Execute(context.Background(), Request{Operation: commerce.Operation("checkout")})
	if !errors.IsNotSupported(err) {
		t.Errorf("err = %v, want NOT_SUPPORTED for an unknown operation", err)
	}
}

func TestDispatcher_Execute_WishlistWithoutCapability(t *testing.T) {
	d := New(&fakeProvider{})

	if d.SupportsWishlist() {
		t.Error("SupportsWishlist = true for a provider without the capability")
	}
	for _, op := range []commerce.Operation{
		commerce.OpGetWishlist, commerce.OpAddWishlistItem, commerce.OpRemoveWishlistItem,
	} {
		req := Request{Operation: op, Token: "tok"}
		switch op {
		case commerce.OpAddWishlistItem:
			req.Params = commerce.AddWishlistItemParams{ProductID: "p", VariantID: "v"}
		case commerce.OpRemoveWishlistItem:
			req.Params = commerce.RemoveWishlistItemParams{ItemID: "i"}
		}
		if _, err := d.Execute(context.Background(), req); !errors.IsNotSupported(err) {
			t.Errorf("%s err = %v, want NOT_SUPPORTED", op, err)
		}
	}
}

func TestDispatcher_Execute_WishlistWithCapability(t *testing.T) {
	fake := &wishlistFake{wishlist: commerce.Wishlist{ID: "wl-1"}}
	d := New(fake)

	if !d.SupportsWishlist() {
		t.Fatal("SupportsWishlist = false for a provider with the capability")
	}
	out, err := d.Execute(context.Background(), Request{Operation: commerce.OpGetWishlist, Token: "tok"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	wl, ok := out.(commerce.Wishlist)
	if !ok || wl.ID != "wl-1" {
		t.Errorf("result = %#v, want wishlist wl-1", out)
	}
}

func TestDispatcher_Execute_Logout(t *testing.T) {
	fake := &fakeProvider{}
	d := New(fake)

	out, err := d.Execute(context.Background(), Request{Operation: commerce.OpLogout, Token: "tok"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out != nil {
		t.Errorf("logout result = %#v, want nil", out)
	}
	if fake.lastToken != "tok" {
		t.Errorf("provider saw token %q, want tok", fake.lastToken)
	}
}

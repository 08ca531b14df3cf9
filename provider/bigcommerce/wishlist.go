package bigcommerce

import (
	"context"
	"net/http"

	"github.com/commercekit/commercekit/commerce"
	"github.com/commercekit/commercekit/errors"
	"github.com/commercekit/commercekit/httpclient"
)

const wishlistPath = "/v3/wishlists/current"

// GetWishlist returns the session's wishlist. A backend 404 maps to an empty
// wishlist, matching the cart behavior.
func (p *Provider) GetWishlist(ctx context.Context, token string) (commerce.Wishlist, error) {
	resp, err := p.http.Do(ctx, sessionRequest(http.MethodGet, wishlistPath, token, nil))
	if errors.IsUpstream(err) && errors.StatusCode(err) == http.StatusNotFound {
		return commerce.Wishlist{Items: []commerce.WishlistItem{}}, nil
	}
	if err != nil {
		return commerce.Wishlist{}, err
	}
	return decodeWishlist(resp)
}

// AddWishlistItem saves a variant to the wishlist.
func (p *Provider) AddWishlistItem(ctx context.Context, token string, params commerce.AddWishlistItemParams) (commerce.Wishlist, error) {
	resp, err := p.http.Do(ctx, sessionRequest(http.MethodPost, wishlistPath+"/items", token, params))
	if err != nil {
		return commerce.Wishlist{}, err
	}
	return decodeWishlist(resp)
}

// RemoveWishlistItem removes a saved item.
func (p *Provider) RemoveWishlistItem(ctx context.Context, token string, params commerce.RemoveWishlistItemParams) (commerce.Wishlist, error) {
	resp, err := p.http.Do(ctx, sessionRequest(http.MethodDelete, wishlistPath+"/items/"+params.ItemID, token, nil))
	if err != nil {
		return commerce.Wishlist{}, err
	}
	if len(resp.Body) == 0 || resp.StatusCode == http.StatusNoContent {
		return commerce.Wishlist{Items: []commerce.WishlistItem{}}, nil
	}
	return decodeWishlist(resp)
}

func decodeWishlist(resp *httpclient.Response) (commerce.Wishlist, error) {
	var out envelope[wireWishlist]
	if err := resp.Decode(&out); err != nil {
		return commerce.Wishlist{}, errors.Network(err)
	}
	return out.Data.toWishlist(), nil
}

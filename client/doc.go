// Package client is the caller-facing surface of the commerce library.
//
// A Client wires the provider binding, the operation dispatcher, and the
// request cache into one typed API. Reads (getCustomer, getCart, search)
// go through the cache and share in-flight fetches; mutations (login, cart
// and wishlist changes) execute exactly once and invalidate the cached
// reads that depend on them.
//
//	cfg := config.Config{Provider: config.Provider{
//		Name:        "bigcommerce",
//		Endpoint:    "https://store.example.com",
//		Credentials: "api-token",
//	}}
//	c, err := client.New(cfg)
//	if err != nil {
//		return err
//	}
//
//	cart, err := c.AddCartItem(ctx, commerce.AddCartItemParams{
//		ProductID: "123", VariantID: "456", Quantity: 1,
//	})
package client

// Package provider defines the capability interfaces a commerce backend
// binding implements, and the registry that maps provider names to factories.
//
// Commerce is the required surface: auth, customer, cart, and catalog
// operations. Wishlists are an optional capability; a provider that does not
// implement WishlistProvider causes wishlist operations to fail with a
// NOT_SUPPORTED error rather than reaching the backend.
//
// Exactly one provider is selected at configuration time and never switched
// for the lifetime of the client.
package provider

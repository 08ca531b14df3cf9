// Package commerce defines the backend-neutral domain model: products, carts,
// wishlists, customers, and the named operation set every provider binds to.
//
// Providers normalize their platform-specific response shapes into these
// types, so callers see one fixed shape per operation regardless of backend.
package commerce

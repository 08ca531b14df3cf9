// Package bigcommerce binds the commerce operation set to a BigCommerce-style
// backend: REST (v3, data-envelope responses) for customers, carts, and
// wishlists, and a GraphQL storefront endpoint for catalog reads.
//
// Importing the package registers the "bigcommerce" factory with the default
// provider registry:
//
//	import _ "github.com/commercekit/commercekit/provider/bigcommerce"
package bigcommerce

package cache

import (
	"time"

	"github.com/commercekit/commercekit/commerce"
)

// Default TTLs per operation class. These are deliberately a configuration
// surface; the defaults only apply when the policy leaves a class unset.
const (
	DefaultCustomerTTL = 2 * time.Minute
	DefaultCartTTL     = 30 * time.Second
	DefaultCatalogTTL  = 5 * time.Minute
)

// Policy governs staleness per operation class and which classes revalidate
// on focus/reconnect.
type Policy struct {
	// TTL maps an operation class to its freshness window. Unset classes use
	// the package defaults (wishlist follows the cart class).
	TTL map[commerce.Class]time.Duration
	// RevalidateOnFocus lists classes re-checked when the caller signals
	// focus or reconnect.
	RevalidateOnFocus []commerce.Class
}

// DefaultPolicy returns the default staleness policy: customer data
// revalidates on focus, catalog data only on parameter change or explicit
// invalidation.
func DefaultPolicy() Policy {
	return Policy{
		TTL: map[commerce.Class]time.Duration{
			commerce.ClassCustomer: DefaultCustomerTTL,
			commerce.ClassCart:     DefaultCartTTL,
			commerce.ClassWishlist: DefaultCartTTL,
			commerce.ClassCatalog:  DefaultCatalogTTL,
		},
		RevalidateOnFocus: []commerce.Class{commerce.ClassCustomer},
	}
}

// TTLFor returns the freshness window for a class.
func (p Policy) TTLFor(class commerce.Class) time.Duration {
	if ttl, ok := p.TTL[class]; ok && ttl > 0 {
		return ttl
	}
	switch class {
	case commerce.ClassCustomer:
		return DefaultCustomerTTL
	case commerce.ClassCart, commerce.ClassWishlist:
		return DefaultCartTTL
	default:
		return DefaultCatalogTTL
	}
}

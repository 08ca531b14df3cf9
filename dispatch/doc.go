// Package dispatch routes named commerce operations to a provider binding.
//
// A Dispatcher validates operation parameters, resolves optional capabilities
// (wishlist), and invokes the matching provider method. Cross-cutting
// behavior is layered on with middleware:
//
//	d := dispatch.New(prov)
//	exec := dispatch.Chain(
//		dispatch.WithLogging(log),
//		dispatch.WithTracing("storefront"),
//		dispatch.WithMetrics(metrics),
//	)(d)
//
//	out, err := exec.Execute(ctx, dispatch.Request{
//		Operation: commerce.OpGetCart,
//		Token:     session,
//	})
package dispatch

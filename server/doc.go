// Package server exposes the static-content catalog API: a small Gin server
// used by storefront build tooling to pull products, product details, and the
// slug feed during static generation.
//
//	srv := server.New(server.Config{Port: 8080}, log)
//	srv.ApplyMiddleware()
//	server.RegisterCatalog(srv.GinEngine(), commerceClient)
//	if err := srv.Start(ctx); err != nil {
//		return err
//	}
//	defer srv.Stop(ctx)
package server

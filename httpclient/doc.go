// Package httpclient provides the HTTP client used by commerce providers to
// talk to their backend. It wraps net/http with request/response value types,
// optional retry and circuit breaking, and maps transport and status failures
// onto the commercekit error taxonomy: non-2xx responses become UPSTREAM
// errors preserving the backend's status code, transport failures become
// NETWORK errors.
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: cfg.Endpoint,
//	    Headers: map[string]string{"X-Auth-Token": cfg.Credentials},
//	})
//	resp, err := client.Do(ctx, httpclient.Request{Method: http.MethodGet, Path: "/v3/catalog/products"})
//
// GraphQL backends are reached through the same client with Query, which
// posts a standard {query, variables} envelope and surfaces GraphQL-level
// errors as UPSTREAM errors.
package httpclient

// Package middleware holds the Gin middleware stack for the catalog API:
// panic recovery, request IDs, CORS, and request logging.
package middleware

// Package resilience provides the retry and circuit breaker building blocks
// used by the commercekit HTTP client and the cache's background revalidation.
//
// Retry policy is deliberately owned here rather than by callers: reads may
// be retried on transport failures, mutations never are. The cache and client
// packages encode that split by choosing which calls go through Retry.
package resilience

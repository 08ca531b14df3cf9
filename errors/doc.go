// Package errors provides the unified error taxonomy for commercekit.
//
// Every error surfaced by the library is one of four kinds:
//
//   - CONFIGURATION: invalid or missing provider configuration. Fatal at
//     startup, never retryable.
//   - NOT_SUPPORTED: the active provider has no binding for the requested
//     operation. A programming error, surfaced synchronously.
//   - UPSTREAM: the backend rejected or failed the request. The backend's
//     HTTP status code is preserved for caller inspection.
//   - NETWORK: a transport-level failure. Eligible for automatic background
//     retry during read revalidation, never for mutations.
//
// Use the Is* helpers to classify errors received from any commercekit API:
//
//	if errors.IsUpstream(err) {
//	    status := errors.StatusCode(err)
//	    ...
//	}
package errors

// Package auth handles customer session tokens. Backends issue a signed JWT
// on login/signup; the client validates it locally with the store secret to
// extract the customer identity and expiry without a round trip.
package auth

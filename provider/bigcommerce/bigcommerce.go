package bigcommerce

import (
	"context"
	"net/http"
	"time"

	"github.com/commercekit/commercekit/auth"
	"github.com/commercekit/commercekit/commerce"
	"github.com/commercekit/commercekit/config"
	"github.com/commercekit/commercekit/errors"
	"github.com/commercekit/commercekit/httpclient"
	"github.com/commercekit/commercekit/logger"
	"github.com/commercekit/commercekit/provider"
	"github.com/commercekit/commercekit/resilience"
)

// Name is the registry name of this provider.
const Name = "bigcommerce"

// sessionHeader carries the customer session token on authenticated calls.
const sessionHeader = "X-Customer-Session"

// defaultSessionTTL is assumed when the backend token carries no expiry.
const defaultSessionTTL = 24 * time.Hour

func init() {
	provider.Register(Name, New)
}

// Provider talks to a BigCommerce-style backend. Customer, cart and wishlist
// operations go through the v3 REST surface; catalog reads go through the
// storefront GraphQL endpoint.
type Provider struct {
	cfg  config.Provider
	http *httpclient.Client
	log  *logger.Logger
}

var _ provider.Commerce = (*Provider)(nil)
var _ provider.WishlistProvider = (*Provider)(nil)

// New builds a Provider from the validated provider configuration.
func New(cfg config.Provider) (provider.Commerce, error) {
	httpCfg := httpclient.Config{
		BaseURL: cfg.Endpoint,
		Timeout: cfg.Timeout,
		Headers: map[string]string{
			"Accept":       "application/json",
			"X-Auth-Token": cfg.Credentials,
		},
		// Applies to reads only; the client never retries mutating methods.
		Retry: &resilience.RetryConfig{
			MaxAttempts:    3,
			InitialBackoff: 200 * time.Millisecond,
			MaxBackoff:     2 * time.Second,
			RetryIf:        errors.IsRetryable,
		},
	}
	client, err := httpclient.New(httpCfg)
	if err != nil {
		return nil, err
	}
	return &Provider{
		cfg:  cfg,
		http: client,
		log:  logger.Get("provider.bigcommerce"),
	}, nil
}

// Name returns the registry name.
func (p *Provider) Name() string { return Name }

// envelope is the v3 REST response wrapper.
type envelope[T any] struct {
	Data T `json:"data"`
}

// sessionRequest carries a session token as a per-request header. An empty
// token sends no header, which the backend treats as an anonymous session.
func sessionRequest(method, path, token string, body any) httpclient.Request {
	req := httpclient.Request{Method: method, Path: path, Body: body}
	if token != "" {
		req.Headers = map[string]string{sessionHeader: token}
	}
	return req
}

// Login authenticates a customer against the backend session endpoint.
func (p *Provider) Login(ctx context.Context, params commerce.LoginParams) (commerce.Session, error) {
	resp, err := p.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/v3/customers/session",
		Body:   params,
	})
	if err != nil {
		return commerce.Session{}, err
	}
	var out envelope[wireSession]
	if err := resp.Decode(&out); err != nil {
		return commerce.Session{}, errors.Network(err)
	}
	return p.toSession(out.Data), nil
}

// Logout invalidates the session token on the backend. Logging out an already
// expired session is not an error.
func (p *Provider) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	_, err := p.http.Do(ctx, sessionRequest(http.MethodDelete, "/v3/customers/session", token, nil))
	if errors.IsUpstream(err) && errors.StatusCode(err) == http.StatusUnauthorized {
		return nil
	}
	return err
}

// Signup creates a customer account and returns the authenticated session the
// backend issues for it.
func (p *Provider) Signup(ctx context.Context, params commerce.SignupParams) (commerce.Session, error) {
	resp, err := p.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/v3/customers",
		Body:   params,
	})
	if err != nil {
		return commerce.Session{}, err
	}
	var out envelope[wireSession]
	if err := resp.Decode(&out); err != nil {
		return commerce.Session{}, errors.Network(err)
	}
	return p.toSession(out.Data), nil
}

// GetCustomer returns the customer bound to the token. An empty or rejected
// token yields a nil customer with no error.
func (p *Provider) GetCustomer(ctx context.Context, token string) (*commerce.Customer, error) {
	if token == "" {
		return nil, nil
	}
	resp, err := p.http.Do(ctx, sessionRequest(http.MethodGet, "/v3/customers/me", token, nil))
	if errors.IsUpstream(err) && errors.StatusCode(err) == http.StatusUnauthorized {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out envelope[wireCustomer]
	if err := resp.Decode(&out); err != nil {
		return nil, errors.Network(err)
	}
	customer := out.Data.toCustomer()
	return &customer, nil
}

// toSession converts a wire session, reading the token expiry from its JWT
// claims when the token is one we can parse. Tokens signed elsewhere still
// work; they just fall back to the default TTL.
func (p *Provider) toSession(w wireSession) commerce.Session {
	session := commerce.Session{
		Token:     w.Token,
		ExpiresAt: time.Now().Add(defaultSessionTTL),
	}
	if claims, err := auth.ParseSessionToken(w.Token, p.cfg.Credentials); err == nil && claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	if w.Customer != nil {
		customer := w.Customer.toCustomer()
		session.Customer = &customer
	}
	return session
}

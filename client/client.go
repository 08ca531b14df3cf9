package client

import (
	"sync"
	"time"

	"github.com/commercekit/commercekit/cache"
	"github.com/commercekit/commercekit/commerce"
	"github.com/commercekit/commercekit/config"
	"github.com/commercekit/commercekit/dispatch"
	"github.com/commercekit/commercekit/logger"
	"github.com/commercekit/commercekit/observability"
	"github.com/commercekit/commercekit/provider"
)

// serviceName names spans produced by the client.
const serviceName = "commercekit"

// Option customizes a Client.
type Option func(*options)

type options struct {
	provider provider.Commerce
	registry *provider.Registry
	policy   *cache.Policy
	metrics  *observability.Metrics
	log      *logger.Logger
}

// WithProvider injects a pre-built provider binding, bypassing the registry.
func WithProvider(p provider.Commerce) Option {
	return func(o *options) { o.provider = p }
}

// WithRegistry selects the registry used to resolve the configured provider
// name. Defaults to the process-wide registry.
func WithRegistry(r *provider.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithPolicy overrides the staleness policy derived from configuration.
func WithPolicy(p cache.Policy) Option {
	return func(o *options) { o.policy = &p }
}

// WithMetrics enables operation metrics on the dispatch chain and cache
// read/refresh metrics on the request cache.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithLogger sets the client logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// Client executes the commerce operation set against one configured provider.
// It is safe for concurrent use.
type Client struct {
	cfg   config.Config
	disp  *dispatch.Dispatcher
	exec  dispatch.Executor
	cache *cache.Cache
	log   *logger.Logger

	mu      sync.Mutex
	session commerce.Session
	// lastCart is the latest authoritative cart, the base for optimistic
	// projections.
	lastCart *commerce.Cart
	// optimisticCart is served for cart reads while a cart mutation is in
	// flight. Cleared on settle.
	optimisticCart *commerce.Cart
}

// New builds a Client from configuration. The provider named in the config is
// resolved through the registry unless WithProvider supplies one.
func New(cfg config.Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.Get("client")
	}
	if o.registry == nil {
		o.registry = provider.Default()
	}

	prov := o.provider
	if prov == nil {
		var err error
		prov, err = o.registry.Create(cfg.Provider.Name, cfg.Provider)
		if err != nil {
			return nil, err
		}
	}

	policy := policyFromConfig(cfg)
	if o.policy != nil {
		policy = *o.policy
	}

	disp := dispatch.New(prov)
	middlewares := []dispatch.Middleware{
		dispatch.WithLogging(o.log),
		dispatch.WithTracing(serviceName),
	}
	cacheOpts := []cache.Option{cache.WithLogger(o.log.WithComponent("cache"))}
	if o.metrics != nil {
		middlewares = append(middlewares, dispatch.WithMetrics(o.metrics))
		cacheOpts = append(cacheOpts, cache.WithMetrics(o.metrics))
	}

	return &Client{
		cfg:   cfg,
		disp:  disp,
		exec:  dispatch.Chain(middlewares...)(disp),
		cache: cache.New(policy, cacheOpts...),
		log:   o.log,
	}, nil
}

// policyFromConfig maps the cache configuration onto a staleness policy.
// Wishlist freshness follows the cart TTL.
func policyFromConfig(cfg config.Config) cache.Policy {
	policy := cache.DefaultPolicy()
	if cfg.Cache.CustomerTTL > 0 {
		policy.TTL[commerce.ClassCustomer] = cfg.Cache.CustomerTTL
	}
	if cfg.Cache.CartTTL > 0 {
		policy.TTL[commerce.ClassCart] = cfg.Cache.CartTTL
		policy.TTL[commerce.ClassWishlist] = cfg.Cache.CartTTL
	}
	if cfg.Cache.CatalogTTL > 0 {
		policy.TTL[commerce.ClassCatalog] = cfg.Cache.CatalogTTL
	}
	if !cfg.Provider.RevalidateOnFocus {
		policy.RevalidateOnFocus = nil
	}
	return policy
}

// Provider returns the name of the bound provider.
func (c *Client) Provider() string { return c.disp.Name() }

// SupportsWishlist reports whether the bound provider implements the wishlist
// capability.
func (c *Client) SupportsWishlist() bool { return c.disp.SupportsWishlist() }

// Session returns the current session. The zero Session means unauthenticated.
func (c *Client) Session() commerce.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Authenticated reports whether the client holds an unexpired session token.
func (c *Client) Authenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Token != "" &&
		(c.session.ExpiresAt.IsZero() || time.Now().Before(c.session.ExpiresAt))
}

// token returns the current session token under the lock.
func (c *Client) token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Token
}

// HandleFocus marks focus-sensitive reads stale. Callers signal it when the
// storefront window regains focus; it is a no-op unless the provider config
// enables revalidate-on-focus.
func (c *Client) HandleFocus() {
	if !c.cfg.Provider.RevalidateOnFocus {
		return
	}
	c.cache.RevalidateOnFocus()
}

// HandleReconnect marks every cached read stale after a connectivity gap.
func (c *Client) HandleReconnect() {
	c.cache.InvalidateAll()
}

// sessionScope scopes a fingerprint to the session that produced the data.
type sessionScope struct {
	Token string `json:"token"`
}

package auth

import (
	"sync"

	"golang.org/x/oauth2"

	"github.com/orris-inc/socialdash/internal/domain/platform"
	"github.com/orris-inc/socialdash/internal/shared/config"
)

// URLBuilder renders provider authorization URLs for the simulated flow.
// One oauth2.Config is built per platform on first use.
type URLBuilder struct {
	redirectURL    string
	clientIDSuffix string

	mu      sync.RWMutex
	configs map[string]*oauth2.Config
}

func NewURLBuilder(cfg config.SimulationConfig) *URLBuilder {
	return &URLBuilder{
		redirectURL:    cfg.GetRedirectURL(),
		clientIDSuffix: cfg.ClientIDSuffix,
		configs:        make(map[string]*oauth2.Config),
	}
}

// ClientID is the simulated client identifier advertised for p.
func (b *URLBuilder) ClientID(p platform.Platform) string {
	return p.ID + b.clientIDSuffix
}

// RedirectURL is the callback URL advertised in every authorization URL.
func (b *URLBuilder) RedirectURL() string {
	return b.redirectURL
}

// AuthURL returns the authorization endpoint of p with client_id,
// redirect_uri, response_type=code, the space-joined scopes and state.
func (b *URLBuilder) AuthURL(p platform.Platform, state string) string {
	return b.configFor(p).AuthCodeURL(state)
}

func (b *URLBuilder) configFor(p platform.Platform) *oauth2.Config {
	b.mu.RLock()
	cfg, ok := b.configs[p.ID]
	b.mu.RUnlock()
	if ok {
		return cfg
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if cfg, ok := b.configs[p.ID]; ok {
		return cfg
	}
	cfg = &oauth2.Config{
		ClientID:    b.ClientID(p),
		RedirectURL: b.redirectURL,
		Scopes:      append([]string(nil), p.Scopes...),
		Endpoint: oauth2.Endpoint{
			AuthURL: p.AuthURL,
		},
	}
	b.configs[p.ID] = cfg
	return cfg
}

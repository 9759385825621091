package httpclient

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/proxy" // For SOCKS5
)

// ProxyConfig optionally routes upstream requests through a proxy.
type ProxyConfig struct {
	Type     string `mapstructure:"type"` // http, https, socks5
	Address  string `mapstructure:"address"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// Factory builds HTTP clients configured for the upstream endpoints.
type Factory struct {
	proxyCfg ProxyConfig
}

// NewFactory creates a Factory. An empty proxy address means direct
// connections with environment-proxy defaults.
func NewFactory(proxyCfg ProxyConfig) *Factory {
	return &Factory{proxyCfg: proxyCfg}
}

// GetClient returns an HTTP client, configured with the factory's proxy
// if one is set.
func (f *Factory) GetClient() (*http.Client, error) {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	if p := f.proxyCfg; p.Address != "" {
		proxyURLStr := fmt.Sprintf("%s://%s", p.Type, p.Address)
		parsedProxyURL, err := url.Parse(proxyURLStr)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL %s: %w", proxyURLStr, err)
		}
		if p.Username != "" {
			parsedProxyURL.User = url.UserPassword(p.Username, p.Password)
		}

		switch p.Type {
		case "http", "https":
			transport.Proxy = http.ProxyURL(parsedProxyURL)
		case "socks5":
			dialer, err := proxy.FromURL(parsedProxyURL, proxy.Direct)
			if err != nil {
				return nil, fmt.Errorf("failed to create SOCKS5 dialer from %s: %w", parsedProxyURL.Redacted(), err)
			}
			contextDialer, ok := dialer.(proxy.ContextDialer)
			if !ok {
				return nil, fmt.Errorf("SOCKS5 dialer does not implement proxy.ContextDialer")
			}
			transport.DialContext = contextDialer.DialContext
			transport.Proxy = nil // SOCKS5 is handled by the custom dialer
		default:
			return nil, fmt.Errorf("unsupported proxy type: %s", p.Type)
		}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   120 * time.Second, // Overall request timeout; the chart is a large document
	}, nil
}

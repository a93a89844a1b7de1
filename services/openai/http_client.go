package openai

import (
	"net"
	"net/http"
	"net/url"
	"time"

	"healthbot/config"
	"healthbot/utils"
)

// NewHTTPClient builds the HTTP client used for OpenAI API calls. When a
// proxy is configured all outbound requests tunnel through it; otherwise the
// connection is direct. Environment proxy variables are intentionally
// ignored: the resolved config is the single source of truth.
func NewHTTPClient(proxy *config.ProxyConfig, timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy: proxyFunc(proxy),
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   5,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

func proxyFunc(proxy *config.ProxyConfig) func(*http.Request) (*url.URL, error) {
	if proxy == nil {
		// Direct connection, never http.ProxyFromEnvironment.
		return nil
	}

	utils.Infof("openai: using proxy %s", proxy.Redacted())

	return http.ProxyURL(proxy.URL())
}

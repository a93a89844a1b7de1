package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
)

// ProxyKey is the configuration key holding the outbound proxy URL for
// OpenAI API calls.
const ProxyKey = "OPENAI_PROXY"

// ConfigError reports a malformed configuration value. It is raised during
// startup resolution and is fatal to the affected client initialization: a
// misconfigured proxy must not silently fall back to a direct connection.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Key, e.Reason)
}

// ProxyConfig holds a parsed outbound proxy address. A nil *ProxyConfig
// means no proxy is in use. Values are immutable after resolution.
type ProxyConfig struct {
	Scheme   string
	Host     string
	Port     int // 0 when the URL carries no explicit port
	Username string
	Password string
}

// ResolveProxy parses a proxy URL of the form
// scheme://[user:password@]host[:port]. An empty value resolves to
// (nil, nil), meaning direct connection. Any malformed value returns a
// *ConfigError; partial values are never applied.
func ResolveProxy(raw string) (*ProxyConfig, error) {
	if raw == "" {
		return nil, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, &ConfigError{Key: ProxyKey, Reason: fmt.Sprintf("invalid proxy URL %q: %v", raw, err)}
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &ConfigError{Key: ProxyKey, Reason: fmt.Sprintf("unsupported proxy scheme %q, expected http or https", u.Scheme)}
	}

	if u.Hostname() == "" {
		return nil, &ConfigError{Key: ProxyKey, Reason: "proxy host is empty"}
	}

	cfg := &ProxyConfig{
		Scheme: u.Scheme,
		Host:   u.Hostname(),
	}

	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil || port < 1 || port > 65535 {
			return nil, &ConfigError{Key: ProxyKey, Reason: fmt.Sprintf("proxy port %q out of range 1-65535", p)}
		}
		cfg.Port = port
	}

	if u.User != nil {
		cfg.Username = u.User.Username()
		cfg.Password, _ = u.User.Password()
	}

	return cfg, nil
}

// URL rebuilds the proxy URL, credentials included, in the form expected by
// http.ProxyURL.
func (p *ProxyConfig) URL() *url.URL {
	u := &url.URL{
		Scheme: p.Scheme,
		Host:   p.Host,
	}
	if p.Port != 0 {
		u.Host = net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
	}
	if p.Username != "" {
		if p.Password != "" {
			u.User = url.UserPassword(p.Username, p.Password)
		} else {
			u.User = url.User(p.Username)
		}
	}
	return u
}

// Redacted returns the proxy URL with the password masked, safe for logs.
func (p *ProxyConfig) Redacted() string {
	return p.URL().Redacted()
}

// Package network provides pre-configured HTTP clients for metadata endpoint communication.
package network

import (
	"net/http"
	"time"

	"github.com/filmschoolyt/filmschoolyt/key"
	"github.com/spf13/viper"
)

// Client is the singleton HTTP client shared across the application for efficient resource utilization.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

// Active returns the HTTP client to use for outbound metadata requests,
// honoring the TLS fingerprint spoofing configuration.
func Active() *http.Client {
	if viper.GetBool(key.NetworkSpoofTLS) {
		return SpoofedClient()
	}
	return Client
}

// newTransport initializes a tuned http.Transport with optimized pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}

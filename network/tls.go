// Package network provides pre-configured HTTP clients for metadata endpoint communication.
//
// The spoofed client leverages refraction-networking/utls to emulate Chrome's
// Client Hello signature. Some CDN fronts rate-limit or reject standard Go
// HTTP clients; mimicking prevalent browser traffic keeps metadata lookups
// working behind them.
//
// Protocol negotiation: an HTTP/2 connection is attempted first (preferred by
// modern CDNs); on handshake failure the caller transparently falls back to a
// standard HTTP/1.1 transport with forced protocol advertisement.
package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const spoofTimeout = 30 * time.Second

var (
	h2Transport     *http2.Transport
	h2TransportOnce sync.Once
)

func getH2Transport() *http2.Transport {
	h2TransportOnce.Do(func() {
		h2Transport = &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialTLS(ctx, network, addr, nil)
			},
		}
	})
	return h2Transport
}

// h1Transport serves servers that only negotiate http/1.1.
var h1Transport = &http.Transport{
	DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
		return dialTLS(ctx, network, addr, []string{"http/1.1"})
	},
}

var (
	spoofed     *http.Client
	spoofedOnce sync.Once
)

// SpoofedClient returns the shared HTTP client with Chrome TLS fingerprinting enabled.
func SpoofedClient() *http.Client {
	spoofedOnce.Do(func() {
		spoofed = &http.Client{
			Timeout: spoofTimeout,
			Transport: &fallbackTransport{
				primary:  getH2Transport(),
				fallback: h1Transport,
			},
		}
	})
	return spoofed
}

// fallbackTransport routes requests through the H2 transport and retries
// once over HTTP/1.1 when the H2 handshake is rejected.
type fallbackTransport struct {
	primary  http.RoundTripper
	fallback http.RoundTripper
}

func (t *fallbackTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.primary.RoundTrip(req)
	if err == nil {
		return resp, nil
	}
	if req.Body != nil && req.GetBody == nil {
		return nil, fmt.Errorf("h2 request failed and body is not replayable: %w", err)
	}

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return nil, fmt.Errorf("replay request body: %w", bodyErr)
		}
		retry.Body = body
	}
	return t.fallback.RoundTrip(retry)
}

// dialTLS creates a TLS connection mimicking Chrome 120's fingerprint.
// With nil protos it advertises both h2 and http/1.1 (natural Chrome behavior).
func dialTLS(ctx context.Context, network, addr string, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: spoofTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}

package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/framecast/framecast/constant"
	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const dialTimeout = 30 * time.Second

// fingerprintTransport sends https requests over uTLS connections mimicking Chrome 120.
// It tries HTTP/2 first, which most CDNs negotiate, and falls back to HTTP/1.1.
// Plain http requests go through the standard transport.
type fingerprintTransport struct {
	h2     *http2.Transport
	h1     *http.Transport
	plain  *http.Transport
	initMu sync.Once
}

func (t *fingerprintTransport) init() {
	t.initMu.Do(func() {
		t.h2 = &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialTLS(ctx, network, addr, nil)
			},
		}
		t.h1 = &http.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialTLS(ctx, network, addr, []string{"http/1.1"})
			},
		}
		t.plain = newTransport()
	})
}

func (t *fingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.init()

	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", constant.UserAgent)
	}

	if req.URL.Scheme != "https" {
		return t.plain.RoundTrip(req)
	}

	resp, err := t.h2.RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	retry := req.Clone(req.Context())
	if req.Body != nil && req.GetBody != nil {
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}
		retry.Body = body
	}

	resp, err = t.h1.RoundTrip(retry)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// dialTLS opens a uTLS connection with Chrome's Client Hello. A nil protos keeps Chrome's own ALPN list.
func dialTLS(ctx context.Context, network, addr string, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.Handshake(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}

// Package network provides the HTTP clients used to fetch source pages.
package network

import (
	"net/http"
	"time"
)

// Fingerprinted is a client that presents Chrome's TLS fingerprint.
// Video hosts commonly reject the Go TLS stack outright, so source pages are fetched with it.
var Fingerprinted = &http.Client{
	Timeout:   time.Minute,
	Transport: &fingerprintTransport{},
}

// newTransport is the stock transport, used for plain-http pages and as the h1 fallback.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}

// Package httpclient builds the HTTP clients used for remote source requests.
package httpclient

import (
	"net"
	"net/http"
	"time"
)

// Options mirror the HTTP section of the application config.
type Options struct {
	ClientTimeout       time.Duration
	DialTimeout         time.Duration
	TLSHandshakeTimeout time.Duration
	IdleConnTimeout     time.Duration
}

// DefaultOptions returns the timeouts used when no configuration is supplied.
func DefaultOptions() Options {
	return Options{
		ClientTimeout:       30 * time.Second,
		DialTimeout:         10 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		IdleConnTimeout:     90 * time.Second,
	}
}

// New creates an HTTP client with the given timeouts. The client timeout is
// the only request deadline in the system; callers do not add their own.
func New(opts Options) *http.Client {
	if opts.ClientTimeout <= 0 {
		opts = DefaultOptions()
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: opts.DialTimeout,
		}).DialContext,
		TLSHandshakeTimeout: opts.TLSHandshakeTimeout,
		IdleConnTimeout:     opts.IdleConnTimeout,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
	}

	return &http.Client{
		Timeout:   opts.ClientTimeout,
		Transport: transport,
	}
}

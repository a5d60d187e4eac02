// Package transport sends signed requests over HTTPS. It makes exactly one
// attempt per call and classifies every failure as an sdkerr network error.
package transport

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/net/http/httpproxy"

	"github.com/forestrie/go-tc3sms/profile"
	"github.com/forestrie/go-tc3sms/sdkerr"
)

const (
	DefaultDialKeepalive       = 30 * time.Second
	DefaultTLSHandshakeTimeout = 10 * time.Second
	DefaultIdleConnTimeout     = 90 * time.Second

	// MaxResponseBytes bounds how much of a response body is read. A longer
	// body is an error, never a truncated success.
	MaxResponseBytes = 10 << 20
)

//go:generate mockgen -destination=mock/$GOFILE -package=mock_http net/http RoundTripper

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// userAgentRoundTripper stamps every request with the profile's
// User-Agent.
type userAgentRoundTripper struct {
	userAgent string
	transport http.RoundTripper
}

func (rt *userAgentRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if rt.userAgent != "" {
		req.Header.Set("User-Agent", rt.userAgent)
	}
	return rt.transport.RoundTrip(req)
}

// OverridableTransport is a transport that provides an override for testing purposes.
type OverridableTransport interface {
	SetTransport(http.RoundTripper)
}

// SetTransport replaces the underlying round tripper. The User-Agent is
// still applied.
func (rt *userAgentRoundTripper) SetTransport(transport http.RoundTripper) {
	rt.transport = transport
}

// Transport owns the connection pool shared by every call of a client.
type Transport struct {
	client           *http.Client
	rt               *userAgentRoundTripper
	maxResponseBytes int64
}

// New builds a Transport from p. The overall request timeout bounds each
// call; the connect timeout bounds dialing.
func New(p *profile.HTTPProfile) (*Transport, error) {
	if p == nil {
		p = profile.NewHTTPProfile()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	dialer := &net.Dialer{
		Timeout: p.DialTimeout(),
	}
	if p.KeepAlive {
		dialer.KeepAlive = DefaultDialKeepalive
	} else {
		dialer.KeepAlive = -1
	}

	base := &http.Transport{
		Proxy:               proxyFunc(p),
		DialContext:         dialer.DialContext,
		TLSHandshakeTimeout: DefaultTLSHandshakeTimeout,
		TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
		DisableKeepAlives:   !p.KeepAlive,
		IdleConnTimeout:     DefaultIdleConnTimeout,
		ForceAttemptHTTP2:   true,
	}

	rt := &userAgentRoundTripper{
		userAgent: p.UserAgent,
		transport: base,
	}
	return &Transport{
		client: &http.Client{
			Transport: rt,
			Timeout:   p.RequestTimeout(),
		},
		rt:               rt,
		maxResponseBytes: MaxResponseBytes,
	}, nil
}

// proxyFunc prefers the proxy configured in the profile and falls back to
// HTTP_PROXY, HTTPS_PROXY and NO_PROXY.
func proxyFunc(p *profile.HTTPProfile) func(*http.Request) (*url.URL, error) {
	if u := p.ProxyURL(); u != nil {
		return http.ProxyURL(u)
	}
	fromEnv := httpproxy.FromEnvironment().ProxyFunc()
	return func(req *http.Request) (*url.URL, error) {
		return fromEnv(req.URL)
	}
}

// SetTransport implements OverridableTransport.
func (t *Transport) SetTransport(rt http.RoundTripper) {
	t.rt.SetTransport(rt)
}

// HTTPClient exposes the underlying client.
func (t *Transport) HTTPClient() *http.Client {
	return t.client
}

// Do sends req once under ctx and reads the whole response. Any status code
// is returned as a Response; only failures to obtain one are errors. The
// response body is closed on every path.
func (t *Transport) Do(ctx context.Context, req *http.Request) (*Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	resp, err := t.client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, classify(ctx, err, "send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, t.maxResponseBytes+1))
	if err != nil {
		netErr := classify(ctx, err, "read response body")
		netErr.StatusCode = resp.StatusCode
		return nil, netErr
	}
	if int64(len(body)) > t.maxResponseBytes {
		return nil, &sdkerr.Error{
			Kind:       sdkerr.Network,
			Message:    fmt.Sprintf("response body exceeds %d bytes", t.maxResponseBytes),
			StatusCode: resp.StatusCode,
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

func classify(ctx context.Context, err error, op string) *sdkerr.Error {
	// Prefer the context error so cancellation and deadlines read the same
	// whichever layer noticed them first.
	if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
		err = errors.Wrap(ctxErr, err.Error())
	}
	return sdkerr.NewNetwork(op+" failed", err)
}

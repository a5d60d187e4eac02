// Package client is the request pipeline every API action funnels through:
// encode the payload, stamp the common headers, sign, send once, and decode
// the response envelope.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/forestrie/go-tc3sms/credentials"
	"github.com/forestrie/go-tc3sms/profile"
	"github.com/forestrie/go-tc3sms/sdkerr"
	"github.com/forestrie/go-tc3sms/signer"
	"github.com/forestrie/go-tc3sms/transport"
)

// RequestClient identifies this library in X-TC-RequestClient.
const RequestClient = "SDK_GO_TC3SMS_1.0.0"

// RawResponse is a response before envelope decoding.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte

	// TraceID is the X-TC-TraceId sent with the request.
	TraceID string
}

// Client sends signed API calls for one service and region. It is safe for
// concurrent use; the only shared mutable state is the connection pool.
type Client struct {
	credential *credentials.Credential
	region     string
	service    string
	profile    *profile.ClientProfile
	transport  *transport.Transport
	logger     *zap.Logger
	now        func() time.Time

	// regional is set when the endpoint was derived from service and region.
	regional bool
	rt       http.RoundTripper
}

type Option func(*Client)

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock replaces time.Now as the source of signing timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// WithRoundTripper sends requests through rt instead of the default
// network transport.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(c *Client) {
		if rt != nil {
			c.rt = rt
		}
	}
}

// WithService overrides the service name used in the credential scope.
func WithService(service string) Option {
	return func(c *Client) {
		if service != "" {
			c.service = service
		}
	}
}

// NewClient builds a Client. A nil profile means NewClientProfile(). When
// the profile names no endpoint, requests go to the regional endpoint of the
// service, or the global one when region is empty. The credential is checked
// on every call, not here, so a Client can be built before secrets are
// available.
func NewClient(cred *credentials.Credential, region string, prof *profile.ClientProfile, opts ...Option) (*Client, error) {
	c := &Client{
		credential: cred,
		region:     region,
		service:    signer.DefaultService,
		profile:    copyProfile(prof),
		logger:     zap.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.profile.Validate(); err != nil {
		return nil, err
	}
	if c.profile.HTTPProfile.Endpoint == "" {
		c.profile.HTTPProfile.Endpoint = profile.RegionalEndpoint(c.service, region)
		c.regional = true
	}

	t, err := transport.New(c.profile.HTTPProfile)
	if err != nil {
		return nil, err
	}
	if c.rt != nil {
		t.SetTransport(c.rt)
	}
	c.transport = t
	return c, nil
}

func copyProfile(prof *profile.ClientProfile) *profile.ClientProfile {
	if prof == nil {
		return profile.NewClientProfile()
	}
	p := *prof
	if prof.HTTPProfile != nil {
		hp := *prof.HTTPProfile
		p.HTTPProfile = &hp
	}
	return &p
}

func (c *Client) Region() string  { return c.region }
func (c *Client) Service() string { return c.service }

// Profile returns a copy of the client's profile.
func (c *Client) Profile() *profile.ClientProfile {
	return copyProfile(c.profile)
}

// WithRegion returns a Client for another region sharing this client's
// connection pool. A derived regional endpoint follows the new region.
func (c *Client) WithRegion(region string) *Client {
	cp := *c
	cp.region = region
	if c.regional {
		cp.profile = copyProfile(c.profile)
		cp.profile.HTTPProfile.Endpoint = profile.RegionalEndpoint(c.service, region)
	}
	return &cp
}

// WithCredential returns a Client signing with cred, sharing this client's
// connection pool.
func (c *Client) WithCredential(cred *credentials.Credential) *Client {
	cp := *c
	cp.credential = cred
	return &cp
}

// Do performs action with payload and returns the undecoded response. It
// fails with a configuration error, before any network I/O, when the
// credential is empty or the payload cannot be encoded.
func (c *Client) Do(ctx context.Context, action string, payload any) (*RawResponse, error) {
	s, err := signer.NewSigner(signer.Config{
		Credential: c.credential,
		Service:    c.service,
	})
	if err != nil {
		return nil, err
	}
	if action == "" {
		return nil, sdkerr.NewConfiguration("action is empty", nil)
	}

	body, err := encodePayload(payload)
	if err != nil {
		return nil, sdkerr.NewConfiguration("cannot encode "+action+" request", err)
	}

	hp := c.profile.HTTPProfile
	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(hp.ReqMethod), hp.FullEndpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, sdkerr.NewConfiguration("cannot build request", err)
	}

	traceID := uuid.NewString()
	// SignHTTP strips a default port from the Host it signs and sends.
	req.Host = hp.Host()
	req.Header.Set(signer.ContentTypeHeader, signer.ContentTypeJSON)
	req.Header.Set(signer.ActionHeader, action)
	req.Header.Set(signer.VersionHeader, c.profile.APIVersion)
	if c.region != "" {
		req.Header.Set(signer.RegionHeader, c.region)
	}
	if c.profile.Language != "" {
		req.Header.Set(signer.LanguageHeader, c.profile.Language)
	}
	req.Header.Set(signer.RequestClientHeader, RequestClient)
	req.Header.Set(signer.TraceIDHeader, traceID)

	// One clock read feeds both X-TC-Timestamp and the scope date.
	signingTime := c.now()
	if err := s.SignHTTP(req, body, signingTime); err != nil {
		return nil, err
	}

	fields := []zap.Field{
		zap.String("action", action),
		zap.String("endpoint", hp.FullEndpoint()),
		zap.String("region", c.region),
		zap.String("traceId", traceID),
	}
	if c.profile.Debug {
		fields = append(fields, zap.ByteString("request", body))
	}
	c.logger.Debug("sending request", fields...)

	start := time.Now()
	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("action", action),
			zap.String("traceId", traceID),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, err
	}

	fields = []zap.Field{
		zap.String("action", action),
		zap.String("traceId", traceID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	}
	if c.profile.Debug {
		fields = append(fields, zap.ByteString("response", resp.Body))
	}
	c.logger.Debug("received response", fields...)

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       resp.Body,
		TraceID:    traceID,
	}, nil
}

func encodePayload(payload any) ([]byte, error) {
	if payload == nil {
		return []byte("{}"), nil
	}
	if raw, ok := payload.(json.RawMessage); ok {
		if !json.Valid(raw) {
			return nil, errors.New("payload is not valid JSON")
		}
		return raw, nil
	}
	return json.Marshal(payload)
}

// Invoke performs action and decodes the response payload into T. A vendor
// error in the envelope wins over the HTTP status; a non-2xx status without
// one is a network error carrying the status code.
func Invoke[T any](ctx context.Context, c *Client, action string, payload any) (*T, error) {
	raw, err := c.Do(ctx, action, payload)
	if err != nil {
		return nil, err
	}

	result, requestID, err := DecodeResponse[T](raw.Body)
	if err != nil && sdkerr.IsAPI(err) {
		c.logger.Debug("api error",
			zap.String("action", action),
			zap.String("requestId", requestID),
			zap.String("code", sdkerr.Code(err)))
		var e *sdkerr.Error
		if errors.As(err, &e) {
			e.StatusCode = raw.StatusCode
		}
		return nil, err
	}
	if raw.StatusCode < 200 || raw.StatusCode > 299 {
		return nil, &sdkerr.Error{
			Kind:       sdkerr.Network,
			Message:    "unexpected HTTP status",
			StatusCode: raw.StatusCode,
			RequestID:  requestID,
			Err:        err,
		}
	}
	if err != nil {
		return nil, err
	}

	c.logger.Debug("call succeeded",
		zap.String("action", action),
		zap.String("requestId", requestID))
	return result, nil
}

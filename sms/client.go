// Package sms sends text messages through the SMS API, version 2021-01-11.
package sms

import (
	"context"

	"github.com/forestrie/go-tc3sms/client"
	"github.com/forestrie/go-tc3sms/credentials"
	"github.com/forestrie/go-tc3sms/profile"
)

const (
	ActionSendSms = "SendSms"
	Service       = "sms"
)

// Client is a typed SMS client.
type Client struct {
	c *client.Client
}

// NewClient returns an SMS client for region. A nil profile uses the
// defaults.
func NewClient(cred *credentials.Credential, region string, prof *profile.ClientProfile, opts ...client.Option) (*Client, error) {
	opts = append([]client.Option{client.WithService(Service)}, opts...)
	c, err := client.NewClient(cred, region, prof, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{c: c}, nil
}

// API exposes the underlying pipeline for actions without a typed wrapper.
func (c *Client) API() *client.Client {
	return c.c
}

// SendSms validates req and sends it. Validation failures are
// configuration errors and never reach the network.
func (c *Client) SendSms(ctx context.Context, req *SendSmsRequest) (*SendSmsResponse, error) {
	if req == nil {
		req = &SendSmsRequest{}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return client.Invoke[SendSmsResponse](ctx, c.c, ActionSendSms, req)
}

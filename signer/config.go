package signer

import (
	"github.com/forestrie/go-tc3sms/credentials"
	"github.com/forestrie/go-tc3sms/sdkerr"
)

// Config holds the configuration for TC3 signing.
// Credential is required; Service defaults to "sms" and SignedHeaders to
// DefaultSignedHeaders.
type Config struct {
	// Credential supplies the secret id and key. It is never modified.
	Credential *credentials.Credential

	// Service is the service name in the credential scope (e.g., "sms").
	Service string

	// SignedHeaders selects which request headers are signed in addition
	// to host. IgnoredHeaders are excluded regardless.
	SignedHeaders Rule
}

// Validate checks that the credential is usable and fills in defaults.
func (c *Config) Validate() error {
	if c.Credential == nil {
		return sdkerr.NewConfiguration("signer requires a credential", nil)
	}
	if err := c.Credential.Validate(); err != nil {
		return err
	}
	if c.Service == "" {
		c.Service = DefaultService
	}
	if c.SignedHeaders == nil {
		c.SignedHeaders = DefaultSignedHeaders
	}
	return nil
}

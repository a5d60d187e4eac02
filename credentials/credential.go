// Package credentials holds the secret identity material used to sign
// requests. A Credential is immutable once constructed; load it once at
// startup and pass it to the client explicitly.
package credentials

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/forestrie/go-tc3sms/sdkerr"
)

// Environment variables read by FromEnv. The TENCENTCLOUD_ names win over
// the short TC_ names when both are set.
const (
	SecretIDEnvVar       = "TENCENTCLOUD_SECRET_ID"
	SecretKeyEnvVar      = "TENCENTCLOUD_SECRET_KEY"
	TokenEnvVar          = "TENCENTCLOUD_TOKEN"
	ShortSecretIDEnvVar  = "TC_SECRET_ID"
	ShortSecretKeyEnvVar = "TC_SECRET_KEY"
	ShortTokenEnvVar     = "TC_TOKEN"
)

// Credential is a secret id/key pair with an optional session token.
type Credential struct {
	secretID  string
	secretKey string
	token     string
}

// New returns a Credential. Pass an empty token for long-term keys.
func New(secretID, secretKey, token string) *Credential {
	return &Credential{
		secretID:  secretID,
		secretKey: secretKey,
		token:     token,
	}
}

// FromEnv loads a Credential from the environment.
func FromEnv() (*Credential, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (*Credential, error) {
	first := func(names ...string) string {
		for _, name := range names {
			if v, ok := lookup(name); ok && v != "" {
				return v
			}
		}
		return ""
	}

	c := New(
		first(SecretIDEnvVar, ShortSecretIDEnvVar),
		first(SecretKeyEnvVar, ShortSecretKeyEnvVar),
		first(TokenEnvVar, ShortTokenEnvVar),
	)

	var result *multierror.Error
	if c.secretID == "" {
		result = multierror.Append(result, fmt.Errorf("%s or %s is not set", SecretIDEnvVar, ShortSecretIDEnvVar))
	}
	if c.secretKey == "" {
		result = multierror.Append(result, fmt.Errorf("%s or %s is not set", SecretKeyEnvVar, ShortSecretKeyEnvVar))
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, sdkerr.NewConfiguration("credential not found in environment", err)
	}
	return c, nil
}

// Validate returns a configuration error when the secret id or secret key
// is empty. A nil Credential is invalid.
func (c *Credential) Validate() error {
	if c == nil {
		return sdkerr.NewConfiguration("invalid credential", fmt.Errorf("credential is nil"))
	}

	var result *multierror.Error
	if c.secretID == "" {
		result = multierror.Append(result, fmt.Errorf("secret id is empty"))
	}
	if c.secretKey == "" {
		result = multierror.Append(result, fmt.Errorf("secret key is empty"))
	}
	if err := result.ErrorOrNil(); err != nil {
		return sdkerr.NewConfiguration("invalid credential", err)
	}
	return nil
}

func (c *Credential) SecretID() string  { return c.secretID }
func (c *Credential) SecretKey() string { return c.secretKey }
func (c *Credential) Token() string     { return c.token }
func (c *Credential) HasToken() bool    { return c.token != "" }

// WithToken returns a copy of c carrying a different session token.
func (c *Credential) WithToken(token string) *Credential {
	return New(c.secretID, c.secretKey, token)
}

// String hides the secret key and token.
func (c *Credential) String() string {
	return fmt.Sprintf("Credential{SecretID: %s, SecretKey: ***, HasToken: %t}", c.secretID, c.HasToken())
}

// GoString keeps %#v from printing secrets.
func (c *Credential) GoString() string {
	return c.String()
}

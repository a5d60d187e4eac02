// Package profile holds the tunables of a client: where requests go, how
// long they may take and how they are labelled.
package profile

import (
	"github.com/forestrie/go-tc3sms/sdkerr"
)

const (
	DefaultSignMethod = "TC3-HMAC-SHA256"
	DefaultAPIVersion = "2021-01-11"
	DefaultLanguage   = "en-US"
)

// ClientProfile bundles the HTTP profile with API-level settings.
type ClientProfile struct {
	HTTPProfile *HTTPProfile
	SignMethod  string
	APIVersion  string

	// Language selects the language of vendor error messages: en-US or
	// zh-CN.
	Language string

	// Debug enables logging of request and response bodies.
	Debug bool
}

func NewClientProfile() *ClientProfile {
	return &ClientProfile{
		HTTPProfile: NewHTTPProfile(),
		SignMethod:  DefaultSignMethod,
		APIVersion:  DefaultAPIVersion,
		Language:    DefaultLanguage,
	}
}

// Validate checks the profile, filling empty fields with defaults.
func (p *ClientProfile) Validate() error {
	if p.HTTPProfile == nil {
		p.HTTPProfile = NewHTTPProfile()
	}
	if p.SignMethod == "" {
		p.SignMethod = DefaultSignMethod
	}
	if p.SignMethod != DefaultSignMethod {
		return sdkerr.NewConfiguration("unsupported sign method "+p.SignMethod, nil)
	}
	if p.APIVersion == "" {
		p.APIVersion = DefaultAPIVersion
	}
	if p.Language == "" {
		p.Language = DefaultLanguage
	}
	return p.HTTPProfile.Validate()
}

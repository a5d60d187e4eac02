package signer

import (
	"net/textproto"
	"strings"
)

// Rule decides whether a header takes part in the signature.
type Rule interface {
	IsValid(value string) bool
}

// Rules is a slice of Rule that implements Rule interface.
type Rules []Rule

// IsValid returns true if any rule in the slice validates the value.
func (r Rules) IsValid(value string) bool {
	for _, rule := range r {
		if rule.IsValid(value) {
			return true
		}
	}
	return false
}

// MapRule matches header names exactly, in canonical MIME form.
type MapRule map[string]struct{}

// NewMapRule builds a MapRule from header names in any case.
func NewMapRule(names ...string) MapRule {
	m := make(MapRule, len(names))
	for _, name := range names {
		m[textproto.CanonicalMIMEHeaderKey(name)] = struct{}{}
	}
	return m
}

// IsValid returns true if the value exists in the map.
func (m MapRule) IsValid(value string) bool {
	_, ok := m[textproto.CanonicalMIMEHeaderKey(value)]
	return ok
}

// ExcludeList is a rule that excludes values matching the inner rule.
type ExcludeList struct {
	Rule
}

// IsValid returns true if the value does NOT match the inner rule.
func (e ExcludeList) IsValid(value string) bool {
	return !e.Rule.IsValid(value)
}

// Patterns is a rule that matches values with any of the given prefixes,
// ignoring case.
type Patterns []string

// IsValid returns true if value has any of the pattern prefixes.
func (p Patterns) IsValid(value string) bool {
	for _, pattern := range p {
		if strings.HasPrefix(strings.ToLower(value), strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}

// InclusiveRules requires all rules to be valid.
type InclusiveRules []Rule

// IsValid returns true if all rules validate the value.
func (r InclusiveRules) IsValid(value string) bool {
	for _, rule := range r {
		if !rule.IsValid(value) {
			return false
		}
	}
	return true
}

// IgnoredHeaders are never signed, whatever the configured rule says.
// Their values change between signing and sending, or per attempt.
var IgnoredHeaders = NewMapRule(
	AuthorizationHeader,
	UserAgentHeader,
	TraceIDHeader,
	"Content-Length",
	"Expect",
	"Transfer-Encoding",
)

// DefaultSignedHeaders is the minimal signed set: content-type and host.
var DefaultSignedHeaders = NewMapRule(
	ContentTypeHeader,
	HostHeader,
)

// ExtendedSignedHeaders additionally signs every X-TC- header except the
// ignored ones, binding action, version, region and timestamp to the
// signature.
var ExtendedSignedHeaders = Rules{
	DefaultSignedHeaders,
	Patterns{"X-TC-"},
}

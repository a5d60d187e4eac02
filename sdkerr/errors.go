// Package sdkerr defines the single failure value returned by every call in
// this module. Callers branch on Kind, and on Code for vendor API errors,
// instead of matching message strings.
package sdkerr

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

// Kind classifies where a failure originated.
type Kind int

const (
	// Configuration is a caller-side problem detected before any network
	// I/O: missing credential material, an invalid profile, or a payload
	// that cannot be encoded.
	Configuration Kind = iota + 1

	// Network is a transport-level failure: DNS, refused connection, TLS,
	// timeout, cancellation, or a non-2xx status without a vendor error.
	Network

	// Parse means the response body could not be decoded.
	Parse

	// API is a failure reported by the vendor inside the response envelope.
	API
)

func (k Kind) String() string {
	switch k {
	case Configuration:
		return "ConfigurationError"
	case Network:
		return "NetworkError"
	case Parse:
		return "ParseError"
	case API:
		return "ApiError"
	default:
		return "UnknownError"
	}
}

// Error is the failure value surfaced to callers.
type Error struct {
	Kind    Kind
	Message string

	// Code is the vendor error code, e.g.
	// FailedOperation.SignatureIncorrectOrUnapproved. Only set for API errors.
	Code string

	// RequestID is the vendor request id when the server produced one.
	RequestID string

	// StatusCode is the HTTP status when a response was received.
	StatusCode int

	Err error
}

// Error renders kind, code, message and request id. It never includes
// credential material.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("[TencentCloudSDKError] Kind=")
	b.WriteString(e.Kind.String())
	if e.Code != "" {
		b.WriteString(", Code=")
		b.WriteString(e.Code)
	}
	b.WriteString(", Message=")
	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	if e.StatusCode != 0 && e.Kind != API {
		b.WriteString(", Status=")
		b.WriteString(strconv.Itoa(e.StatusCode))
		b.WriteString(" ")
		b.WriteString(http.StatusText(e.StatusCode))
	}
	if e.RequestID != "" {
		b.WriteString(", RequestId=")
		b.WriteString(e.RequestID)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Timeout reports whether a network error was caused by a deadline or a
// transport timeout.
func (e *Error) Timeout() bool {
	if e.Kind != Network || e.Err == nil {
		return false
	}
	// context.DeadlineExceeded, *url.Error and net.Error all implement this.
	var t interface{ Timeout() bool }
	return errors.As(e.Err, &t) && t.Timeout()
}

// NewConfiguration returns a configuration error.
func NewConfiguration(message string, err error) *Error {
	return &Error{Kind: Configuration, Message: message, Err: err}
}

// NewNetwork returns a network error.
func NewNetwork(message string, err error) *Error {
	return &Error{Kind: Network, Message: message, Err: err}
}

// NewParse returns a parse error.
func NewParse(message string, err error) *Error {
	return &Error{Kind: Parse, Message: message, Err: err}
}

// NewAPI returns a vendor API error.
func NewAPI(code, message, requestID string) *Error {
	return &Error{Kind: API, Code: code, Message: message, RequestID: requestID}
}

// KindOf returns the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsConfiguration(err error) bool { return KindOf(err) == Configuration }
func IsNetwork(err error) bool       { return KindOf(err) == Network }
func IsParse(err error) bool         { return KindOf(err) == Parse }
func IsAPI(err error) bool           { return KindOf(err) == API }

// Code returns the vendor error code carried by err, or "".
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind == API {
		return e.Code
	}
	return ""
}

// HasCode reports whether err is an API error with the given vendor code.
func HasCode(err error, code string) bool {
	return code != "" && Code(err) == code
}

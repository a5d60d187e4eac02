package signer

// TC3-HMAC-SHA256 constants.

const (
	// SigningAlgorithm is the TC3 algorithm tag.
	SigningAlgorithm = "TC3-HMAC-SHA256"

	// KeyPrefix is prepended to the secret key before the first HMAC stage.
	KeyPrefix = "TC3"

	// ScopeTerminator closes the credential scope and is the input of the
	// last key-derivation stage.
	ScopeTerminator = "tc3_request"

	// DefaultService is the service name used in the credential scope.
	DefaultService = "sms"

	// EmptyStringSHA256 is the hex encoded SHA256 hash of an empty body.
	EmptyStringSHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

	// ContentTypeJSON is the body type every call is sent with.
	ContentTypeJSON = "application/json; charset=utf-8"

	// ShortTimeFormat is the UTC date used in the credential scope.
	// Format: YYYY-MM-DD
	ShortTimeFormat = "2006-01-02"
)

// Header names.
const (
	AuthorizationHeader = "Authorization"
	ContentTypeHeader   = "Content-Type"
	HostHeader          = "Host"
	UserAgentHeader     = "User-Agent"

	ActionHeader        = "X-TC-Action"
	VersionHeader       = "X-TC-Version"
	RegionHeader        = "X-TC-Region"
	TimestampHeader     = "X-TC-Timestamp"
	TokenHeader         = "X-TC-Token"
	LanguageHeader      = "X-TC-Language"
	RequestClientHeader = "X-TC-RequestClient"
	TraceIDHeader       = "X-TC-TraceId"
)

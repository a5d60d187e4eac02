package signer

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/forestrie/go-tc3sms/sdkerr"
)

// Signer applies TC3-HMAC-SHA256 signing to requests.
// A Signer only holds immutable configuration; every call builds its own
// canonical request, so one Signer can be shared between goroutines.
type Signer struct {
	config Config
	rule   Rule
}

// NewSigner creates a new Signer with the given config. It fails with a
// configuration error when the credential is missing or empty.
func NewSigner(config Config) (*Signer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Signer{
		config: config,
		rule: InclusiveRules{
			ExcludeList{IgnoredHeaders},
			config.SignedHeaders,
		},
	}, nil
}

// Service returns the service name used in the credential scope.
func (s *Signer) Service() string {
	return s.config.Service
}

// Signature is the outcome of signing one request. The intermediate strings
// are kept for debugging signature mismatches; none of them is secret.
type Signature struct {
	CanonicalRequest string
	StringToSign     string
	CredentialScope  string
	SignedHeaders    string
	Signature        string
	Authorization    string

	// Timestamp is the X-TC-Timestamp value the signature is bound to.
	Timestamp string
}

// httpSigner handles the signing process for a single request.
type httpSigner struct {
	Request     Request
	ServiceName string
	Time        SigningTime
	SecretID    string
	SecretKey   string
	Rule        Rule
}

// Sign computes the signature of req at signingTime. It performs no I/O and
// does not modify req. If req already carries X-TC-Timestamp it must match
// signingTime, since the server rejects any skew between the two.
func (s *Signer) Sign(req Request, signingTime time.Time) (*Signature, error) {
	if s == nil {
		return nil, sdkerr.NewConfiguration("signer is not initialized", nil)
	}
	if err := s.config.Credential.Validate(); err != nil {
		return nil, err
	}

	st := NewSigningTime(signingTime)
	if ts := req.Header.Get(TimestampHeader); ts != "" && ts != st.Timestamp() {
		return nil, sdkerr.NewConfiguration(
			fmt.Sprintf("%s %s does not match signing time %s", TimestampHeader, ts, st.Timestamp()), nil)
	}

	signer := &httpSigner{
		Request:     req,
		ServiceName: s.config.Service,
		Time:        st,
		SecretID:    s.config.Credential.SecretID(),
		SecretKey:   s.config.Credential.SecretKey(),
		Rule:        s.rule,
	}
	return signer.build(), nil
}

// SignHTTP signs req in place. body must be the exact bytes that will be
// sent; when it is nil the body is read through req.GetBody. It rewrites
// req.Host to the host that is signed, and sets X-TC-Timestamp, X-TC-Token
// when the credential carries a session token, and Authorization.
func (s *Signer) SignHTTP(req *http.Request, body []byte, signingTime time.Time) error {
	if s == nil {
		return sdkerr.NewConfiguration("signer is not initialized", nil)
	}
	if err := s.config.Credential.Validate(); err != nil {
		return err
	}

	payloadHash := ""
	if body == nil {
		h, err := hashRequestBody(req)
		if err != nil {
			return err
		}
		payloadHash = h
	}

	if req.Header == nil {
		req.Header = make(http.Header)
	}
	SanitizeHostForHeader(req)

	st := NewSigningTime(signingTime)
	req.Header.Set(TimestampHeader, st.Timestamp())
	if token := s.config.Credential.Token(); token != "" {
		req.Header.Set(TokenHeader, token)
	} else {
		req.Header.Del(TokenHeader)
	}

	signReq := NewRequestFromHTTP(req, body)
	signReq.PayloadHash = payloadHash
	sig, err := s.Sign(signReq, signingTime)
	if err != nil {
		return err
	}

	req.Header.Set(AuthorizationHeader, sig.Authorization)
	return nil
}

// hashRequestBody hashes a copy of req's body obtained from GetBody, leaving
// req.Body unread.
func hashRequestBody(req *http.Request) (string, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return EmptyStringSHA256, nil
	}
	if req.GetBody == nil {
		return "", sdkerr.NewConfiguration("request body cannot be re-read for hashing; pass the body bytes", nil)
	}
	rc, err := req.GetBody()
	if err != nil {
		return "", sdkerr.NewConfiguration("cannot read request body", err)
	}
	defer rc.Close()

	h, err := ComputePayloadHash(rc)
	if err != nil {
		return "", sdkerr.NewConfiguration("cannot hash request body", err)
	}
	return h, nil
}

// build performs the signing process.
func (s *httpSigner) build() *Signature {
	req := s.Request

	credentialScope := BuildCredentialScope(s.Time, s.ServiceName)
	credentialStr := s.SecretID + "/" + credentialScope

	signedHeadersStr, canonicalHeaderStr := BuildCanonicalHeaders(
		req.CanonicalHost(),
		s.Rule,
		req.Header,
	)

	var query url.Values
	if req.URL != nil {
		query = req.URL.Query()
	}

	canonicalString := BuildCanonicalString(
		req.Method,
		GetURIPath(req.URL),
		BuildCanonicalQueryString(query),
		signedHeadersStr,
		canonicalHeaderStr,
		req.payloadHash(),
	)

	strToSign := BuildStringToSign(
		SigningAlgorithm,
		s.Time.Timestamp(),
		credentialScope,
		canonicalString,
	)

	key := DeriveKey(s.SecretKey, s.ServiceName, s.Time)
	signature := BuildSignature(key, strToSign)

	return &Signature{
		CanonicalRequest: canonicalString,
		StringToSign:     strToSign,
		CredentialScope:  credentialScope,
		SignedHeaders:    signedHeadersStr,
		Signature:        signature,
		Authorization: BuildAuthorizationHeader(
			credentialStr,
			signedHeadersStr,
			signature,
		),
		Timestamp: s.Time.Timestamp(),
	}
}

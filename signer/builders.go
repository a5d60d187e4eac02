package signer

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// BuildCredentialScope builds the TC3 credential scope.
// Format: YYYY-MM-DD/service/tc3_request
func BuildCredentialScope(t SigningTime, service string) string {
	return strings.Join([]string{
		t.ShortTimeFormat(),
		service,
		ScopeTerminator,
	}, "/")
}

// BuildCanonicalQueryString form-encodes the query and sorts it by key,
// then by value for repeated keys. An empty query yields "".
func BuildCanonicalQueryString(query url.Values) string {
	if len(query) == 0 {
		return ""
	}
	sorted := make(url.Values, len(query))
	for k, v := range query {
		values := append([]string(nil), v...)
		sort.Strings(values)
		sorted[k] = values
	}
	// Encode sorts by key.
	return sorted.Encode()
}

// BuildCanonicalHeaders selects the headers accepted by rule, plus host when
// the rule accepts it, and renders them in canonical form.
// Returns: signed headers string, canonical headers string
func BuildCanonicalHeaders(host string, rule Rule, header http.Header) (signedHeaders, canonicalHeadersStr string) {
	const hostHeader = "host"

	var headers []string
	signed := make(map[string][]string)

	if host != "" && rule.IsValid(HostHeader) {
		headers = append(headers, hostHeader)
		signed[hostHeader] = []string{host}
	}

	for k, v := range header {
		if strings.EqualFold(k, HostHeader) {
			// Host is taken from the request target, not the header map.
			continue
		}
		if !rule.IsValid(k) {
			continue
		}

		lowerKey := strings.ToLower(strings.TrimSpace(k))
		if _, ok := signed[lowerKey]; ok {
			signed[lowerKey] = append(signed[lowerKey], v...)
			continue
		}

		headers = append(headers, lowerKey)
		signed[lowerKey] = append([]string(nil), v...)
	}
	sort.Strings(headers)

	signedHeaders = strings.Join(headers, ";")

	var canonicalHeaders strings.Builder
	for _, name := range headers {
		canonicalHeaders.WriteString(name)
		canonicalHeaders.WriteRune(':')
		values := signed[name]
		for j, val := range values {
			canonicalHeaders.WriteString(strings.TrimSpace(val))
			if j < len(values)-1 {
				canonicalHeaders.WriteRune(',')
			}
		}
		canonicalHeaders.WriteRune('\n')
	}
	canonicalHeadersStr = canonicalHeaders.String()

	return signedHeaders, canonicalHeadersStr
}

// BuildCanonicalString builds the canonical request string.
// Format: METHOD\nURI\nQUERY\nHEADERS\nSIGNED_HEADERS\nPAYLOAD_HASH
//
// canonicalHeaders already ends in a newline, which produces the blank line
// between the header block and the signed header list.
func BuildCanonicalString(method, uri, query, signedHeaders, canonicalHeaders, payloadHash string) string {
	return strings.Join([]string{
		strings.ToUpper(method),
		uri,
		query,
		canonicalHeaders,
		signedHeaders,
		payloadHash,
	}, "\n")
}

// BuildStringToSign builds the string to sign.
// Format: ALGORITHM\nTIMESTAMP\nSCOPE\nHASH(CANONICAL_REQUEST)
func BuildStringToSign(algorithm, timestamp, credentialScope, canonicalRequest string) string {
	return strings.Join([]string{
		algorithm,
		timestamp,
		credentialScope,
		HashPayload([]byte(canonicalRequest)),
	}, "\n")
}

// BuildSignature computes the hex HMAC-SHA256 of the string to sign.
func BuildSignature(key []byte, stringToSign string) string {
	return hex.EncodeToString(HMACSHA256(key, []byte(stringToSign)))
}

// BuildAuthorizationHeader builds the Authorization header value.
// Format: ALGORITHM Credential=..., SignedHeaders=..., Signature=...
func BuildAuthorizationHeader(credentialStr, signedHeadersStr, signature string) string {
	const credential = "Credential="
	const signedHeaders = "SignedHeaders="
	const signatureKey = "Signature="
	const commaSpace = ", "

	var parts strings.Builder
	parts.Grow(
		len(SigningAlgorithm) + 1 +
			len(credential) + len(credentialStr) + 2 +
			len(signedHeaders) + len(signedHeadersStr) + 2 +
			len(signatureKey) + len(signature),
	)
	parts.WriteString(SigningAlgorithm)
	parts.WriteRune(' ')
	parts.WriteString(credential)
	parts.WriteString(credentialStr)
	parts.WriteString(commaSpace)
	parts.WriteString(signedHeaders)
	parts.WriteString(signedHeadersStr)
	parts.WriteString(commaSpace)
	parts.WriteString(signatureKey)
	parts.WriteString(signature)
	return parts.String()
}

// HashPayload returns the lowercase hex SHA256 of body.
func HashPayload(body []byte) string {
	if len(body) == 0 {
		return EmptyStringSHA256
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// ComputePayloadHash computes the SHA256 hash of a request body read from r.
func ComputePayloadHash(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", errors.Wrap(err, "failed to compute payload hash")
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

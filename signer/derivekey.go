package signer

import (
	"crypto/hmac"
	"crypto/sha256"
)

// DeriveKey narrows the long-lived secret key into the signing key for one
// day and one service:
//   - secretDate    = HMAC-SHA256("TC3" + secretKey, date)
//   - secretService = HMAC-SHA256(secretDate, service)
//   - secretSigning = HMAC-SHA256(secretService, "tc3_request")
//
// Nothing is cached; every call recomputes the chain.
func DeriveKey(secretKey, service string, t SigningTime) []byte {
	secretDate := dateKey(secretKey, t.ShortTimeFormat())
	secretService := serviceKey(secretDate, service)
	return signingKey(secretService)
}

func dateKey(secretKey, date string) []byte {
	return HMACSHA256([]byte(KeyPrefix+secretKey), []byte(date))
}

func serviceKey(secretDate []byte, service string) []byte {
	return HMACSHA256(secretDate, []byte(service))
}

func signingKey(secretService []byte) []byte {
	return HMACSHA256(secretService, []byte(ScopeTerminator))
}

// HMACSHA256 computes HMAC-SHA256 of data with the given key.
func HMACSHA256(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}

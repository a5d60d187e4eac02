package signer

import (
	"strconv"
	"time"
)

// SigningTime wraps the instant a request is signed at. The same value
// feeds both X-TC-Timestamp and the credential-scope date, so the two can
// never disagree.
type SigningTime struct {
	time.Time
	timestamp       string
	shortTimeFormat string
}

// NewSigningTime creates a new SigningTime from a time.Time.
// The time is converted to UTC.
func NewSigningTime(t time.Time) SigningTime {
	return SigningTime{
		Time: t.UTC(),
	}
}

// Timestamp returns the Unix time in seconds, as sent in X-TC-Timestamp
// and written into the string to sign.
func (st *SigningTime) Timestamp() string {
	if st.timestamp == "" {
		st.timestamp = strconv.FormatInt(st.Time.Unix(), 10)
	}
	return st.timestamp
}

// ShortTimeFormat returns the UTC date for the credential scope.
// Format: YYYY-MM-DD (e.g., 2019-02-25)
func (st *SigningTime) ShortTimeFormat() string {
	if st.shortTimeFormat == "" {
		st.shortTimeFormat = st.Time.Format(ShortTimeFormat)
	}
	return st.shortTimeFormat
}

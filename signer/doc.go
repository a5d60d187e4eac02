/*
Package signer implements the TC3-HMAC-SHA256 request signature used by
TencentCloud API 3.0.

Step 1: make a canonical request string in the format
`<METHOD>\n<URI>\n<QUERY>\n<HEADERS>\n<SIGNED_HEADERS>\n<PAYLOAD_HASH>`.

  - `METHOD`: HTTP method in upper case, normally POST.
  - `URI`: the URL path, `/` for every API action.
  - `QUERY`: form-encoded query sorted by key; empty for POST.
  - `HEADERS`: `name:value\n` for every signed header, names lowercased and
    sorted, values trimmed. At minimum `content-type` and `host`.
  - `SIGNED_HEADERS`: the same names joined by `;`.
  - `PAYLOAD_HASH`: `hex(sha256(BODY))` over the exact bytes sent.

Step 2: build the string to sign
`TC3-HMAC-SHA256\n<TIMESTAMP>\n<DATE>/<SERVICE>/tc3_request\n<hex(sha256(CANONICAL_REQUEST))>`,
where TIMESTAMP is the Unix time sent in X-TC-Timestamp and DATE its UTC
date as YYYY-MM-DD.

Step 3: derive the signing key and sign:

	secretDate    = hmacsha256("TC3"+SecretKey, DATE)
	secretService = hmacsha256(secretDate, SERVICE)
	secretSigning = hmacsha256(secretService, "tc3_request")
	signature     = hex(hmacsha256(secretSigning, StringToSign))

Step 4: send `Authorization: TC3-HMAC-SHA256 Credential=<SecretId>/<DATE>/<SERVICE>/tc3_request, SignedHeaders=<SIGNED_HEADERS>, Signature=<signature>`.
*/
package signer

package lastfm

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
)

// signParams generates an MD5 signature for Last.fm API requests.
//
// The signature is calculated by:
// 1. Sorting parameter keys byte-wise (any stale "api_sig" is skipped)
// 2. Concatenating key+value pairs (e.g., "keyAvalueAkeyBvalueB")
// 3. Appending the API secret
// 4. Taking the MD5 hash of the result, lowercase hex encoded
//
// MD5 is fixed by the Last.fm protocol; the service recomputes the
// same digest server-side to verify the request.
//
// This function is pure: no I/O, identical output for identical input
// regardless of map insertion order.
func signParams(params Params, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == "api_sig" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Build signature string: key1value1key2value2...secret
	var sigPlain string
	for _, k := range keys {
		sigPlain += k + params[k]
	}
	sigPlain += secret

	return md5Hex(sigPlain)
}

// md5Hex returns the lowercase hex MD5 digest of s. Also used to build
// the direct-auth token, which the protocol defines with the same
// digest.
func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

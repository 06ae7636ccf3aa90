package utils

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sort"
	"strings"
	"sync"
)

// hasherPool is a package-level pool of reusable SHA-256 hash instances used
// for content hashing of written output files.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// HashContent computes the SHA-256 digest of data and returns it hex-encoded.
// The journal stores it to detect output files that did not change between
// runs.
//
// Behavior:
//   - Retrieves a hash.Hash instance from sync.Pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
func HashContent(data []byte) string {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return hex.EncodeToString(sum)
}

// SignParams computes the request signature expected by the remote API:
// the hex MD5 of the shared secret followed by every parameter name and value,
// parameters sorted by name.
//
// Example usage:
//
//	sig := utils.SignParams("secret", map[string]string{"method": "test.echo", "api_key": "k"})
func SignParams(secret string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(secret)
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(params[k])
	}

	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

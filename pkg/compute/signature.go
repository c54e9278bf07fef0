// Package compute holds the pure functions called by handlers: signature
// hashing, quality scoring, intent classification, pattern extraction,
// and tool-trace parsing. Nothing here touches the database or the bus.
package compute

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// NormalizeBody canonicalizes a pattern body before hashing: lines are
// trimmed, internal runs of whitespace collapse to one space, and blank
// lines drop out. Two bodies differing only in formatting hash the same.
func NormalizeBody(body string) string {
	var out []string
	for _, line := range strings.Split(body, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		out = append(out, strings.Join(fields, " "))
	}
	return strings.Join(out, "\n")
}

// SignatureHash computes the content-addressed deduplication key:
// blake2b-256 over the normalized body plus the version tag.
func SignatureHash(body, versionTag string) string {
	sum := blake2b.Sum256([]byte(NormalizeBody(body) + "\x00" + versionTag))
	return hex.EncodeToString(sum[:])
}

package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashText returns a fixed-length hex digest of s, used to key score memos.
func HashText(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

package cardsec

import (
	"crypto/hmac"
	"crypto/sha256"
)

// HashNumberHMAC computes HMAC-SHA256 over a normalized card number using a
// secret key (pepper). Do not log or persist the input number; callers must
// sanitize logs separately.
func HashNumberHMAC(number string, key []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write([]byte(number))
	return h.Sum(nil)
}

// LastN returns the last n characters of s, or s itself when shorter.
func LastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

package links

import (
	"crypto/rand"
	"encoding/base64"
)

const slugBytes = 9 // 12 URL-safe characters

// NewSlug returns a random URL-safe token for a public link.
func NewSlug() (string, error) {
	var b [slugBytes]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b[:]), nil
}

// Package avatar builds gravatar URLs for message senders.
package avatar

import (
	"crypto/md5" //nolint:gosec
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
)

const (
	BaseURL = "http://www.gravatar.com/avatar/"
	Size    = "32"
	// DefaultImage asks gravatar for the mystery-person picture when the
	// hash is unknown.
	DefaultImage = "mm"
)

// BuildURL returns the avatar URL of the given email, hashed trimmed and
// lower-cased. An empty email yields the default picture.
func BuildURL(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	var hash string
	if email != "" {
		sum := md5.Sum([]byte(email)) //nolint:gosec
		hash = hex.EncodeToString(sum[:])
	}

	return fmt.Sprintf("%s%s?%s&d=%s", BaseURL, hash, url.Values{"s": {Size}}.Encode(), DefaultImage)
}

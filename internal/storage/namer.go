package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

const maxBaseNameLen = 40

// GenerateUniqueName builds a collision-resistant file name from the
// original upload name: a sanitized base, a 128-bit random hex token and the
// real extension. The extension is taken with filepath.Ext (last dot), so
// "photo.final.JPG" keeps ".jpg" rather than losing it to a first-dot split.
// Uniqueness is probabilistic; no storage lookup is performed.
func GenerateUniqueName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))

	base = CleanSegment(base)
	if len(base) > maxBaseNameLen {
		base = base[:maxBaseNameLen]
	}

	return fmt.Sprintf("%s_%s%s", base, randomToken(), ext)
}

// randomToken returns 32 hex characters (128 bits) of randomness.
func randomToken() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is effectively unreachable; fall back to a
		// time-based token rather than panicking mid-upload.
		return fmt.Sprintf("%032x", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}

package auth

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// totpPeriod is the RFC 6238 time step.
const totpPeriod = 30

// generateTOTP generates a 6-digit TOTP code from a base32 seed.
func generateTOTP(secret string, now time.Time) (string, error) {
	// Remove spaces and convert to uppercase
	secret = strings.ReplaceAll(strings.ToUpper(secret), " ", "")

	key, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(strings.TrimRight(secret, "="))
	if err != nil {
		return "", errors.Wrap(err, "failed to decode TOTP secret")
	}

	counter := now.Unix() / totpPeriod

	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(counter))

	h := hmac.New(sha1.New, key)
	h.Write(buf)
	hash := h.Sum(nil)

	// Dynamic truncation per RFC 4226
	offset := hash[len(hash)-1] & 0x0f
	code := binary.BigEndian.Uint32(hash[offset:offset+4]) & 0x7fffffff
	code = code % 1000000

	return fmt.Sprintf("%06d", code), nil
}

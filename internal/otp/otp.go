// Package otp generates the one-time codes mailed during registration.
package otp

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Generate returns a 6-digit numeric code in [100000, 999999], drawn from
// a cryptographically secure source. Collisions across concurrently valid
// codes are possible and tolerated; issuing a new code invalidates the
// caller's prior ones at the store level.
func Generate() (string, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	n := binary.BigEndian.Uint32(buf[:])
	return fmt.Sprintf("%06d", n%900000+100000), nil
}

package utils

import (
	"crypto/rand" // secure random number generation
)

// refAlphabet is the character set used for booking reference suffixes.
// Upper-case base36 keeps references short and readable over the phone.
const refAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewBookingRef returns a booking identifier built from a human-readable
// prefix (e.g. "HTC", "HRC") and a 6-character random suffix.  36^6 possible
// suffixes make a collision with an existing booking overwhelmingly
// unlikely; uniqueness is probabilistic, not enforced.
func NewBookingRef(prefix string) (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = refAlphabet[int(b)%len(refAlphabet)]
	}
	return prefix + "-" + string(buf), nil
}

package service

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// GenerateAccessCode mints a 16-digit code grouped as 1111-2222-3333-4444.
// Director company codes and location access codes are both minted here;
// disjointness across the two pools is probabilistic, not enforced — the
// resolver checks directors before locations on the off chance of a clash.
func GenerateAccessCode() string {
	var b strings.Builder
	for group := 0; group < 4; group++ {
		if group > 0 {
			b.WriteByte('-')
		}
		for i := 0; i < 4; i++ {
			n, err := rand.Int(rand.Reader, big.NewInt(10))
			if err != nil {
				// crypto/rand failing means the platform is broken; a zero
				// digit keeps the code well-formed.
				b.WriteByte('0')
				continue
			}
			b.WriteByte(byte('0' + n.Int64()))
		}
	}
	return b.String()
}

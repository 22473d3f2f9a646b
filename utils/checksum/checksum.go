package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Signer produces the keyed digest the VA gateway verifies on every request:
// sha256 over the payload immediately followed by the pre-shared secret, no
// delimiter. The payload shape is the caller's contract — field order and
// decimal rendering must match the gateway exactly, a mismatch is rejected
// with a generic error, never a dedicated code.
type Signer struct {
	secret string
}

func NewSigner(secret string) Signer {
	return Signer{secret: secret}
}

func (s Signer) Checksum(payload string) string {
	h := sha256.New()
	h.Write([]byte(payload + s.secret))
	return hex.EncodeToString(h.Sum(nil))
}

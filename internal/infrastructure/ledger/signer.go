// Package ledger talks to the on-chain settlement program: it signs purchase
// authorizations for checkout and confirms submitted transactions for pay.
package ledger

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Signer holds the platform key that co-signs purchase authorizations.
type Signer struct {
	key ed25519.PrivateKey
}

// NewSigner builds a Signer from a 32-byte seed encoded as hex or base64.
func NewSigner(seed string) (*Signer, error) {
	raw, err := decodeSeed(seed)
	if err != nil {
		return nil, err
	}
	return &Signer{key: ed25519.NewKeyFromSeed(raw)}, nil
}

func decodeSeed(seed string) ([]byte, error) {
	seed = strings.TrimSpace(seed)
	if raw, err := hex.DecodeString(seed); err == nil && len(raw) == ed25519.SeedSize {
		return raw, nil
	}
	if raw, err := base64.StdEncoding.DecodeString(seed); err == nil && len(raw) == ed25519.SeedSize {
		return raw, nil
	}
	return nil, fmt.Errorf("signer seed must be %d bytes encoded as hex or base64", ed25519.SeedSize)
}

func (s *Signer) PublicKey() ed25519.PublicKey {
	return s.key.Public().(ed25519.PublicKey)
}

// authorization is the message the buyer's transaction must carry verbatim.
type authorization struct {
	Buyer      string
	TicketID   string
	MaxPrice   decimal.Decimal
	ValidUntil time.Time
	Nonce      string
	Row        int
	Column     int
}

func (a authorization) encode() string {
	return strings.Join([]string{
		a.Buyer,
		a.TicketID,
		a.MaxPrice.String(),
		strconv.FormatInt(a.ValidUntil.Unix(), 10),
		a.Nonce,
		strconv.Itoa(a.Row),
		strconv.Itoa(a.Column),
	}, "|")
}

// Sign returns the encoded message and its base64 signature.
func (s *Signer) Sign(a authorization) (message, signature string) {
	message = a.encode()
	sig := ed25519.Sign(s.key, []byte(message))
	return message, base64.StdEncoding.EncodeToString(sig)
}

// Verify reports whether signature is this signer's signature over message.
func (s *Signer) Verify(message, signature string) bool {
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}
	return ed25519.Verify(s.PublicKey(), []byte(message), sig)
}

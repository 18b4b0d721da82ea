package signing

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// Envelope carries the freshly computed authentication pair for one
// outgoing request. It is produced per call and never reused: the timestamp
// is part of the signed material, so a new dispatch needs a new envelope.
type Envelope struct {
	Timestamp int64
	Signature string
}

// TimestampText returns the timestamp as decimal text, the exact form the
// remote side expects in the timestamp header.
func (e Envelope) TimestampText() string {
	return strconv.FormatInt(e.Timestamp, 10)
}

// Sign computes the request signature: lowercase hex of
// HMAC-SHA512(secret, lower(canonical) + timestamp). The secret key is used
// as its raw UTF-8 bytes. Deterministic for fixed inputs.
func Sign(secret string, params map[string]any, timestamp int64) string {
	material := strings.ToLower(Canonical(params)) + strconv.FormatInt(timestamp, 10)

	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(material))

	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature matches the given parameters and
// timestamp under secret, using a constant-time comparison.
func Verify(secret string, params map[string]any, timestamp int64, signature string) bool {
	if signature == "" {
		return false
	}

	expected, err := hex.DecodeString(Sign(secret, params, timestamp))
	if err != nil {
		return false
	}

	provided, err := hex.DecodeString(strings.ToLower(signature))
	if err != nil {
		return false
	}

	return hmac.Equal(expected, provided)
}

// Signer stamps parameter sets with the current time and signs them. The
// zero value is not usable; construct with NewSigner.
type Signer struct {
	secret string
	now    func() time.Time
}

func NewSigner(secret string) *Signer {
	return &Signer{
		secret: secret,
		now:    time.Now,
	}
}

// NewSignerWithClock creates a Signer with an injected clock. Intended for
// tests that need reproducible envelopes.
func NewSignerWithClock(secret string, now func() time.Time) *Signer {
	return &Signer{
		secret: secret,
		now:    now,
	}
}

// Stamp captures the current time in milliseconds and signs params with it.
// Every call produces a fresh envelope, even for identical parameters.
func (s *Signer) Stamp(params map[string]any) Envelope {
	timestamp := s.now().UnixMilli()

	return Envelope{
		Timestamp: timestamp,
		Signature: Sign(s.secret, params, timestamp),
	}
}

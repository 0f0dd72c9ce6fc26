// Package token issues and verifies signed, timestamped one-time tokens
// used for email verification links.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)

type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Issue wraps payload with the current unix timestamp and an HMAC-SHA256
// signature. The result is opaque to callers.
func (s *Signer) Issue(payload string) string {
	return s.issueAt(payload, time.Now().UTC())
}

func (s *Signer) issueAt(payload string, now time.Time) string {
	body := base64.RawURLEncoding.EncodeToString([]byte(payload)) +
		"." + strconv.FormatInt(now.Unix(), 10)
	return body + "." + s.sign(body)
}

// Verify checks the signature and age of a token and returns its payload.
// An authentic token older than maxAge fails with ErrExpiredToken; anything
// tampered with or malformed fails with ErrInvalidToken.
func (s *Signer) Verify(tok string, maxAge time.Duration) (string, error) {
	payload, issuedAt, err := s.parse(tok)
	if err != nil {
		return "", err
	}
	if time.Since(issuedAt) > maxAge {
		return "", ErrExpiredToken
	}
	return payload, nil
}

// Payload returns the payload of an authentic token regardless of age. The
// expired-token resend path needs this to find the account to re-mail.
func (s *Signer) Payload(tok string) (string, error) {
	payload, _, err := s.parse(tok)
	return payload, err
}

func (s *Signer) parse(tok string) (string, time.Time, error) {
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		return "", time.Time{}, ErrInvalidToken
	}
	body := parts[0] + "." + parts[1]
	if !hmac.Equal([]byte(parts[2]), []byte(s.sign(body))) {
		return "", time.Time{}, ErrInvalidToken
	}
	raw, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", time.Time{}, ErrInvalidToken
	}
	ts, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", time.Time{}, ErrInvalidToken
	}
	return string(raw), time.Unix(ts, 0).UTC(), nil
}

func (s *Signer) sign(input string) string {
	h := hmac.New(sha256.New, s.secret)
	fmt.Fprint(h, input)
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

package keygen

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"time"
)

const (
	// DefaultKeySize is the RSA modulus size used when no size is configured.
	DefaultKeySize = 2048

	// KidLength is the length of generated key identifiers.
	KidLength = 16

	// DefaultTTLDays is the key lifetime applied when the caller doesn't
	// request one.
	DefaultTTLDays = 365
)

// ErrGeneration is returned when the underlying RSA primitive fails to
// produce a key of the requested size.
var ErrGeneration = errors.New("key generation failed")

const kidAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateKeyPair generates a fresh RSA key pair and returns the private key
// as an unencrypted PKCS#8 PEM string and the public key as a
// SubjectPublicKeyInfo PEM string.
func GenerateKeyPair(bits int) (privatePEM string, publicPEM string, err error) {
	if bits == 0 {
		bits = DefaultKeySize
	}

	pkey, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	privateDER, err := x509.MarshalPKCS8PrivateKey(pkey)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	privatePEM = string(pem.EncodeToMemory(&pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: privateDER,
	}))

	publicDER, err := x509.MarshalPKIXPublicKey(&pkey.PublicKey)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	publicPEM = string(pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: publicDER,
	}))

	return privatePEM, publicPEM, nil
}

// GenerateKid returns a random 16-character key identifier drawn from the
// 62-symbol alphanumeric alphabet. Global uniqueness is not guaranteed by
// construction; the unique index on the kid column catches the
// practically-never collision.
func GenerateKid() (string, error) {
	// Discard bytes outside the largest multiple of 62 so the distribution
	// over the alphabet stays uniform.
	limit := byte(256 - 256%len(kidAlphabet))

	kid := make([]byte, 0, KidLength)
	buf := make([]byte, KidLength)
	for len(kid) < KidLength {
		if _, err := io.ReadFull(rand.Reader, buf); err != nil {
			return "", fmt.Errorf("%w: %v", ErrGeneration, err)
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			kid = append(kid, kidAlphabet[int(b)%len(kidAlphabet)])
			if len(kid) == KidLength {
				break
			}
		}
	}

	return string(kid), nil
}

// ComputeExpiry returns the expiration instant for a key issued at issuedAt
// with the given lifetime in days. Callers are expected to reject
// non-positive day counts before calling.
func ComputeExpiry(issuedAt time.Time, days int) time.Time {
	return issuedAt.UTC().AddDate(0, 0, days)
}

// Package keygen produces the raw material for RSA credential records.
//
// It wraps the crypto/rsa primitive with the encoding and identifier
// conventions the vault persists:
//
//	privatePEM, publicPEM, err := keygen.GenerateKeyPair(2048)
//	kid, err := keygen.GenerateKid()
//	expiresAt := keygen.ComputeExpiry(time.Now(), 365)
//
// The private key is serialized as unencrypted PKCS#8 PEM and the public
// key as SubjectPublicKeyInfo PEM. Key identifiers are 16 random
// alphanumeric characters from a cryptographically secure source; the
// database's unique index on kid is the collision backstop.
package keygen

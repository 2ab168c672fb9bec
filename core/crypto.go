// Copyright (C) 2025 Wooyang2018
// Licensed under the GNU General Public License v3.0

package core

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"io"
)

var (
	ErrInvalidKeySize    = errors.New("invalid key size")
	ErrInvalidCredential = errors.New("invalid credential encoding")
)

// PublicKey type
type PublicKey struct {
	key ed25519.PublicKey
}

// NewPublicKey creates PublicKey from bytes
func NewPublicKey(b []byte) (*PublicKey, error) {
	if len(b) != ed25519.PublicKeySize {
		return nil, ErrInvalidKeySize
	}
	return &PublicKey{key: b}, nil
}

// Equal checks whether pub and x has the same value
func (pub *PublicKey) Equal(x *PublicKey) bool {
	return bytes.Equal(pub.key, x.key)
}

func (pub *PublicKey) Bytes() []byte {
	return pub.key
}

func (pub *PublicKey) String() string {
	return base64.StdEncoding.EncodeToString(pub.key)
}

// PrivateKey type
type PrivateKey struct {
	key    ed25519.PrivateKey
	pubKey *PublicKey
}

// NewPrivateKey creates PrivateKey from bytes
func NewPrivateKey(b []byte) (*PrivateKey, error) {
	if len(b) != ed25519.PrivateKeySize {
		return nil, ErrInvalidKeySize
	}
	priv := &PrivateKey{key: b}
	priv.pubKey = &PublicKey{key: priv.key.Public().(ed25519.PublicKey)}
	return priv, nil
}

// NewPrivateKeyFromHex parses a credential, the hex encoded seed of an
// ed25519 key established out of band with the target service.
func NewPrivateKeyFromHex(credential string) (*PrivateKey, error) {
	seed, err := hex.DecodeString(credential)
	if err != nil {
		return nil, ErrInvalidCredential
	}
	if len(seed) != ed25519.SeedSize {
		return nil, ErrInvalidKeySize
	}
	return NewPrivateKey(ed25519.NewKeyFromSeed(seed))
}

func (priv *PrivateKey) Bytes() []byte {
	return priv.key
}

// Seed returns the hex encoded seed usable as a run credential.
func (priv *PrivateKey) Seed() string {
	return hex.EncodeToString(priv.key.Seed())
}

// PublicKey returns corresponding public key
func (priv *PrivateKey) PublicKey() *PublicKey {
	return priv.pubKey
}

// Sign signs the message
func (priv *PrivateKey) Sign(msg []byte) *Signature {
	return &Signature{
		value:  ed25519.Sign(priv.key, msg),
		pubKey: priv.pubKey,
	}
}

// GenerateKey generates a new private key. It uses crypto/rand.Reader
// when r is nil.
func GenerateKey(r io.Reader) *PrivateKey {
	if r == nil {
		r = rand.Reader
	}
	_, key, err := ed25519.GenerateKey(r)
	if err != nil {
		panic(err)
	}
	priv, _ := NewPrivateKey(key)
	return priv
}

// Signature type
type Signature struct {
	value  []byte
	pubKey *PublicKey
}

// Verify verifies the signature
func (sig *Signature) Verify(msg []byte) bool {
	return ed25519.Verify(sig.pubKey.key, msg, sig.value)
}

// PublicKey returns corresponding public key
func (sig *Signature) PublicKey() *PublicKey {
	return sig.pubKey
}

func (sig *Signature) Bytes() []byte {
	return sig.value
}

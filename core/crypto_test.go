// Copyright (C) 2025 Wooyang2018
// Licensed under the GNU General Public License v3.0

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignVerify(t *testing.T) {
	asrt := assert.New(t)
	privKey := GenerateKey(nil)
	asrt.Equal(privKey.PublicKey(), privKey.PublicKey())
	msg := []byte("message to be signed")
	sig := privKey.Sign(msg)
	asrt.NotNil(sig)
	asrt.True(sig.Verify(msg))
	asrt.False(sig.Verify([]byte("tampered message")))
	asrt.Equal(privKey.PublicKey(), sig.PublicKey())
}

func TestPrivateKeyFromHex(t *testing.T) {
	asrt := assert.New(t)

	privKey := GenerateKey(nil)
	parsed, err := NewPrivateKeyFromHex(privKey.Seed())
	asrt.NoError(err)
	asrt.Equal(privKey.Bytes(), parsed.Bytes())
	asrt.True(privKey.PublicKey().Equal(parsed.PublicKey()))

	_, err = NewPrivateKeyFromHex("not hex at all")
	asrt.ErrorIs(err, ErrInvalidCredential)

	_, err = NewPrivateKeyFromHex("abcd")
	asrt.ErrorIs(err, ErrInvalidKeySize)
}

func TestNewPublicKey(t *testing.T) {
	asrt := assert.New(t)

	privKey := GenerateKey(nil)
	pub, err := NewPublicKey(privKey.PublicKey().Bytes())
	asrt.NoError(err)
	asrt.True(pub.Equal(privKey.PublicKey()))

	_, err = NewPublicKey([]byte{1, 2, 3})
	asrt.ErrorIs(err, ErrInvalidKeySize)

	_, err = NewPublicKey(nil)
	asrt.ErrorIs(err, ErrInvalidKeySize)
}

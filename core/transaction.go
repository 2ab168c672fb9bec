// Copyright (C) 2025 Wooyang2018
// Licensed under the GNU General Public License v3.0

package core

import (
	"encoding/binary"
	"encoding/json"
	"errors"

	"golang.org/x/crypto/sha3"
)

var (
	ErrNilSig        = errors.New("nil signature")
	ErrInvalidSig    = errors.New("invalid signature")
	ErrInvalidSender = errors.New("invalid sender public key")
)

// Transaction is one signed key value write request. It is immutable once
// signed and carries everything the remote side needs to verify it.
type Transaction struct {
	data   txData
	sender *PublicKey
}

type txData struct {
	Nonce  int64  `json:"nonce"`
	Key    string `json:"key"`
	Value  string `json:"value"`
	Sender []byte `json:"sender"`
	Sig    []byte `json:"sig"`
}

func NewTransaction() *Transaction {
	return &Transaction{}
}

func (tx *Transaction) SetNonce(val int64) *Transaction {
	tx.data.Nonce = val
	return tx
}

func (tx *Transaction) SetKey(val string) *Transaction {
	tx.data.Key = val
	return tx
}

func (tx *Transaction) SetValue(val string) *Transaction {
	tx.data.Value = val
	return tx
}

// Sign signs the transaction with priv and records the sender
func (tx *Transaction) Sign(priv *PrivateKey) *Transaction {
	tx.sender = priv.PublicKey()
	tx.data.Sender = priv.PublicKey().Bytes()
	tx.data.Sig = priv.Sign(tx.Sum()).Bytes()
	return tx
}

// Sum returns the sha3 digest of the signed fields
func (tx *Transaction) Sum() []byte {
	h := sha3.New256()
	nonce := make([]byte, 8)
	binary.BigEndian.PutUint64(nonce, uint64(tx.data.Nonce))
	h.Write(nonce)
	h.Write([]byte(tx.data.Key))
	h.Write([]byte(tx.data.Value))
	h.Write(tx.data.Sender)
	return h.Sum(nil)
}

// Hash identifies the transaction
func (tx *Transaction) Hash() []byte {
	return tx.Sum()
}

// Validate verifies the sender signature
func (tx *Transaction) Validate() error {
	if tx.data.Sig == nil {
		return ErrNilSig
	}
	if tx.sender == nil {
		return ErrInvalidSender
	}
	sig := &Signature{value: tx.data.Sig, pubKey: tx.sender}
	if !sig.Verify(tx.Sum()) {
		return ErrInvalidSig
	}
	return nil
}

func (tx *Transaction) Nonce() int64       { return tx.data.Nonce }
func (tx *Transaction) Key() string        { return tx.data.Key }
func (tx *Transaction) Value() string      { return tx.data.Value }
func (tx *Transaction) Sender() *PublicKey { return tx.sender }

func (tx *Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(tx.data)
}

func (tx *Transaction) UnmarshalJSON(b []byte) error {
	if err := json.Unmarshal(b, &tx.data); err != nil {
		return err
	}
	sender, err := NewPublicKey(tx.data.Sender)
	if err != nil {
		return ErrInvalidSender
	}
	tx.sender = sender
	return nil
}

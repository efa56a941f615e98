// Copyright (c) 2023 Paweł Rybak
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package rocca implements the core of the ROCCA-256 authenticated
// encryption with associated data (AEAD) scheme: a 256-bit-key, 128-bit-
// nonce, 128-bit-tag construction built directly on a single AES round
// (SubBytes, ShiftRows, MixColumns, AddRoundKey), the same round-level
// primitive exposed by AES-NI on x86 and the fused AESE+AESMC pair on
// ARMv8. There is no key derivation, no streaming API, and no transport
// framing here — just init, absorb, encrypt/decrypt, and finalize, exactly
// as described by the ROCCA specification.
package rocca

import (
	"crypto/subtle"
	"errors"

	"github.com/wedkarz02/rocca-go/src/block"
	"github.com/wedkarz02/rocca-go/src/consts"
)

const (
	// KeySize is the required length of the ROCCA-256 key, in bytes.
	KeySize = consts.KEY_SIZE

	// NonceSize is the required length of the ROCCA-256 nonce, in bytes.
	NonceSize = consts.NONCE_SIZE

	// TagSize is the length of the ROCCA-256 authentication tag, in bytes.
	TagSize = consts.TAG_SIZE
)

// ErrAuthFailed is returned by Decrypt when the supplied tag does not match
// the tag computed over the ciphertext, AD, nonce and key. It is the only
// domain error this package has; everything else is a programming error
// enforced by assertion. On ErrAuthFailed the destination plaintext buffer
// has been overwritten with 0xAA and must not be read.
var ErrAuthFailed = errors.New("rocca: authentication failed")

// mustLen panics if got != want. Buffer-size mismatches between the
// caller-supplied plaintext/ciphertext/key/nonce/tag are programmer errors
// per spec.md §4.4 ("enforced at call boundaries as assertions; not
// recoverable"), not part of the returned-error surface, matching the
// teacher's convention of reserving an `error` return only for conditions a
// caller could legitimately hit at runtime.
func mustLen(what string, got, want int) {
	if got != want {
		panic("rocca: invalid " + what + " length")
	}
}

// Encrypt encrypts plaintext with ad as associated data under key and
// nonce, writing len(plaintext) bytes of ciphertext to ciphertext and
// TagSize bytes of tag to tag. ciphertext and plaintext may fully overlap
// (including being the same slice): processing is block-sequential, so
// each block's ciphertext is written only after that block's plaintext has
// been read. Encrypt is infallible; all failure modes are either
// assertions on buffer sizes or not applicable to encryption (spec.md
// §4.4).
func Encrypt(ciphertext, tag, plaintext, ad, nonce, key []byte) {
	mustLen("ciphertext", len(ciphertext), len(plaintext))
	mustLen("tag", len(tag), TagSize)
	mustLen("nonce", len(nonce), NonceSize)
	mustLen("key", len(key), KeySize)

	s := initState(
		block.FromBytes(key[:consts.LANE_SIZE]),
		block.FromBytes(key[consts.LANE_SIZE:]),
		block.FromBytes(nonce),
	)

	s.absorb(ad)

	i := 0
	for ; i+consts.MSG_BLOCK_SIZE <= len(plaintext); i += consts.MSG_BLOCK_SIZE {
		var blk [consts.MSG_BLOCK_SIZE]byte
		copy(blk[:], plaintext[i:i+consts.MSG_BLOCK_SIZE])
		out := s.encryptBlock(blk)
		copy(ciphertext[i:i+consts.MSG_BLOCK_SIZE], out[:])
	}

	if rem := len(plaintext) - i; rem > 0 {
		out := s.encryptLast(plaintext[i:])
		copy(ciphertext[i:], out)
	}

	t := s.finalize(uint64(len(ad)), uint64(len(plaintext)))
	copy(tag, t[:])
}

// Decrypt decrypts ciphertext with ad as associated data under key and
// nonce, and verifies it against tag. On success, len(ciphertext) bytes of
// plaintext are written to plaintext and nil is returned. On a tag
// mismatch, every byte of plaintext is overwritten with 0xAA and
// ErrAuthFailed is returned; the caller must not otherwise read plaintext.
// plaintext and ciphertext may fully overlap, for the same reason as in
// Encrypt.
//
// Tag comparison is constant-time (crypto/subtle.ConstantTimeCompare):
// verification time does not depend on which byte, if any, first differs.
func Decrypt(plaintext, ciphertext, tag, ad, nonce, key []byte) error {
	mustLen("plaintext", len(plaintext), len(ciphertext))
	mustLen("tag", len(tag), TagSize)
	mustLen("nonce", len(nonce), NonceSize)
	mustLen("key", len(key), KeySize)

	s := initState(
		block.FromBytes(key[:consts.LANE_SIZE]),
		block.FromBytes(key[consts.LANE_SIZE:]),
		block.FromBytes(nonce),
	)

	s.absorb(ad)

	i := 0
	for ; i+consts.MSG_BLOCK_SIZE <= len(ciphertext); i += consts.MSG_BLOCK_SIZE {
		var blk [consts.MSG_BLOCK_SIZE]byte
		copy(blk[:], ciphertext[i:i+consts.MSG_BLOCK_SIZE])
		out := s.decryptBlock(blk)
		copy(plaintext[i:i+consts.MSG_BLOCK_SIZE], out[:])
	}

	if rem := len(ciphertext) - i; rem > 0 {
		out := s.decryptLast(ciphertext[i:])
		copy(plaintext[i:], out)
	}

	computed := s.finalize(uint64(len(ad)), uint64(len(ciphertext)))

	if subtle.ConstantTimeCompare(computed[:], tag) != 1 {
		for i := range plaintext {
			plaintext[i] = 0xAA
		}
		return ErrAuthFailed
	}

	return nil
}

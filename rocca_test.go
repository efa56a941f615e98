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

package rocca

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	qt.Assert(t, qt.IsNil(err))
	return b
}

func zeros(n int) []byte {
	return make([]byte, n)
}

// TestVectors checks the literal ROCCA-256 vectors carried in spec.md §8.
func TestVectors(t *testing.T) {
	key := zeros(KeySize)
	nonce := zeros(NonceSize)

	t.Run("empty message, empty AD", func(t *testing.T) {
		tag := make([]byte, TagSize)
		Encrypt(nil, tag, nil, nil, nonce, key)

		want := mustHex(t, "2ee37e014157fa6a24c80f13996c77bb")
		if diff := cmp.Diff(want, tag); diff != "" {
			t.Fatalf("tag mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("64-byte zero message, 32-byte zero AD", func(t *testing.T) {
		plaintext := zeros(64)
		ad := zeros(32)
		ciphertext := make([]byte, len(plaintext))
		tag := make([]byte, TagSize)

		Encrypt(ciphertext, tag, plaintext, ad, nonce, key)

		wantTag := mustHex(t, "cc728c8baedd36f14cf8938e9e0719bf")
		if diff := cmp.Diff(wantTag, tag); diff != "" {
			t.Fatalf("tag mismatch (-want +got):\n%s", diff)
		}
		qt.Assert(t, qt.Equals(ciphertext[0], byte(0x15)))
	})

	t.Run("1000-byte message round-trips in place", func(t *testing.T) {
		buf := bytes.Repeat([]byte{0x41}, 1000)
		ad := []byte("associated data")
		tag := make([]byte, TagSize)

		Encrypt(buf, tag, buf, ad, nonce, key)

		err := Decrypt(buf, buf, tag, ad, nonce, key)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(buf[0], byte(0x41)))
	})
}

// TestRoundTrip covers spec.md §8's round-trip property across a range of
// message and AD lengths, including both sides of the 32- and 64-byte
// message boundaries and of the 32-byte AD boundary.
func TestRoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x11}, KeySize)
	nonce := bytes.Repeat([]byte{0x22}, NonceSize)

	for _, msgLen := range []int{0, 1, 15, 31, 32, 33, 63, 64, 65, 1000} {
		for _, adLen := range []int{0, 1, 15, 31, 32, 33, 100} {
			plaintext := bytes.Repeat([]byte{0x41}, msgLen)
			ad := bytes.Repeat([]byte{0x42}, adLen)

			ciphertext := make([]byte, msgLen)
			tag := make([]byte, TagSize)
			Encrypt(ciphertext, tag, plaintext, ad, nonce, key)

			qt.Assert(t, qt.Equals(len(ciphertext), msgLen))

			got := make([]byte, msgLen)
			err := Decrypt(got, ciphertext, tag, ad, nonce, key)
			qt.Assert(t, qt.IsNil(err))

			if diff := cmp.Diff(plaintext, got); diff != "" {
				t.Fatalf("msgLen=%d adLen=%d: plaintext mismatch (-want +got):\n%s", msgLen, adLen, diff)
			}
		}
	}
}

// TestPartialBlock33 is the literal partial-final-block vector from
// spec.md §8: one full block plus one trailing byte.
func TestPartialBlock33(t *testing.T) {
	key := bytes.Repeat([]byte{0x01}, KeySize)
	nonce := bytes.Repeat([]byte{0x02}, NonceSize)
	plaintext := bytes.Repeat([]byte{0x03}, 33)

	ciphertext := make([]byte, 33)
	tag := make([]byte, TagSize)
	Encrypt(ciphertext, tag, plaintext, nil, nonce, key)
	qt.Assert(t, qt.Equals(len(ciphertext), 33))

	got := make([]byte, 33)
	err := Decrypt(got, ciphertext, tag, nil, nonce, key)
	qt.Assert(t, qt.IsNil(err))

	if diff := cmp.Diff(plaintext, got); diff != "" {
		t.Fatalf("plaintext mismatch (-want +got):\n%s", diff)
	}
}

// TestLengthIndependence checks that identical (key, nonce, ad, m) inputs
// always yield identical tags across repeated calls, per spec.md §8.
func TestLengthIndependence(t *testing.T) {
	key := bytes.Repeat([]byte{0x09}, KeySize)
	nonce := bytes.Repeat([]byte{0x0a}, NonceSize)
	plaintext := bytes.Repeat([]byte{0x0b}, 97)
	ad := bytes.Repeat([]byte{0x0c}, 41)

	var tag1, tag2 [TagSize]byte
	ciphertext := make([]byte, len(plaintext))

	Encrypt(ciphertext, tag1[:], plaintext, ad, nonce, key)
	Encrypt(ciphertext, tag2[:], plaintext, ad, nonce, key)

	qt.Assert(t, qt.Equals(tag1, tag2))
}

// TestTagBitFlipDetection covers spec.md §8's bit-flip property: flipping
// the low bit of the first byte of the tag, ciphertext, AD, nonce, or key
// must cause Decrypt to fail.
func TestTagBitFlipDetection(t *testing.T) {
	key := bytes.Repeat([]byte{0x05}, KeySize)
	nonce := bytes.Repeat([]byte{0x06}, NonceSize)
	plaintext := bytes.Repeat([]byte{0x07}, 50)
	ad := []byte("header")

	ciphertext := make([]byte, len(plaintext))
	tag := make([]byte, TagSize)
	Encrypt(ciphertext, tag, plaintext, ad, nonce, key)

	decryptsOK := func(ct, tg, a, n, k []byte) bool {
		out := make([]byte, len(ct))
		return Decrypt(out, ct, tg, a, n, k) == nil
	}

	qt.Assert(t, qt.IsTrue(decryptsOK(ciphertext, tag, ad, nonce, key)))

	cases := map[string]func() ([]byte, []byte, []byte, []byte, []byte){
		"tag": func() ([]byte, []byte, []byte, []byte, []byte) {
			tg := append([]byte(nil), tag...)
			tg[0] ^= 0x01
			return ciphertext, tg, ad, nonce, key
		},
		"ciphertext": func() ([]byte, []byte, []byte, []byte, []byte) {
			ct := append([]byte(nil), ciphertext...)
			ct[0] ^= 0x01
			return ct, tag, ad, nonce, key
		},
		"ad": func() ([]byte, []byte, []byte, []byte, []byte) {
			a := append([]byte(nil), ad...)
			a[0] ^= 0x01
			return ciphertext, tag, a, nonce, key
		},
		"nonce": func() ([]byte, []byte, []byte, []byte, []byte) {
			n := append([]byte(nil), nonce...)
			n[0] ^= 0x01
			return ciphertext, tag, ad, n, key
		},
		"key": func() ([]byte, []byte, []byte, []byte, []byte) {
			k := append([]byte(nil), key...)
			k[0] ^= 0x01
			return ciphertext, tag, ad, nonce, k
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			ct, tg, a, n, k := mutate()
			qt.Assert(t, qt.IsFalse(decryptsOK(ct, tg, a, n, k)))
		})
	}
}

// TestZeroizationOnAuthFailure checks spec.md §8's zeroization property:
// on auth failure every byte of the destination plaintext buffer is 0xAA.
func TestZeroizationOnAuthFailure(t *testing.T) {
	key := bytes.Repeat([]byte{0x0d}, KeySize)
	nonce := bytes.Repeat([]byte{0x0e}, NonceSize)
	plaintext := bytes.Repeat([]byte{0x0f}, 70)

	ciphertext := make([]byte, len(plaintext))
	tag := make([]byte, TagSize)
	Encrypt(ciphertext, tag, plaintext, nil, nonce, key)

	tag[0] ^= 0xFF

	out := bytes.Repeat([]byte{0x00}, len(plaintext))
	err := Decrypt(out, ciphertext, tag, nil, nonce, key)
	qt.Assert(t, qt.IsTrue(errors.Is(err, ErrAuthFailed)))

	want := bytes.Repeat([]byte{0xAA}, len(plaintext))
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("plaintext not fully zeroized (-want +got):\n%s", diff)
	}
}

// TestEmptyADAndEmptyMessageAccepted checks spec.md §8: both empty-AD and
// empty-message calls are accepted and still produce a verifiable tag.
func TestEmptyADAndEmptyMessageAccepted(t *testing.T) {
	key := bytes.Repeat([]byte{0x03}, KeySize)
	nonce := bytes.Repeat([]byte{0x04}, NonceSize)

	t.Run("empty AD, non-empty message", func(t *testing.T) {
		plaintext := []byte("hello, rocca")
		ciphertext := make([]byte, len(plaintext))
		tag := make([]byte, TagSize)
		Encrypt(ciphertext, tag, plaintext, nil, nonce, key)

		got := make([]byte, len(plaintext))
		err := Decrypt(got, ciphertext, tag, nil, nonce, key)
		qt.Assert(t, qt.IsNil(err))
		if diff := cmp.Diff(plaintext, got); diff != "" {
			t.Fatalf("plaintext mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty message, non-empty AD", func(t *testing.T) {
		tag := make([]byte, TagSize)
		ad := []byte("context")
		Encrypt(nil, tag, nil, ad, nonce, key)

		err := Decrypt(nil, nil, tag, ad, nonce, key)
		qt.Assert(t, qt.IsNil(err))
	})
}

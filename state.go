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
	"encoding/binary"

	"github.com/wedkarz02/rocca-go/src/aesround"
	"github.com/wedkarz02/rocca-go/src/block"
	"github.com/wedkarz02/rocca-go/src/consts"
	"github.com/wedkarz02/rocca-go/src/padding"
)

// state is the 8-lane ROCCA-256 register file. It is a plain value owned by
// a single Encrypt/Decrypt call frame; nothing retains a reference to it
// past that call, matching spec.md §5's "shares nothing mutable" model.
type state [consts.STATE_LANES]block.Block

// z0 and z1 are the first two 128-bit chunks of the SHA-256 round
// constants, written as little-endian 16-byte strings before being loaded
// as AES blocks (spec.md §3, §9). Getting this byte order wrong silently
// produces a different, incompatible cipher that still appears to
// round-trip, so the encoding is pinned here as package-level values
// instead of being re-derived per call.
var (
	// 0x428a2f98d728ae227137449123ef65cd, little-endian.
	z0 = block.Block{
		0xcd, 0x65, 0xef, 0x23, 0x91, 0x44, 0x37, 0x71,
		0x22, 0xae, 0x28, 0xd7, 0x98, 0x2f, 0x8a, 0x42,
	}

	// 0xb5c0fbcfec4d3b2fe9b5dba58189dbbc, little-endian.
	z1 = block.Block{
		0xbc, 0xdb, 0x89, 0x81, 0xa5, 0xdb, 0xb5, 0xe9,
		0x2f, 0x3b, 0x4d, 0xec, 0xcf, 0xfb, 0xc0, 0xb5,
	}
)

// encodeLenBits encodes a byte length as bits, little-endian, in a Block.
func encodeLenBits(nBytes uint64) block.Block {
	var b block.Block
	binary.LittleEndian.PutUint64(b[:8], nBytes*8)
	return b
}

// initState implements spec.md §4.2 "init": S := (K1, N, Z0, Z1, N^K1,
// ZERO, K0, ZERO), then 20 rounds of update(S, Z0, Z1). k0 and k1 are the
// first and last 16 bytes of the 32-byte key, respectively.
func initState(k0, k1, nonce block.Block) state {
	var zero block.Block

	s := state{
		k1,            // S0 = K1
		nonce,         // S1 = N
		z0,            // S2 = Z0
		z1,            // S3 = Z1
		nonce.Xor(k1), // S4 = N ^ K1
		zero,          // S5 = ZERO
		k0,            // S6 = K0
		zero,          // S7 = ZERO
	}

	for i := 0; i < consts.INIT_ROUNDS; i++ {
		s.update(z0, z1)
	}

	return s
}

// update is spec.md §4.2 "update": every lane of the new state is computed
// from the old state before any lane is overwritten. This is the one place
// the teacher's style of sequential, in-place mutation (chaining
// `cipherText, err = a.subBytes(cipherText)` in AES256.EncryptBlock) cannot
// be imitated literally: doing so here would read already-updated lanes
// and silently compute the wrong permutation. A temporary array is
// populated first and then assigned back in one shot.
func (s *state) update(x0, x1 block.Block) {
	next := state{
		s[7].Xor(x0),               // S'0 = S7 ^ X0
		aesround.Round(s[0], s[7]), // S'1 = aes_round(S0, S7)
		s[1].Xor(s[6]),             // S'2 = S1 ^ S6
		aesround.Round(s[2], s[1]), // S'3 = aes_round(S2, S1)
		s[3].Xor(x1),               // S'4 = S3 ^ X1
		aesround.Round(s[4], s[3]), // S'5 = aes_round(S4, S3)
		aesround.Round(s[5], s[4]), // S'6 = aes_round(S5, S4)
		s[0].Xor(s[6]),             // S'7 = S0 ^ S6
	}

	*s = next
}

// keystreamBlocks computes the two key-stream blocks shared by
// encryptBlock and decryptBlock: aes_round(S1, S5) and
// aes_round(S0^S4, S2).
func (s *state) keystreamBlocks() (block.Block, block.Block) {
	c0 := aesround.Round(s[1], s[5])
	c1 := aesround.Round(s[0].Xor(s[4]), s[2])
	return c0, c1
}

// encryptBlock implements spec.md §4.2 "encrypt_block" for one full
// 32-byte plaintext block.
func (s *state) encryptBlock(plaintext [consts.MSG_BLOCK_SIZE]byte) [consts.MSG_BLOCK_SIZE]byte {
	m0 := block.FromBytes(plaintext[:consts.LANE_SIZE])
	m1 := block.FromBytes(plaintext[consts.LANE_SIZE:])

	ks0, ks1 := s.keystreamBlocks()
	c0 := ks0.Xor(m0)
	c1 := ks1.Xor(m1)

	s.update(m0, m1)

	var ciphertext [consts.MSG_BLOCK_SIZE]byte
	copy(ciphertext[:consts.LANE_SIZE], c0[:])
	copy(ciphertext[consts.LANE_SIZE:], c1[:])
	return ciphertext
}

// decryptBlock implements spec.md §4.2 "decrypt_block" for one full
// 32-byte ciphertext block. update absorbs the recovered plaintext blocks
// (M0, M1), never the ciphertext — the same semantics as encryptBlock.
func (s *state) decryptBlock(ciphertext [consts.MSG_BLOCK_SIZE]byte) [consts.MSG_BLOCK_SIZE]byte {
	c0 := block.FromBytes(ciphertext[:consts.LANE_SIZE])
	c1 := block.FromBytes(ciphertext[consts.LANE_SIZE:])

	ks0, ks1 := s.keystreamBlocks()
	m0 := ks0.Xor(c0)
	m1 := ks1.Xor(c1)

	s.update(m0, m1)

	var plaintext [consts.MSG_BLOCK_SIZE]byte
	copy(plaintext[:consts.LANE_SIZE], m0[:])
	copy(plaintext[consts.LANE_SIZE:], m1[:])
	return plaintext
}

// decryptLast implements spec.md §4.2 "decrypt_last" for a partial final
// ciphertext block of 0 < l < MSG_BLOCK_SIZE bytes: decrypt a zero-padded
// canonical block, emit only the first l recovered bytes, but feed update
// the *zero-extended* recovered plaintext rather than the padded
// ciphertext, so the MAC is computed over a canonical block while only l
// plaintext bytes are ever returned to the caller.
func (s *state) decryptLast(ciphertext []byte) []byte {
	l := len(ciphertext)
	padded := padding.ZeroBlock(ciphertext)

	c0 := block.FromBytes(padded[:consts.LANE_SIZE])
	c1 := block.FromBytes(padded[consts.LANE_SIZE:])

	ks0, ks1 := s.keystreamBlocks()
	m0 := ks0.Xor(c0)
	m1 := ks1.Xor(c1)

	var full [consts.MSG_BLOCK_SIZE]byte
	copy(full[:consts.LANE_SIZE], m0[:])
	copy(full[consts.LANE_SIZE:], m1[:])

	out := make([]byte, l)
	copy(out, full[:l])

	// Zero the tail of the recovered plaintext before feeding it to
	// update, per spec.md §4.2: the canonical MAC input is the l real
	// plaintext bytes followed by zeros, never the padded ciphertext.
	for i := l; i < consts.MSG_BLOCK_SIZE; i++ {
		full[i] = 0
	}

	s.update(block.FromBytes(full[:consts.LANE_SIZE]), block.FromBytes(full[consts.LANE_SIZE:]))

	return out
}

// encryptLast implements the symmetric partial final plaintext block:
// zero-extend the plaintext to a canonical block, encrypt it, and emit
// only the first l ciphertext bytes.
func (s *state) encryptLast(plaintext []byte) []byte {
	l := len(plaintext)
	padded := padding.ZeroBlock(plaintext)

	full := s.encryptBlock(padded)

	out := make([]byte, l)
	copy(out, full[:l])
	return out
}

// absorb implements spec.md §4.2 associated-data absorption: run
// encryptBlock over every full block of ad and discard its ciphertext
// output, then absorb a zero-padded trailing partial block the same way.
// If ad is empty, no absorption step runs. encryptBlock is called purely
// for its effect on the state; its ciphertext return value is ignored.
func (s *state) absorb(ad []byte) {
	i := 0
	for ; i+consts.MSG_BLOCK_SIZE <= len(ad); i += consts.MSG_BLOCK_SIZE {
		var blk [consts.MSG_BLOCK_SIZE]byte
		copy(blk[:], ad[i:i+consts.MSG_BLOCK_SIZE])
		s.encryptBlock(blk)
	}

	if rem := len(ad) - i; rem > 0 {
		s.encryptBlock(padding.ZeroBlock(ad[i:]))
	}
}

// finalize implements spec.md §4.2 "finalize": 20 rounds of update keyed by
// the little-endian bit lengths of the AD and message, then the XOR of all
// eight lanes serialized to 16 bytes.
func (s *state) finalize(adLenBytes, msgLenBytes uint64) [consts.TAG_SIZE]byte {
	lad := encodeLenBits(adLenBytes)
	lm := encodeLenBits(msgLenBytes)

	for i := 0; i < consts.FINALIZE_ROUNDS; i++ {
		s.update(lad, lm)
	}

	tag := s[0]
	for i := 1; i < consts.STATE_LANES; i++ {
		tag = tag.Xor(s[i])
	}

	var out [consts.TAG_SIZE]byte
	copy(out[:], tag[:])
	return out
}

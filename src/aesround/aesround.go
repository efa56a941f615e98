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

// Package aesround implements the single-AES-round primitive ROCCA-256 is
// built on: SubBytes -> ShiftRows -> MixColumns -> AddRoundKey(K), matching
// the AESENC hardware instruction on x86 (and the fused AESE+AESMC pair on
// ARMv8). It is adapted directly from the inner-round body of the teacher's
// AES256.EncryptBlock (aes256.go in wedkarz02/aes256go), which already
// computes exactly this pipeline once per round; the only structural change
// is that Round takes its XOR key as a direct 128-bit argument rather than
// indexing into an AES-256 key schedule, since ROCCA keys every round
// directly from state lanes and never expands a key schedule at all.
// This pure-Go implementation is used on every platform; there is no
// hardware-accelerated path. Its results are those of the AESENC
// instruction, only slower.
package aesround

import (
	"github.com/wedkarz02/rocca-go/src/block"
	"github.com/wedkarz02/rocca-go/src/galois"
	"github.com/wedkarz02/rocca-go/src/sbox"
)

func subBytes(state block.Block) block.Block {
	sb := sbox.Get()

	var out block.Block
	for i, b := range state {
		out[i] = sb[b]
	}

	return out
}

func shiftRows(state block.Block) block.Block {
	var shifted block.Block
	copy(shifted[:], state[:])

	for i := 1; i < 4; i++ {
		j := i

		shifted[i+(4*0)] = state[i+4*((j+0)%4)]
		shifted[i+(4*1)] = state[i+4*((j+1)%4)]
		shifted[i+(4*2)] = state[i+4*((j+2)%4)]
		shifted[i+(4*3)] = state[i+4*((j+3)%4)]
	}

	return shifted
}

func mixColumns(state block.Block) block.Block {
	var mixed block.Block
	copy(mixed[:], state[:])

	for i := 0; i < 4; i++ {
		mixed[4*i+0] = galois.Gmul(0x02, state[4*i+0]) ^ galois.Gmul(0x03, state[4*i+1]) ^ state[4*i+2] ^ state[4*i+3]
		mixed[4*i+1] = state[4*i+0] ^ galois.Gmul(0x02, state[4*i+1]) ^ galois.Gmul(0x03, state[4*i+2]) ^ state[4*i+3]
		mixed[4*i+2] = state[4*i+0] ^ state[4*i+1] ^ galois.Gmul(0x02, state[4*i+2]) ^ galois.Gmul(0x03, state[4*i+3])
		mixed[4*i+3] = galois.Gmul(0x03, state[4*i+0]) ^ state[4*i+1] ^ state[4*i+2] ^ galois.Gmul(0x02, state[4*i+3])
	}

	return mixed
}

func addRoundKey(state block.Block, key block.Block) block.Block {
	var out block.Block
	for i, b := range state {
		out[i] = galois.Gadd(b, key[i])
	}
	return out
}

// Round applies one AES round to b with round key k, in AES-NI's AESENC
// order: SubBytes, then ShiftRows, then MixColumns, then AddRoundKey(k).
func Round(b block.Block, k block.Block) block.Block {
	out := subBytes(b)
	out = shiftRows(out)
	out = mixColumns(out)
	out = addRoundKey(out, k)
	return out
}

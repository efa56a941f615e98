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

// Package block defines the 128-bit AES block / ROCCA state lane value type
// and the handful of operations §4.1 of the spec requires of it: byte
// conversion and XOR. The teacher already prefers fixed-size byte arrays for
// cipher-sized quantities (key.ExpandedKey, counter.Counter.Bytes in
// wedkarz02/aes256go); Block generalizes that idiom to a single 16-byte AES
// lane so the compiler enforces lane size instead of the teacher's runtime
// `len(state) != consts.BLOCK_SIZE` checks.
package block

import "github.com/wedkarz02/rocca-go/src/consts"

// Block is an opaque 128-bit value, used both as 16 raw bytes and as an
// AES-128 round input/output.
type Block [consts.LANE_SIZE]byte

// FromBytes reinterprets exactly LANE_SIZE bytes as a Block.
func FromBytes(b []byte) Block {
	var blk Block
	copy(blk[:], b)
	return blk
}

// ToBytes returns the identity byte mapping of b.
func (b Block) ToBytes() []byte {
	out := make([]byte, consts.LANE_SIZE)
	copy(out, b[:])
	return out
}

// Xor returns the bitwise XOR of b and other.
func (b Block) Xor(other Block) Block {
	var out Block
	for i := range out {
		out[i] = b[i] ^ other[i]
	}
	return out
}

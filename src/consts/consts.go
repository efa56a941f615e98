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

// Package consts defines constant values used by the ROCCA-256 AEAD
// implementation.
package consts

const (
	// Size of a single AES block / ROCCA state lane.
	LANE_SIZE = 16

	// Size of a ROCCA message/AD block (two lanes).
	MSG_BLOCK_SIZE = 2 * LANE_SIZE

	// Number of lanes in the ROCCA state.
	STATE_LANES = 8

	// Size of the ROCCA key.
	KEY_SIZE = 32

	// Size of the ROCCA nonce.
	NONCE_SIZE = 16

	// Size of the ROCCA authentication tag.
	TAG_SIZE = 16

	// Number of state updates applied during init and finalize.
	INIT_ROUNDS     = 20
	FINALIZE_ROUNDS = 20
)

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

// Package padding implements the zero-padding discipline ROCCA-256 uses for
// a partial trailing associated-data or message block, generalized from the
// teacher's whole-buffer ZeroPadding (src/padding/padding.go in
// wedkarz02/aes256go) down to a single fixed-size canonical block.
package padding

import "github.com/wedkarz02/rocca-go/src/consts"

// ZeroBlock right-pads data (len(data) <= MSG_BLOCK_SIZE) with zero bytes up
// to exactly one MSG_BLOCK_SIZE block. Unlike the teacher's ZeroPadding,
// which pads a whole message up to the next multiple of the block size,
// this always produces exactly one canonical block, matching spec.md's
// "form a 32-byte buffer with the trailing bytes followed by zeros"
// discipline for the final partial AD/message block. PKCS7 padding has no
// role in ROCCA and is dropped along with its unpadding counterpart.
func ZeroBlock(data []byte) [consts.MSG_BLOCK_SIZE]byte {
	var block [consts.MSG_BLOCK_SIZE]byte
	copy(block[:], data)
	return block
}

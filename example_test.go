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

package rocca_test

import (
	"bytes"
	"fmt"

	"github.com/wedkarz02/rocca-go"
)

// This example shows the expected calling convention: caller-owned buffers,
// a separate tag output, and explicit handling of the one domain error.
func Example() {
	key := bytes.Repeat([]byte{0x42}, rocca.KeySize)
	nonce := bytes.Repeat([]byte{0x24}, rocca.NonceSize)
	ad := []byte("packet-header")
	plaintext := []byte("the quick brown fox")

	ciphertext := make([]byte, len(plaintext))
	tag := make([]byte, rocca.TagSize)
	rocca.Encrypt(ciphertext, tag, plaintext, ad, nonce, key)

	recovered := make([]byte, len(ciphertext))
	if err := rocca.Decrypt(recovered, ciphertext, tag, ad, nonce, key); err != nil {
		fmt.Println("authentication failed")
		return
	}

	fmt.Println(string(recovered))
	// Output: the quick brown fox
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds reusable HMAC-SHA256 instances keyed with the request
// signing key. Must be initialized via InitHasherPool before Hash is called.
var hasherPool sync.Pool

// InitHasherPool configures the pool used by [Hash] with hashKey.
//
// The HashSHA256 middleware on the server and the resty adapter on the
// client both sign request bodies with the same key.
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash returns the HMAC-SHA256 digest of data using a pooled hasher.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashHex is Hash encoded as lowercase hex, the form carried in the
// HashSHA256 header.
func HashHex(data []byte) string {
	return hex.EncodeToString(Hash(data))
}

// HashString signs data with a one-off HMAC keyed with hashKey and returns
// the hex digest. It does not touch the pool.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}

// EqualHex compares two hex digests in constant time.
func EqualHex(a, b string) bool {
	left, err := hex.DecodeString(a)
	if err != nil {
		return false
	}
	right, err := hex.DecodeString(b)
	if err != nil {
		return false
	}
	return hmac.Equal(left, right)
}

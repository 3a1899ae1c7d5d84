// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"testing"

	"github.com/MKhiriev/summarium/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "test-secret-key"

func referenceHMAC(data []byte, key string) []byte {
	h := hmac.New(sha256.New, []byte(key))
	h.Write(data)
	return h.Sum(nil)
}

func TestHash_MatchesDirectHMAC(t *testing.T) {
	InitHasherPool(testHashKey)

	data := []byte("test-data")

	assert.Equal(t, referenceHMAC(data, testHashKey), Hash(data))
	assert.Equal(t, Hash(data), Hash(data), "hash must be deterministic")
}

func TestHash_NoteRequestBody(t *testing.T) {
	InitHasherPool(testHashKey)

	body, err := json.Marshal(models.SaveNoteRequest{
		Title:   "Groceries",
		Content: "<p>milk</p><p>bread</p>",
	})
	require.NoError(t, err)

	got := HashHex(body)

	assert.Equal(t, hex.EncodeToString(referenceHMAC(body, testHashKey)), got)
	assert.Equal(t, HashString(string(body), testHashKey), got)
}

func TestHash_DifferentPayloadsDiffer(t *testing.T) {
	InitHasherPool(testHashKey)

	assert.NotEqual(t, Hash([]byte(`{"title":"a"}`)), Hash([]byte(`{"title":"b"}`)))
}

func TestHash_ConcurrentUse(t *testing.T) {
	InitHasherPool(testHashKey)

	data := []byte("concurrent")
	want := referenceHMAC(data, testHashKey)

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, Hash(data))
		}()
	}
	wg.Wait()
}

func TestHashString_KeyMatters(t *testing.T) {
	assert.NotEqual(t, HashString("data", "k1"), HashString("data", "k2"))
	assert.Len(t, HashString("data", "k1"), sha256.Size*2)
}

func TestEqualHex(t *testing.T) {
	a := HashString("data", testHashKey)

	assert.True(t, EqualHex(a, a))
	assert.False(t, EqualHex(a, HashString("other", testHashKey)))
	assert.False(t, EqualHex(a, "zz"))
	assert.False(t, EqualHex("", a))
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kali-linux-uz/academy_api/shared"
)

func TestKVGetMissingKeyReturnsDefault(t *testing.T) {
	kv := newTestKV()

	assert.Equal(t, 42, KVGet(kv, "missing_int", 42))
	assert.Equal(t, "fallback", KVGet(kv, "missing_string", "fallback"))
	assert.Equal(t, []string{}, KVGet(kv, "missing_slice", []string{}))
}

func TestKVSetRoundTrip(t *testing.T) {
	kv := newTestKV()

	type payload struct {
		Name  string   `json:"name"`
		Count int      `json:"count"`
		Tags  []string `json:"tags"`
	}

	in := payload{Name: "recon", Count: 3, Tags: []string{"nmap", "scan"}}
	KVSet(kv, "payload", in)

	out := KVGet(kv, "payload", payload{})
	assert.Equal(t, in, out)
}

func TestKVGetCorruptValueReturnsDefault(t *testing.T) {
	kv := newTestKV()

	err := kv.backend.store(shared.StoragePrefix+"corrupt", []byte("{not json"))
	require.NoError(t, err)

	assert.Equal(t, 7, KVGet(kv, "corrupt", 7))
}

func TestKVKeysAreNamespaced(t *testing.T) {
	kv := newTestKV()

	KVSet(kv, "some_key", "value")

	_, ok, err := kv.backend.load(shared.StoragePrefix + "some_key")
	require.NoError(t, err)
	assert.True(t, ok)

	_, ok, err = kv.backend.load("some_key")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVRemove(t *testing.T) {
	kv := newTestKV()

	KVSet(kv, "ephemeral", 1)
	kv.Remove("ephemeral")

	assert.Equal(t, 0, KVGet(kv, "ephemeral", 0))
}

func TestKVClearOnlyRemovesNamespacedKeys(t *testing.T) {
	kv := newTestKV()

	KVSet(kv, "mine_a", 1)
	KVSet(kv, "mine_b", 2)
	require.NoError(t, kv.backend.store("foreign_key", []byte(`"untouched"`)))

	kv.Clear()

	assert.Equal(t, 0, KVGet(kv, "mine_a", 0))
	assert.Equal(t, 0, KVGet(kv, "mine_b", 0))

	raw, ok, err := kv.backend.load("foreign_key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"untouched"`, string(raw))
}

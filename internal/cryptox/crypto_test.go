package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentChecksum_KnownVector(t *testing.T) {
	// sha256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	assert.Equal(t, want, ContentChecksum([]byte("abc")))
}

func TestContentChecksum_EmptyInput(t *testing.T) {
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	assert.Equal(t, want, ContentChecksum(nil))
}

func TestDigestToken_DeterministicPerSalt(t *testing.T) {
	token := []byte("token-material")
	a := DigestToken(token, []byte("salt-1"))
	b := DigestToken(token, []byte("salt-1"))
	c := DigestToken(token, []byte("salt-2"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 32)
}

func TestChecksumsEqual(t *testing.T) {
	assert.True(t, ChecksumsEqual("abcd", "abcd"))
	assert.False(t, ChecksumsEqual("abcd", "abce"))
	assert.False(t, ChecksumsEqual("abcd", "abcd00"))
}

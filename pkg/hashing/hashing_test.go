package hashing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskPassword_Deterministic(t *testing.T) {
	first := MaskPassword("FAKEPASSWORD1234")
	second := MaskPassword("FAKEPASSWORD1234")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, MaskPassword("FAKEPASSWORD4578"))
}

func TestMaskPassword_NeverContainsPlaintext(t *testing.T) {
	plain := "SuperSecret42"
	masked := MaskPassword(plain)

	assert.NotContains(t, masked, plain)
	assert.NotEqual(t, plain, masked)
}

func TestMaskPassword_EmptyInput(t *testing.T) {
	masked := MaskPassword("")

	// base64 of a full SHA-256 digest is always 44 characters
	assert.Len(t, masked, 44)
}

func TestShortMask(t *testing.T) {
	short := ShortMask("FAKEPASSWORD1234")

	assert.Len(t, short, 13)
	assert.True(t, strings.HasSuffix(short, "..."))
	assert.Equal(t, MaskPassword("FAKEPASSWORD1234")[:10], short[:10])
}

func TestSum_Empty(t *testing.T) {
	assert.Len(t, Sum(nil), 32)
	assert.Equal(t, Sum(nil), Sum([]byte{}))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase64Image(t *testing.T) {
	ext, raw, err := DecodeBase64Image("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)

	assert.Equal(t, "png", ext)
	assert.Equal(t, []byte("hello"), raw)
}

func TestDecodeBase64Image_Invalid(t *testing.T) {
	_, _, err := DecodeBase64Image("plain string")
	assert.Error(t, err)

	_, _, err = DecodeBase64Image("data:text/plain;base64,aGVsbG8=")
	assert.Error(t, err)

	_, _, err = DecodeBase64Image("data:image/png;base64,!!!")
	assert.Error(t, err)
}

package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderRoundTrip(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add("user/cog_fun.rst", []byte("fun docs")))
	require.NoError(t, b.Add("index.rst", []byte("index body")))

	data, err := b.Bytes()
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)

	assert.Equal(t, "user/cog_fun.rst", zr.File[0].Name)
	assert.Equal(t, "index.rst", zr.File[1].Name)

	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "fun docs", string(body))
}

func TestBuilderCompresses(t *testing.T) {
	payload := []byte(strings.Repeat("the same line over and over\n", 500))

	b := NewBuilder()
	require.NoError(t, b.Add("big.rst", payload))
	data, err := b.Bytes()
	require.NoError(t, err)

	assert.Less(t, len(data), len(payload))
}

func TestBuilderEmpty(t *testing.T) {
	data, err := NewBuilder().Bytes()
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Empty(t, zr.File)
}

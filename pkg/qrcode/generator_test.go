package qrcode_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/servicemail/pkg/mailto"
	"github.com/dmitrymomot/servicemail/pkg/qrcode"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	t.Run("rejects blank content", func(t *testing.T) {
		t.Parallel()
		for _, content := range []string{"", "  \t\n"} {
			out, err := qrcode.Encode(content)
			assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
			assert.Nil(t, out)
		}
	})

	t.Run("default size", func(t *testing.T) {
		t.Parallel()
		out, err := qrcode.Encode("mailto:cust@ex.com")
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, qrcode.DefaultSize, img.Bounds().Dx())
		assert.Equal(t, qrcode.DefaultSize, img.Bounds().Dy())
	})

	t.Run("custom size and recovery", func(t *testing.T) {
		t.Parallel()
		out, err := qrcode.Encode("mailto:cust@ex.com", qrcode.WithSize(320), qrcode.WithRecovery(qrcode.RecoveryHigh))
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 320, img.Bounds().Dx())
	})

	t.Run("full composed message fits", func(t *testing.T) {
		t.Parallel()
		body := strings.Repeat("Thank you for allowing Geek Squad to serve you! ", 8)
		uri := mailto.Build("cust@ex.com", "BBY-DL-STORE-000630-SHIFTLEADERS@bestbuy.com;BBY-DL-STORE-000630-PRECINCT@bestbuy.com", "Geek Squad Unit Return - Order #0630-250814-56874", body)

		_, err := qrcode.Encode(uri)
		assert.NoError(t, err)
	})

	t.Run("oversized content fails", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.Encode(strings.Repeat("x", 8000))
		assert.ErrorIs(t, err, qrcode.ErrFailedToGenerate)
	})
}

func TestDataURI(t *testing.T) {
	t.Parallel()

	uri, err := qrcode.DataURI("mailto:cust@ex.com")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(raw))
	assert.NoError(t, err)

	_, err = qrcode.DataURI("")
	assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "order.png")
	require.NoError(t, qrcode.WriteFile(path, "mailto:cust@ex.com"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)

	err = qrcode.WriteFile(filepath.Join(t.TempDir(), "missing", "order.png"), "mailto:cust@ex.com")
	assert.ErrorIs(t, err, qrcode.ErrFailedToWrite)
}

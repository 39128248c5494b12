package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRServiceValidatesBaseURL(t *testing.T) {
	t.Setenv("QR_BASE_URL", "")

	_, err := NewQRService("")
	assert.Error(t, err)

	_, err = NewQRService("not a url")
	assert.Error(t, err)

	svc, err := NewQRService("https://savoria.restaurant/")
	require.NoError(t, err)
	assert.Equal(t, "https://savoria.restaurant/menu/garden", svc.MenuURL("garden", nil))
}

func TestMenuURLWithTableNumber(t *testing.T) {
	svc, err := NewQRService("https://savoria.restaurant")
	require.NoError(t, err)

	table := 12
	assert.Equal(t, "https://savoria.restaurant/menu/harbourfront?table=12", svc.MenuURL("harbourfront", &table))
	assert.Equal(t, "https://savoria.restaurant/menu/harbourfront", svc.MenuURL("harbourfront", nil))
}

func TestGeneratePNG(t *testing.T) {
	svc, err := NewQRService("https://savoria.restaurant")
	require.NoError(t, err)

	png, err := svc.GeneratePNG(svc.MenuURL("garden", nil), 256)
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic bytes
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))

	// Zero size falls back to the default
	png, err = svc.GeneratePNG("https://savoria.restaurant/menu/garden", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	_, err = svc.GeneratePNG("", 256)
	assert.Error(t, err)
}

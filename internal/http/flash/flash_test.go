package flash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopzone.com/app/pkg/view"
)

func TestCodec_RoundTrip(t *testing.T) {
	c := NewCodec([]byte("test-secret"), "shopzone_flash", false)

	v, err := c.Encode(view.Flash{Kind: view.FlashSuccess, Message: "Essence Mascara added to your cart"})
	require.NoError(t, err)

	f, err := c.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, view.FlashSuccess, f.Kind)
	assert.Equal(t, "Essence Mascara added to your cart", f.Message)
}

func TestCodec_RejectsForgedCookie(t *testing.T) {
	a := NewCodec([]byte("secret-a"), "shopzone_flash", false)
	b := NewCodec([]byte("secret-b"), "shopzone_flash", false)

	v, err := a.Encode(view.Flash{Kind: view.FlashInfo, Message: "hello"})
	require.NoError(t, err)

	_, err = b.Decode(v)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCodec_RejectsEmptyMessage(t *testing.T) {
	c := NewCodec([]byte("test-secret"), "shopzone_flash", false)

	v, err := c.Encode(view.Flash{Kind: view.FlashInfo, Message: "   "})
	require.NoError(t, err)

	_, err = c.Decode(v)
	assert.ErrorIs(t, err, ErrInvalid)
}

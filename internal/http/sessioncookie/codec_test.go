package sessioncookie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	c := New([]byte("test-secret"), "shopzone_session", false)

	v := c.Encode("abc-123")
	id, err := c.Decode(v)

	require.NoError(t, err)
	assert.Equal(t, "abc-123", id)
}

func TestCodec_RejectsTamperedValue(t *testing.T) {
	c := New([]byte("test-secret"), "shopzone_session", false)

	v := c.Encode("abc-123")
	_, err := c.Decode("zzz-999" + v[len("abc-123"):])

	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCodec_RejectsWrongSecret(t *testing.T) {
	a := New([]byte("secret-a"), "shopzone_session", false)
	b := New([]byte("secret-b"), "shopzone_session", false)

	_, err := b.Decode(a.Encode("abc-123"))

	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCodec_RejectsMalformedValue(t *testing.T) {
	c := New([]byte("test-secret"), "shopzone_session", false)

	for _, v := range []string{"", "no-dot", ".sig-only", "a.b.c"} {
		_, err := c.Decode(v)
		assert.ErrorIs(t, err, ErrInvalid, "value %q", v)
	}
}

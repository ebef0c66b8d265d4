package rawhdr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameFrom(t *testing.T) {
	n, err := NameFrom("X-Request-ID")
	require.NoError(t, err)
	assert.Equal(t, "X-Request-ID", n.String())

	n, err = NameFrom("content-type")
	require.NoError(t, err)
	assert.Equal(t, "content-type", n.String())
}

func TestNameFromEmpty(t *testing.T) {
	_, err := NameFrom("")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestNameFromInvalidByte(t *testing.T) {
	for _, s := range []string{"x foo", "x:foo", "x\nfoo", "naïve", "💩"} {
		_, err := NameFrom(s)
		require.Error(t, err, "%q should not be a valid name", s)
		var ib *InvalidByteError
		require.ErrorAs(t, err, &ib)
	}

	_, err := NameFrom("ok-until<")
	require.Error(t, err)
	var ib *InvalidByteError
	require.ErrorAs(t, err, &ib)
	assert.Equal(t, byte('<'), ib.Byte)
	assert.Equal(t, 8, ib.Offset)
}

func TestNameEqualFoldsASCII(t *testing.T) {
	a, err := NameFrom("X-Foo")
	require.NoError(t, err)
	b, err := NameFrom("x-fOO")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	c, err := NameFrom("x-bar")
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestStaticName(t *testing.T) {
	assert.NotPanics(t, func() { StaticName("x-foo") })
	assert.Panics(t, func() { StaticName("x foo") })
	assert.Panics(t, func() { StaticName("") })
}

func TestInvalidByteErrorMessage(t *testing.T) {
	err := error(&InvalidByteError{Byte: '\n', Offset: 3})
	assert.Equal(t, `invalid byte '\n' at offset 3`, err.Error())
	assert.False(t, errors.Is(err, ErrEmptyName))
}

package params

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Run("default value is returned by Get", func(t *testing.T) {
		s := New()
		require.NoError(t, s.Register("port", "8080"))

		v, err := s.Get("port")
		require.NoError(t, err)
		assert.Equal(t, "8080", v)
	})

	t.Run("no default -> ErrNoValue", func(t *testing.T) {
		s := New()
		require.NoError(t, s.Register("host", ""))

		_, err := s.Get("host")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoValue)

		var nv *NoValueError
		require.True(t, errors.As(err, &nv))
		assert.Equal(t, "host", nv.Name)
	})

	t.Run("duplicate name fails regardless of default", func(t *testing.T) {
		s := New()
		require.NoError(t, s.Register("a", "1"))

		for _, def := range []string{"1", "2", ""} {
			err := s.Register("a", def)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDuplicateParameter)
			assert.Contains(t, err.Error(), `"a"`)
		}

		// Original value is untouched
		v, err := s.Get("a")
		require.NoError(t, err)
		assert.Equal(t, "1", v)
	})

	t.Run("names are case sensitive", func(t *testing.T) {
		s := New()
		require.NoError(t, s.Register("Port", "1"))
		require.NoError(t, s.Register("port", "2"))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("MustRegister panics on duplicate", func(t *testing.T) {
		s := New()
		s.MustRegister("a", "")
		assert.Panics(t, func() { s.MustRegister("a", "") })
	})
}

func TestGet_UnknownParameter(t *testing.T) {
	s := New()
	_, err := s.Get("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownParameter)
	assert.NotErrorIs(t, err, ErrNoValue)

	var up *UnknownParameterError
	require.True(t, errors.As(err, &up))
	assert.Equal(t, "missing", up.Name)
}

func TestGet_SentinelLikeValueIsOrdinary(t *testing.T) {
	// Values that look like an "unset" marker are plain values.
	s := New()
	s.MustRegister("weird", "_#N/A#_")

	v, err := s.Get("weird")
	require.NoError(t, err)
	assert.Equal(t, "_#N/A#_", v)
}

func TestLookup(t *testing.T) {
	s := New()
	s.MustRegister("a", "1")
	s.MustRegister("b", "")

	v, set, known := s.Lookup("a")
	assert.Equal(t, "1", v)
	assert.True(t, set)
	assert.True(t, known)

	v, set, known = s.Lookup("b")
	assert.Empty(t, v)
	assert.False(t, set)
	assert.True(t, known)

	_, set, known = s.Lookup("c")
	assert.False(t, set)
	assert.False(t, known)
}

func TestNamesAndSnapshot(t *testing.T) {
	s := New()
	s.MustRegister("zeta", "z")
	s.MustRegister("alpha", "")
	s.MustRegister("mid", "m")

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, s.Names())
	assert.Equal(t, []Parameter{
		{Name: "alpha"},
		{Name: "mid", Value: "m", Set: true},
		{Name: "zeta", Value: "z", Set: true},
	}, s.Snapshot())
}

func TestCommentPrefix(t *testing.T) {
	assert.Equal(t, DefaultCommentPrefix, New().CommentPrefix())
	assert.Equal(t, "//", New(WithCommentPrefix("//")).CommentPrefix())

	s := New()
	s.SetCommentPrefix(";")
	assert.Equal(t, ";", s.CommentPrefix())
}

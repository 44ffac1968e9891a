package options

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSome(t *testing.T) {
	require := require.New(t)

	o := Some("hello!")
	require.True(o.IsSome())
	require.False(o.IsNone())

	v, ok := o.Get()
	require.True(ok)
	require.Equal("hello!", v)
	require.Equal("hello!", o.GetOrElse("default"))
	require.Equal("hello!", o.MustGet())
}

func TestNone(t *testing.T) {
	require := require.New(t)

	o := None[string]()
	require.False(o.IsSome())
	require.True(o.IsNone())

	v, ok := o.Get()
	require.False(ok)
	require.Equal("", v)
	require.Equal("default", o.GetOrElse("default"))
	require.PanicsWithValue(ErrEmpty, func() {
		o.MustGet()
	})

	var zero Option[string]
	require.Equal(o, zero)
}

func TestEquality(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Int().Draw(t, "a")
		b := rapid.Int().Draw(t, "b")

		if (Some(a) == Some(b)) != (a == b) {
			t.Fatalf("Some(%d) == Some(%d) disagrees with %d == %d", a, b, a, b)
		}
		if Some(a) == None[int]() {
			t.Fatalf("Some(%d) equals None", a)
		}
	})
}

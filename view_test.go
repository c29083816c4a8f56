package capsule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestViewAliasing(t *testing.T) {
	s := square{Width: 4}
	v := ViewOf(&s)

	require.Equal(t, "square(4)\n", v.Format())

	// mutate the referent through a separate path
	s.Width = 6
	require.Equal(t, "square(6)\n", v.Format())
}

func TestViewCopy(t *testing.T) {
	s := triangle{Size: 2}
	v := ViewOf(&s)
	w := v

	s.Size = 3

	// both views read through the same storage
	require.Equal(t, "triangle(3)\n", v.Format())
	require.Equal(t, "triangle(3)\n", w.Format())
	require.Equal(t, 3, w.Calculate())
}

func TestViewTypeQuery(t *testing.T) {
	s := square{Width: 1}
	v := ViewOf(&s)

	require.True(t, Is[square](v))
	require.False(t, Is[triangle](v))

	t.Run("downcast refers to the external storage", func(t *testing.T) {
		ptr := As[square](v)
		require.Same(t, &s, ptr)
	})

	t.Run("mismatch panics", func(t *testing.T) {
		require.PanicsWithValue(t,
			"capsule: value holds a capsule.square, not a capsule.circle",
			func() { As[circle](v) })
	})
}

func TestViewOfNilPanics(t *testing.T) {
	require.Panics(t, func() {
		ViewOf[square](nil)
	})
}

func TestViewOfDefaultedValue(t *testing.T) {
	b := bat{}
	b.SizeX = 4

	v := ViewOf(&b)
	require.Equal(t, "[X:4|Y:0]\n", v.Format())

	b.SizeX = 5
	require.Equal(t, "[X:5|Y:0]\n", v.Format())
}

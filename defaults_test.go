package capsule

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// pyramid embeds Defaults and defines its own format.
type pyramid struct {
	Defaults[pyramid]
}

func (p pyramid) Format() string {
	return "/\\\n"
}

// husky embeds Defaults and gets its format through a registered
// function.
type husky struct {
	Defaults[husky]
}

// bat embeds Defaults and supplies nothing of its own.
type bat struct {
	Defaults[bat]
}

// both defines a format method and also registers a format function.
type both struct{}

func (both) Format() string {
	return "member\n"
}

func init() {
	RegisterFormat(func(husky) string {
		return "woof\n"
	})

	RegisterFormat(func(both) string {
		return "func\n"
	})
}

func TestChannelPrecedence(t *testing.T) {
	t.Run("member beats registered function", func(t *testing.T) {
		require.Equal(t, ChannelMember, ChannelOf[both](OpFormat))
		require.Equal(t, "member\n", Of(both{}).Format())
	})

	t.Run("registered function beats default", func(t *testing.T) {
		require.Equal(t, ChannelFunc, ChannelOf[husky](OpFormat))
	})

	t.Run("default as last resort", func(t *testing.T) {
		require.Equal(t, ChannelDefault, ChannelOf[bat](OpFormat))
		require.Equal(t, ChannelDefault, ChannelOf[bat](OpCalculate))
	})

	t.Run("nothing at all", func(t *testing.T) {
		type plain struct{ X int }

		require.Equal(t, ChannelNone, ChannelOf[plain](OpFormat))
		require.Equal(t, "", Of(plain{}).Format())
		require.Equal(t, 0, Of(plain{}).Calculate())
	})
}

func TestDefaultsAdapter(t *testing.T) {
	t.Run("header prepended to member format", func(t *testing.T) {
		p := pyramid{}
		p.SizeX, p.SizeY = 3, 4

		require.Equal(t, "[X:3|Y:4]\n/\\\n", Of(p).Format())
	})

	t.Run("header prepended to registered format", func(t *testing.T) {
		require.Equal(t, "[X:0|Y:0]\nwoof\n", Of(husky{}).Format())
	})

	t.Run("recursion safety with no own behavior", func(t *testing.T) {
		b := bat{}
		b.SizeX, b.SizeY = 1, 2

		v := Of(b)
		require.Equal(t, "[X:1|Y:2]\n", v.Format())
		require.Equal(t, 0, v.Calculate())
	})

	t.Run("builtin serialize and draw notices", func(t *testing.T) {
		var buf bytes.Buffer
		previous := Output()
		SetOutput(&buf)
		defer SetOutput(previous)

		v := Of(bat{})
		v.Serialize()
		v.Draw()

		require.Equal(t, "[serializing nothing]\n[drawing nothing]\n", buf.String())
	})
}

func TestWrapped(t *testing.T) {
	t.Run("format prepends header to the value's output", func(t *testing.T) {
		w := Wrap(square{Width: 3})
		w.SizeX, w.SizeY = 5, 6

		require.Equal(t, "[X:5|Y:6]\nsquare(3)\n", w.Format())
	})

	t.Run("calculate is overridden by the value", func(t *testing.T) {
		require.Equal(t, 8, Wrap(triangle{Size: 8}).Calculate())
	})

	t.Run("adapter unaware value without operations", func(t *testing.T) {
		type mute struct{}

		w := Wrap(mute{})
		require.Equal(t, "[X:0|Y:0]\n", w.Format())
		require.Equal(t, 0, w.Calculate())

		var buf bytes.Buffer
		previous := Output()
		SetOutput(&buf)
		defer SetOutput(previous)

		w.Serialize()
		require.Equal(t, "[serializing nothing]\n", buf.String())
	})

	t.Run("wrapped values erase through the member channel", func(t *testing.T) {
		w := Wrap(square{Width: 2})
		v := Of(w)

		require.Equal(t, ChannelMember, ChannelOf[Wrapped[square]](OpFormat))
		require.Equal(t, "[X:0|Y:0]\nsquare(2)\n", v.Format())
		require.True(t, Is[Wrapped[square]](v))
	})
}

func TestLateRegistrationPanics(t *testing.T) {
	type late struct{}

	_ = Of(late{})

	require.Panics(t, func() {
		RegisterFormat(func(late) string { return "" })
	})
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	type dup struct{}

	RegisterCalculate(func(dup) int { return 1 })

	require.Panics(t, func() {
		RegisterCalculate(func(dup) int { return 2 })
	})
}

func TestHeaderExtents(t *testing.T) {
	var d Defaults[bat]
	d.SizeX, d.SizeY = 7, 9

	require.Equal(t, fmt.Sprintf("[X:%d|Y:%d]\n", 7, 9), Of(bat{Defaults: d}).Format())
}

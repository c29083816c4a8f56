package capsule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfileFromYAML(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := ProfileFromYAML([]byte("require:\n  - format\n  - calculate\n"))
		require.NoError(t, err)
		require.Equal(t, []string{"format", "calculate"}, p.Require)
	})

	t.Run("empty document requires nothing", func(t *testing.T) {
		p, err := ProfileFromYAML([]byte(""))
		require.NoError(t, err)
		require.Empty(t, p.Require)
	})

	t.Run("unknown operation", func(t *testing.T) {
		_, err := ProfileFromYAML([]byte("require: [transmogrify]"))
		require.ErrorContains(t, err, "unknown operation")
	})

	t.Run("not yaml", func(t *testing.T) {
		_, err := ProfileFromYAML([]byte("require: ["))
		require.ErrorContains(t, err, "parse profile")
	})
}

func TestCheckAgainst(t *testing.T) {
	t.Run("reports every missing operation at once", func(t *testing.T) {
		type empty struct{}

		err := CheckAgainst[empty](OpFormat, OpCalculate)
		require.ErrorContains(t, err, "no format operation found for type capsule.empty")
		require.ErrorContains(t, err, "no calculate operation found for type capsule.empty")
	})

	t.Run("pointer receiver hint", func(t *testing.T) {
		err := CheckAgainst[ptrRecv](OpFormat)
		require.ErrorContains(t, err, "operations need value receivers")
	})

	t.Run("member channel satisfies", func(t *testing.T) {
		require.NoError(t, CheckAgainst[square](OpFormat))
	})

	t.Run("defaulted type satisfies everything", func(t *testing.T) {
		require.NoError(t, CheckAgainst[bat](OpSerialize, OpDraw, OpFormat, OpCalculate))
	})

	t.Run("missing required operation is not satisfied by nothing", func(t *testing.T) {
		type empty2 struct{}

		require.Error(t, CheckAgainst[empty2](OpSerialize))
		require.NoError(t, CheckAgainst[empty2]())
	})
}

type ptrRecv struct{}

func (*ptrRecv) Format() string {
	return ""
}

func TestSetRequiredAfterBindPanics(t *testing.T) {
	// make sure at least one type has been bound
	_ = Of(square{})

	require.Panics(t, func() {
		SetRequired(OpFormat)
	})
}

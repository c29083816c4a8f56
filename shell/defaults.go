package shell

import (
	"fmt"
	"io"
	"os"
)

var output io.Writer = os.Stdout

// SetOutput redirects the builtin fallback output emitted by the
// Defaults adapter for unresolved serialize and draw operations.
// The default is os.Stdout.
func SetOutput(w io.Writer) {
	output = w
}

// Output returns the writer used for builtin fallback output.
func Output() io.Writer {
	return output
}

type defaultsMarker struct{}

// erasedDefaults is implemented by any type embedding Defaults. It
// gives the resolver access to the header of the embedded adapter
// without knowing the outer type.
type erasedDefaults interface {
	defaultsHeader() string
	isDefaults(defaultsMarker)
}

// Defaults is a generic adapter that may be embedded into a value type
// to supply fallback behavior for operations the type does not define
// itself:
//
//	type Pyramid struct {
//	    shell.Defaults[Pyramid]
//	}
//
// An embedding type resolves member and registered functions as usual.
// Operations left unresolved bind to the adapter's builtins: format
// yields the header line, calculate yields zero, serialize and draw
// emit a notice to Output. For the format operation the header is
// always prepended to the type's own output, resolved or not.
//
// The adapter never dispatches through Value or View. Its fallback
// bodies resolve directly against the embedding type's member and func
// channels, so a type without any format of its own terminates in the
// builtin instead of recursing through erased dispatch.
type Defaults[T any] struct {
	SizeX, SizeY int
}

func (d Defaults[T]) isDefaults(defaultsMarker) {}

func (d Defaults[T]) defaultsHeader() string {
	return headerLine(d.SizeX, d.SizeY)
}

func headerLine(x, y int) string {
	return fmt.Sprintf("[X:%d|Y:%d]\n", x, y)
}

// Wrapped combines an arbitrary value with the Defaults behavior. The
// wrapped type does not need to know about the adapter at all. Per
// operation the policy is fixed: format prepends the header to the
// value's resolved output, calculate is fully overridden by the value's
// resolved result, serialize and draw run the value's resolved behavior
// or fall back to the builtin notice.
type Wrapped[T any] struct {
	SizeX, SizeY int
	Value        T
}

// Wrap wraps a copy of value. The header extents start at zero and may
// be set on the returned struct before erasing it.
func Wrap[T any](value T) Wrapped[T] {
	return Wrapped[T]{Value: value}
}

func (w Wrapped[T]) Format() string {
	if raw := bindingOf[T]().format; raw != nil {
		return headerLine(w.SizeX, w.SizeY) + raw(w.Value)
	}
	return headerLine(w.SizeX, w.SizeY)
}

func (w Wrapped[T]) Calculate() int {
	if raw := bindingOf[T]().calculate; raw != nil {
		return raw(w.Value)
	}
	return 0
}

func (w Wrapped[T]) Serialize() {
	if raw := bindingOf[T]().serialize; raw != nil {
		raw(w.Value)
		return
	}
	fmt.Fprintln(Output(), "[serializing nothing]")
}

func (w Wrapped[T]) Draw() {
	if raw := bindingOf[T]().draw; raw != nil {
		raw(w.Value)
		return
	}
	fmt.Fprintln(Output(), "[drawing nothing]")
}

// The default adapter policy, applied once at bind time on top of the
// raw member and func channel resolution.

func composeSerialize(b *binding, defaulted bool) func(any) {
	if b.serialize != nil {
		return b.serialize
	}

	if defaulted {
		return func(any) {
			fmt.Fprintln(Output(), "[serializing nothing]")
		}
	}

	return func(any) {}
}

func composeDraw(b *binding, defaulted bool) func(any) {
	if b.draw != nil {
		return b.draw
	}

	if defaulted {
		return func(any) {
			fmt.Fprintln(Output(), "[drawing nothing]")
		}
	}

	return func(any) {}
}

func composeFormat(b *binding, defaulted bool) func(any) string {
	raw := b.format

	switch {
	case defaulted && raw != nil:
		return func(v any) string {
			return v.(erasedDefaults).defaultsHeader() + raw(v)
		}

	case defaulted:
		return func(v any) string {
			return v.(erasedDefaults).defaultsHeader()
		}

	case raw != nil:
		return raw

	default:
		return func(any) string { return "" }
	}
}

func composeCalculate(b *binding) func(any) int {
	if b.calculate != nil {
		return b.calculate
	}
	return func(any) int { return 0 }
}

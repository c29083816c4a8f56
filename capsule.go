// Package capsule implements a type erasing value container with
// capability based dispatch. A Value holds a copy of any concrete type
// that satisfies the configured operation set, without that type
// implementing a common interface by hand.
//
// Each operation of a concrete type is supplied through one of three
// channels, resolved once per type when the type is first erased:
// a method with the operation's name and signature, a standalone
// function registered via RegisterFormat and friends, or the Defaults
// adapter the type embeds. Member channel wins over registered
// function, registered function wins over the adapter.
//
// Values compose into trees: a Value may own further Values as
// branches. The format operation descends into branches, depth first
// and in insertion order. View offers the same operation surface over
// externally owned storage without copying or owning it.
package capsule

import (
	"io"

	"github.com/oliverbestmann/capsule/shell"
)

// Value is an owning erased value. Clone produces a deep copy
// including all branches; plain assignment transfers ownership and the
// source must not be used afterwards.
type Value = shell.Value

// View is a non owning erased reference to externally owned storage.
type View = shell.View

// Erased is the common surface of Value and View accepted by the free
// standing operation forms and the type query functions.
type Erased = shell.Erased

// ValueType is the runtime type tag of an erased value. Tags compare
// equal iff the concrete types are identical.
type ValueType = shell.ValueType

// TypeId is the stable identity assigned to a value type when it first
// binds.
type TypeId = shell.TypeId

// Op identifies one of the four operations of the operation set.
type Op = shell.Op

// Channel describes how an operation is supplied for a value type.
type Channel = shell.Channel

const (
	OpSerialize = shell.OpSerialize
	OpDraw      = shell.OpDraw
	OpFormat    = shell.OpFormat
	OpCalculate = shell.OpCalculate

	ChannelNone    = shell.ChannelNone
	ChannelMember  = shell.ChannelMember
	ChannelFunc    = shell.ChannelFunc
	ChannelDefault = shell.ChannelDefault
)

// Serializer, Drawer, Formatter and Calculator are the member channel
// signatures of the four operations.
type Serializer = shell.Serializer
type Drawer = shell.Drawer
type Formatter = shell.Formatter
type Calculator = shell.Calculator

// Defaults may be embedded into a value type to obtain fallback
// behavior for operations the type does not define itself (see
// shell.Defaults).
type Defaults[T any] = shell.Defaults[T]

// Wrapped combines an arbitrary, adapter unaware value with the
// Defaults behavior (see shell.Wrapped).
type Wrapped[T any] = shell.Wrapped[T]

// Of captures a copy of value and erases it.
func Of[T any](value T) Value {
	return shell.Of(value)
}

// ViewOf erases a pointer to externally owned storage.
func ViewOf[T any](ptr *T) View {
	return shell.ViewOf(ptr)
}

// Wrap wraps a copy of value together with the Defaults behavior.
func Wrap[T any](value T) Wrapped[T] {
	return shell.Wrap(value)
}

// Is reports whether the erased value holds exactly a T.
func Is[T any](v Erased) bool {
	return shell.Is[T](v)
}

// As returns a pointer to the wrapped value, panicking when the value
// does not hold exactly a T.
func As[T any](v Erased) *T {
	return shell.As[T](v)
}

// TryAs returns a pointer to the wrapped value if it is exactly a T.
func TryAs[T any](v Erased) (*T, bool) {
	return shell.TryAs[T](v)
}

// FindAll collects every node of the tree rooted at v holding exactly
// a T, in pre order.
func FindAll[T any](v *Value) []*Value {
	return shell.FindAll[T](v)
}

// AppendChildOf erases value and appends it as the last branch of v.
func AppendChildOf[T any](v *Value, value T) {
	shell.AppendChildOf(v, value)
}

// Free standing forms of the four operations, identical in behavior to
// the methods on Value and View.

func Serialize(v Erased) {
	shell.Serialize(v)
}

func Draw(v Erased) {
	shell.Draw(v)
}

func Format(v Erased) string {
	return shell.Format(v)
}

func Calculate(v Erased) int {
	return shell.Calculate(v)
}

// RegisterSerialize registers a standalone serialize function for T.
// Registration must happen before T first binds.
func RegisterSerialize[T any](fn func(T)) {
	shell.RegisterSerialize(fn)
}

// RegisterDraw registers a standalone draw function for T.
func RegisterDraw[T any](fn func(T)) {
	shell.RegisterDraw(fn)
}

// RegisterFormat registers a standalone format function for T.
func RegisterFormat[T any](fn func(T) string) {
	shell.RegisterFormat(fn)
}

// RegisterCalculate registers a standalone calculate function for T.
func RegisterCalculate[T any](fn func(T) int) {
	shell.RegisterCalculate(fn)
}

// ChannelOf reports which channel the given operation bound to for T,
// binding T first if needed.
func ChannelOf[T any](op Op) Channel {
	return shell.TypeOf[T]().Channel(op)
}

// TypeOf returns the runtime type tag of T, binding T first if needed.
func TypeOf[T any]() *ValueType {
	return shell.TypeOf[T]()
}

// SetOutput redirects the builtin fallback output of the Defaults
// adapter. The default is os.Stdout.
func SetOutput(w io.Writer) {
	shell.SetOutput(w)
}

// Output returns the writer used for builtin fallback output.
func Output() io.Writer {
	return shell.Output()
}

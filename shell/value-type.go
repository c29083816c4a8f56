package shell

import (
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"sync/atomic"

	"github.com/oliverbestmann/capsule/internal/assert"
	"github.com/oliverbestmann/capsule/internal/refl"
	"go.uber.org/multierr"
)

// TypeId is the stable identity assigned to a value type when it is
// first bound. Two erased values wrap the same concrete type iff their
// ValueType ids are equal.
type TypeId uint32

// ValueType describes how one concrete type satisfies the operation
// set. It is built exactly once per type, when the type is first
// erased, wrapped or validated, and cached for the lifetime of the
// program.
type ValueType struct {
	Name string
	Type reflect.Type

	// The Id of the type
	Id TypeId

	// Defaulted indicates that the type embeds Defaults and that the
	// adapter's builtin behavior stands in for unresolved operations.
	Defaulted bool

	channels [numOps]Channel

	serialize func(any)
	draw      func(any)
	format    func(any) string
	calculate func(any) int
}

// Channel reports which channel was bound for op.
func (vt *ValueType) Channel(op Op) Channel {
	return vt.channels[op]
}

func (vt *ValueType) String() string {
	return vt.Name
}

// binding holds the raw member and func channel resolution for one
// concrete type, before the default adapter policy is applied. The
// Wrapped adapter reads these directly so that its fallback bodies can
// never re-enter erased dispatch.
type binding struct {
	channels [numOps]Channel

	// pointerOnly marks operations that exist on *T but not on T.
	// Only used to sharpen bind failure diagnostics.
	pointerOnly [numOps]bool

	serialize func(any)
	draw      func(any)
	format    func(any) string
	calculate func(any) int
}

var bindings atomic.Pointer[map[reflect.Type]*binding]
var valueTypes atomic.Pointer[map[reflect.Type]*ValueType]

func init() {
	bindings.Store(&map[reflect.Type]*binding{})
	valueTypes.Store(&map[reflect.Type]*ValueType{})
}

func bindingCached(ty reflect.Type) bool {
	_, ok := (*bindings.Load())[ty]
	return ok
}

func bindingOf[T any]() *binding {
	ty := reflect.TypeFor[T]()

	if cached, ok := (*bindings.Load())[ty]; ok {
		return cached
	}

	newBinding := makeBinding[T]()

	for {
		previousBindings := bindings.Load()
		if cached, ok := (*previousBindings)[ty]; ok {
			return cached
		}

		newBindings := maps.Clone(*previousBindings)
		newBindings[ty] = newBinding

		if bindings.CompareAndSwap(previousBindings, &newBindings) {
			return newBinding
		}
	}
}

func makeBinding[T any]() *binding {
	tyT := reflect.TypeFor[T]()
	assert.IsNonPointerType(tyT)

	fns := (*registeredFuncs.Load())[tyT]

	b := &binding{}

	switch {
	case tyT.Implements(reflect.TypeFor[Serializer]()):
		b.channels[OpSerialize] = ChannelMember
		b.serialize = func(v any) { v.(Serializer).Serialize() }
	case fns != nil && fns.serialize != nil:
		b.channels[OpSerialize] = ChannelFunc
		b.serialize = fns.serialize
	default:
		b.pointerOnly[OpSerialize] = refl.ImplementsOnPointerOnly[Serializer](tyT)
	}

	switch {
	case tyT.Implements(reflect.TypeFor[Drawer]()):
		b.channels[OpDraw] = ChannelMember
		b.draw = func(v any) { v.(Drawer).Draw() }
	case fns != nil && fns.draw != nil:
		b.channels[OpDraw] = ChannelFunc
		b.draw = fns.draw
	default:
		b.pointerOnly[OpDraw] = refl.ImplementsOnPointerOnly[Drawer](tyT)
	}

	switch {
	case tyT.Implements(reflect.TypeFor[Formatter]()):
		b.channels[OpFormat] = ChannelMember
		b.format = func(v any) string { return v.(Formatter).Format() }
	case fns != nil && fns.format != nil:
		b.channels[OpFormat] = ChannelFunc
		b.format = fns.format
	default:
		b.pointerOnly[OpFormat] = refl.ImplementsOnPointerOnly[Formatter](tyT)
	}

	switch {
	case tyT.Implements(reflect.TypeFor[Calculator]()):
		b.channels[OpCalculate] = ChannelMember
		b.calculate = func(v any) int { return v.(Calculator).Calculate() }
	case fns != nil && fns.calculate != nil:
		b.channels[OpCalculate] = ChannelFunc
		b.calculate = fns.calculate
	default:
		b.pointerOnly[OpCalculate] = refl.ImplementsOnPointerOnly[Calculator](tyT)
	}

	return b
}

// TypeOf returns the ValueType of T, binding it first if this is the
// first use of T. It panics if T lacks a channel for an operation the
// current profile requires.
func TypeOf[T any]() *ValueType {
	ty := reflect.TypeFor[T]()

	if cached, ok := (*valueTypes.Load())[ty]; ok {
		return cached
	}

	for {
		previousTypes := valueTypes.Load()
		if cached, ok := (*previousTypes)[ty]; ok {
			return cached
		}

		newTypeId := TypeId(len(*previousTypes) + 1)

		newType, err := newValueType[T](newTypeId, requiredSet)
		if err != nil {
			panic(fmt.Sprintf("capsule: %s", err))
		}

		newTypes := maps.Clone(*previousTypes)
		newTypes[ty] = newType

		if valueTypes.CompareAndSwap(previousTypes, &newTypes) {
			anyTypeBound.Store(true)

			slog.Debug(
				"New value type bound",
				slog.String("name", newType.Name),
				slog.Int("id", int(newType.Id)),
			)

			return newType
		}
	}
}

func newValueType[T any](id TypeId, required [numOps]bool) (*ValueType, error) {
	tyT := reflect.TypeFor[T]()
	b := bindingOf[T]()

	vt := &ValueType{
		Id:        id,
		Type:      tyT,
		Name:      tyT.String(),
		Defaulted: tyT.Implements(reflect.TypeFor[erasedDefaults]()),
		channels:  b.channels,
	}

	if vt.Defaulted {
		for _, op := range Ops() {
			if vt.channels[op] == ChannelNone {
				vt.channels[op] = ChannelDefault
			}
		}
	}

	var err error
	for _, op := range Ops() {
		if !required[op] || vt.channels[op] != ChannelNone {
			continue
		}

		if b.pointerOnly[op] {
			err = multierr.Append(err, fmt.Errorf(
				"no %s operation found for type %s (a method exists on *%s, operations need value receivers)",
				op, vt.Name, vt.Name,
			))
			continue
		}

		err = multierr.Append(err, fmt.Errorf(
			"no %s operation found for type %s", op, vt.Name,
		))
	}
	if err != nil {
		return nil, err
	}

	vt.serialize = composeSerialize(b, vt.Defaulted)
	vt.draw = composeDraw(b, vt.Defaulted)
	vt.format = composeFormat(b, vt.Defaulted)
	vt.calculate = composeCalculate(b)

	return vt, nil
}

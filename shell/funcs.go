package shell

import (
	"fmt"
	"maps"
	"reflect"
	"sync/atomic"
)

// opFuncs holds the standalone operation functions registered for one
// concrete type. Fields are nil when nothing was registered.
type opFuncs struct {
	serialize func(any)
	draw      func(any)
	format    func(any) string
	calculate func(any) int
}

var registeredFuncs atomic.Pointer[map[reflect.Type]*opFuncs]

func init() {
	// initialize the lookup table
	registeredFuncs.Store(&map[reflect.Type]*opFuncs{})
}

// RegisterSerialize registers a standalone serialize function for T.
// Registration must happen before T is first erased, wrapped or probed,
// channel resolution happens once per type and is never revisited.
func RegisterSerialize[T any](fn func(T)) {
	registerFunc[T](OpSerialize,
		func(fns *opFuncs) bool { return fns.serialize != nil },
		func(fns *opFuncs) { fns.serialize = func(v any) { fn(v.(T)) } },
	)
}

// RegisterDraw registers a standalone draw function for T.
func RegisterDraw[T any](fn func(T)) {
	registerFunc[T](OpDraw,
		func(fns *opFuncs) bool { return fns.draw != nil },
		func(fns *opFuncs) { fns.draw = func(v any) { fn(v.(T)) } },
	)
}

// RegisterFormat registers a standalone format function for T.
func RegisterFormat[T any](fn func(T) string) {
	registerFunc[T](OpFormat,
		func(fns *opFuncs) bool { return fns.format != nil },
		func(fns *opFuncs) { fns.format = func(v any) string { return fn(v.(T)) } },
	)
}

// RegisterCalculate registers a standalone calculate function for T.
func RegisterCalculate[T any](fn func(T) int) {
	registerFunc[T](OpCalculate,
		func(fns *opFuncs) bool { return fns.calculate != nil },
		func(fns *opFuncs) { fns.calculate = func(v any) int { return fn(v.(T)) } },
	)
}

func registerFunc[T any](op Op, isSet func(*opFuncs) bool, set func(*opFuncs)) {
	ty := reflect.TypeFor[T]()

	if bindingCached(ty) {
		panic(fmt.Sprintf(
			"capsule: %s function for %s registered after the type was already bound",
			op, ty,
		))
	}

	for {
		previousFuncs := registeredFuncs.Load()

		updated := &opFuncs{}
		if existing, ok := (*previousFuncs)[ty]; ok {
			*updated = *existing
		}

		if isSet(updated) {
			panic(fmt.Sprintf("capsule: %s function for %s is already registered", op, ty))
		}

		set(updated)

		newFuncs := maps.Clone(*previousFuncs)
		newFuncs[ty] = updated

		if registeredFuncs.CompareAndSwap(previousFuncs, &newFuncs) {
			return
		}
	}
}

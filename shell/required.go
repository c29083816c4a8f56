package shell

import "sync/atomic"

// requiredSet is the deployment's required operation subset. Types
// bound while an operation is required must supply a channel for it.
var requiredSet [numOps]bool

var anyTypeBound atomic.Bool

// SetRequired installs the required operation subset. Binding happens
// once per type and is never revisited, so the profile must be in
// place before the first type binds. Calling SetRequired later panics.
func SetRequired(ops ...Op) {
	if anyTypeBound.Load() {
		panic("capsule: SetRequired called after a type was already bound")
	}

	var set [numOps]bool
	for _, op := range ops {
		set[op] = true
	}

	requiredSet = set
}

// Required returns the currently required operations in stable order.
func Required() []Op {
	var ops []Op
	for _, op := range Ops() {
		if requiredSet[op] {
			ops = append(ops, op)
		}
	}
	return ops
}

// Check probes T against the current required operation set. Unlike
// erasing a value of T, a failed probe reports instead of panicking.
// The returned error names every missing operation. Probing resolves
// and caches T's channels as a side effect.
func Check[T any]() error {
	return CheckAgainst[T](Required()...)
}

// CheckAgainst probes T against an explicit required operation set,
// regardless of the installed profile.
func CheckAgainst[T any](ops ...Op) error {
	var set [numOps]bool
	for _, op := range ops {
		set[op] = true
	}

	_, err := newValueType[T](0, set)
	return err
}

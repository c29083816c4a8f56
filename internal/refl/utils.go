package refl

import "reflect"

// ImplementsOnPointerOnly reports whether *T satisfies If while T
// itself does not. Operations are resolved against the value type, a
// true result usually means a method was declared on a pointer
// receiver by mistake.
func ImplementsOnPointerOnly[If any](ty reflect.Type) bool {
	iface := reflect.TypeFor[If]()
	return !ty.Implements(iface) && reflect.PointerTo(ty).Implements(iface)
}

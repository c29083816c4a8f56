package assert

import (
	"fmt"
	"reflect"
)

// IsNonPointerType panics when t is a pointer type. Erased values own
// their payload by value, storing a pointer would alias external state
// and break clone independence.
func IsNonPointerType(t reflect.Type) {
	if t.Kind() == reflect.Pointer {
		panic(fmt.Sprintf("expected non pointer type, got %s", t))
	}
}

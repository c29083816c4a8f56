package capsule

import "github.com/oliverbestmann/capsule/shell"

// Validate should be assigned to a package level variable to verify at
// program start that a type satisfies the configured operation set:
//
//	type Circle struct {
//	    Radius int
//	}
//
//	var _ = capsule.Validate[Circle]()
//
// It binds the type and panics with a diagnostic naming every missing
// required operation.
func Validate[T any]() struct{} {
	shell.TypeOf[T]()
	return struct{}{}
}

// Check probes T against the currently required operation set without
// panicking. The returned error names every missing operation.
func Check[T any]() error {
	return shell.Check[T]()
}

// CheckAgainst probes T against an explicit required operation set.
func CheckAgainst[T any](ops ...Op) error {
	return shell.CheckAgainst[T](ops...)
}

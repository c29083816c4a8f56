package shell

import (
	"fmt"
	"reflect"
)

// Erased is implemented by both Value and View. It is the common
// surface accepted by the free standing operation forms and by the
// type query functions.
type Erased interface {
	erasedRecord() record
}

// Value is an owning erased value. It exclusively owns a copy of one
// concrete value of any bound type, plus an ordered sequence of child
// values (branches).
//
// Clone produces a deep copy including all branches. Plain assignment
// transfers ownership instead: the source must not be used afterwards
// except to be reassigned or dropped. The zero Value is invalid, every
// operation on it panics.
type Value struct {
	rec record
}

// Of captures a copy of value and erases it. Binding T for the first
// time panics if T lacks a channel for a required operation.
func Of[T any](value T) Value {
	return Value{rec: &model[T]{vt: TypeOf[T](), value: value}}
}

func (v Value) erasedRecord() record {
	return v.rec
}

// ValueType reports the runtime type tag of the wrapped value.
func (v Value) ValueType() *ValueType {
	return mustRecord(v).valueType()
}

func (v Value) Serialize() {
	mustRecord(v).serialize()
}

func (v Value) Draw() {
	mustRecord(v).draw()
}

// Format returns the wrapped value's resolved format output followed
// by the format output of every branch, depth first, in insertion
// order.
func (v Value) Format() string {
	return mustRecord(v).format()
}

func (v Value) Calculate() int {
	return mustRecord(v).calculate()
}

// Clone returns a deep copy of the value including all branches.
// Mutations through either copy are never observed through the other.
func (v Value) Clone() Value {
	return Value{rec: mustRecord(v).clone()}
}

// AppendChild appends child as the last branch. The child is absorbed,
// the caller must not keep using the passed Value afterwards.
func (v *Value) AppendChild(child Value) {
	mustRecord(child)

	kids := mustRecord(*v).branches()
	*kids = append(*kids, child)
}

// AppendChildOf erases value and appends it as the last branch of v.
func AppendChildOf[T any](v *Value, value T) {
	v.AppendChild(Of(value))
}

// Branches returns pointers to the child values in insertion order.
func (v *Value) Branches() []*Value {
	kids := mustRecord(*v).branches()
	if kids == nil || len(*kids) == 0 {
		return nil
	}

	out := make([]*Value, len(*kids))
	for i := range *kids {
		out[i] = &(*kids)[i]
	}

	return out
}

// Is reports whether the erased value holds exactly a T. There is no
// subtype matching.
func Is[T any](v Erased) bool {
	rec := v.erasedRecord()
	if rec == nil {
		return false
	}

	_, ok := rec.unwrap().(*T)
	return ok
}

// TryAs returns a pointer to the wrapped value if it is exactly a T.
func TryAs[T any](v Erased) (*T, bool) {
	rec := v.erasedRecord()
	if rec == nil {
		return nil, false
	}

	ptr, ok := rec.unwrap().(*T)
	return ptr, ok
}

// As returns a pointer to the wrapped value. It panics with a
// diagnostic naming the expected and the actual type if the value does
// not hold exactly a T.
func As[T any](v Erased) *T {
	ptr, ok := TryAs[T](v)
	if !ok {
		rec := v.erasedRecord()
		if rec == nil {
			panic(fmt.Sprintf("capsule: zero value does not hold a %s", reflect.TypeFor[T]()))
		}

		panic(fmt.Sprintf(
			"capsule: value holds a %s, not a %s",
			rec.valueType(), reflect.TypeFor[T](),
		))
	}

	return ptr
}

// FindAll collects every node of the tree rooted at v whose wrapped
// value is exactly a T, in pre order: the root before its branches,
// branches in insertion order.
func FindAll[T any](v *Value) []*Value {
	var matches []*Value
	findAllInto[T](v, &matches)
	return matches
}

func findAllInto[T any](v *Value, matches *[]*Value) {
	if Is[T](*v) {
		*matches = append(*matches, v)
	}

	for _, kid := range v.Branches() {
		findAllInto[T](kid, matches)
	}
}

// Free standing forms of the four operations. They behave exactly like
// the corresponding methods on Value and View.

func Serialize(v Erased) {
	mustRecord(v).serialize()
}

func Draw(v Erased) {
	mustRecord(v).draw()
}

func Format(v Erased) string {
	return mustRecord(v).format()
}

func Calculate(v Erased) int {
	return mustRecord(v).calculate()
}

func mustRecord(v Erased) record {
	rec := v.erasedRecord()
	if rec == nil {
		panic("capsule: use of zero or moved-from erased value")
	}
	return rec
}

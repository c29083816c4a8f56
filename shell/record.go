package shell

import "strings"

// record is the internal polymorphic record behind Value and View. The
// generic models below are the only code that touches a concrete type.
type record interface {
	valueType() *ValueType

	serialize()
	draw()
	format() string
	calculate() int

	clone() record
	branches() *[]Value

	// unwrap returns a pointer to the wrapped or referenced value.
	unwrap() any
}

// model owns a copy of one concrete value together with its branches.
type model[T any] struct {
	vt    *ValueType
	value T
	kids  []Value
}

func (m *model[T]) valueType() *ValueType {
	return m.vt
}

func (m *model[T]) serialize() {
	m.vt.serialize(m.value)
}

func (m *model[T]) draw() {
	m.vt.draw(m.value)
}

// format concatenates the value's own resolved output with the output
// of every branch, depth first, in insertion order. The other
// operations do not propagate into branches.
func (m *model[T]) format() string {
	if len(m.kids) == 0 {
		return m.vt.format(m.value)
	}

	var sb strings.Builder
	sb.WriteString(m.vt.format(m.value))

	for i := range m.kids {
		sb.WriteString(m.kids[i].rec.format())
	}

	return sb.String()
}

func (m *model[T]) calculate() int {
	return m.vt.calculate(m.value)
}

func (m *model[T]) clone() record {
	copied := &model[T]{vt: m.vt, value: m.value}

	if len(m.kids) > 0 {
		copied.kids = make([]Value, len(m.kids))
		for i := range m.kids {
			copied.kids[i] = m.kids[i].Clone()
		}
	}

	return copied
}

func (m *model[T]) branches() *[]Value {
	return &m.kids
}

func (m *model[T]) unwrap() any {
	return &m.value
}

// viewModel references one concrete value owned elsewhere. It reads
// through the pointer on every operation, so mutations of the referent
// are always observed. Views have no branches.
type viewModel[T any] struct {
	vt  *ValueType
	ptr *T
}

func (m *viewModel[T]) valueType() *ValueType {
	return m.vt
}

func (m *viewModel[T]) serialize() {
	m.vt.serialize(*m.ptr)
}

func (m *viewModel[T]) draw() {
	m.vt.draw(*m.ptr)
}

func (m *viewModel[T]) format() string {
	return m.vt.format(*m.ptr)
}

func (m *viewModel[T]) calculate() int {
	return m.vt.calculate(*m.ptr)
}

func (m *viewModel[T]) clone() record {
	return &viewModel[T]{vt: m.vt, ptr: m.ptr}
}

func (m *viewModel[T]) branches() *[]Value {
	return nil
}

func (m *viewModel[T]) unwrap() any {
	return m.ptr
}

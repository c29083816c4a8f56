package shell

// View is a non owning erased reference to externally owned storage.
// It offers the same operation surface as Value minus branch handling.
// Copying a View copies the view only, never the referent, and both
// copies keep reading through the same pointer.
//
// A View must not outlive the storage it references. The mechanism
// provides no lifetime enforcement beyond normal scoping discipline.
type View struct {
	rec record
}

// ViewOf erases a pointer to externally owned storage. Operations read
// through the pointer at call time, mutations of the referent are
// observed by the next operation.
func ViewOf[T any](ptr *T) View {
	if ptr == nil {
		panic("capsule: ViewOf requires a non-nil pointer")
	}

	return View{rec: &viewModel[T]{vt: TypeOf[T](), ptr: ptr}}
}

func (v View) erasedRecord() record {
	return v.rec
}

// ValueType reports the runtime type tag of the referenced value.
func (v View) ValueType() *ValueType {
	return mustRecord(v).valueType()
}

func (v View) Serialize() {
	mustRecord(v).serialize()
}

func (v View) Draw() {
	mustRecord(v).draw()
}

func (v View) Format() string {
	return mustRecord(v).format()
}

func (v View) Calculate() int {
	return mustRecord(v).calculate()
}

package shell

import "fmt"

// Op identifies one of the operations a value type may provide.
type Op uint8

const (
	OpSerialize Op = iota
	OpDraw
	OpFormat
	OpCalculate

	numOps
)

func (op Op) String() string {
	switch op {
	case OpSerialize:
		return "serialize"
	case OpDraw:
		return "draw"
	case OpFormat:
		return "format"
	case OpCalculate:
		return "calculate"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// ParseOp converts an operation name, e.g. from a profile file,
// into the matching Op.
func ParseOp(name string) (Op, error) {
	switch name {
	case "serialize":
		return OpSerialize, nil
	case "draw":
		return OpDraw, nil
	case "format":
		return OpFormat, nil
	case "calculate":
		return OpCalculate, nil
	default:
		return 0, fmt.Errorf("unknown operation %q", name)
	}
}

// Ops lists all operations in a stable order.
func Ops() []Op {
	return []Op{OpSerialize, OpDraw, OpFormat, OpCalculate}
}

// Channel describes how an operation is supplied for a value type.
type Channel uint8

const (
	// ChannelNone means the type supplies nothing for the operation.
	ChannelNone Channel = iota

	// ChannelMember means the type defines a method with the
	// operation's name and signature.
	ChannelMember

	// ChannelFunc means a standalone function was registered for the
	// type via RegisterSerialize and friends.
	ChannelFunc

	// ChannelDefault means the type embeds Defaults and the adapter's
	// builtin behavior stands in.
	ChannelDefault
)

func (c Channel) String() string {
	switch c {
	case ChannelNone:
		return "none"
	case ChannelMember:
		return "member"
	case ChannelFunc:
		return "func"
	case ChannelDefault:
		return "default"
	default:
		return fmt.Sprintf("Channel(%d)", uint8(c))
	}
}

// Serializer is the member channel signature of the serialize operation.
type Serializer interface {
	Serialize()
}

// Drawer is the member channel signature of the draw operation.
type Drawer interface {
	Draw()
}

// Formatter is the member channel signature of the format operation.
type Formatter interface {
	Format() string
}

// Calculator is the member channel signature of the calculate operation.
type Calculator interface {
	Calculate() int
}

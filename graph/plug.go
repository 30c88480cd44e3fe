package graph

import "fmt"

// Direction indicates whether a plug receives or provides values.
type Direction int

const (
	// In marks a plug that receives values.
	In Direction = iota
	// Out marks a plug that provides values.
	Out
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Opposite returns the complementary direction.
func (d Direction) Opposite() Direction {
	if d == In {
		return Out
	}
	return In
}

// Flags is a bitset of plug behavior flags.
type Flags uint32

const (
	// FlagDynamic marks a plug created at edit time rather than by a
	// node's constructor.
	FlagDynamic Flags = 1 << iota
	// FlagReadOnly marks a plug whose value may not be set by the user.
	FlagReadOnly
)

// FlagsDefault is the flag set applied to plugs created without any
// special behavior.
const FlagsDefault Flags = 0

// Has reports whether all bits in q are set.
func (f Flags) Has(q Flags) bool {
	return f&q == q
}

// Plug is a named, typed slot on a graph node. Composite plugs hold
// children; leaf plugs hold values.
//
// Plug implementations live in this package; hosts compose them rather
// than implementing the interface themselves.
type Plug interface {
	// Name returns the plug's name, unique among its siblings.
	Name() string
	// Direction returns the plug's direction.
	Direction() Direction
	// Flags returns the plug's flag set.
	Flags() Flags
	// Children returns the child plugs in attachment order.
	Children() []Plug
	// Child returns the named child, or nil.
	Child(name string) Plug
	// AcceptsChild reports whether the plug would accept the candidate
	// as a new child. A false result is an edit rejection, not an
	// error condition.
	AcceptsChild(child Plug) bool
	// CreateCounterpart creates a plug of the same shape and flags with
	// the given name and direction, for mirroring a plug's layout onto
	// a complementary node.
	CreateCounterpart(name string, direction Direction) Plug

	attach(child Plug)
}

// AddChild attaches child to parent, honoring the parent's
// child-acceptance policy.
func AddChild(parent, child Plug) error {
	if !parent.AcceptsChild(child) {
		return fmt.Errorf("graph: plug %q rejects child %q", parent.Name(), child.Name())
	}
	parent.attach(child)
	return nil
}

// basePlug implements the bookkeeping shared by all plug types.
type basePlug struct {
	name      string
	direction Direction
	flags     Flags
	children  []Plug
}

func (b *basePlug) Name() string         { return b.name }
func (b *basePlug) Direction() Direction { return b.direction }
func (b *basePlug) Flags() Flags         { return b.flags }

func (b *basePlug) Children() []Plug {
	return b.children
}

func (b *basePlug) Child(name string) Plug {
	for _, c := range b.children {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func (b *basePlug) attach(child Plug) {
	b.children = append(b.children, child)
}

// Package rxir implements the compiler's internal three-address IR: the
// Module/Function/Block data model, the ModuleBuilder that owns
// block/temporary identity during generation, a textual pretty-printer,
// and a verification/generation pass-manager scaffold.
package rxir

import "fmt"

// Type is RXIR's type grammar: void, a 32-bit signed integer, or a
// pointer to another Type. Additional integer widths are reserved for
// later but not required yet.
type Type struct {
	kind    typeKind
	Pointee *Type
}

type typeKind int

const (
	typeVoid typeKind = iota
	typeSigned32
	typePointer
)

// Void is the unit/void type.
var Void = Type{kind: typeVoid}

// Signed32 is a 32-bit signed integer.
var Signed32 = Type{kind: typeSigned32}

// PointerTo builds a pointer-to-inner type, mirroring the original
// source's rxir::Type::pointer convenience constructor.
func PointerTo(inner Type) Type {
	p := inner
	return Type{kind: typePointer, Pointee: &p}
}

// IsVoid reports whether t is the void type.
func (t Type) IsVoid() bool { return t.kind == typeVoid }

// IsPointer reports whether t is a pointer type.
func (t Type) IsPointer() bool { return t.kind == typePointer }

func (t Type) String() string {
	switch t.kind {
	case typeVoid:
		return "void"
	case typeSigned32:
		return "i32"
	case typePointer:
		return t.Pointee.String() + "*"
	default:
		return fmt.Sprintf("Type(%d)", int(t.kind))
	}
}

// BlockId identifies a Block, either by a monotonic generated index or by
// an ASCII name. Identity is the whole value, so BlockId is comparable
// and usable as a map key directly.
type BlockId struct {
	named bool
	index uint
	name  string
}

// GeneratedBlockId builds a BlockId from a monotonic counter value.
func GeneratedBlockId(index uint) BlockId {
	return BlockId{index: index}
}

// NamedBlockId builds a BlockId carrying an ASCII name.
func NamedBlockId(name string) BlockId {
	return BlockId{named: true, name: name}
}

func (id BlockId) String() string {
	if id.named {
		return "@" + id.name
	}
	return fmt.Sprintf("@%d", id.index)
}

// TempVarId identifies a temporary value, either by a monotonic generated
// index or by an ASCII name. Identity is the whole value.
type TempVarId struct {
	named bool
	index uint
	name  string
}

// GeneratedTempVarId builds a TempVarId from a monotonic counter value.
func GeneratedTempVarId(index uint) TempVarId {
	return TempVarId{index: index}
}

// NamedTempVarId builds a TempVarId carrying an ASCII name.
func NamedTempVarId(name string) TempVarId {
	return TempVarId{named: true, name: name}
}

func (id TempVarId) String() string {
	if id.named {
		return "%" + id.name
	}
	return fmt.Sprintf("%%%d", id.index)
}

// Signature is a function's name, used both for the builder's bookkeeping
// and for the textual form. Arguments and return type are kept on
// Function.
type Signature struct {
	Name string
}

// Function is one function in a Module: its signature, its (temp, type)
// arguments, declared return type, and entry block.
type Function struct {
	Signature Signature
	Arguments []TypedTempVar
	ReturnTy  Type
	Entry     BlockId
}

// TypedTempVar pairs a temporary id with its type, as carried by function
// argument lists.
type TypedTempVar struct {
	Id TempVarId
	Ty Type
}

// Block is an ordered, straight-line sequence of instructions. Blocks are
// owned by the Module, not by Function.
type Block struct {
	Instructions []Instruction
}

// Module is the RXIR compilation unit: a named collection of functions
// sharing a flat block table.
type Module struct {
	Name      string
	Functions []Function
	Blocks    map[BlockId]*Block
}

// Block looks up a block by id, panicking if it is not present — callers
// hold the invariant that every referenced BlockId exists in the module.
func (m *Module) Block(id BlockId) *Block {
	b, ok := m.Blocks[id]
	if !ok {
		panic(fmt.Sprintf("rxir: block %s not found in module %q", id, m.Name))
	}
	return b
}

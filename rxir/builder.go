package rxir

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
)

// varKey keys the builder's per-(block,temp) type map.
type varKey struct {
	block BlockId
	id    TempVarId
}

// ModuleBuilder owns identifier allocation for blocks and temporaries and
// accumulates the in-progress module until Build transfers ownership.
type ModuleBuilder struct {
	counter   uint
	functions *arraylist.List // of Function
	blocks    map[BlockId]*arraylist.List // block -> its instructions, in insertion order
	varTypes  map[varKey]Type
}

// NewModuleBuilder returns an empty builder.
func NewModuleBuilder() *ModuleBuilder {
	return &ModuleBuilder{
		functions: arraylist.New(),
		blocks:    make(map[BlockId]*arraylist.List),
		varTypes:  make(map[varKey]Type),
	}
}

// CreateBlock returns a fresh BlockId (Named if name is non-empty,
// otherwise Generated from the shared counter) and creates an empty
// block for it.
func (b *ModuleBuilder) CreateBlock(name string) BlockId {
	var id BlockId
	if name != "" {
		id = NamedBlockId(name)
	} else {
		id = GeneratedBlockId(b.counter)
		b.counter++
	}
	b.blocks[id] = arraylist.New()
	return id
}

// CreateValue returns a fresh TempVarId (Named if name is non-empty,
// otherwise Generated from the shared counter) and records its type
// keyed by (block, id).
func (b *ModuleBuilder) CreateValue(block BlockId, ty Type, name string) TempVarId {
	var id TempVarId
	if name != "" {
		id = NamedTempVarId(name)
	} else {
		id = GeneratedTempVarId(b.counter)
		b.counter++
	}
	b.varTypes[varKey{block: block, id: id}] = ty
	return id
}

// BuildAlloca creates a value of type Pointer(ty) and appends
// Alloca{dest, ty} to block.
func (b *ModuleBuilder) BuildAlloca(block BlockId, ty Type, name string) TempVarId {
	dest := b.CreateValue(block, PointerTo(ty), name)
	b.BuildInstruction(block, AllocaInstruction(dest, ty))
	return dest
}

// GetVarType looks up the type of id as created against block.
// Precondition: id must have been created against this exact block.
func (b *ModuleBuilder) GetVarType(block BlockId, id TempVarId) Type {
	ty, ok := b.varTypes[varKey{block: block, id: id}]
	if !ok {
		panic(fmt.Sprintf("rxir: %s was never created against block %s", id, block))
	}
	return ty
}

// BuildFunction records a new function.
func (b *ModuleBuilder) BuildFunction(sig Signature, arguments []TypedTempVar, returnTy Type, entry BlockId) {
	b.functions.Add(Function{
		Signature: sig,
		Arguments: arguments,
		ReturnTy:  returnTy,
		Entry:     entry,
	})
}

// BuildInstruction appends instr to block.
func (b *ModuleBuilder) BuildInstruction(block BlockId, instr Instruction) {
	list, ok := b.blocks[block]
	if !ok {
		panic(fmt.Sprintf("rxir: block %s was never created", block))
	}
	list.Add(instr)
}

// Build consumes the builder and returns the final Module named
// moduleName. The builder must not be used afterward.
func (b *ModuleBuilder) Build(moduleName string) *Module {
	functions := make([]Function, b.functions.Size())
	for i := 0; i < b.functions.Size(); i++ {
		v, _ := b.functions.Get(i)
		functions[i] = v.(Function)
	}

	blocks := make(map[BlockId]*Block, len(b.blocks))
	for id, list := range b.blocks {
		instrs := make([]Instruction, list.Size())
		for i := 0; i < list.Size(); i++ {
			v, _ := list.Get(i)
			instrs[i] = v.(Instruction)
		}
		blocks[id] = &Block{Instructions: instrs}
	}

	return &Module{Name: moduleName, Functions: functions, Blocks: blocks}
}

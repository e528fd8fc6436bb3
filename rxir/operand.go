package rxir

import "fmt"

// Operand is either a compile-time constant or a reference to a
// temporary; both carry their own Type so a consumer never has to look
// it up.
type Operand struct {
	Immediate bool
	Ty        Type
	Value     uint64
	TempVar   TempVarId
}

// ImmediateOperand builds a constant operand of type ty and value v.
func ImmediateOperand(ty Type, v uint64) Operand {
	return Operand{Immediate: true, Ty: ty, Value: v}
}

// TempVarOperand builds an operand referencing the temporary id, typed ty.
func TempVarOperand(ty Type, id TempVarId) Operand {
	return Operand{Ty: ty, TempVar: id}
}

func (o Operand) String() string {
	if o.Immediate {
		return fmt.Sprintf("%d%s", o.Value, o.Ty)
	}
	return o.TempVar.String()
}

// Instruction is one RXIR instruction. Exactly one of its fields is set,
// selected by which constructor built it.
type Instruction struct {
	Alloca *AllocaInstr
	Return *ReturnInstr
	Load   *LoadInstr
	Store  *StoreInstr
}

// AllocaInstr allocates stack space for ty, producing a Pointer(ty)
// temporary.
type AllocaInstr struct {
	Dest TempVarId
	Ty   Type
}

// ReturnInstr is a function's terminator; Value is nil for a bare
// `return;` of a void function.
type ReturnInstr struct {
	Value *Operand
}

// LoadInstr reads through a pointer-typed src into dest. No lowering rule
// emits a Load yet; it exists in the instruction set so a future lowering
// rule and pretty-printer clause have somewhere to go.
type LoadInstr struct {
	Dest TempVarId
	Src  TempVarId
}

// StoreInstr writes src through a pointer-typed dest. Unreachable from any
// lowering rule today, same status as LoadInstr.
type StoreInstr struct {
	Dest TempVarId
	Src  Operand
}

// AllocaInstruction wraps an AllocaInstr as an Instruction.
func AllocaInstruction(dest TempVarId, ty Type) Instruction {
	return Instruction{Alloca: &AllocaInstr{Dest: dest, Ty: ty}}
}

// ReturnInstruction wraps a ReturnInstr as an Instruction.
func ReturnInstruction(value *Operand) Instruction {
	return Instruction{Return: &ReturnInstr{Value: value}}
}

// LoadInstruction wraps a LoadInstr as an Instruction.
func LoadInstruction(dest, src TempVarId) Instruction {
	return Instruction{Load: &LoadInstr{Dest: dest, Src: src}}
}

// StoreInstruction wraps a StoreInstr as an Instruction.
func StoreInstruction(dest TempVarId, src Operand) Instruction {
	return Instruction{Store: &StoreInstr{Dest: dest, Src: src}}
}

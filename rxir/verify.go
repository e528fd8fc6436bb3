package rxir

import "fmt"

// VerifyError reports a Module that fails structural invariants: every
// function's entry block must exist, and every TempVar operand used in
// it must trace back to a function argument or to an Alloca or Load
// destination earlier in the block. Values created through
// ModuleBuilder.CreateValue are not recorded in a Module, so a use of one
// that is not also an argument is reported as unknown.
type VerifyError struct {
	Function string
	Detail   string
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("rxir: function %q: %s", e.Function, e.Detail)
}

// StructureVerifyPass checks that every function in a Module has a valid
// entry block and that every temporary its entry block uses is properly
// bound. It is registered by irgen.Generate so every module it produces
// is self-checked before being handed to a backend.
var StructureVerifyPass VerifyPass = VerifyPassFunc(verifyStructure)

func verifyStructure(m *Module) error {
	for _, fn := range m.Functions {
		if _, ok := m.Blocks[fn.Entry]; !ok {
			return &VerifyError{
				Function: fn.Signature.Name,
				Detail:   fmt.Sprintf("entry block %s not found in module", fn.Entry),
			}
		}

		known := map[TempVarId]bool{}
		for _, arg := range fn.Arguments {
			known[arg.Id] = true
		}

		entry := m.Block(fn.Entry)
		for _, instr := range entry.Instructions {
			switch {
			case instr.Alloca != nil:
				known[instr.Alloca.Dest] = true
			case instr.Return != nil:
				if err := checkOperandUse(fn, instr.Return.Value, known); err != nil {
					return err
				}
			case instr.Load != nil:
				if !known[instr.Load.Src] {
					return &VerifyError{Function: fn.Signature.Name, Detail: fmt.Sprintf("load from unknown temp %s", instr.Load.Src)}
				}
				known[instr.Load.Dest] = true
			case instr.Store != nil:
				if !known[instr.Store.Dest] {
					return &VerifyError{Function: fn.Signature.Name, Detail: fmt.Sprintf("store to unknown temp %s", instr.Store.Dest)}
				}
				if err := checkOperandUse(fn, &instr.Store.Src, known); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func checkOperandUse(fn Function, op *Operand, known map[TempVarId]bool) error {
	if op == nil || op.Immediate {
		return nil
	}
	if !known[op.TempVar] {
		return &VerifyError{Function: fn.Signature.Name, Detail: fmt.Sprintf("operand references unknown temp %s", op.TempVar)}
	}
	return nil
}

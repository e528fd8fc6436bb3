package rxir

import (
	"fmt"
	"strings"
)

// String renders m in RXIR's stable textual form. It is write-only: no
// parser reads this format back.
func (m *Module) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "module %s\n", m.Name)
	for i, fn := range m.Functions {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writeFunction(&sb, m, fn)
	}
	return sb.String()
}

func writeFunction(sb *strings.Builder, m *Module, fn Function) {
	fmt.Fprintf(sb, "fn %s %s (", fn.ReturnTy, fn.Signature.Name)
	for i, arg := range fn.Arguments {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "%s: %s", arg.Id, arg.Ty)
	}
	sb.WriteString(") {\n")

	for _, id := range RelatedBlocks(m, fn) {
		fmt.Fprintf(sb, "%s:\n", id)
		block := m.Block(id)
		for _, instr := range block.Instructions {
			sb.WriteString("    ")
			writeInstruction(sb, instr)
			sb.WriteByte('\n')
		}
	}

	sb.WriteString("}\n")
}

func writeInstruction(sb *strings.Builder, instr Instruction) {
	switch {
	case instr.Alloca != nil:
		fmt.Fprintf(sb, "%s = alloca %s", instr.Alloca.Dest, instr.Alloca.Ty)
	case instr.Return != nil:
		if instr.Return.Value == nil {
			sb.WriteString("return void")
		} else {
			op := *instr.Return.Value
			fmt.Fprintf(sb, "return %s %s", op.Ty, op)
		}
	case instr.Load != nil:
		panic("rxir: Load has no textual form yet")
	case instr.Store != nil:
		panic("rxir: Store has no textual form yet")
	default:
		panic("rxir: instruction with no variant set")
	}
}

package rxir_test

import (
	"testing"

	"github.com/hxyulin/redoxc/rxir"
	"github.com/stretchr/testify/require"
)

func TestModule_String_ReturnImmediate(t *testing.T) {
	b := rxir.NewModuleBuilder()
	entry := b.CreateBlock("")
	b.BuildInstruction(entry, rxir.ReturnInstruction(ptrOperand(rxir.ImmediateOperand(rxir.Signed32, 0))))
	b.BuildFunction(rxir.Signature{Name: "main"}, nil, rxir.Signed32, entry)
	m := b.Build("main")

	want := "module main\nfn i32 main () {\n@0:\n    return i32 0i32\n}\n"
	require.Equal(t, want, m.String())
}

func TestModule_String_ReturnArgument(t *testing.T) {
	b := rxir.NewModuleBuilder()
	entry := b.CreateBlock("")
	arg := b.CreateValue(entry, rxir.Signed32, "")
	b.BuildInstruction(entry, rxir.ReturnInstruction(ptrOperand(rxir.TempVarOperand(rxir.Signed32, arg))))
	b.BuildFunction(rxir.Signature{Name: "add"}, []rxir.TypedTempVar{{Id: arg, Ty: rxir.Signed32}}, rxir.Signed32, entry)
	m := b.Build("main")

	want := "module main\nfn i32 add (%0: i32) {\n@0:\n    return i32 %0\n}\n"
	require.Equal(t, want, m.String())
}

func TestModule_String_Deterministic(t *testing.T) {
	b := rxir.NewModuleBuilder()
	entry := b.CreateBlock("")
	b.BuildInstruction(entry, rxir.ReturnInstruction(nil))
	b.BuildFunction(rxir.Signature{Name: "foo"}, nil, rxir.Void, entry)
	m := b.Build("main")

	require.Equal(t, m.String(), m.String())
}

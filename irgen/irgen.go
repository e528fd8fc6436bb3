// Package irgen implements the IR generator: it lowers a typed AST into an
// rxir.Module via an rxir.ModuleBuilder.
package irgen

import (
	"fmt"

	"github.com/hxyulin/redoxc/ast"
	"github.com/hxyulin/redoxc/lexer"
	"github.com/hxyulin/redoxc/rxir"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'redoxc.irgen'
func tracer() tracing.Trace {
	return tracing.Select("redoxc.irgen")
}

// ModuleName names the generated module.
type ModuleName struct {
	Name string
}

// blockMeta maps a source-variable name to the TempVarId it was bound to
// within one function's entry block.
type blockMeta struct {
	vars map[string]rxir.TempVarId
}

func newBlockMeta() *blockMeta {
	return &blockMeta{vars: make(map[string]rxir.TempVarId)}
}

func (m *blockMeta) bind(name string, id rxir.TempVarId) { m.vars[name] = id }

func (m *blockMeta) resolve(name string) (rxir.TempVarId, bool) {
	id, ok := m.vars[name]
	return id, ok
}

// Generate lowers tops (already type-checked) into a named Module, then
// runs rxir.StructureVerifyPass over the result through a PassManager so a
// self-inconsistent module is never handed to a backend.
func Generate(name ModuleName, tops []ast.TopLevel) (*rxir.Module, error) {
	g := &generator{builder: rxir.NewModuleBuilder()}
	for i := range tops {
		g.lowerTopLevel(&tops[i])
	}
	module := g.builder.Build(name.Name)

	pm := rxir.NewPassManager()
	pm.AddVerifyPass(rxir.StructureVerifyPass)
	if err := pm.Run(module); err != nil {
		return nil, err
	}
	return module, nil
}

type generator struct {
	builder *rxir.ModuleBuilder
}

func (g *generator) lowerTopLevel(tl *ast.TopLevel) {
	if tl.Kind.Expr == nil || tl.Kind.Expr.Kind.FunctionDef == nil {
		panic("irgen: top level is not a FunctionDef")
	}
	g.lowerFunctionDef(tl.Kind.Expr.Kind.FunctionDef)
}

func (g *generator) lowerFunctionDef(def *ast.FunctionDef) {
	tracer().Debugf("irgen: lowering function %q", def.Name)

	entry := g.builder.CreateBlock("")

	meta := newBlockMeta()
	arguments := make([]rxir.TypedTempVar, len(def.Arguments))
	for i, arg := range def.Arguments {
		ty := lowerType(arg.Ty)
		id := g.builder.CreateValue(entry, ty, "")
		meta.bind(arg.Name, id)
		arguments[i] = rxir.TypedTempVar{Id: id, Ty: ty}
	}

	returnTy := rxir.Void
	if def.ReturnTy != nil {
		returnTy = lowerType(*def.ReturnTy)
	}

	g.builder.BuildFunction(rxir.Signature{Name: def.Name}, arguments, returnTy, entry)

	for i := range def.Body.Statements {
		g.lowerStatement(entry, meta, &def.Body.Statements[i])
	}
}

func (g *generator) lowerStatement(block rxir.BlockId, meta *blockMeta, expr *ast.Expr) {
	switch {
	case expr.Kind.Return != nil:
		g.lowerReturn(block, meta, expr.Kind.Return)
	default:
		panic(fmt.Sprintf("irgen: unimplemented statement kind for %+v", expr.Kind))
	}
}

func (g *generator) lowerReturn(block rxir.BlockId, meta *blockMeta, ret *ast.ReturnExpr) {
	if ret.Value == nil {
		g.builder.BuildInstruction(block, rxir.ReturnInstruction(nil))
		return
	}

	operand := g.lowerOperand(block, meta, ret.Value)
	g.builder.BuildInstruction(block, rxir.ReturnInstruction(&operand))
}

func (g *generator) lowerOperand(block rxir.BlockId, meta *blockMeta, expr *ast.Expr) rxir.Operand {
	switch {
	case expr.Kind.Literal != nil && expr.Kind.Literal.Number != nil:
		n := expr.Kind.Literal.Number
		return rxir.ImmediateOperand(lowerNumberType(n.Kind), n.Value)

	case expr.Kind.Variable != nil:
		name := *expr.Kind.Variable
		id, ok := meta.resolve(name)
		if !ok {
			panic(fmt.Sprintf("irgen: unresolved variable %q (type checker should have rejected this)", name))
		}
		ty := g.builder.GetVarType(block, id)
		return rxir.TempVarOperand(ty, id)

	default:
		panic(fmt.Sprintf("irgen: unimplemented operand kind for %+v", expr.Kind))
	}
}

// lowerType maps an ast.Type to its RXIR translation. Only the accepted
// subset — unit and Signed32 — is implemented; anything else panics.
func lowerType(t ast.Type) rxir.Type {
	if t.IsUnit() {
		return rxir.Void
	}
	if t.IsNumber() {
		return lowerNumberType(*t.Number)
	}
	panic(fmt.Sprintf("irgen: unimplemented AST type %s", t))
}

func lowerNumberType(n lexer.NumberType) rxir.Type {
	if n.Kind == lexer.Signed && n.Bits == 32 {
		return rxir.Signed32
	}
	panic(fmt.Sprintf("irgen: unimplemented number type %+v", n))
}

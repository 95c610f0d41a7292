// Package codegen emits a minimized transition table as Go source, so a
// lexer's table can ship precompiled instead of rebuilt from patterns at
// process startup. It is grounded on KromDaniel/regengo's
// internal/compiler.Compiler, which builds a jen.File and appends
// jen.Code statements describing a compiled matcher; this package borrows
// the same jennifer-based emission style for a data table instead of a
// hand-unrolled matcher function.
package codegen

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/phorward/lexcore/dfa"
)

// Config controls the generated file's package name and the Go identifier
// the table is assigned to.
type Config struct {
	Package   string
	VarName   string
	StartName string
}

// Generate renders d as a Go source file defining a package-level table
// variable and start-state constant of the requested names.
func Generate(d *dfa.DFA, cfg Config) (string, error) {
	f := jen.NewFile(cfg.Package)
	f.HeaderComment("Code generated by lexcore/dfa/codegen. DO NOT EDIT.")

	f.Const().Id(cfg.StartName).Op("=").Lit(int(d.Start))

	rowExprs := make([]jen.Code, len(d.Rows))
	for i := range d.Rows {
		rowExprs[i] = rowLiteral(&d.Rows[i])
	}
	f.Var().Id(cfg.VarName).Op("=").Index().Qual("github.com/phorward/lexcore/dfa", "Row").Values(rowExprs...)

	return fmt.Sprintf("%#v", f), nil
}

func rowLiteral(r *dfa.Row) jen.Code {
	trans := make([]jen.Code, len(r.Trans))
	for i, t := range r.Trans {
		trans[i] = jen.Qual("github.com/phorward/lexcore/dfa", "Trans").Values(jen.Dict{
			jen.Id("Lo"):     jen.Lit(int32(t.Lo)),
			jen.Id("Hi"):     jen.Lit(int32(t.Hi)),
			jen.Id("Target"): jen.Lit(uint32(t.Target)),
		})
	}
	return jen.Values(jen.Dict{
		jen.Id("Trans"):    jen.Index().Qual("github.com/phorward/lexcore/dfa", "Trans").Values(trans...),
		jen.Id("Default"):  jen.Lit(uint32(r.Default)),
		jen.Id("AcceptID"): jen.Lit(r.AcceptID),
		jen.Id("Flags"):    jen.Lit(uint8(r.Flags)),
		jen.Id("RefMask"):  jen.Lit(r.RefMask),
	})
}

package ssa

import (
	"minilang/internal/ast"
)

// rewriteExpr resolves every variable reference through the current
// environment, rebuilding arithmetic and comparison nodes around the
// rewritten children. Comparators arrive already normalized by the AST
// producer, so no unwrapping happens here. Expression kinds outside the
// closed set are returned unmodified; the fallback is part of the contract,
// not an error path.
func (c *Converter) rewriteExpr(expr ast.Expr) ast.Expr {
	switch e := expr.(type) {
	case *ast.NumberLit:
		return e
	case *ast.VarExpr:
		return &ast.VarExpr{Pos: e.Pos, Name: c.current(e.Name)}
	case *ast.BinaryExpr:
		return &ast.BinaryExpr{
			Pos:   e.Pos,
			Op:    e.Op,
			Left:  c.rewriteExpr(e.Left),
			Right: c.rewriteExpr(e.Right),
		}
	case *ast.CondExpr:
		return &ast.CondExpr{
			Pos:   e.Pos,
			Cmp:   e.Cmp,
			Left:  c.rewriteExpr(e.Left),
			Right: c.rewriteExpr(e.Right),
		}
	default:
		return expr
	}
}

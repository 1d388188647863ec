package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"

	"minilang/internal/ast"
)

// Lower flattens the grammar tree into the analyzer's AST. Comments vanish
// here, and comparator tokens are normalized into the closed ast.Comparator
// set so later passes never see a raw token.
func Lower(program *Program) []ast.Stmt {
	return lowerStatements(program.Statements)
}

func lowerStatements(stmts []*Statement) []ast.Stmt {
	out := make([]ast.Stmt, 0, len(stmts))
	for _, s := range stmts {
		if lowered := lowerStatement(s); lowered != nil {
			out = append(out, lowered)
		}
	}
	return out
}

func lowerStatement(s *Statement) ast.Stmt {
	switch {
	case s.Assign != nil:
		return lowerAssignment(s.Assign)
	case s.When != nil:
		return &ast.IfStmt{
			Pos:  position(s.When.Pos),
			Cond: lowerExpr(s.When.Cond),
			Then: lowerBlock(s.When.Then),
			Else: lowerBlock(s.When.Else),
		}
	case s.Repeat != nil:
		return &ast.WhileStmt{
			Pos:  position(s.Repeat.Pos),
			Cond: lowerExpr(s.Repeat.Cond),
			Body: lowerBlock(s.Repeat.Body),
		}
	case s.Iterate != nil:
		return &ast.ForStmt{
			Pos:    position(s.Iterate.Pos),
			Init:   lowerAssignment(s.Iterate.Init),
			Cond:   lowerExpr(s.Iterate.Cond),
			Update: lowerAssignment(s.Iterate.Update),
			Body:   lowerBlock(s.Iterate.Body),
		}
	case s.Verify != nil:
		return &ast.AssertStmt{
			Pos:  position(s.Verify.Pos),
			Cond: lowerExpr(s.Verify.Cond),
		}
	default:
		// Comments contribute no statements.
		return nil
	}
}

func lowerAssignment(a *Assignment) *ast.AssignStmt {
	return &ast.AssignStmt{
		Pos:   position(a.Pos),
		Name:  a.Name,
		Value: lowerExpr(a.Value),
	}
}

func lowerBlock(b *Block) []ast.Stmt {
	if b == nil {
		return nil
	}
	return lowerStatements(b.Statements)
}

func lowerExpr(e *Expr) ast.Expr {
	left := lowerArith(e.Left)
	if e.Cmp == "" {
		return left
	}
	return &ast.CondExpr{
		Pos:   position(e.Pos),
		Cmp:   ast.ComparatorFromToken(e.Cmp),
		Left:  left,
		Right: lowerArith(e.Right),
	}
}

// lowerArith folds the operator tail left to right, so "a - b + c" becomes
// add(sub(a, b), c).
func lowerArith(a *Arith) ast.Expr {
	expr := lowerTerm(a.Head)
	for _, op := range a.Tail {
		expr = &ast.BinaryExpr{
			Pos:   position(a.Pos),
			Op:    ast.BinaryOpFromSymbol(op.Op),
			Left:  expr,
			Right: lowerTerm(op.Term),
		}
	}
	return expr
}

func lowerTerm(t *Term) ast.Expr {
	expr := lowerFactor(t.Head)
	for _, op := range t.Tail {
		expr = &ast.BinaryExpr{
			Pos:   position(t.Pos),
			Op:    ast.BinaryOpFromSymbol(op.Op),
			Left:  expr,
			Right: lowerFactor(op.Factor),
		}
	}
	return expr
}

func lowerFactor(f *Factor) ast.Expr {
	switch {
	case f.Number != nil:
		return &ast.NumberLit{Pos: position(f.Pos), Value: *f.Number}
	case f.Var != nil:
		return &ast.VarExpr{Pos: position(f.Pos), Name: *f.Var}
	case f.Paren != nil:
		return lowerExpr(f.Paren)
	default:
		return &ast.BadExpr{Pos: position(f.Pos), Message: "empty factor"}
	}
}

func position(pos lexer.Position) ast.Position {
	return ast.Position{
		Filename: pos.Filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}

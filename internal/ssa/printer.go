package ssa

import (
	"fmt"
	"strconv"
	"strings"

	"minilang/internal/ast"
)

// Format renders an SSA stream to text, one statement per line.
// The output is a presentation artifact: expressions carry no parentheses,
// so it is not guaranteed to re-parse to the original tree.
func Format(stmts []Statement) string {
	lines := make([]string, 0, len(stmts))
	for _, s := range stmts {
		lines = append(lines, formatStatement(s))
	}
	return strings.Join(lines, "\n")
}

func formatStatement(stmt Statement) string {
	switch s := stmt.(type) {
	case *Def:
		return fmt.Sprintf("%s := %s", s.Name, FormatExpr(s.Value))
	case *Branch:
		return fmt.Sprintf("%s %s", s.Kind, FormatExpr(s.Cond))
	case *Assert:
		return fmt.Sprintf("assert(%s)", FormatExpr(s.Cond))
	default:
		return fmt.Sprintf("%v", stmt)
	}
}

// FormatExpr renders a rewritten expression without parentheses.
func FormatExpr(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.VarExpr:
		return e.Name
	case *ast.NumberLit:
		return strconv.Itoa(e.Value)
	case *ast.BinaryExpr:
		return fmt.Sprintf("%s %s %s", FormatExpr(e.Left), e.Op.Symbol(), FormatExpr(e.Right))
	case *ast.CondExpr:
		return fmt.Sprintf("%s %s %s", FormatExpr(e.Left), e.Cmp, FormatExpr(e.Right))
	default:
		return expr.String()
	}
}

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a statement sequence back to MiniLang surface syntax.
// The rendering is lossy: expressions are printed without parentheses.
func Print(stmts []Stmt) string {
	parts := make([]string, 0, len(stmts))
	for _, s := range stmts {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, "\n")
}

func (a *AssignStmt) String() string {
	return fmt.Sprintf("%s = %s;", a.Name, a.Value)
}

func (i *IfStmt) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("when (%s) ", i.Cond))
	writeBlock(&b, i.Then)
	b.WriteString(" otherwise ")
	writeBlock(&b, i.Else)

	return b.String()
}

func (w *WhileStmt) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("repeat (%s) ", w.Cond))
	writeBlock(&b, w.Body)

	return b.String()
}

func (f *ForStmt) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("iterate (%s %s; %s) ", f.Init, f.Cond, f.Update))
	writeBlock(&b, f.Body)

	return b.String()
}

func (a *AssertStmt) String() string {
	return fmt.Sprintf("verify(%s);", a.Cond)
}

func (b *BadStmt) String() string {
	return fmt.Sprintf("BadStmt: %s", b.Message)
}

func (n *NumberLit) String() string {
	return strconv.Itoa(n.Value)
}

func (v *VarExpr) String() string {
	return v.Name
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", b.Left, b.Op.Symbol(), b.Right)
}

func (c *CondExpr) String() string {
	return fmt.Sprintf("%s %s %s", c.Left, c.Cmp, c.Right)
}

func (b *BadExpr) String() string {
	return fmt.Sprintf("BadExpr: %s", b.Message)
}

func writeBlock(b *strings.Builder, stmts []Stmt) {
	b.WriteString("{\n")
	for _, s := range stmts {
		b.WriteString("  " + strings.ReplaceAll(s.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")
}

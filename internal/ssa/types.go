package ssa

import (
	"minilang/internal/ast"
)

// Statement is the closed set of SSA stream entries.
type Statement interface {
	isStatement()
}

// BranchKind records which control construct produced a Branch entry.
type BranchKind string

const (
	BranchIf    BranchKind = "if"
	BranchWhile BranchKind = "while"
	BranchFor   BranchKind = "for"
)

// Def binds a versioned name to a rewritten right-hand side.
// Example: x_2 := x_1 + 5
type Def struct {
	Name  string
	Value ast.Expr
}

// Branch records a control condition without altering the environment.
// Example: if x_1 > y_1
type Branch struct {
	Kind BranchKind
	Cond ast.Expr
}

// Assert records a rewritten verification condition.
// Example: assert(z_2 > 0)
type Assert struct {
	Cond ast.Expr
}

func (*Def) isStatement() {}

func (*Branch) isStatement() {}

func (*Assert) isStatement() {}

package ssa

// This file provides the main entry point for the SSA system.
// The converter lowers a MiniLang AST into a linear stream of versioned
// statements; no basic blocks or phi merges are built, so the stream follows
// source order rather than dominance.

import (
	"minilang/internal/ast"
)

// Convert lowers a statement sequence with a fresh Converter.
func Convert(program []ast.Stmt) []Statement {
	return NewConverter().Convert(program)
}

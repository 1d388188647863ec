package ssa

import (
	"fmt"

	"minilang/internal/ast"
)

// Converter lowers a MiniLang AST into a linear SSA statement stream.
//
// Each Converter exclusively owns its version counter and environment.
// Conversions of unrelated programs need separate Converters; sharing one
// leaks version numbers and variable bindings across inputs. Reusing a
// Converter on purpose continues the version sequence, which is what an
// incremental session wants.
type Converter struct {
	counter map[string]int    // highest version issued per variable, e.g. {"x": 3}
	env     map[string]string // current SSA name per variable, e.g. {"x": "x_3"}
	out     []Statement
}

// NewConverter creates a Converter with empty state.
func NewConverter() *Converter {
	return &Converter{
		counter: make(map[string]int),
		env:     make(map[string]string),
	}
}

// Convert lowers a statement sequence and returns the SSA statements it
// produced. The returned slice is owned by the caller; counter and
// environment state persists on the Converter for subsequent calls.
func (c *Converter) Convert(stmts []ast.Stmt) []Statement {
	c.out = nil
	for _, s := range stmts {
		c.convertStmt(s)
	}
	return c.out
}

func (c *Converter) convertStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.AssignStmt:
		c.convertAssign(s)
	case *ast.IfStmt:
		c.convertIf(s)
	case *ast.WhileStmt:
		c.convertWhile(s)
	case *ast.ForStmt:
		c.convertFor(s)
	case *ast.AssertStmt:
		c.convertAssert(s)
	default:
		// Statement kinds outside the converted set are skipped without
		// error, an intentional compatibility choice.
	}
}

// convertAssign rewrites the right-hand side against the current environment
// before allocating the new version, so "x = x + 1" reads the previous x.
func (c *Converter) convertAssign(s *ast.AssignStmt) {
	value := c.rewriteExpr(s.Value)
	c.emit(&Def{Name: c.newVersion(s.Name), Value: value})
}

// convertIf emits the branch condition followed by the direct assignments of
// both arms, unconditionally and in sequence. No phi merge is produced: when
// both arms assign the same variable the later Def wins for subsequent reads,
// consistent with the single linear environment.
func (c *Converter) convertIf(s *ast.IfStmt) {
	c.emit(&Branch{Kind: BranchIf, Cond: c.rewriteExpr(s.Cond)})
	c.convertBlockAssigns(s.Then)
	c.convertBlockAssigns(s.Else)
}

// convertWhile emits the guard and a single static pass over the body.
// The body is not unrolled and no fixed point is computed.
func (c *Converter) convertWhile(s *ast.WhileStmt) {
	c.emit(&Branch{Kind: BranchWhile, Cond: c.rewriteExpr(s.Cond)})
	c.convertBlockAssigns(s.Body)
}

// convertFor runs the initializer through the ordinary assignment path, then
// emits the guard, one static pass over the body, and the update assignment.
func (c *Converter) convertFor(s *ast.ForStmt) {
	if s.Init != nil {
		c.convertAssign(s.Init)
	}
	c.emit(&Branch{Kind: BranchFor, Cond: c.rewriteExpr(s.Cond)})
	c.convertBlockAssigns(s.Body)
	if s.Update != nil {
		c.convertAssign(s.Update)
	}
}

// convertAssert never allocates a version.
func (c *Converter) convertAssert(s *ast.AssertStmt) {
	c.emit(&Assert{Cond: c.rewriteExpr(s.Cond)})
}

// convertBlockAssigns processes only the direct assignments of a block.
// Control statements nested inside a branch or loop body are deliberately
// not walked: the converter flattens exactly one level.
func (c *Converter) convertBlockAssigns(body []ast.Stmt) {
	for _, s := range body {
		if assign, ok := s.(*ast.AssignStmt); ok {
			c.convertAssign(assign)
		}
	}
}

func (c *Converter) emit(s Statement) {
	c.out = append(c.out, s)
}

// newVersion allocates the next version of a variable and rebinds the
// environment to it. Versions are monotonic per name, so every Def name is
// unique within the Converter's lifetime.
func (c *Converter) newVersion(name string) string {
	n := c.counter[name] + 1
	c.counter[name] = n
	versioned := fmt.Sprintf("%s_%d", name, n)
	c.env[name] = versioned
	return versioned
}

// current resolves a variable to its latest SSA name. A variable never
// assigned resolves to its bare source name and is treated as a free
// parameter reference.
func (c *Converter) current(name string) string {
	if versioned, ok := c.env[name]; ok {
		return versioned
	}
	return name
}

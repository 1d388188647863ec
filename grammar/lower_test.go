package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minilang/internal/ast"
)

func lowerSource(t *testing.T, source string) []ast.Stmt {
	t.Helper()
	return Lower(parseSource(t, source))
}

func TestLowerAssignment(t *testing.T) {
	stmts := lowerSource(t, "x = 10;")
	require.Len(t, stmts, 1)

	assign, ok := stmts[0].(*ast.AssignStmt)
	require.True(t, ok, "statement should lower to *ast.AssignStmt")
	assert.Equal(t, "x", assign.Name)

	lit, ok := assign.Value.(*ast.NumberLit)
	require.True(t, ok)
	assert.Equal(t, 10, lit.Value)
}

func TestLowerPrecedence(t *testing.T) {
	stmts := lowerSource(t, "a = 1 + 2 * 3;")
	assign := stmts[0].(*ast.AssignStmt)

	sum, ok := assign.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, sum.Op)

	product, ok := sum.Right.(*ast.BinaryExpr)
	require.True(t, ok, "multiplication should bind tighter than addition")
	assert.Equal(t, ast.OpMul, product.Op)
}

func TestLowerLeftAssociativity(t *testing.T) {
	stmts := lowerSource(t, "a = 1 - 2 + 3;")
	assign := stmts[0].(*ast.AssignStmt)

	sum := assign.Value.(*ast.BinaryExpr)
	assert.Equal(t, ast.OpAdd, sum.Op)

	difference, ok := sum.Left.(*ast.BinaryExpr)
	require.True(t, ok, "operator chains should fold left to right")
	assert.Equal(t, ast.OpSub, difference.Op)
}

func TestLowerParenthesizedGrouping(t *testing.T) {
	stmts := lowerSource(t, "a = (1 + 2) * 3;")
	assign := stmts[0].(*ast.AssignStmt)

	product := assign.Value.(*ast.BinaryExpr)
	assert.Equal(t, ast.OpMul, product.Op)

	sum, ok := product.Left.(*ast.BinaryExpr)
	require.True(t, ok, "parentheses should override precedence")
	assert.Equal(t, ast.OpAdd, sum.Op)
}

func TestLowerComparatorNormalization(t *testing.T) {
	stmts := lowerSource(t, "verify(x >= 1);")
	verify := stmts[0].(*ast.AssertStmt)

	condExpr, ok := verify.Cond.(*ast.CondExpr)
	require.True(t, ok)
	assert.Equal(t, ast.CmpGe, condExpr.Cmp)
}

func TestLowerWhen(t *testing.T) {
	stmts := lowerSource(t, `
when (x > y) {
    z = 1;
} otherwise {
    z = 2;
}
`)
	ifStmt, ok := stmts[0].(*ast.IfStmt)
	require.True(t, ok)
	require.Len(t, ifStmt.Then, 1)
	require.Len(t, ifStmt.Else, 1)

	guard, ok := ifStmt.Cond.(*ast.CondExpr)
	require.True(t, ok)
	assert.Equal(t, ast.CmpGt, guard.Cmp)
}

func TestLowerIterate(t *testing.T) {
	stmts := lowerSource(t, `
iterate (i = 0; i < 3; i = i + 1;) {
    s = s + i;
}
`)
	forStmt, ok := stmts[0].(*ast.ForStmt)
	require.True(t, ok)
	require.NotNil(t, forStmt.Init)
	require.NotNil(t, forStmt.Update)
	assert.Equal(t, "i", forStmt.Init.Name)
	assert.Equal(t, "i", forStmt.Update.Name)
	require.Len(t, forStmt.Body, 1)
}

func TestLowerDropsComments(t *testing.T) {
	stmts := lowerSource(t, `
// nothing to see here
x = 1;
`)
	require.Len(t, stmts, 1, "comments should contribute no statements")
	_, ok := stmts[0].(*ast.AssignStmt)
	assert.True(t, ok)
}

func TestLowerKeepsPositions(t *testing.T) {
	stmts := lowerSource(t, "x = 1;\ny = 2;")
	require.Len(t, stmts, 2)

	first := stmts[0].(*ast.AssignStmt)
	second := stmts[1].(*ast.AssignStmt)
	assert.Equal(t, 1, first.Pos.Line)
	assert.Equal(t, 2, second.Pos.Line)
	assert.Equal(t, "test.ml", first.Pos.Filename)
}

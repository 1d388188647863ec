package ast

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// AssignStmt represents an assignment statement
// Example: "x = y + 5;"
type AssignStmt struct {
	Pos   Position
	Name  string
	Value Expr
}

// IfStmt represents a two-armed conditional
// Example: "when (x > y) { z = x + y; } otherwise { z = x - y; }"
type IfStmt struct {
	Pos  Position
	Cond Expr
	Then []Stmt
	Else []Stmt
}

// WhileStmt represents a condition-guarded loop
// Example: "repeat (i < 10) { i = i + 1; }"
type WhileStmt struct {
	Pos  Position
	Cond Expr
	Body []Stmt
}

// ForStmt represents a counted loop with explicit init and update assignments
// Example: "iterate (i = 0; i < 10; i = i + 1;) { s = s + i; }"
type ForStmt struct {
	Pos    Position
	Init   *AssignStmt
	Cond   Expr
	Update *AssignStmt
	Body   []Stmt
}

// AssertStmt represents a verification condition
// Example: "verify(z > 0);"
type AssertStmt struct {
	Pos  Position
	Cond Expr
}

// BadStmt represents a statement the front end could not classify
type BadStmt struct {
	Pos     Position
	Message string
}

// NumberLit represents an integer literal
// Example: "10"
type NumberLit struct {
	Pos   Position
	Value int
}

// VarExpr represents a variable reference
// Example: "x"
type VarExpr struct {
	Pos  Position
	Name string
}

// BinaryExpr represents an arithmetic operation
// Example: "x + 5"
type BinaryExpr struct {
	Pos   Position
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// CondExpr represents a comparison between two arithmetic expressions
// Example: "x > y"
type CondExpr struct {
	Pos   Position
	Cmp   Comparator
	Left  Expr
	Right Expr
}

// BadExpr represents an expression the front end could not classify
type BadExpr struct {
	Pos     Position
	Message string
}

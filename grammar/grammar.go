package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

type Program struct {
	Statements []*Statement `@@*`
}

type Statement struct {
	Comment *Comment     `  @@`
	When    *WhenStmt    `| @@`
	Repeat  *RepeatStmt  `| @@`
	Iterate *IterateStmt `| @@`
	Verify  *VerifyStmt  `| @@`
	Assign  *Assignment  `| @@`
}

type Comment struct {
	Text string `@Comment`
}

type Assignment struct {
	Pos   lexer.Position
	Name  string `@Ident "="`
	Value *Expr  `@@ ";"`
}

type WhenStmt struct {
	Pos  lexer.Position
	Cond *Expr  `"when" "(" @@ ")"`
	Then *Block `@@`
	Else *Block `"otherwise" @@`
}

type RepeatStmt struct {
	Pos  lexer.Position
	Cond *Expr  `"repeat" "(" @@ ")"`
	Body *Block `@@`
}

// IterateStmt's header takes full assignments, semicolon included, for both
// the initializer and the update.
// Example: "iterate (i = 0; i < 3; i = i + 1;) { s = s + i; }"
type IterateStmt struct {
	Pos    lexer.Position
	Init   *Assignment `"iterate" "(" @@`
	Cond   *Expr       `@@ ";"`
	Update *Assignment `@@ ")"`
	Body   *Block      `@@`
}

type VerifyStmt struct {
	Pos  lexer.Position
	Cond *Expr `"verify" "(" @@ ")" ";"`
}

type Block struct {
	Statements []*Statement `"{" @@* "}"`
}

// Expr is a comparison or a bare arithmetic expression. Comparisons do not
// nest; "a < b < c" is rejected by the grammar.
type Expr struct {
	Pos   lexer.Position
	Left  *Arith `@@`
	Cmp   string `[ @("==" | "!=" | "<=" | ">=" | "<" | ">")`
	Right *Arith `@@ ]`
}

type Arith struct {
	Pos  lexer.Position
	Head *Term      `@@`
	Tail []*ArithOp `@@*`
}

type ArithOp struct {
	Op   string `@("+" | "-")`
	Term *Term  `@@`
}

type Term struct {
	Pos  lexer.Position
	Head *Factor   `@@`
	Tail []*TermOp `@@*`
}

type TermOp struct {
	Op     string  `@("*" | "/")`
	Factor *Factor `@@`
}

type Factor struct {
	Pos    lexer.Position
	Number *int    `  @Integer`
	Var    *string `| @Ident`
	Paren  *Expr   `| "(" @@ ")"`
}

package ast

type Node interface {
	NodePos() Position
	String() string
}

// Stmt is the closed set of MiniLang statements.
type Stmt interface {
	Node
	isStmt()
}

// Expr is the closed set of MiniLang expressions.
type Expr interface {
	Node
	isExpr()
}

func (*AssignStmt) isStmt() {}

func (*IfStmt) isStmt() {}

func (*WhileStmt) isStmt() {}

func (*ForStmt) isStmt() {}

func (*AssertStmt) isStmt() {}

func (*BadStmt) isStmt() {}

func (*NumberLit) isExpr() {}

func (*VarExpr) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*CondExpr) isExpr() {}

func (*BadExpr) isExpr() {}

func (a *AssignStmt) NodePos() Position { return a.Pos }

func (i *IfStmt) NodePos() Position { return i.Pos }

func (w *WhileStmt) NodePos() Position { return w.Pos }

func (f *ForStmt) NodePos() Position { return f.Pos }

func (a *AssertStmt) NodePos() Position { return a.Pos }

func (b *BadStmt) NodePos() Position { return b.Pos }

func (n *NumberLit) NodePos() Position { return n.Pos }

func (v *VarExpr) NodePos() Position { return v.Pos }

func (b *BinaryExpr) NodePos() Position { return b.Pos }

func (c *CondExpr) NodePos() Position { return c.Pos }

func (b *BadExpr) NodePos() Position { return b.Pos }
